// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package webclient

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter is a client side request budget per interval. The budget is
// either set manually or taken from the rate limit headers of the first
// response.
type RateLimiter struct {
	mutex       sync.Mutex
	limit       int
	count       int
	interval    time.Duration
	windowStart time.Time
}

const MinWaitTime = time.Millisecond * 250

// Default interval if the server does not report when the budget is reset.
const DefaultLimitInterval = time.Minute

// NewRateLimiter creates a limiter which is configured by response headers.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{}
}

func NewManualRateLimiter(interval time.Duration, limit int) *RateLimiter {
	return &RateLimiter{limit: limit, interval: interval}
}

// tryAcquire returns true if a request may be sent now.
func (l *RateLimiter) tryAcquire(now time.Time) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.limit <= 0 {
		return true
	}
	if l.windowStart.IsZero() || now.Sub(l.windowStart) >= l.interval {
		l.windowStart = now
		l.count = 0
	}
	if l.count < l.limit {
		l.count++
		return true
	}
	return false
}

// Wait blocks until a request may be sent or ctx is done.
func (l *RateLimiter) Wait(ctx context.Context) error {
	for !l.tryAcquire(time.Now()) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(MinWaitTime):
		}
	}
	return nil
}

// Remaining returns the remaining requests of the current interval, or
// math.MaxInt if there is no limit.
func (l *RateLimiter) Remaining() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.limit <= 0 {
		return math.MaxInt
	}
	if !l.windowStart.IsZero() && time.Since(l.windowStart) >= l.interval {
		return l.limit
	}
	return max(l.limit-l.count, 0)
}

func headerInt(resp *http.Response, names ...string) (int64, bool) {
	for _, name := range names {
		if v, err := strconv.ParseInt(resp.Header.Get(name), 10, 64); err == nil && v > 0 {
			return v, true
		}
	}
	return 0, false
}

// HandleResponseHeadersWithWait configures the limiter from the first response
// carrying rate limit headers. If the server rejected the request because of
// too many requests, it waits and asks for a retry.
func (l *RateLimiter) HandleResponseHeadersWithWait(ctx context.Context, resp *http.Response) (retry bool, err error) {
	if resp.StatusCode == http.StatusTooManyRequests {
		wait := MinWaitTime
		if seconds, ok := headerInt(resp, "retry-after"); ok {
			wait = max(wait, time.Duration(seconds)*time.Second)
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(wait):
			return true, nil
		}
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.limit > 0 {
		return false, nil
	}
	limit, ok := headerInt(resp, "x-ratelimit-limit", "ratelimit-limit")
	if !ok {
		return false, nil
	}
	interval := DefaultLimitInterval
	if resetUnix, ok := headerInt(resp, "x-ratelimit-reset"); ok {
		if d := time.Until(time.Unix(resetUnix, 0)).Round(time.Second * 10); d > 0 {
			interval = d
		}
	} else if resetSeconds, ok := headerInt(resp, "ratelimit-reset"); ok {
		interval = time.Duration(resetSeconds) * time.Second
	}
	l.limit = int(limit)
	l.interval = interval
	// This response already used one request of the budget.
	l.windowStart = time.Now()
	l.count = 1
	return false, nil
}
