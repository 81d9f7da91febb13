// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package webclient

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualRateLimiter(t *testing.T) {
	l := NewManualRateLimiter(time.Hour, 2)
	assert.Equal(t, 2, l.Remaining())
	ctx := context.Background()
	require.NoError(t, l.Wait(ctx))
	require.NoError(t, l.Wait(ctx))
	assert.Equal(t, 0, l.Remaining())

	ctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, l.Wait(ctx), context.DeadlineExceeded)
}

func TestRateLimiterWindow(t *testing.T) {
	l := NewManualRateLimiter(time.Minute, 1)
	now := time.Now()
	assert.True(t, l.tryAcquire(now))
	assert.False(t, l.tryAcquire(now.Add(time.Second)))
	assert.True(t, l.tryAcquire(now.Add(time.Minute)))
}

func TestUnlimitedRateLimiter(t *testing.T) {
	l := NewRateLimiter()
	assert.Equal(t, math.MaxInt, l.Remaining())
	assert.NoError(t, l.Wait(context.Background()))
}

func TestGetJson(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("x-ratelimit-limit", "30")
		_, _ = w.Write([]byte(`{"symbol":"SPY"}`))
	}))
	defer srv.Close()

	l := NewRateLimiter()
	var v struct {
		Symbol string `json:"symbol"`
	}
	require.NoError(t, GetJson(context.Background(), srv.Client(), l, srv.URL, &v))
	assert.Equal(t, "SPY", v.Symbol)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 29, l.Remaining())
}

func TestGetJsonErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/text" {
			w.Header().Set("Content-Type", "text/plain")
			return
		}
		http.Error(w, "unknown symbol", http.StatusNotFound)
	}))
	defer srv.Close()

	var v any
	err := GetJson(context.Background(), srv.Client(), NewRateLimiter(), srv.URL+"/missing", &v)
	assert.ErrorContains(t, err, "404")
	err = GetJson(context.Background(), srv.Client(), NewRateLimiter(), srv.URL+"/text", &v)
	assert.ErrorContains(t, err, "invalid content type")
}
