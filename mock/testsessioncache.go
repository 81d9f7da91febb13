// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"stockcharts/cache"
	"stockcharts/stockval"
	"sync"
	"time"
)

type TestSessionCache struct {
	mutex    sync.Mutex
	sessions map[string]stockval.IntradayData
}

func NewSessionCache() *TestSessionCache {
	return &TestSessionCache{sessions: make(map[string]stockval.IntradayData)}
}

func (c *TestSessionCache) Load(symbol string, day time.Time) (stockval.IntradayData, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	d, ok := c.sessions[cache.SessionKey(symbol, day)]
	return d, ok
}

func (c *TestSessionCache) Store(symbol string, day time.Time, data stockval.IntradayData) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.sessions[cache.SessionKey(symbol, day)] = data
	return nil
}

// Len returns the number of stored sessions.
func (c *TestSessionCache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.sessions)
}
