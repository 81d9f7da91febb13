// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cache

import (
	"stockcharts/stockval"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionKey(t *testing.T) {
	day := time.Date(2023, 8, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "BRK_B-20230808", SessionKey("brk.b", day))
	assert.Equal(t, "SPY-20230808", SessionKey("SPY", day))
}

func TestLocalSessionCache(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	t.Setenv("HOME", dir)

	c, err := NewLocalSessionCache()
	require.NoError(t, err)
	day := time.Date(2023, 8, 8, 0, 0, 0, 0, time.UTC)
	_, ok := c.Load("SPY", day)
	assert.False(t, ok)

	data := stockval.IntradayData{Range: "1d", Minutes: []stockval.MinuteRecord{
		{Minute: "9:30", Average: 101.5, Volume: 300},
		{Minute: "9:31", Average: 101.75, Volume: 200},
	}}
	require.NoError(t, c.Store("SPY", day, data))
	loaded, ok := c.Load("SPY", day)
	require.True(t, ok)
	assert.Equal(t, 2, loaded.Len())
	assert.Equal(t, 101.75, loaded.Minutes[1].Average)

	_, ok = c.Load("SPY", day.AddDate(0, 0, 1))
	assert.False(t, ok)
}
