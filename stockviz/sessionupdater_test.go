// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"stockcharts/calendar"
	"stockcharts/stockapi"
	"stockcharts/stockval"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionUpdaterTick(t *testing.T) {
	book := stockapi.NewMinuteBook()
	publisher := stockapi.NewPublisher[stockval.IntradayData](4)
	c, err := publisher.Subscribe("AMZN")
	require.NoError(t, err)

	u := NewSessionUpdater(book, SessionFunc(calendar.RegularSession), publisher)
	u.now = func() time.Time { return testNow }

	u.Tick()
	assert.Empty(t, c)

	book.Merge("AMZN", newTestIntraday(2).Minutes...)
	book.Merge("MSFT", newTestIntraday(1).Minutes...)
	u.Tick()
	require.Len(t, c, 1)
	assert.Equal(t, 2, (<-c).Len())

	// Unchanged data is not published again.
	u.Tick()
	assert.Empty(t, c)

	// A revised last minute is.
	book.Merge("AMZN", stockval.MinuteRecord{Minute: "9:31", Average: 102, Volume: 260})
	u.Tick()
	require.Len(t, c, 1)
	data := <-c
	assert.Equal(t, 102.0, data.Minutes[1].Average)
}

func TestSessionUpdaterSchedule(t *testing.T) {
	u := NewSessionUpdater(stockapi.NewMinuteBook(), SessionFunc(calendar.RegularSession), stockapi.NewPublisher[stockval.IntradayData](1))
	assert.Error(t, u.Start("every now and then"))
	require.NoError(t, u.Start("@every 1h"))
	u.Stop()
}

func TestPolicyParsing(t *testing.T) {
	p, err := ParseBarUpdatePolicy("Refresh-Existing")
	require.NoError(t, err)
	assert.Equal(t, RefreshExisting, p)
	assert.Equal(t, "enter-only", EnterOnly.String())
	_, err = ParseBarUpdatePolicy("always")
	assert.Error(t, err)

	d, err := ParseDomainPolicy("")
	require.NoError(t, err)
	assert.Equal(t, FixedDomains, d)
	assert.Equal(t, "recompute", RecomputeDomains.String())
}
