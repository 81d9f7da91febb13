// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"stockcharts/mock"
	"stockcharts/stockval"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSymbol = "AMZN"

func TestMinuteBookMerge(t *testing.T) {
	b := NewMinuteBook()
	_, ok := b.Snapshot(testSymbol)
	assert.False(t, ok)

	b.Merge(testSymbol, stockval.MinuteRecord{Minute: "9:30", Average: 10, Volume: 100})
	b.Merge(testSymbol, stockval.MinuteRecord{Minute: "09:30", Average: 11, Volume: 120}, stockval.MinuteRecord{Minute: "9:31", Average: 12, Volume: 5})
	d, ok := b.Snapshot(testSymbol)
	require.True(t, ok)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, 11.0, d.Minutes[0].Average)
	assert.Equal(t, []string{testSymbol}, b.Symbols())

	// Snapshots are copies.
	d.Minutes[0].Average = 99
	d2, _ := b.Snapshot(testSymbol)
	assert.Equal(t, 11.0, d2.Minutes[0].Average)

	b.Remove(testSymbol)
	assert.Empty(t, b.Symbols())
}

func TestPublisher(t *testing.T) {
	m := NewPublisher[int](2)
	c, err := m.Subscribe(testSymbol)
	require.NoError(t, err)
	_, err = m.Subscribe(testSymbol)
	assert.Error(t, err)
	assert.True(t, m.IsSubscribed(testSymbol))

	assert.NoError(t, m.Publish(testSymbol, 1))
	assert.NoError(t, m.Publish(testSymbol, 2))
	// Buffer is full, the oldest value is dropped.
	assert.ErrorIs(t, m.Publish(testSymbol, 3), ErrPublisherOverflow)
	assert.Equal(t, 2, <-c)
	assert.Equal(t, 3, <-c)

	assert.NoError(t, m.Publish("unknown", 1))
	require.NoError(t, m.Unsubscribe(testSymbol))
	assert.Error(t, m.Unsubscribe(testSymbol))
	assert.False(t, m.IsSubscribed(testSymbol))
	m.Close()
	_, open := <-c
	assert.False(t, open)
}

func TestMinuteFeed(t *testing.T) {
	srv, commands := mock.NewFeedServer(t, []string{
		`{"type":"ping"}`,
		`{"type":"minute","symbol":"AMZN","data":[{"minute":"9:30","average":101.5,"volume":300}]}`,
		`{"type":"minute","symbol":"AMZN","data":[{"minute":"9:31","average":101.75,"volume":200}]}`,
		`{"type":"minute","symbol":"AMZN","data":[{"minute":"9:32"}]}`,
	})

	book := NewMinuteBook()
	feed := NewMinuteFeed(mock.WsUrl(srv), "", book)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, feed.Connect(ctx))
	require.NoError(t, feed.Subscribe(testSymbol))

	// The server closes the connection after sending all messages.
	err := feed.Run(ctx)
	assert.Error(t, err)
	assert.JSONEq(t, `{"type":"subscribe","symbol":"AMZN"}`, string(<-commands))

	d, ok := book.Snapshot(testSymbol)
	require.True(t, ok)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, 101.75, d.Minutes[1].Average)
	assert.ErrorIs(t, feed.Subscribe(testSymbol), ErrNotConnected)
}

func TestReplayFeed(t *testing.T) {
	data := stockval.IntradayData{Minutes: []stockval.MinuteRecord{
		{Minute: "9:30", Average: 1, Volume: 1},
		{Minute: "9:31", Average: 2, Volume: 2},
		{Minute: "9:32", Average: 3, Volume: 3},
	}}
	book := NewMinuteBook()
	feed := NewReplayFeed(data, time.Millisecond, book)
	require.NoError(t, feed.Subscribe(testSymbol))
	require.NoError(t, feed.Run(context.Background()))
	d, ok := book.Snapshot(testSymbol)
	require.True(t, ok)
	assert.Equal(t, 3, d.Len())
	assert.Error(t, feed.Unsubscribe("unknown"))
}

func TestDailyClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "SPY", r.URL.Query().Get("symbol"))
		assert.Equal(t, "1w", r.URL.Query().Get("range"))
		assert.Equal(t, "secret", r.URL.Query().Get("token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"date":"2023-08-07","close":10,"volume":1000},{"date":"2023-08-08","close":12,"volume":1500}]`))
	}))
	defer srv.Close()

	c := NewDailyClient(srv.URL, "secret", time.Second)
	data, err := c.FetchDaily(context.Background(), "SPY", "1w")
	require.NoError(t, err)
	assert.Equal(t, 2, data.Len())
	assert.Equal(t, "1w", data.Range)
	assert.Equal(t, 12.0, data.Days[1].Close)

	srv.Close()
	_, err = c.FetchDaily(context.Background(), "SPY", "1w")
	assert.Error(t, err)
}
