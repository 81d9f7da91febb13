// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockapi

import (
	"context"
	"stockcharts/stockval"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ReplayFeed plays back a recorded session, one minute per interval.
type ReplayFeed struct {
	data     stockval.IntradayData
	interval time.Duration
	book     *MinuteBook
	mutex    sync.Mutex
	symbols  map[string]struct{}
}

func NewReplayFeed(data stockval.IntradayData, interval time.Duration, book *MinuteBook) *ReplayFeed {
	return &ReplayFeed{data: data, interval: interval, book: book, symbols: make(map[string]struct{})}
}

func (f *ReplayFeed) Subscribe(symbol string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.symbols[symbol] = struct{}{}
	return nil
}

func (f *ReplayFeed) Unsubscribe(symbol string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if _, ok := f.symbols[symbol]; !ok {
		return errors.Errorf("cannot unsubscribe %s: not subscribed", symbol)
	}
	delete(f.symbols, symbol)
	return nil
}

func (f *ReplayFeed) publish(m stockval.MinuteRecord) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	for symbol := range f.symbols {
		f.book.Merge(symbol, m)
	}
}

// Run returns nil once all minutes were played.
func (f *ReplayFeed) Run(ctx context.Context) error {
	if f.interval <= 0 {
		return errors.New("replay interval must be positive")
	}
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for _, m := range f.data.Minutes {
		f.publish(m)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	log.Infof("Replay of %d minutes finished.", f.data.Len())
	return nil
}
