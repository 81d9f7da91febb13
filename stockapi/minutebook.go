// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockapi

import (
	"stockcharts/stockval"
	"sync"

	"github.com/zhangyunhao116/skipmap"
	"golang.org/x/exp/slices"
)

// MinuteBook collects the intraday data of several symbols. It is safe for
// concurrent use: feeds write, the session updater reads.
type MinuteBook struct {
	books *skipmap.StringMap[*symbolBook]
}

type symbolBook struct {
	mutex sync.Mutex
	data  stockval.IntradayData
}

func NewMinuteBook() *MinuteBook {
	return &MinuteBook{books: skipmap.NewString[*symbolBook]()}
}

func (b *MinuteBook) book(symbol string) *symbolBook {
	sb, _ := b.books.LoadOrStore(symbol, &symbolBook{data: stockval.IntradayData{Range: "1d"}})
	return sb
}

// Merge adds minutes to the data of symbol. A minute that was already
// received is replaced by the newer record.
func (b *MinuteBook) Merge(symbol string, minutes ...stockval.MinuteRecord) {
	sb := b.book(symbol)
	sb.mutex.Lock()
	sb.data = sb.data.Append(minutes...)
	sb.mutex.Unlock()
}

// Replace sets the complete data of symbol, e.g. from a cached snapshot.
func (b *MinuteBook) Replace(symbol string, data stockval.IntradayData) {
	sb := b.book(symbol)
	sb.mutex.Lock()
	sb.data = stockval.IntradayData{Range: data.Range, Minutes: slices.Clone(data.Minutes)}
	sb.mutex.Unlock()
}

// Snapshot returns a copy of the data of symbol.
func (b *MinuteBook) Snapshot(symbol string) (stockval.IntradayData, bool) {
	sb, ok := b.books.Load(symbol)
	if !ok {
		return stockval.IntradayData{}, false
	}
	sb.mutex.Lock()
	defer sb.mutex.Unlock()
	return stockval.IntradayData{Range: sb.data.Range, Minutes: slices.Clone(sb.data.Minutes)}, true
}

// Symbols returns the symbols with data, in ascending order.
func (b *MinuteBook) Symbols() []string {
	var symbols []string
	b.books.Range(func(symbol string, _ *symbolBook) bool {
		symbols = append(symbols, symbol)
		return true
	})
	return symbols
}

// Remove drops all data of symbol, e.g. at the start of a new session.
func (b *MinuteBook) Remove(symbol string) {
	b.books.LoadAndDelete(symbol)
}
