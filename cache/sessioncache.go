// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cache

import (
	"stockcharts/stockval"
	"time"
)

// SessionCache keeps the intraday data of a session, so that a restarted
// viewer does not start with an empty chart.
type SessionCache interface {
	Load(symbol string, day time.Time) (stockval.IntradayData, bool)
	Store(symbol string, day time.Time, data stockval.IntradayData) error
}
