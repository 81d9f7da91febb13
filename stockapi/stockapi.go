// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockapi

import (
	"context"
)

// IntradayFeed delivers minute records of subscribed symbols into a MinuteBook.
type IntradayFeed interface {
	Subscribe(symbol string) error
	Unsubscribe(symbol string) error
	// Run blocks until the feed ends or ctx is cancelled.
	Run(ctx context.Context) error
}
