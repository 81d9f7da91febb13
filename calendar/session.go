// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import (
	"time"

	"github.com/pkg/errors"
)

type TradingHours struct {
	Open     time.Time
	Close    time.Time
	PreOpen  time.Time
	ExtClose time.Time
}

type MarketState int

const (
	MarketClosed MarketState = iota
	MarketPreOpen
	MarketOpen
	MarketAfterHours
)

func (s MarketState) String() string {
	switch s {
	case MarketPreOpen:
		return "Pre-Market"
	case MarketOpen:
		return "Open"
	case MarketAfterHours:
		return "After-Hours"
	default:
		return "Market Closed"
	}
}

func (h TradingHours) GetTradingState(t time.Time) MarketState {
	if t.Before(h.PreOpen) || t.After(h.ExtClose) {
		return MarketClosed
	} else if t.Before(h.Open) {
		return MarketPreOpen
	} else if t.Before(h.Close) {
		return MarketOpen
	} else {
		return MarketAfterHours
	}
}

// Session is the regular trading window of one day. It is the fixed x-domain of
// the intraday chart.
type Session struct {
	Open    time.Time
	Close   time.Time
	Trading bool
	Partial bool
	hours   TradingHours
}

// RegularSession returns the standard 9:30 to 16:00 window on the date of day,
// in the location of day.
func RegularSession(day time.Time) Session {
	open := RegularOpen.On(day)
	closeTime := RegularClose.On(day)
	return Session{
		Open:    open,
		Close:   closeTime,
		Trading: true,
		hours:   TradingHours{Open: open, Close: closeTime, PreOpen: open, ExtClose: closeTime},
	}
}

func (s Session) Duration() time.Duration {
	return s.Close.Sub(s.Open)
}

// State reports the market state at t. Extended hours only apply to sessions
// created by an ExchangeCalendar.
func (s Session) State(t time.Time) MarketState {
	if !s.Trading {
		return MarketClosed
	}
	return s.hours.GetTradingState(t)
}

// Minutes returns every minute from open (inclusive) to close (exclusive).
func (s Session) Minutes() []time.Time {
	var minutes []time.Time
	for t := s.Open; t.Before(s.Close); t = t.Add(time.Minute) {
		minutes = append(minutes, t)
	}
	return minutes
}

// MinuteKeys returns the "15:04" keys of all session minutes.
func (s Session) MinuteKeys() []string {
	minutes := s.Minutes()
	keys := make([]string, len(minutes))
	for i, t := range minutes {
		keys[i] = t.Format("15:04")
	}
	return keys
}

// MinuteTime places a "H:MM" minute on the date of the session.
func (s Session) MinuteTime(minute string) (time.Time, error) {
	t, err := time.Parse("15:04", minute)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid session minute %q", minute)
	}
	return ClockTime{Hours: t.Hour(), Minutes: t.Minute()}.On(s.Open), nil
}

func (s Session) Contains(t time.Time) bool {
	return !t.Before(s.Open) && t.Before(s.Close)
}
