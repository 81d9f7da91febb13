// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/aa"
	"github.com/rickar/cal/v2/us"
)

const observedHolidayPostfix = "(observed)"

// ExchangeCalendar knows the trading days and the regular session window of an exchange.
type ExchangeCalendar struct {
	location                *time.Location
	calendar                *cal.BusinessCalendar
	stdOpenTime             ClockTime
	stdCloseTime            ClockTime
	partialCloseTime        ClockTime
	extendedHoursBeforeOpen time.Duration
	extendedHoursAfterClose time.Duration
}

// ClockTime is a wall clock time of day.
type ClockTime struct {
	Hours   int
	Minutes int
}

func (c ClockTime) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hours, c.Minutes, 0, 0, day.Location())
}

var (
	RegularOpen  = ClockTime{Hours: 9, Minutes: 30}
	RegularClose = ClockTime{Hours: 16}
	PartialClose = ClockTime{Hours: 13}
)

func NewNYSECalendar() ExchangeCalendar {
	// NYSE uses ET, which can be either EST or EDT.
	// Luckily, changing to/from daylight saving time does not occur during market hours.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic("NYSE time location not supported")
	}
	return NewExchangeCalendar(loc)
}

// NewExchangeCalendar creates a calendar with NYSE holidays in an arbitrary location.
func NewExchangeCalendar(loc *time.Location) ExchangeCalendar {
	c := cal.NewBusinessCalendar()
	// NYSE holidays differ from bank holidays: Good Friday is closed,
	// Columbus Day and Veterans Day are trading days.
	c.AddHoliday(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		aa.GoodFriday,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	c.Cacheable = true
	return ExchangeCalendar{
		calendar:                c,
		location:                loc,
		stdOpenTime:             RegularOpen,
		stdCloseTime:            RegularClose,
		partialCloseTime:        PartialClose,
		extendedHoursBeforeOpen: time.Hour*5 + time.Minute*30,
		extendedHoursAfterClose: time.Hour * 4,
	}
}

func (b ExchangeCalendar) Location() *time.Location {
	return b.location
}

func (b ExchangeCalendar) IsHoliday(t time.Time) (bool, string) {
	actual, observed, h := b.calendar.IsHoliday(t.In(b.location))
	if !actual && !observed {
		return false, ""
	} else if !actual {
		return true, h.Name + " " + observedHolidayPostfix
	} else {
		return true, h.Name
	}
}

func (b ExchangeCalendar) IsTradingDay(t time.Time) (trading bool, partial bool) {
	day := t.In(b.location)
	trading = b.calendar.IsWorkday(day)

	if trading {
		holiday, name := b.IsHoliday(day.AddDate(0, 0, 1))
		// There are partial trading days before independence day and christmas.
		if holiday && (name == us.IndependenceDay.Name || name == us.ChristmasDay.Name) {
			partial = true
		} else {
			// There is a partial trading day after thanksgiving
			holiday, name = b.IsHoliday(day.AddDate(0, 0, -1))
			if holiday && name == us.ThanksgivingDay.Name {
				partial = true
			}
		}
	}
	return
}

func (b ExchangeCalendar) GetTradingHours(t time.Time) (trading, partial bool, h TradingHours) {
	day := t.In(b.location)
	trading, partial = b.IsTradingDay(day)
	if !trading {
		return
	}
	h.Open = b.stdOpenTime.On(day)
	if partial {
		h.Close = b.partialCloseTime.On(day)
	} else {
		h.Close = b.stdCloseTime.On(day)
	}
	h.PreOpen = h.Open.Add(-b.extendedHoursBeforeOpen)
	h.ExtClose = h.Close.Add(b.extendedHoursAfterClose)
	return
}

// SessionFor returns the regular session of the day containing t. Days without
// trading still get the standard window, flagged as not trading, so that a
// recorded session can be charted on any day.
func (b ExchangeCalendar) SessionFor(t time.Time) Session {
	day := t.In(b.location)
	trading, partial, h := b.GetTradingHours(day)
	if !trading {
		s := RegularSession(day)
		s.Trading = false
		return s
	}
	return Session{Open: h.Open, Close: h.Close, Trading: true, Partial: partial, hours: h}
}
