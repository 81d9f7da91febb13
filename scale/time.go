// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package scale

import (
	"sort"
	"time"
)

type timeUnit int

const (
	unitSecond timeUnit = iota
	unitMinute
	unitHour
	unitDay
	unitWeek
	unitMonth
	unitYear
)

const (
	durationDay   = 24 * time.Hour
	durationWeek  = 7 * durationDay
	durationMonth = 30 * durationDay
	durationYear  = 365 * durationDay
)

type tickInterval struct {
	unit     timeUnit
	step     int
	duration time.Duration
}

var tickIntervals = []tickInterval{
	{unitSecond, 1, time.Second},
	{unitSecond, 5, 5 * time.Second},
	{unitSecond, 15, 15 * time.Second},
	{unitSecond, 30, 30 * time.Second},
	{unitMinute, 1, time.Minute},
	{unitMinute, 5, 5 * time.Minute},
	{unitMinute, 15, 15 * time.Minute},
	{unitMinute, 30, 30 * time.Minute},
	{unitHour, 1, time.Hour},
	{unitHour, 3, 3 * time.Hour},
	{unitHour, 6, 6 * time.Hour},
	{unitHour, 12, 12 * time.Hour},
	{unitDay, 1, durationDay},
	{unitDay, 2, 2 * durationDay},
	{unitWeek, 1, durationWeek},
	{unitMonth, 1, durationMonth},
	{unitMonth, 3, 3 * durationMonth},
	{unitYear, 1, durationYear},
}

// Weeks start on Sunday.
func (u timeUnit) floor(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	loc := t.Location()
	switch u {
	case unitSecond:
		return time.Date(y, mo, d, h, mi, s, 0, loc)
	case unitMinute:
		return time.Date(y, mo, d, h, mi, 0, 0, loc)
	case unitHour:
		return time.Date(y, mo, d, h, 0, 0, 0, loc)
	case unitDay:
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	case unitWeek:
		return time.Date(y, mo, d-int(t.Weekday()), 0, 0, 0, 0, loc)
	case unitMonth:
		return time.Date(y, mo, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, 1, 1, 0, 0, 0, 0, loc)
	}
}

func (u timeUnit) offset(t time.Time, n int) time.Time {
	switch u {
	case unitSecond:
		return t.Add(time.Duration(n) * time.Second)
	case unitMinute:
		return t.Add(time.Duration(n) * time.Minute)
	case unitHour:
		return t.Add(time.Duration(n) * time.Hour)
	case unitDay:
		return t.AddDate(0, 0, n)
	case unitWeek:
		return t.AddDate(0, 0, 7*n)
	case unitMonth:
		return t.AddDate(0, n, 0)
	default:
		return t.AddDate(n, 0, 0)
	}
}

// field is the value a multi-unit step must divide.
func (u timeUnit) field(t time.Time) int {
	switch u {
	case unitSecond:
		return t.Second()
	case unitMinute:
		return t.Minute()
	case unitHour:
		return t.Hour()
	case unitDay:
		return t.Day() - 1
	case unitMonth:
		return int(t.Month()) - 1
	case unitYear:
		return t.Year()
	default:
		return 0
	}
}

// every returns the unit boundaries in [start, stop] whose field is a multiple of step.
func (u timeUnit) every(start, stop time.Time, step int) []time.Time {
	var result []time.Time
	t := u.floor(start)
	if t.Before(start) {
		t = u.offset(t, 1)
	}
	for !t.After(stop) {
		if step <= 1 || u.field(t)%step == 0 {
			result = append(result, t)
		}
		t = u.offset(t, 1)
	}
	return result
}

func chooseInterval(start, stop time.Time, count int) tickInterval {
	target := time.Duration(float64(stop.Sub(start)) / float64(count))
	if target < 0 {
		target = -target
	}
	i := sort.Search(len(tickIntervals), func(i int) bool {
		return tickIntervals[i].duration > target
	})
	if i == len(tickIntervals) {
		years := TickStep(float64(start.UnixMilli())/float64(durationYear.Milliseconds()),
			float64(stop.UnixMilli())/float64(durationYear.Milliseconds()), count)
		return tickInterval{unitYear, max(1, int(years)), durationYear}
	}
	if i == 0 {
		return tickIntervals[0]
	}
	if float64(target)/float64(tickIntervals[i-1].duration) < float64(tickIntervals[i].duration)/float64(target) {
		return tickIntervals[i-1]
	}
	return tickIntervals[i]
}

// Time maps a time domain onto a continuous range.
type Time struct {
	d0, d1 time.Time
	r0, r1 float64
}

func NewTime(d0, d1 time.Time, r0, r1 float64) Time {
	return Time{d0: d0, d1: d1, r0: r0, r1: r1}
}

func (s Time) Domain() (time.Time, time.Time) {
	return s.d0, s.d1
}

func (s Time) Range() (float64, float64) {
	return s.r0, s.r1
}

func (s Time) Map(t time.Time) float64 {
	span := s.d1.Sub(s.d0)
	if span == 0 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + float64(t.Sub(s.d0))/float64(span)*(s.r1-s.r0)
}

func (s Time) Invert(x float64) time.Time {
	if s.r1 == s.r0 {
		return s.d0.Add(s.d1.Sub(s.d0) / 2)
	}
	return s.d0.Add(time.Duration((x - s.r0) / (s.r1 - s.r0) * float64(s.d1.Sub(s.d0))))
}

// Ticks returns approximately count calendar aligned times within the domain,
// in the location of the domain start.
func (s Time) Ticks(count int) []time.Time {
	if count <= 0 {
		return nil
	}
	start, stop := s.d0, s.d1
	reverse := stop.Before(start)
	if reverse {
		start, stop = stop, start
	}
	stop = stop.In(start.Location())
	if start.Equal(stop) {
		return []time.Time{start}
	}
	interval := chooseInterval(start, stop, count)
	ticks := interval.unit.every(start, stop, interval.step)
	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// MultiFormat labels a tick with the coarsest unit that identifies it,
// e.g. "2023" for a new year, "August" for a new month, "Mon 07" for a day.
func MultiFormat(t time.Time) string {
	switch {
	case !unitSecond.floor(t).Equal(t):
		return t.Format(".000")
	case !unitMinute.floor(t).Equal(t):
		return t.Format(":05")
	case !unitHour.floor(t).Equal(t):
		return t.Format("03:04")
	case !unitDay.floor(t).Equal(t):
		return t.Format("03 PM")
	case !unitMonth.floor(t).Equal(t):
		if !unitWeek.floor(t).Equal(t) {
			return t.Format("Mon 02")
		}
		return t.Format("Jan 02")
	case !unitYear.floor(t).Equal(t):
		return t.Format("January")
	default:
		return t.Format("2006")
	}
}

// ClockFormat labels a tick with its wall clock time.
func ClockFormat(t time.Time) string {
	return t.Format("15:04")
}
