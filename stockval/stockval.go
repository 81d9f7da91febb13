// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"time"
)

const (
	DateKeyFormat   = "2006-01-02"
	MinuteKeyFormat = "15:04"
)

// DayRecord is one trading day of the historical chart.
type DayRecord struct {
	Date   time.Time
	Close  float64
	Volume float64
}

// MinuteRecord is one minute of an intraday session. Minute is the local
// wall clock time "H:MM" or "HH:MM".
type MinuteRecord struct {
	Minute  string
	Average float64
	Volume  float64
}

type DailyData struct {
	Range string
	Days  []DayRecord
}

type IntradayData struct {
	Range   string
	Minutes []MinuteRecord
}

// PlotRecord is what the renderers consume, independent of the record kind.
// Key identifies the record on the band scale.
type PlotRecord struct {
	Key    string
	Time   time.Time
	Price  float64
	Volume float64
}

func (d DailyData) Len() int {
	return len(d.Days)
}

func (d IntradayData) Len() int {
	return len(d.Minutes)
}

// Validate checks all records and returns the first violation.
func (d DailyData) Validate() error {
	if len(d.Days) == 0 {
		return ErrEmptyDataset
	}
	for i, r := range d.Days {
		if r.Date.IsZero() {
			return &MissingFieldError{Index: i, Field: "date"}
		}
		if err := validateValues(i, "close", r.Close, r.Volume); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks all records and returns the first violation.
// Minute keys must be unique after normalization.
func (d IntradayData) Validate() error {
	if len(d.Minutes) == 0 {
		return ErrEmptyDataset
	}
	seen := make(map[string]struct{}, len(d.Minutes))
	for i, r := range d.Minutes {
		if r.Minute == "" {
			return &MissingFieldError{Index: i, Field: "minute"}
		}
		key, err := NormalizeMinute(r.Minute)
		if err != nil {
			return &InvalidFieldError{Index: i, Field: "minute", Reason: err.Error()}
		}
		if _, ok := seen[key]; ok {
			return &DuplicateKeyError{Key: key}
		}
		seen[key] = struct{}{}
		if err := validateValues(i, "average", r.Average, r.Volume); err != nil {
			return err
		}
	}
	return nil
}

// PlotRecords validates the data and projects it for rendering.
func (d DailyData) PlotRecords() ([]PlotRecord, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	records := make([]PlotRecord, len(d.Days))
	for i, r := range d.Days {
		records[i] = PlotRecord{
			Key:    r.Date.Format(DateKeyFormat),
			Time:   r.Date,
			Price:  r.Close,
			Volume: r.Volume,
		}
	}
	return records, nil
}

// PlotRecords validates the data and projects it for rendering. The minutes
// are anchored to the calendar date of day, in the location of day.
func (d IntradayData) PlotRecords(day time.Time) ([]PlotRecord, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	records := make([]PlotRecord, len(d.Minutes))
	for i, r := range d.Minutes {
		// Validate made sure this succeeds.
		t, _ := MinuteTime(day, r.Minute)
		records[i] = PlotRecord{
			Key:    t.Format(MinuteKeyFormat),
			Time:   t,
			Price:  r.Average,
			Volume: r.Volume,
		}
	}
	return records, nil
}

// Append returns a copy of d with additional minutes, replacing existing
// minutes with the same key.
func (d IntradayData) Append(minutes ...MinuteRecord) IntradayData {
	result := IntradayData{Range: d.Range, Minutes: make([]MinuteRecord, 0, len(d.Minutes)+len(minutes))}
	result.Minutes = append(result.Minutes, d.Minutes...)
	index := make(map[string]int, len(result.Minutes))
	for i, r := range result.Minutes {
		if key, err := NormalizeMinute(r.Minute); err == nil {
			index[key] = i
		}
	}
	for _, m := range minutes {
		key, err := NormalizeMinute(m.Minute)
		if err != nil {
			result.Minutes = append(result.Minutes, m)
			continue
		}
		if i, ok := index[key]; ok {
			result.Minutes[i] = m
			continue
		}
		index[key] = len(result.Minutes)
		result.Minutes = append(result.Minutes, m)
	}
	return result
}

// Prefix returns the first n minutes, used to replay a session.
func (d IntradayData) Prefix(n int) IntradayData {
	n = min(max(n, 0), len(d.Minutes))
	return IntradayData{Range: d.Range, Minutes: d.Minutes[:n:n]}
}

// NormalizeMinute converts "9:30" to "09:30".
func NormalizeMinute(minute string) (string, error) {
	t, err := time.Parse(MinuteKeyFormat, minute)
	if err != nil {
		return "", err
	}
	return t.Format(MinuteKeyFormat), nil
}

// MinuteTime returns the wall clock minute on the date of day.
func MinuteTime(day time.Time, minute string) (time.Time, error) {
	t, err := time.Parse(MinuteKeyFormat, minute)
	if err != nil {
		return time.Time{}, err
	}
	y, m, dd := day.Date()
	return time.Date(y, m, dd, t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
