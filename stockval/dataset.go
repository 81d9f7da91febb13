// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/pkg/errors"
)

var dateLayouts = []string{
	DateKeyFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"20060102",
	"Jan 2, 2006",
}

// We directly unmarshal values into decimal.Big, and convert them once the
// record is complete. Pointers distinguish absent fields from zero values.
type dayRecordJSON struct {
	Date   *string      `json:"date"`
	Close  *decimal.Big `json:"close"`
	Volume *decimal.Big `json:"volume"`
}

type minuteRecordJSON struct {
	Minute  *string      `json:"minute"`
	Average *decimal.Big `json:"average"`
	Volume  *decimal.Big `json:"volume"`
}

type datasetJSON[T any] struct {
	Range string `json:"range"`
	Data  []T    `json:"data"`
}

// Both a bare array and a {"range": ..., "data": [...]} wrapper are accepted.
func unmarshalDataset[T any](data []byte) (string, []T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []T
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return "", nil, errors.Wrap(err, "decoding record array")
		}
		return "", records, nil
	}
	var wrapper datasetJSON[T]
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return "", nil, errors.Wrap(err, "decoding dataset")
	}
	return wrapper.Range, wrapper.Data, nil
}

func (d *DailyData) UnmarshalJSON(data []byte) error {
	rangeName, raw, err := unmarshalDataset[dayRecordJSON](data)
	if err != nil {
		return err
	}
	days := make([]DayRecord, len(raw))
	for i, r := range raw {
		if r.Date == nil {
			return &MissingFieldError{Index: i, Field: "date"}
		}
		date, err := ParseDate(*r.Date)
		if err != nil {
			return &InvalidFieldError{Index: i, Field: "date", Reason: err.Error()}
		}
		closePrice, err := decimalField(i, "close", r.Close)
		if err != nil {
			return err
		}
		volume, err := decimalField(i, "volume", r.Volume)
		if err != nil {
			return err
		}
		days[i] = DayRecord{Date: date, Close: closePrice, Volume: volume}
	}
	*d = DailyData{Range: rangeName, Days: days}
	return nil
}

func (d DailyData) MarshalJSON() ([]byte, error) {
	out := datasetJSON[dayRecordJSON]{Range: d.Range, Data: make([]dayRecordJSON, len(d.Days))}
	for i, r := range d.Days {
		date := r.Date.Format(DateKeyFormat)
		out.Data[i] = dayRecordJSON{
			Date:   &date,
			Close:  ConvertFloatToDecimal(r.Close, 64),
			Volume: ConvertFloatToDecimal(r.Volume, 64),
		}
	}
	return json.Marshal(out)
}

func (d *IntradayData) UnmarshalJSON(data []byte) error {
	rangeName, raw, err := unmarshalDataset[minuteRecordJSON](data)
	if err != nil {
		return err
	}
	minutes := make([]MinuteRecord, len(raw))
	for i, r := range raw {
		if r.Minute == nil {
			return &MissingFieldError{Index: i, Field: "minute"}
		}
		average, err := decimalField(i, "average", r.Average)
		if err != nil {
			return err
		}
		volume, err := decimalField(i, "volume", r.Volume)
		if err != nil {
			return err
		}
		minutes[i] = MinuteRecord{Minute: *r.Minute, Average: average, Volume: volume}
	}
	*d = IntradayData{Range: rangeName, Minutes: minutes}
	return nil
}

func (d IntradayData) MarshalJSON() ([]byte, error) {
	out := datasetJSON[minuteRecordJSON]{Range: d.Range, Data: make([]minuteRecordJSON, len(d.Minutes))}
	for i, r := range d.Minutes {
		minute := r.Minute
		out.Data[i] = minuteRecordJSON{
			Minute:  &minute,
			Average: ConvertFloatToDecimal(r.Average, 64),
			Volume:  ConvertFloatToDecimal(r.Volume, 64),
		}
	}
	return json.Marshal(out)
}

// ParseDate accepts the date formats used by common market data providers.
func ParseDate(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, errors.Wrapf(firstErr, "unsupported date %q", s)
}

func decimalField(index int, field string, v *decimal.Big) (float64, error) {
	if v == nil || !v.IsFinite() {
		return 0, &MissingFieldError{Index: index, Field: field}
	}
	return ConvertDecimalToFloat(v), nil
}
