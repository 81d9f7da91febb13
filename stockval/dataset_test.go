// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalDailyArray(t *testing.T) {
	input := `[
		{"date": "2023-08-07", "close": 10, "volume": 1200},
		{"date": "2023-08-08", "close": 12.5, "volume": 1500.5}
	]`
	var d DailyData
	require.NoError(t, json.Unmarshal([]byte(input), &d))
	assert.Equal(t, "", d.Range)
	require.Len(t, d.Days, 2)
	assert.Equal(t, time.Date(2023, 8, 7, 0, 0, 0, 0, time.Local), d.Days[0].Date)
	assert.Equal(t, 12.5, d.Days[1].Close)
	assert.Equal(t, 1500.5, d.Days[1].Volume)
}

func TestUnmarshalDailyWrapper(t *testing.T) {
	input := `{"range": "1m", "data": [{"date": "20230807", "close": 10, "volume": 1}]}`
	var d DailyData
	require.NoError(t, json.Unmarshal([]byte(input), &d))
	assert.Equal(t, "1m", d.Range)
	require.Len(t, d.Days, 1)
	assert.Equal(t, 7, d.Days[0].Date.Day())
}

func TestUnmarshalDailyMissingField(t *testing.T) {
	input := `[{"date": "2023-08-07", "close": 10, "volume": 1}, {"date": "2023-08-08", "volume": 1}]`
	var d DailyData
	err := json.Unmarshal([]byte(input), &d)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 1, missing.Index)
	assert.Equal(t, "close", missing.Field)
}

func TestUnmarshalDailyInvalidDate(t *testing.T) {
	input := `[{"date": "yesterday", "close": 10, "volume": 1}]`
	var d DailyData
	err := json.Unmarshal([]byte(input), &d)
	var invalid *InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "date", invalid.Field)
}

func TestUnmarshalIntraday(t *testing.T) {
	input := `{"range": "1d", "data": [
		{"minute": "9:30", "average": 101.25, "volume": 300},
		{"minute": "09:31", "average": 101.5, "volume": 0}
	]}`
	var d IntradayData
	require.NoError(t, json.Unmarshal([]byte(input), &d))
	assert.Equal(t, "1d", d.Range)
	require.Len(t, d.Minutes, 2)
	assert.Equal(t, "9:30", d.Minutes[0].Minute)
	assert.Equal(t, 101.25, d.Minutes[0].Average)
	assert.NoError(t, d.Validate())
}

func TestUnmarshalIntradayNullAverage(t *testing.T) {
	input := `[{"minute": "9:30", "average": null, "volume": 300}]`
	var d IntradayData
	err := json.Unmarshal([]byte(input), &d)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "average", missing.Field)
}

func TestValidateEmpty(t *testing.T) {
	assert.ErrorIs(t, DailyData{}.Validate(), ErrEmptyDataset)
	assert.ErrorIs(t, IntradayData{Range: "1d"}.Validate(), ErrEmptyDataset)
}

func TestValidateNegativeVolume(t *testing.T) {
	d := DailyData{Days: []DayRecord{{Date: time.Now(), Close: 1, Volume: -1}}}
	var invalid *InvalidFieldError
	require.ErrorAs(t, d.Validate(), &invalid)
	assert.Equal(t, "volume", invalid.Field)
}

func TestValidateDuplicateMinute(t *testing.T) {
	d := IntradayData{Minutes: []MinuteRecord{
		{Minute: "9:30", Average: 1, Volume: 1},
		{Minute: "09:30", Average: 2, Volume: 1},
	}}
	var duplicate *DuplicateKeyError
	require.ErrorAs(t, d.Validate(), &duplicate)
	assert.Equal(t, "09:30", duplicate.Key)
}

func TestIntradayPlotRecords(t *testing.T) {
	day := time.Date(2023, 8, 9, 0, 0, 0, 0, time.UTC)
	d := IntradayData{Minutes: []MinuteRecord{
		{Minute: "9:30", Average: 10, Volume: 100},
		{Minute: "9:31", Average: 11, Volume: 200},
	}}
	records, err := d.PlotRecords(day)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "09:30", records[0].Key)
	assert.Equal(t, time.Date(2023, 8, 9, 9, 31, 0, 0, time.UTC), records[1].Time)
	assert.Equal(t, 11.0, records[1].Price)
}

func TestAppendReplacesMinute(t *testing.T) {
	d := IntradayData{Minutes: []MinuteRecord{{Minute: "9:30", Average: 10, Volume: 100}}}
	d = d.Append(MinuteRecord{Minute: "09:30", Average: 11, Volume: 150}, MinuteRecord{Minute: "09:31", Average: 12, Volume: 10})
	require.Len(t, d.Minutes, 2)
	assert.Equal(t, 11.0, d.Minutes[0].Average)
	assert.Equal(t, "09:31", d.Minutes[1].Minute)
}

func TestPrefix(t *testing.T) {
	d := IntradayData{Minutes: make([]MinuteRecord, 5)}
	assert.Equal(t, 3, d.Prefix(3).Len())
	assert.Equal(t, 5, d.Prefix(10).Len())
	assert.Equal(t, 0, d.Prefix(-1).Len())
}
