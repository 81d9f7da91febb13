// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"stockcharts/scale"
	"stockcharts/stockval"
	"stockcharts/surface"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	StaticTimeTicks  = 4
	DynamicTimeTicks = 10
	PriceTicks       = 10
	VolumeTicks      = 3

	defaultTickSize    = 6
	defaultTickPadding = 3
)

const (
	TimeAxisClass   = "x axis"
	PriceAxisClass  = "y axis"
	VolumeAxisClass = "volume axis"
)

// TimeAxis creates the bottom axis. Labels are produced by format, e.g.
// scale.MultiFormat for daily data and scale.ClockFormat for intraday data.
func TimeAxis(x scale.Time, count int, format func(time.Time) string, area PlotArea) surface.Axis {
	r0, r1 := x.Range()
	a := surface.Axis{
		Class:         TimeAxisClass,
		Position:      surface.AxisBottom,
		Origin:        surface.Point{Y: area.Height},
		RangeStart:    r0,
		RangeEnd:      r1,
		TickSizeInner: defaultTickSize,
		TickSizeOuter: defaultTickSize,
		TickPadding:   defaultTickPadding,
	}
	for _, t := range x.Ticks(count) {
		a.Ticks = append(a.Ticks, surface.Tick{Offset: x.Map(t), Label: format(t)})
	}
	return a
}

func valueAxis(class string, y scale.Linear, count int, format func(float64) string) surface.Axis {
	r0, r1 := y.Range()
	a := surface.Axis{
		Class:         class,
		Position:      surface.AxisLeft,
		RangeStart:    r0,
		RangeEnd:      r1,
		TickSizeInner: defaultTickSize,
		TickSizeOuter: 0,
		TickPadding:   defaultTickPadding,
	}
	for _, v := range y.Ticks(count) {
		a.Ticks = append(a.Ticks, surface.Tick{Offset: y.Map(v), Label: format(v)})
	}
	return a
}

// PriceAxis creates the left price axis, labelled with the digits the tick step requires.
func PriceAxis(y scale.Linear) surface.Axis {
	precision := y.TickPrecision(PriceTicks)
	return valueAxis(PriceAxisClass, y, PriceTicks, func(v float64) string {
		return FormatPrice(v, precision)
	})
}

// VolumeAxis creates the left volume axis with SI labels.
func VolumeAxis(y scale.Linear) surface.Axis {
	return valueAxis(VolumeAxisClass, y, VolumeTicks, FormatSI)
}

// DrawAxes adds the time, price and volume axes to dst.
func DrawAxes(dst surface.Surface, s Scales, area PlotArea, timeTicks int, timeFormat func(time.Time) string) []surface.ElementID {
	return []surface.ElementID{
		dst.CreateAxis(TimeAxis(s.X, timeTicks, timeFormat, area)),
		dst.CreateAxis(PriceAxis(s.Price)),
		dst.CreateAxis(VolumeAxis(s.Volume)),
	}
}

// FormatPrice formats v with fixed precision and thousands separators, e.g. "12,345.5".
func FormatPrice(v float64, precision int) string {
	text := stockval.RoundDecimal(stockval.ConvertFloatToDecimal(v, 64), precision).String()
	intPart, frac, hasFrac := strings.Cut(text, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return text
	}
	grouped := humanize.Comma(n)
	if n == 0 && strings.HasPrefix(intPart, "-") {
		grouped = "-0"
	}
	if hasFrac {
		return grouped + "." + frac
	}
	return grouped
}

// FormatSI formats v with an SI prefix and without insignificant zeros, e.g. "1.5k".
func FormatSI(v float64) string {
	value, prefix := humanize.ComputeSI(v)
	return strconv.FormatFloat(value, 'g', 6, 64) + prefix
}
