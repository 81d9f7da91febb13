// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"stockcharts/stockval"
	"stockcharts/surface"
)

const LineClass = "line"

// LinePoints projects every record to (X(time), Price(price)).
func LinePoints(records []stockval.PlotRecord, s Scales) []surface.Point {
	points := make([]surface.Point, len(records))
	for i, r := range records {
		points[i] = surface.Point{X: s.X.Map(r.Time), Y: s.Price.Map(r.Price)}
	}
	return points
}

// DrawPriceLine adds one open polyline through all records.
func DrawPriceLine(dst surface.Surface, records []stockval.PlotRecord, s Scales, st Style) surface.ElementID {
	return dst.CreateLine(surface.Line{
		Class:  LineClass,
		Points: LinePoints(records, s),
		Style:  st.LineStyle(),
	})
}
