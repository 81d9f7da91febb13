// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"stockcharts/stockval"
	"stockcharts/surface"

	"github.com/sirupsen/logrus"
)

const BarClass = "bar"

var log = logrus.WithField("component", "stockplot")

type DrawnBar struct {
	Key  string
	ID   surface.ElementID
	Rect surface.Rect
}

// BarGeometry returns the volume bar of r. Bars hang from the bottom of the
// plot area; a volume below the domain yields an empty bar. ok is false if the
// key of r is not part of the band domain.
func BarGeometry(r stockval.PlotRecord, s Scales, area PlotArea, st Style) (rect surface.Rect, ok bool) {
	x, ok := s.Band.Map(r.Key)
	if !ok {
		return surface.Rect{}, false
	}
	y := min(s.Volume.Map(r.Volume), area.Height)
	return surface.Rect{
		Class:  BarClass,
		Key:    r.Key,
		X:      x,
		Y:      y,
		Width:  s.Band.Bandwidth(),
		Height: area.Height - y,
		Style:  st.BarStyle(),
	}, true
}

// DrawBars adds one bar per record. If enter is not nil, every bar gets its own
// copy of the transition.
func DrawBars(dst surface.Surface, records []stockval.PlotRecord, s Scales, area PlotArea, st Style, enter *surface.Transition) []DrawnBar {
	bars := make([]DrawnBar, 0, len(records))
	for _, r := range records {
		rect, ok := BarGeometry(r, s, area, st)
		if !ok {
			log.WithField("key", r.Key).Debug("Skipping volume bar outside of the band domain.")
			continue
		}
		if enter != nil {
			t := *enter
			rect.Transition = &t
		}
		bars = append(bars, DrawnBar{Key: r.Key, ID: dst.CreateRect(rect), Rect: rect})
	}
	return bars
}
