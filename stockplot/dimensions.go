// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"stockcharts/surface"
)

const (
	// The price region covers the upper part of the plot, from the top down to this ratio.
	PriceRegionRatio = 0.65
	// The volume region covers the lower part of the plot, from this ratio down to the bottom.
	VolumeRegionRatio = 0.70
	BandPadding       = 0.3
)

type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Room for the price and volume labels on the left, the time labels at the bottom.
var DefaultMargins = Margins{Top: 20, Bottom: 30, Left: 8 * 5, Right: 16}

// PlotArea is the drawable region inside the margins.
type PlotArea struct {
	Margins Margins
	Width   float64
	Height  float64
}

func NewPlotArea(totalWidth, totalHeight float64, m Margins) PlotArea {
	return PlotArea{
		Margins: m,
		Width:   totalWidth - m.Left - m.Right,
		Height:  totalHeight - m.Top - m.Bottom,
	}
}

func (a PlotArea) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Origin is the position of the plot area within the surface.
func (a PlotArea) Origin() surface.Point {
	return surface.Point{X: a.Margins.Left, Y: a.Margins.Top}
}
