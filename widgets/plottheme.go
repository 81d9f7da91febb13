// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"golang.org/x/image/colornames"
)

type DpPoint struct {
	X unit.Dp
	Y unit.Dp
}

func (p *DpPoint) Dp(gtx layout.Context) image.Point {
	return image.Point{
		X: gtx.Dp(p.X),
		Y: gtx.Dp(p.Y),
	}
}

// PlotTheme contains the colors and sizes used to paint chart surfaces.
// Chart coordinates are in Dp.
type PlotTheme struct {
	TextMargin       DpPoint
	AxesFontSize     int
	AxesColor        color.NRGBA
	AxesTextColor    color.NRGBA
	BackgroundColor  color.NRGBA
	MessageBgColor   color.NRGBA
	FrameBorderColor color.NRGBA
}

func rgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func NewDarkPlotTheme() *PlotTheme {
	return &PlotTheme{
		TextMargin:       DpPoint{X: 3, Y: 3},
		AxesFontSize:     12,
		AxesColor:        rgba(colornames.White),
		AxesTextColor:    rgba(colornames.White),
		BackgroundColor:  color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 255},
		MessageBgColor:   rgba(colornames.Darkred),
		FrameBorderColor: rgba(colornames.Dimgray),
	}
}

func NewLightPlotTheme() *PlotTheme {
	return &PlotTheme{
		TextMargin:       DpPoint{X: 3, Y: 3},
		AxesFontSize:     12,
		AxesColor:        rgba(colornames.Black),
		AxesTextColor:    rgba(colornames.Black),
		BackgroundColor:  rgba(colornames.White),
		MessageBgColor:   rgba(colornames.Lightcoral),
		FrameBorderColor: rgba(colornames.Lightgray),
	}
}
