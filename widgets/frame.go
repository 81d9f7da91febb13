// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

const DefaultMargin = 10

// Frame draws a titled border around a chart.
type Frame struct {
	Title           string
	Subtitle        string
	OuterMargin     unit.Dp
	InnerMargin     unit.Dp
	BorderWidth     unit.Dp
	BorderColor     color.NRGBA
	BackgroundColor color.NRGBA
}

func NewFrame(pth *PlotTheme, title string) Frame {
	return Frame{
		Title:           title,
		OuterMargin:     DefaultMargin,
		InnerMargin:     DefaultMargin / 2,
		BorderWidth:     1,
		BorderColor:     pth.FrameBorderColor,
		BackgroundColor: pth.BackgroundColor,
	}
}

func (f Frame) Layout(gtx layout.Context, th *material.Theme, w layout.Widget) layout.Dimensions {
	return layout.UniformInset(f.OuterMargin).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return widget.Border{Color: f.BorderColor, Width: f.BorderWidth, CornerRadius: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			macro := op.Record(gtx.Ops)
			dims := layout.UniformInset(f.InnerMargin).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(heading(th, f.Title).Layout),
					layout.Rigid(subHeading(th, f.Subtitle).Layout),
					layout.Flexed(1, w),
				)
			})
			call := macro.Stop()
			if empty := (color.NRGBA{}); f.BackgroundColor != empty {
				paint.FillShape(gtx.Ops, f.BackgroundColor, clip.Rect{Max: dims.Size}.Op())
			}
			call.Add(gtx.Ops)
			return dims
		})
	})
}
