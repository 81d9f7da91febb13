// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
)

// MessageField shows a status line, e.g. a feed error, on a colored background.
type MessageField struct {
	BgColor color.NRGBA
}

func NewMessageField(pth *PlotTheme) *MessageField {
	return &MessageField{BgColor: pth.MessageBgColor}
}

func (f *MessageField) Layout(txt string, gtx layout.Context, th *material.Theme) layout.Dimensions {
	if txt == "" {
		return layout.Dimensions{}
	}
	macro := op.Record(gtx.Ops)
	lbl := material.Body1(th, txt)
	dims := lbl.Layout(gtx)
	call := macro.Stop()

	clipRect := image.Rectangle{Max: image.Point{X: gtx.Constraints.Max.X, Y: gtx.Dp(16) + dims.Size.Y}}
	defer clip.Rect(clipRect).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, f.BgColor)

	textArea := op.Offset(image.Point{X: gtx.Dp(12), Y: gtx.Dp(8)}).Push(gtx.Ops)
	// Run recorded drawing.
	call.Add(gtx.Ops)
	textArea.Pop()
	return layout.Dimensions{Size: clipRect.Size()}
}
