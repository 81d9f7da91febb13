// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image"
	"image/color"
	"math"
	"stockcharts/surface"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/stroke"
)

// ChartView paints a chart canvas. Canvas coordinates are pixels. If the
// available space changes, OnResize is called so that the chart can be
// rendered again for the new size.
type ChartView struct {
	Canvas   *surface.Canvas
	Theme    *PlotTheme
	OnResize func(width, height float64)
	lastSize image.Point
	// Reused between frames.
	segments []stroke.Segment
}

func NewChartView(c *surface.Canvas, pth *PlotTheme) *ChartView {
	return &ChartView{Canvas: c, Theme: pth}
}

func pt(p surface.Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}

func (v *ChartView) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	size := gtx.Constraints.Max
	if size != v.lastSize {
		v.lastSize = size
		v.Canvas.Resize(float64(size.X), float64(size.Y))
		if v.OnResize != nil {
			v.OnResize(float64(size.X), float64(size.Y))
		}
	}
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()

	root, ok := v.Canvas.Root()
	if !ok {
		return layout.Dimensions{Size: size}
	}
	origin := image.Point{X: int(math.Round(root.Origin.X)), Y: int(math.Round(root.Origin.Y))}
	defer op.Offset(origin).Push(gtx.Ops).Pop()

	for _, e := range v.Canvas.Elements() {
		switch e.Kind {
		case surface.KindAxis:
			v.paintAxis(*e.Axis, gtx, th)
		case surface.KindLine:
			v.paintLine(*e.Line, gtx)
		case surface.KindRect:
			v.paintRect(*e.Rect, gtx)
		}
	}
	if v.Canvas.Animating(gtx.Now) {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	return layout.Dimensions{Size: size}
}

func (v *ChartView) strokePath(gtx layout.Context, c color.NRGBA, width float32, lineCap stroke.StrokeCap, join stroke.StrokeJoin) {
	if len(v.segments) == 0 {
		return
	}
	var path stroke.Path
	path.Segments = v.segments
	paint.FillShape(
		gtx.Ops,
		c,
		stroke.Stroke{Path: path, Width: width, Cap: lineCap, Join: join, Miter: 4}.Op(gtx.Ops),
	)
}

func (v *ChartView) paintAxis(a surface.Axis, gtx layout.Context, th *material.Theme) {
	v.segments = v.segments[:0]
	domain := a.DomainPath()
	v.segments = append(v.segments, stroke.MoveTo(pt(domain[0])))
	for _, p := range domain[1:] {
		v.segments = append(v.segments, stroke.LineTo(pt(p)))
	}
	for _, t := range a.Ticks {
		p0, p1 := a.TickLine(t)
		v.segments = append(v.segments, stroke.MoveTo(pt(p0)), stroke.LineTo(pt(p1)))
	}
	v.strokePath(gtx, v.Theme.AxesColor, 1, stroke.FlatCap, stroke.BevelJoin)

	for _, t := range a.Ticks {
		anchor, align := a.LabelAnchor(t)
		call, textSize := recordAxisLabelText(t.Label, v.Theme.AxesTextColor, v.Theme.AxesFontSize, gtx, th)
		pos := image.Point{X: int(math.Round(anchor.X)), Y: int(math.Round(anchor.Y))}
		if align == surface.AlignEnd {
			pos.X -= textSize.X
			pos.Y -= textSize.Y / 2
		} else {
			pos.X -= textSize.X / 2
		}
		stack := op.Offset(pos).Push(gtx.Ops)
		// Run recorded drawing.
		call.Add(gtx.Ops)
		stack.Pop()
	}
}

func recordAxisLabelText(labelText string, c color.NRGBA, fontSize int, gtx layout.Context, th *material.Theme) (op.CallOp, image.Point) {
	macro := op.Record(gtx.Ops)
	gtx.Constraints.Min = image.Point{}
	lbl := material.Label(
		th,
		unit.Sp(fontSize),
		labelText,
	)
	lbl.Color = c
	lbl.Alignment = text.Start
	lbl.MaxLines = 1
	dims := lbl.Layout(gtx)
	return macro.Stop(), dims.Size
}

func (v *ChartView) paintLine(l surface.Line, gtx layout.Context) {
	if len(l.Points) == 0 {
		return
	}
	v.segments = v.segments[:0]
	v.segments = append(v.segments, stroke.MoveTo(pt(l.Points[0])))
	for _, p := range l.Points[1:] {
		v.segments = append(v.segments, stroke.LineTo(pt(p)))
	}
	lineCap := stroke.FlatCap
	if l.Style.Cap == surface.CapRound {
		lineCap = stroke.RoundCap
	}
	join := stroke.BevelJoin
	if l.Style.Join == surface.JoinRound {
		join = stroke.RoundJoin
	}
	v.strokePath(gtx, l.Style.Stroke, float32(l.Style.Width), lineCap, join)
}

func (v *ChartView) paintRect(r surface.Rect, gtx layout.Context) {
	x, y, w, h := r.BoundsAt(gtx.Now)
	bounds := image.Rect(int(math.Round(x)), int(math.Round(y)), int(math.Round(x+w)), int(math.Round(y+h)))
	if bounds.Empty() {
		return
	}
	c := r.Style.Fill
	c.A = r.Style.Alpha()
	paint.FillShape(gtx.Ops, c, clip.Rect(bounds).Op())
}
