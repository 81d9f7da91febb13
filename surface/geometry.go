// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package surface

import (
	"math"
	"time"
)

// LabelAlign is the horizontal alignment of a tick label at its anchor.
type LabelAlign int

const (
	AlignCenter LabelAlign = iota
	AlignEnd
)

func (a Axis) point(along, across float64) Point {
	if a.Position == AxisLeft {
		return Point{X: a.Origin.X - across, Y: a.Origin.Y + along}
	}
	return Point{X: a.Origin.X + along, Y: a.Origin.Y + across}
}

// DomainPath returns the axis line including the outer ticks at both ends,
// relative to the root.
func (a Axis) DomainPath() []Point {
	return []Point{
		a.point(a.RangeStart, a.TickSizeOuter),
		a.point(a.RangeStart, 0),
		a.point(a.RangeEnd, 0),
		a.point(a.RangeEnd, a.TickSizeOuter),
	}
}

// TickLine returns the start and end of the tick mark of t.
func (a Axis) TickLine(t Tick) (Point, Point) {
	return a.point(t.Offset, 0), a.point(t.Offset, a.TickSizeInner)
}

// LabelAnchor returns where the label of t is placed. Bottom labels are
// centered below their tick, left labels end before it and are centered
// vertically.
func (a Axis) LabelAnchor(t Tick) (Point, LabelAlign) {
	p := a.point(t.Offset, math.Max(a.TickSizeInner, 0)+a.TickPadding)
	if a.Position == AxisLeft {
		return p, AlignEnd
	}
	return p, AlignCenter
}

// BoundsAt returns the rectangle displayed at now. Animated rectangles grow
// from their bottom edge.
func (r Rect) BoundsAt(now time.Time) (x, y, width, height float64) {
	h := r.HeightAt(now)
	return r.X, r.Y + r.Height - h, r.Width, h
}

// Alpha returns the fill alpha including the opacity.
func (s RectStyle) Alpha() uint8 {
	return uint8(math.Round(float64(s.Fill.A) * math.Min(math.Max(s.Opacity, 0), 1)))
}
