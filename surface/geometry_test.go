// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package surface

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBottomAxisGeometry(t *testing.T) {
	a := Axis{Position: AxisBottom, Origin: Point{Y: 100}, RangeStart: 0, RangeEnd: 200, TickSizeInner: 6, TickSizeOuter: 6, TickPadding: 3}
	assert.Equal(t, []Point{{0, 106}, {0, 100}, {200, 100}, {200, 106}}, a.DomainPath())
	p0, p1 := a.TickLine(Tick{Offset: 50})
	assert.Equal(t, Point{50, 100}, p0)
	assert.Equal(t, Point{50, 106}, p1)
	anchor, align := a.LabelAnchor(Tick{Offset: 50})
	assert.Equal(t, Point{50, 109}, anchor)
	assert.Equal(t, AlignCenter, align)
}

func TestLeftAxisGeometry(t *testing.T) {
	a := Axis{Position: AxisLeft, RangeStart: 300, RangeEnd: 0, TickSizeInner: 6, TickSizeOuter: 0, TickPadding: 3}
	assert.Equal(t, []Point{{0, 300}, {0, 300}, {0, 0}, {0, 0}}, a.DomainPath())
	p0, p1 := a.TickLine(Tick{Offset: 120})
	assert.Equal(t, Point{0, 120}, p0)
	assert.Equal(t, Point{-6, 120}, p1)
	anchor, align := a.LabelAnchor(Tick{Offset: 120})
	assert.Equal(t, Point{-9, 120}, anchor)
	assert.Equal(t, AlignEnd, align)
}

func TestRectBoundsAt(t *testing.T) {
	now := time.Date(2023, 8, 8, 10, 0, 0, 0, time.UTC)
	r := Rect{X: 10, Y: 40, Width: 5, Height: 60, Transition: &Transition{Start: now, Duration: time.Second}}
	x, y, w, h := r.BoundsAt(now.Add(500 * time.Millisecond))
	assert.Equal(t, []float64{10, 70, 5, 30}, []float64{x, y, w, h})
	_, y, _, h = r.BoundsAt(now.Add(2 * time.Second))
	assert.Equal(t, 40.0, y)
	assert.Equal(t, 60.0, h)

	assert.Equal(t, uint8(128), RectStyle{Fill: color.NRGBA{A: 255}, Opacity: 0.5}.Alpha())
	assert.Equal(t, uint8(255), RectStyle{Fill: color.NRGBA{A: 255}, Opacity: 3}.Alpha())
}
