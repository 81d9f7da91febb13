// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package surface defines the retained drawing target of the charts. A surface
// holds a root group with axes, lines and rectangles that presenters (the gio
// view, the SVG/PNG export) paint at a given point in time.
package surface

import (
	"image/color"
)

// State tells whether a surface already carries a chart.
type State int

const (
	Absent State = iota
	Present
)

func (s State) String() string {
	if s == Present {
		return "present"
	}
	return "absent"
}

// ElementID identifies an element on one surface.
type ElementID int

const NoElement ElementID = 0

type Point struct {
	X, Y float64
}

type AxisPosition int

const (
	AxisBottom AxisPosition = iota
	AxisLeft
)

type Tick struct {
	Offset float64
	Label  string
}

// Axis is a pre-computed axis: a domain path from RangeStart to RangeEnd along
// the axis direction, plus labelled ticks. Origin is relative to the root.
type Axis struct {
	Class         string
	Position      AxisPosition
	Origin        Point
	RangeStart    float64
	RangeEnd      float64
	Ticks         []Tick
	TickSizeInner float64
	TickSizeOuter float64
	TickPadding   float64
}

type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
)

type LineStyle struct {
	Stroke color.NRGBA
	Width  float64
	Cap    LineCap
	Join   LineJoin
}

// Line is an open polyline without fill.
type Line struct {
	Class  string
	Points []Point
	Style  LineStyle
}

type RectStyle struct {
	Fill    color.NRGBA
	Opacity float64
}

type Rect struct {
	Class      string
	Key        string
	X, Y       float64
	Width      float64
	Height     float64
	Style      RectStyle
	Transition *Transition
}

// Surface is the capability set the chart renderers need. Implementations are
// not safe for concurrent use.
type Surface interface {
	// ID is stable for the lifetime of the surface.
	ID() string
	// Size returns the total size in pixels, including margins.
	Size() (width, height float64)
	FindExisting() State
	// Clear removes the root and all elements.
	Clear()
	CreateRoot(class string, origin Point)
	CreateAxis(a Axis) ElementID
	CreateLine(l Line) ElementID
	CreateRect(r Rect) ElementID
	UpdateRect(id ElementID, r Rect) error
	Remove(id ElementID) error
}
