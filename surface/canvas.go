// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package surface

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

var ErrUnknownElement = errors.New("unknown surface element")

type ElementKind int

const (
	KindAxis ElementKind = iota
	KindLine
	KindRect
)

func (k ElementKind) String() string {
	switch k {
	case KindAxis:
		return "axis"
	case KindLine:
		return "line"
	default:
		return "rect"
	}
}

// Element is one entry of the canvas in paint order. Exactly one of Axis, Line
// and Rect is set, according to Kind.
type Element struct {
	ID   ElementID
	Kind ElementKind
	Axis *Axis
	Line *Line
	Rect *Rect
}

type Root struct {
	Class  string
	Origin Point
}

// Canvas is an in-memory Surface that keeps its elements in creation order.
type Canvas struct {
	id       string
	width    float64
	height   float64
	root     *Root
	lastID   ElementID
	elements []Element
}

var canvasCounter atomic.Int64

// NewCanvas creates an empty canvas. An empty id gets a generated one.
func NewCanvas(id string, width, height float64) *Canvas {
	if id == "" {
		id = fmt.Sprintf("canvas-%d", canvasCounter.Add(1))
	}
	return &Canvas{id: id, width: width, height: height}
}

func (c *Canvas) ID() string {
	return c.id
}

func (c *Canvas) Size() (float64, float64) {
	return c.width, c.height
}

// Resize changes the size reported to the next render call. Existing
// elements keep their geometry.
func (c *Canvas) Resize(width, height float64) {
	c.width = width
	c.height = height
}

func (c *Canvas) FindExisting() State {
	if c.root == nil {
		return Absent
	}
	return Present
}

func (c *Canvas) Clear() {
	c.root = nil
	c.elements = nil
}

func (c *Canvas) CreateRoot(class string, origin Point) {
	c.root = &Root{Class: class, Origin: origin}
	c.elements = nil
}

func (c *Canvas) add(e Element) ElementID {
	c.lastID++
	e.ID = c.lastID
	c.elements = append(c.elements, e)
	return e.ID
}

func (c *Canvas) CreateAxis(a Axis) ElementID {
	a.Ticks = append([]Tick(nil), a.Ticks...)
	return c.add(Element{Kind: KindAxis, Axis: &a})
}

func (c *Canvas) CreateLine(l Line) ElementID {
	l.Points = append([]Point(nil), l.Points...)
	return c.add(Element{Kind: KindLine, Line: &l})
}

func (c *Canvas) CreateRect(r Rect) ElementID {
	return c.add(Element{Kind: KindRect, Rect: &r})
}

func (c *Canvas) find(id ElementID) int {
	for i, e := range c.elements {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (c *Canvas) UpdateRect(id ElementID, r Rect) error {
	i := c.find(id)
	if i < 0 || c.elements[i].Kind != KindRect {
		return errors.Wrapf(ErrUnknownElement, "rect %d on %s", id, c.id)
	}
	c.elements[i].Rect = &r
	return nil
}

func (c *Canvas) Remove(id ElementID) error {
	i := c.find(id)
	if i < 0 {
		return errors.Wrapf(ErrUnknownElement, "element %d on %s", id, c.id)
	}
	c.elements = append(c.elements[:i], c.elements[i+1:]...)
	return nil
}

// Root returns the root group, if any.
func (c *Canvas) Root() (Root, bool) {
	if c.root == nil {
		return Root{}, false
	}
	return *c.root, true
}

// Elements returns the elements in paint order. The returned slice must not be modified.
func (c *Canvas) Elements() []Element {
	return c.elements
}

func (c *Canvas) Axes() []Axis {
	var axes []Axis
	for _, e := range c.elements {
		if e.Kind == KindAxis {
			axes = append(axes, *e.Axis)
		}
	}
	return axes
}

func (c *Canvas) Lines() []Line {
	var lines []Line
	for _, e := range c.elements {
		if e.Kind == KindLine {
			lines = append(lines, *e.Line)
		}
	}
	return lines
}

func (c *Canvas) Rects() []Rect {
	var rects []Rect
	for _, e := range c.elements {
		if e.Kind == KindRect {
			rects = append(rects, *e.Rect)
		}
	}
	return rects
}

// Animating reports whether any transition is still running at now.
func (c *Canvas) Animating(now time.Time) bool {
	for _, e := range c.elements {
		if e.Kind == KindRect && e.Rect.Animating(now) {
			return true
		}
	}
	return false
}
