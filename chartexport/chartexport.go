// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package chartexport paints a chart canvas into an SVG or PNG image.
package chartexport

import (
	"image/color"
	"io"
	"math"
	"path/filepath"
	"stockcharts/surface"
	"strings"
	"sync"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font/gofont/goregular"
)

type Format int

const (
	FormatSVG Format = iota
	FormatPNG
)

func (f Format) String() string {
	if f == FormatPNG {
		return "png"
	}
	return "svg"
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	}
	return FormatSVG, errors.Errorf("unsupported image format %q", s)
}

// FormatFromFileName derives the format from the file extension.
func FormatFromFileName(name string) (Format, error) {
	return ParseFormat(filepath.Ext(name))
}

var ErrEmptyCanvas = errors.New("canvas has no chart")

type Options struct {
	Background color.NRGBA
	AxisColor  color.NRGBA
	TextColor  color.NRGBA
	FontSize   float64
	// Defaults to Go Regular.
	Font *truetype.Font
}

func DefaultOptions() Options {
	return Options{
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		AxisColor:  color.NRGBA{A: 255},
		TextColor:  color.NRGBA{A: 255},
		FontSize:   10,
	}
}

var (
	defaultFont     *truetype.Font
	defaultFontErr  error
	defaultFontOnce sync.Once
)

func getDefaultFont() (*truetype.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = truetype.Parse(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

func toDrawingColor(c color.NRGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func px(v float64) int {
	return int(math.Round(v))
}

// Render paints c as it is displayed at time at, which matters for bars that
// are still animated.
func Render(w io.Writer, c *surface.Canvas, at time.Time, format Format, opts Options) error {
	root, ok := c.Root()
	if !ok {
		return ErrEmptyCanvas
	}
	width, height := c.Size()
	if width < 1 || height < 1 {
		return ErrEmptyCanvas
	}
	provider := chart.SVG
	if format == FormatPNG {
		provider = chart.PNG
	}
	r, err := provider(px(width), px(height))
	if err != nil {
		return errors.Wrap(err, "could not create renderer")
	}
	font := opts.Font
	if font == nil {
		if font, err = getDefaultFont(); err != nil {
			return errors.Wrap(err, "could not load default font")
		}
	}
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultOptions().FontSize
	}

	p := painter{r: r, font: font, opts: opts, ox: root.Origin.X, oy: root.Origin.Y}
	p.background(width, height)
	for _, e := range c.Elements() {
		switch e.Kind {
		case surface.KindAxis:
			p.axis(*e.Axis)
		case surface.KindLine:
			p.line(*e.Line)
		case surface.KindRect:
			p.rect(*e.Rect, at)
		}
	}
	return errors.Wrap(r.Save(w), "could not write chart image")
}

type painter struct {
	r      chart.Renderer
	font   *truetype.Font
	opts   Options
	ox, oy float64
}

func (p *painter) moveTo(pt surface.Point) {
	p.r.MoveTo(px(p.ox+pt.X), px(p.oy+pt.Y))
}

func (p *painter) lineTo(pt surface.Point) {
	p.r.LineTo(px(p.ox+pt.X), px(p.oy+pt.Y))
}

func (p *painter) background(width, height float64) {
	p.r.ResetStyle()
	p.r.SetFillColor(toDrawingColor(p.opts.Background))
	p.r.MoveTo(0, 0)
	p.r.LineTo(px(width), 0)
	p.r.LineTo(px(width), px(height))
	p.r.LineTo(0, px(height))
	p.r.Close()
	p.r.Fill()
}

func (p *painter) axis(a surface.Axis) {
	p.r.ResetStyle()
	p.r.SetClassName(a.Class)
	p.r.SetStrokeColor(toDrawingColor(p.opts.AxisColor))
	p.r.SetStrokeWidth(1)
	domain := a.DomainPath()
	p.moveTo(domain[0])
	for _, pt := range domain[1:] {
		p.lineTo(pt)
	}
	p.r.Stroke()
	for _, t := range a.Ticks {
		p0, p1 := a.TickLine(t)
		p.moveTo(p0)
		p.lineTo(p1)
		p.r.Stroke()
	}

	p.r.SetFont(p.font)
	p.r.SetFontSize(p.opts.FontSize)
	p.r.SetFontColor(toDrawingColor(p.opts.TextColor))
	for _, t := range a.Ticks {
		anchor, align := a.LabelAnchor(t)
		box := p.r.MeasureText(t.Label)
		x, y := px(p.ox+anchor.X), px(p.oy+anchor.Y)
		// Text is placed at its baseline.
		if align == surface.AlignEnd {
			x -= box.Width()
			y += box.Height() / 2
		} else {
			x -= box.Width() / 2
			y += box.Height()
		}
		p.r.Text(t.Label, x, y)
	}
}

func (p *painter) line(l surface.Line) {
	if len(l.Points) == 0 {
		return
	}
	p.r.ResetStyle()
	p.r.SetClassName(l.Class)
	p.r.SetStrokeColor(toDrawingColor(l.Style.Stroke))
	p.r.SetStrokeWidth(l.Style.Width)
	p.moveTo(l.Points[0])
	for _, pt := range l.Points[1:] {
		p.lineTo(pt)
	}
	p.r.Stroke()
}

func (p *painter) rect(rc surface.Rect, at time.Time) {
	x, y, w, h := rc.BoundsAt(at)
	if w <= 0 || h <= 0 {
		return
	}
	fill := rc.Style.Fill
	fill.A = rc.Style.Alpha()
	p.r.ResetStyle()
	p.r.SetClassName(rc.Class)
	p.r.SetFillColor(toDrawingColor(fill))
	p.moveTo(surface.Point{X: x, Y: y})
	p.lineTo(surface.Point{X: x + w, Y: y})
	p.lineTo(surface.Point{X: x + w, Y: y + h})
	p.lineTo(surface.Point{X: x, Y: y + h})
	p.r.Close()
	p.r.Fill()
}
