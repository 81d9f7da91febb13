// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartexport

import (
	"bytes"
	"image/color"
	"image/png"
	"stockcharts/surface"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2023, 8, 8, 10, 0, 0, 0, time.UTC)

func newTestCanvas() *surface.Canvas {
	c := surface.NewCanvas("export", 200, 120)
	c.CreateRoot("line-chart", surface.Point{X: 40, Y: 20})
	c.CreateAxis(surface.Axis{
		Class:         "x axis",
		Position:      surface.AxisBottom,
		Origin:        surface.Point{Y: 70},
		RangeEnd:      144,
		Ticks:         []surface.Tick{{Offset: 0, Label: "09:30"}, {Offset: 72, Label: "12:45"}},
		TickSizeInner: 6,
		TickSizeOuter: 6,
		TickPadding:   3,
	})
	c.CreateLine(surface.Line{
		Class:  "line",
		Points: []surface.Point{{X: 0, Y: 40}, {X: 72, Y: 10}, {X: 144, Y: 30}},
		Style:  surface.LineStyle{Stroke: color.NRGBA{R: 13, G: 157, B: 168, A: 255}, Width: 1.5},
	})
	c.CreateRect(surface.Rect{
		Class:      "bar",
		Key:        "09:30",
		X:          10,
		Y:          50,
		Width:      8,
		Height:     20,
		Style:      surface.RectStyle{Fill: color.NRGBA{R: 13, G: 157, B: 168, A: 255}, Opacity: 0.5},
		Transition: &surface.Transition{Start: testNow, Duration: time.Second},
	})
	return c
}

func TestParseFormat(t *testing.T) {
	f, err := FormatFromFileName("chart.PNG")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)
	f, err = ParseFormat("svg")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, f)
	_, err = FormatFromFileName("chart.gif")
	assert.Error(t, err)
}

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, newTestCanvas(), testNow.Add(time.Second), FormatSVG, DefaultOptions()))
	svg := buf.String()
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "09:30")
	assert.Contains(t, svg, "12:45")
	assert.Contains(t, svg, "</svg>")
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, newTestCanvas(), testNow, FormatPNG, DefaultOptions()))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}

func TestRenderEmptyCanvas(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Render(&buf, surface.NewCanvas("", 200, 120), testNow, FormatSVG, DefaultOptions()), ErrEmptyCanvas)
	assert.Zero(t, buf.Len())
}
