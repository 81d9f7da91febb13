// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"image/color"
	"stockcharts/surface"
	"time"
)

// Style holds the presentation attributes of the price line and the volume bars.
type Style struct {
	Accent       color.NRGBA
	LineWidth    float64
	BarOpacity   float64
	BarAnimation time.Duration
}

var DefaultAccent = color.NRGBA{R: 0x0d, G: 0x9d, B: 0xa8, A: 0xff}

func DefaultStyle() Style {
	return Style{
		Accent:       DefaultAccent,
		LineWidth:    1.5,
		BarOpacity:   0.5,
		BarAnimation: time.Second,
	}
}

func (s Style) LineStyle() surface.LineStyle {
	return surface.LineStyle{
		Stroke: s.Accent,
		Width:  s.LineWidth,
		Cap:    surface.CapRound,
		Join:   surface.JoinRound,
	}
}

func (s Style) BarStyle() surface.RectStyle {
	return surface.RectStyle{Fill: s.Accent, Opacity: s.BarOpacity}
}

// EnterTransition returns the animation of bars entering at now, or nil if
// animations are disabled.
func (s Style) EnterTransition(now time.Time) *surface.Transition {
	if s.BarAnimation <= 0 {
		return nil
	}
	return &surface.Transition{Start: now, Duration: s.BarAnimation, From: 0, Ease: surface.EaseLinear}
}
