// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"regexp"
)

type MarginConfig struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// ChartConfig holds the chart appearance and the intraday update behavior.
type ChartConfig struct {
	Margins         MarginConfig
	AccentColor     string  `yaml:",omitempty"`
	LineWidth       float64 `yaml:",omitempty"`
	BarOpacity      float64 `yaml:",omitempty"`
	BarAnimationMs  int
	BarUpdatePolicy string `yaml:",omitempty"`
	DomainPolicy    string `yaml:",omitempty"`
}

var accentColorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

func NewChartConfig() ChartConfig {
	return ChartConfig{
		Margins:         MarginConfig{Top: 20, Bottom: 30, Left: 40, Right: 16},
		AccentColor:     "#0d9da8",
		LineWidth:       1.5,
		BarOpacity:      0.5,
		BarAnimationMs:  1000,
		BarUpdatePolicy: "enter-only",
		DomainPolicy:    "fixed",
	}
}

func (c *ChartConfig) sanitize() {
	def := NewChartConfig()
	if c.Margins.Top < 0 || c.Margins.Bottom < 0 || c.Margins.Left < 0 || c.Margins.Right < 0 {
		c.Margins = def.Margins
	}
	if !accentColorPattern.MatchString(c.AccentColor) {
		c.AccentColor = def.AccentColor
	}
	if c.LineWidth <= 0 {
		c.LineWidth = def.LineWidth
	}
	if c.BarOpacity <= 0 || c.BarOpacity > 1 {
		c.BarOpacity = def.BarOpacity
	}
	if c.BarAnimationMs < 0 {
		c.BarAnimationMs = 0
	}
	if c.BarUpdatePolicy == "" {
		c.BarUpdatePolicy = def.BarUpdatePolicy
	}
	if c.DomainPolicy == "" {
		c.DomainPolicy = def.DomainPolicy
	}
}
