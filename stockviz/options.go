// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"fmt"
	"stockcharts/calendar"
	"stockcharts/config"
	"stockcharts/stockplot"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// BarUpdatePolicy controls what happens to volume bars that are already drawn
// when an intraday update arrives.
type BarUpdatePolicy int

const (
	// EnterOnly only adds bars for new minutes.
	EnterOnly BarUpdatePolicy = iota
	// RefreshExisting also moves existing bars to the latest volume of their minute.
	RefreshExisting
)

func (p BarUpdatePolicy) String() string {
	if p == RefreshExisting {
		return "refresh-existing"
	}
	return "enter-only"
}

func ParseBarUpdatePolicy(s string) (BarUpdatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "enter-only":
		return EnterOnly, nil
	case "refresh-existing":
		return RefreshExisting, nil
	}
	return EnterOnly, fmt.Errorf("unknown bar update policy %q", s)
}

// DomainPolicy controls whether intraday updates rescale price and volume.
type DomainPolicy int

const (
	// FixedDomains keeps the scales derived from the first dataset.
	FixedDomains DomainPolicy = iota
	// RecomputeDomains derives price and volume scales from every update and
	// redraws axes and bars accordingly.
	RecomputeDomains
)

func (p DomainPolicy) String() string {
	if p == RecomputeDomains {
		return "recompute"
	}
	return "fixed"
}

func ParseDomainPolicy(s string) (DomainPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed":
		return FixedDomains, nil
	case "recompute":
		return RecomputeDomains, nil
	}
	return FixedDomains, fmt.Errorf("unknown domain policy %q", s)
}

// SessionSource determines the trading session shown by the intraday chart.
type SessionSource interface {
	SessionFor(t time.Time) calendar.Session
}

// SessionFunc adapts a function to SessionSource.
type SessionFunc func(t time.Time) calendar.Session

func (f SessionFunc) SessionFor(t time.Time) calendar.Session {
	return f(t)
}

type Options struct {
	Margins   stockplot.Margins
	Style     stockplot.Style
	BarUpdate BarUpdatePolicy
	Domains   DomainPolicy
	Sessions  SessionSource
	// Now is the clock used for sessions and bar animations.
	Now func() time.Time
}

func DefaultOptions() Options {
	return Options{
		Margins:  stockplot.DefaultMargins,
		Style:    stockplot.DefaultStyle(),
		Sessions: calendar.NewNYSECalendar(),
		Now:      time.Now,
	}
}

func (o Options) withDefaults() Options {
	if o.Sessions == nil {
		o.Sessions = calendar.NewNYSECalendar()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Margins == (stockplot.Margins{}) {
		o.Margins = stockplot.DefaultMargins
	}
	if o.Style == (stockplot.Style{}) {
		o.Style = stockplot.DefaultStyle()
	}
	return o
}

// OptionsFromConfig converts the chart section of the app configuration.
func OptionsFromConfig(c config.ChartConfig) (Options, error) {
	o := DefaultOptions()
	o.Margins = stockplot.Margins{
		Top:    float64(c.Margins.Top),
		Bottom: float64(c.Margins.Bottom),
		Left:   float64(c.Margins.Left),
		Right:  float64(c.Margins.Right),
	}
	if c.AccentColor != "" {
		accent := drawing.ColorFromHex(strings.TrimPrefix(c.AccentColor, "#"))
		o.Style.Accent.R, o.Style.Accent.G, o.Style.Accent.B = accent.R, accent.G, accent.B
	}
	if c.LineWidth > 0 {
		o.Style.LineWidth = c.LineWidth
	}
	if c.BarOpacity > 0 {
		o.Style.BarOpacity = c.BarOpacity
	}
	o.Style.BarAnimation = time.Duration(c.BarAnimationMs) * time.Millisecond
	var err error
	if o.BarUpdate, err = ParseBarUpdatePolicy(c.BarUpdatePolicy); err != nil {
		return o, err
	}
	if o.Domains, err = ParseDomainPolicy(c.DomainPolicy); err != nil {
		return o, err
	}
	return o, nil
}
