// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"image"
)

type WindowConfig struct {
	Size image.Point `yaml:",omitempty"`
	// Show the daily chart below the intraday chart, read from DailyFile or
	// requested from the daily url of the feed.
	ShowDaily bool   `yaml:",omitempty"`
	DailyFile string `yaml:",omitempty"`
}

func NewWindowConfig() WindowConfig {
	return WindowConfig{
		Size: image.Point{X: 960, Y: 600},
	}
}

func (w *WindowConfig) sanitize() {
	if w.Size.X <= 0 || w.Size.Y <= 0 {
		w.Size = NewWindowConfig().Size
	}
}
