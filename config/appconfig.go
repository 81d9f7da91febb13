// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"github.com/barkimedes/go-deepcopy"
)

type AppConfig struct {
	LightTheme   bool
	// Address of the Prometheus metrics endpoint, e.g. ":9102". Empty disables it.
	MetricsAddr  string `yaml:",omitempty"`
	ChartConfig  ChartConfig
	FeedConfig   FeedConfig
	WindowConfig WindowConfig
}

func NewAppConfig() AppConfig {
	return AppConfig{
		LightTheme:   true,
		ChartConfig:  NewChartConfig(),
		FeedConfig:   NewFeedConfig(),
		WindowConfig: NewWindowConfig(),
	}
}

func (a *AppConfig) deepCopy() AppConfig {
	c, err := deepcopy.Anything(a)
	if err != nil {
		panic(err)
	}
	return *c.(*AppConfig)
}

func (a *AppConfig) Sanitize() {
	a.ChartConfig.sanitize()
	a.FeedConfig.sanitize()
	a.WindowConfig.sanitize()
	a.RestoreDefaults()
}

// We do not want to store certain default values in the configuration file,
// in order to avoid having to patch them.
func (a *AppConfig) RemoveDefaults() {
	if a.FeedConfig.WsUrl == defaultFeedConfig.WsUrl {
		a.FeedConfig.WsUrl = ""
	}
	if a.FeedConfig.UpdateSchedule == defaultFeedConfig.UpdateSchedule {
		a.FeedConfig.UpdateSchedule = ""
	}
}

// Restore certain default values which are not stored in the configuration file.
func (a *AppConfig) RestoreDefaults() {
	if len(a.FeedConfig.WsUrl) == 0 {
		a.FeedConfig.WsUrl = defaultFeedConfig.WsUrl
	}
	if len(a.FeedConfig.UpdateSchedule) == 0 {
		a.FeedConfig.UpdateSchedule = defaultFeedConfig.UpdateSchedule
	}
}
