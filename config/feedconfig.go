// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

// FeedConfig selects the source of intraday data. If ReplayFile is set, the
// recorded session is played back instead of connecting to WsUrl.
type FeedConfig struct {
	WsUrl            string `yaml:",omitempty"`
	ApiKey           string `yaml:",omitempty"`
	Symbol           string
	ReplayFile       string `yaml:",omitempty"`
	ReplayIntervalMs int    `yaml:",omitempty"`
	// Cron schedule of chart updates, e.g. "* * * * *" or "@every 5s".
	UpdateSchedule string `yaml:",omitempty"`
	// Source of the daily chart if no daily file is configured.
	DailyUrl           string `yaml:",omitempty"`
	DailyRange         string `yaml:",omitempty"`
	DataTimeoutSeconds int    `yaml:",omitempty"`
}

var defaultFeedConfig = NewFeedConfig()

func NewFeedConfig() FeedConfig {
	return FeedConfig{
		WsUrl:            "ws://localhost:8765/minutes",
		Symbol:           "SPY",
		ReplayIntervalMs: 250,
		UpdateSchedule:   "@every 1s",
		DailyRange:       "3m",
		// Data servers sometimes do not reply, so use a timeout.
		DataTimeoutSeconds: 10,
	}
}

func (f *FeedConfig) sanitize() {
	if f.Symbol == "" {
		f.Symbol = defaultFeedConfig.Symbol
	}
	if f.ReplayIntervalMs <= 0 {
		f.ReplayIntervalMs = defaultFeedConfig.ReplayIntervalMs
	}
	if f.DataTimeoutSeconds <= 0 {
		f.DataTimeoutSeconds = defaultFeedConfig.DataTimeoutSeconds
	}
}

// IsReplay reports whether a recorded session is played back.
func (f FeedConfig) IsReplay() bool {
	return f.ReplayFile != ""
}
