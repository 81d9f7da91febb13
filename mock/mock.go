// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"stockcharts/config"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// NewLogger captures the entries of the standard logger until the test ends.
// The log level is left unchanged.
func NewLogger(t *testing.T) *test.Hook {
	previous := logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	hook := test.NewGlobal()
	t.Cleanup(func() {
		logrus.StandardLogger().ReplaceHooks(previous)
	})
	return hook
}

func NewFeedConfig(wsUrl string, symbol string) config.Config {
	c := config.NewTestConfig()
	appConfig, _ := c.Lock()
	appConfig.FeedConfig.WsUrl = wsUrl
	appConfig.FeedConfig.Symbol = symbol
	_ = c.Unlock(appConfig, true)
	return c
}
