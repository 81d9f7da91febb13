// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	c := AppConfig{}
	c.ChartConfig.Margins.Left = -1
	c.ChartConfig.AccentColor = "teal"
	c.ChartConfig.BarOpacity = 2
	c.ChartConfig.BarAnimationMs = 1000
	c.Sanitize()
	assert.Equal(t, NewChartConfig(), c.ChartConfig)
	assert.Equal(t, "SPY", c.FeedConfig.Symbol)
	assert.Equal(t, defaultFeedConfig.WsUrl, c.FeedConfig.WsUrl)
	assert.Equal(t, NewWindowConfig().Size, c.WindowConfig.Size)
}

func TestDefaultsAreNotStored(t *testing.T) {
	c := NewAppConfig()
	c.RemoveDefaults()
	assert.Empty(t, c.FeedConfig.WsUrl)
	assert.Empty(t, c.FeedConfig.UpdateSchedule)
	c.RestoreDefaults()
	assert.Empty(t, cmp.Diff(NewAppConfig(), c))
}

func TestDeepCopy(t *testing.T) {
	c := NewAppConfig()
	d := c.deepCopy()
	d.FeedConfig.Symbol = "AMZN"
	assert.Equal(t, "SPY", c.FeedConfig.Symbol)
}

func TestTestConfig(t *testing.T) {
	tc := NewTestConfig()
	c, err := tc.Lock()
	require.NoError(t, err)
	c.FeedConfig.Symbol = "MSFT"
	require.NoError(t, tc.Unlock(c, false))
	copied, err := tc.Copy(false)
	require.NoError(t, err)
	assert.Equal(t, "MSFT", copied.FeedConfig.Symbol)
}

func TestGlobalConfigReadWrite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	g := NewGlobalConfig()
	c, err := g.Lock()
	require.NoError(t, err)
	assert.Equal(t, NewAppConfig(), *c)
	c.FeedConfig.Symbol = "AMZN"
	c.ChartConfig.DomainPolicy = "recompute"
	require.NoError(t, g.Unlock(c, false))

	fileName := filepath.Join(dir, AppName, configFileName)
	file, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(file), "fileversion: 1")
	assert.NotContains(t, string(file), defaultFeedConfig.WsUrl)

	read, err := NewGlobalConfig().Copy(true)
	require.NoError(t, err)
	assert.Equal(t, "AMZN", read.FeedConfig.Symbol)
	assert.Equal(t, "recompute", read.ChartConfig.DomainPolicy)
	assert.Equal(t, defaultFeedConfig.WsUrl, read.FeedConfig.WsUrl)

	require.NoError(t, os.WriteFile(fileName, []byte("fileversion: 9\n"), 0600))
	_, err = NewGlobalConfig().Copy(true)
	assert.Error(t, err)
}

func TestGlobalConfigFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "charts", "custom.yaml")
	g := NewGlobalConfigFile(fileName)
	c, err := g.Lock()
	require.NoError(t, err)
	require.NoError(t, g.Unlock(c, true))
	assert.FileExists(t, fileName)

	require.NoError(t, os.WriteFile(fileName, []byte("fileversion: 1\nchartconfig:\n  accentcolor: '#ff0000'\n"), 0600))
	read, err := NewGlobalConfigFile(fileName).Copy(false)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", read.ChartConfig.AccentColor)
	assert.Equal(t, NewChartConfig().Margins, read.ChartConfig.Margins)
}
