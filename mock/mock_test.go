// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerKeepsLevel(t *testing.T) {
	level := logrus.GetLevel()
	hooks := len(logrus.StandardLogger().Hooks)
	t.Run("capture", func(t *testing.T) {
		hook := NewLogger(t)
		assert.Equal(t, level, logrus.GetLevel())
		logrus.Debug("Not captured at the default level.")
		logrus.Warn("Captured.")
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})
	assert.Equal(t, level, logrus.GetLevel())
	assert.Len(t, logrus.StandardLogger().Hooks, hooks)
}
