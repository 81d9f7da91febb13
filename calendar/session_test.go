// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegularSessionMinutes(t *testing.T) {
	s := RegularSession(time.Date(2023, 8, 9, 0, 0, 0, 0, time.UTC))
	keys := s.MinuteKeys()
	require.Len(t, keys, 390)
	assert.Equal(t, "09:30", keys[0])
	assert.Equal(t, "15:59", keys[389])
}

func TestSessionMinuteTime(t *testing.T) {
	s := RegularSession(time.Date(2023, 8, 9, 0, 0, 0, 0, time.UTC))
	m, err := s.MinuteTime("9:45")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 8, 9, 9, 45, 0, 0, time.UTC), m)
	assert.True(t, s.Contains(m))
	assert.False(t, s.Contains(s.Close))

	_, err = s.MinuteTime("9h45")
	assert.Error(t, err)
}
