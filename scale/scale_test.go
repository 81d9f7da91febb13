// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package scale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicksHalfSteps(t *testing.T) {
	ticks := Ticks(8, 14, 10)
	require.Len(t, ticks, 13)
	assert.Equal(t, 8.0, ticks[0])
	assert.Equal(t, 8.5, ticks[1])
	assert.Equal(t, 14.0, ticks[12])
	assert.Equal(t, 0.5, TickStep(8, 14, 10))
	assert.Equal(t, 1, TickPrecision(TickStep(8, 14, 10)))
}

func TestTicksNoFloatArtifacts(t *testing.T) {
	ticks := Ticks(0, 1, 10)
	require.Len(t, ticks, 11)
	assert.Equal(t, 0.3, ticks[3])
	assert.Equal(t, 0.7, ticks[7])
}

func TestTicksCoarse(t *testing.T) {
	assert.Equal(t, []float64{0, 50, 100}, Ticks(0, 100, 3))
	assert.Equal(t, []float64{100, 50, 0}, Ticks(100, 0, 3))
	assert.Equal(t, []float64{5}, Ticks(5, 5, 10))
	assert.Nil(t, Ticks(0, 1, 0))
	assert.Equal(t, 0, TickPrecision(50))
}

func TestLinearMap(t *testing.T) {
	s := NewLinear(8, 14, 351, 0)
	assert.Equal(t, 351.0, s.Map(8))
	assert.Equal(t, 0.0, s.Map(14))
	assert.InDelta(t, 175.5, s.Map(11), 1e-9)
	assert.InDelta(t, 11.0, s.Invert(175.5), 1e-9)
}

func TestLinearDegenerateDomain(t *testing.T) {
	s := NewLinear(5, 5, 100, 0)
	assert.Equal(t, 50.0, s.Map(5))
	assert.Equal(t, 50.0, s.Map(7))
}

func TestBandRangeRound(t *testing.T) {
	b := NewBand([]string{"a", "b", "c", "d", "e"}, 0, 500, 0.3, true)
	assert.Equal(t, 94.0, b.Step())
	assert.Equal(t, 66.0, b.Bandwidth())
	x, ok := b.Map("a")
	assert.True(t, ok)
	assert.Equal(t, 29.0, x)
	x, ok = b.Map("c")
	assert.True(t, ok)
	assert.Equal(t, 217.0, x)
	_, ok = b.Map("z")
	assert.False(t, ok)
}

func TestBandDuplicateKeys(t *testing.T) {
	b := NewBand([]string{"a", "b", "a"}, 0, 100, 0.3, false)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []string{"a", "b"}, b.Domain())
}

func TestTimeMapEnds(t *testing.T) {
	first := time.Date(2023, 8, 7, 0, 0, 0, 0, time.UTC)
	last := time.Date(2023, 8, 11, 0, 0, 0, 0, time.UTC)
	s := NewTime(first, last, 0, 744)
	assert.Equal(t, 0.0, s.Map(first))
	assert.Equal(t, 744.0, s.Map(last))
	assert.Equal(t, 372.0, s.Map(time.Date(2023, 8, 9, 0, 0, 0, 0, time.UTC)))
	assert.True(t, s.Invert(372).Equal(time.Date(2023, 8, 9, 0, 0, 0, 0, time.UTC)))
}

func TestTimeTicksSession(t *testing.T) {
	open := time.Date(2023, 8, 9, 9, 30, 0, 0, time.UTC)
	closeTime := time.Date(2023, 8, 9, 16, 0, 0, 0, time.UTC)
	ticks := NewTime(open, closeTime, 0, 744).Ticks(10)
	require.Len(t, ticks, 14)
	assert.Equal(t, "09:30", ClockFormat(ticks[0]))
	assert.Equal(t, "10:00", ClockFormat(ticks[1]))
	assert.Equal(t, "16:00", ClockFormat(ticks[13]))
}

func TestTimeTicksDaily(t *testing.T) {
	first := time.Date(2023, 8, 7, 0, 0, 0, 0, time.UTC)
	last := time.Date(2023, 8, 11, 0, 0, 0, 0, time.UTC)
	ticks := NewTime(first, last, 0, 744).Ticks(4)
	require.Len(t, ticks, 5)
	assert.True(t, ticks[0].Equal(first))
	assert.True(t, ticks[4].Equal(last))
}

func TestTimeTicksMonths(t *testing.T) {
	first := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	last := time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC)
	ticks := NewTime(first, last, 0, 744).Ticks(4)
	// Quarterly ticks.
	require.Len(t, ticks, 3)
	assert.Equal(t, "April", MultiFormat(ticks[0]))
	assert.Equal(t, "July", MultiFormat(ticks[1]))
	assert.Equal(t, "October", MultiFormat(ticks[2]))
}

func TestMultiFormat(t *testing.T) {
	assert.Equal(t, "2023", MultiFormat(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "August", MultiFormat(time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Aug 06", MultiFormat(time.Date(2023, 8, 6, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Mon 07", MultiFormat(time.Date(2023, 8, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "03 PM", MultiFormat(time.Date(2023, 8, 7, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "09:30", MultiFormat(time.Date(2023, 8, 7, 9, 30, 0, 0, time.UTC)))
}
