// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtent(t *testing.T) {
	values := []float64{10, 12, 9, 11, 13}
	lo, hi, ok := Extent(values, func(v float64) float64 { return v })
	assert.True(t, ok)
	assert.Equal(t, 9.0, lo)
	assert.Equal(t, 13.0, hi)

	_, _, ok = Extent([]float64{}, func(v float64) float64 { return v })
	assert.False(t, ok)
}

func TestPricePadding(t *testing.T) {
	assert.Equal(t, 1.0, PricePadding(9, 13))
	assert.Equal(t, 2.0, PricePadding(100, 115))
	// Degenerate range still gets headroom.
	assert.Equal(t, 1.0, PricePadding(5, 5))
}

func TestDecimalConversion(t *testing.T) {
	d := ConvertFloatToDecimal(101.25, 64)
	assert.Equal(t, "101.25", d.String())
	assert.Equal(t, 101.25, ConvertDecimalToFloat(d))
	assert.Equal(t, "101.3", RoundDecimal(ConvertFloatToDecimal(101.26, 64), 1).String())
}
