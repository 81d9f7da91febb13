// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"math"
	"strconv"

	"github.com/ericlagergren/decimal"
	"golang.org/x/exp/constraints"
)

const NearZero = 0.000001

// The builtin decimal.Big conversion from float64 is an "exact" conversion, and useless for our cases.
// Therefore, convert using string conversion, even though this requires memory allocation.
// See also https://github.com/ericlagergren/decimal/issues/142

// Convert float to string and then to decimal.
func ConvertFloatToDecimal(v float64, bitSize int) *decimal.Big {
	d, _ := new(decimal.Big).SetString(strconv.FormatFloat(v, 'f', -1, bitSize))
	return d
}

// Convert decimal to string and then to float.
func ConvertDecimalToFloat(z *decimal.Big) float64 {
	v, err := strconv.ParseFloat(z.String(), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// RoundDecimal rounds z to the given number of digits after decimal point and returns z.
func RoundDecimal(z *decimal.Big, digits int) *decimal.Big {
	// Call Quantize twice, otherwise one digit may be missing, see https://github.com/ericlagergren/decimal/issues/151
	return z.Quantize(digits).Quantize(digits)
}

// Extent returns the minimum and maximum of the values selected by f.
// ok is false for an empty slice.
func Extent[S any, T constraints.Ordered](values []S, f func(S) T) (lo, hi T, ok bool) {
	if len(values) == 0 {
		return lo, hi, false
	}
	lo = f(values[0])
	hi = lo
	for _, v := range values[1:] {
		x := f(v)
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi, true
}

// PricePadding is the vertical headroom around the price extent,
// never less than one price unit.
func PricePadding(lo, hi float64) float64 {
	return max(math.Ceil((hi-lo)*0.1), 1)
}

func IsDegenerate(lo, hi float64) bool {
	return math.Abs(hi-lo) < NearZero
}
