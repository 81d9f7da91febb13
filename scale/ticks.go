// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package scale maps data values to pixel positions and generates "nice" axis ticks.
// Tick generation follows the conventions of d3-array and d3-scale so that axes
// look the same as in browser based charts.
package scale

import (
	"math"
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// round half up, as opposed to math.Round which rounds half away from zero.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	if e >= e10 {
		factor = 10
	} else if e >= e5 {
		factor = 5
	} else if e >= e2 {
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = roundHalfUp(start * inc)
		i2 = roundHalfUp(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = roundHalfUp(start / inc)
		i2 = roundHalfUp(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return
}

// Ticks returns approximately count evenly spaced, human friendly values
// between start and stop (inclusive). A negative increment denotes the
// reciprocal step, which avoids floating point artifacts like 0.30000000000000004.
func Ticks(start, stop float64, count int) []float64 {
	c := float64(count)
	if !(c > 0) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	var i1, i2, inc float64
	if reverse {
		i1, i2, inc = tickSpec(stop, start, c)
	} else {
		i1, i2, inc = tickSpec(start, stop, c)
	}
	if !(i2 >= i1) {
		return nil
	}
	n := int(i2-i1) + 1
	ticks := make([]float64, n)
	for i := 0; i < n; i++ {
		var k float64
		if reverse {
			k = i2 - float64(i)
		} else {
			k = i1 + float64(i)
		}
		if inc < 0 {
			ticks[i] = k / -inc
		} else {
			ticks[i] = k * inc
		}
	}
	return ticks
}

func TickIncrement(start, stop float64, count int) float64 {
	_, _, inc := tickSpec(start, stop, float64(count))
	return inc
}

// TickStep returns the distance between two adjacent ticks.
func TickStep(start, stop float64, count int) float64 {
	reverse := stop < start
	var inc float64
	if reverse {
		inc = TickIncrement(stop, start, count)
	} else {
		inc = TickIncrement(start, stop, count)
	}
	sign := 1.0
	if reverse {
		sign = -1
	}
	if inc < 0 {
		return sign / -inc
	}
	return sign * inc
}

// TickPrecision is the number of decimal digits needed to tell ticks of the given step apart.
func TickPrecision(step float64) int {
	step = math.Abs(step)
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0
	}
	return max(0, -int(math.Floor(math.Log10(step))))
}
