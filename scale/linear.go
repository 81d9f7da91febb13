// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package scale

// Linear maps a continuous domain onto a continuous range.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

func (s Linear) Domain() (float64, float64) {
	return s.d0, s.d1
}

func (s Linear) Range() (float64, float64) {
	return s.r0, s.r1
}

// Map returns the range position of v. A degenerate domain maps every value
// to the middle of the range.
func (s Linear) Map(v float64) float64 {
	if s.d1 == s.d0 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

func (s Linear) Invert(y float64) float64 {
	if s.r1 == s.r0 {
		return (s.d0 + s.d1) / 2
	}
	return s.d0 + (y-s.r0)/(s.r1-s.r0)*(s.d1-s.d0)
}

func (s Linear) Ticks(count int) []float64 {
	return Ticks(s.d0, s.d1, count)
}

func (s Linear) TickStep(count int) float64 {
	return TickStep(s.d0, s.d1, count)
}

// TickPrecision returns the decimal digits of tick labels for count ticks.
func (s Linear) TickPrecision(count int) int {
	return TickPrecision(s.TickStep(count))
}
