// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package scale

import (
	"math"
)

// Band divides a continuous range into uniform bands, one per domain key.
// Duplicate keys are ignored.
type Band struct {
	domain       []string
	index        map[string]int
	r0, r1       float64
	paddingInner float64
	paddingOuter float64
	align        float64
	round        bool
	start        float64
	step         float64
	bandwidth    float64
}

// NewBand creates a centered band scale with equal inner and outer padding.
// If round is set, step, start and bandwidth are whole pixels.
func NewBand(domain []string, r0, r1 float64, padding float64, round bool) Band {
	b := Band{
		index:        make(map[string]int, len(domain)),
		r0:           r0,
		r1:           r1,
		paddingInner: min(1, max(0, padding)),
		paddingOuter: max(0, padding),
		align:        0.5,
		round:        round,
	}
	for _, key := range domain {
		if _, ok := b.index[key]; ok {
			continue
		}
		b.index[key] = len(b.domain)
		b.domain = append(b.domain, key)
	}
	b.rescale()
	return b
}

func (b *Band) rescale() {
	n := float64(len(b.domain))
	reverse := b.r1 < b.r0
	start, stop := b.r0, b.r1
	if reverse {
		start, stop = b.r1, b.r0
	}
	b.step = (stop - start) / max(1, n-b.paddingInner+b.paddingOuter*2)
	if b.round {
		b.step = math.Floor(b.step)
	}
	start += (stop - start - b.step*(n-b.paddingInner)) * b.align
	b.bandwidth = b.step * (1 - b.paddingInner)
	if b.round {
		start = roundHalfUp(start)
		b.bandwidth = roundHalfUp(b.bandwidth)
	}
	b.start = start
}

// Map returns the start position of the band of key.
func (b Band) Map(key string) (float64, bool) {
	i, ok := b.index[key]
	if !ok {
		return math.NaN(), false
	}
	if b.r1 < b.r0 {
		i = len(b.domain) - 1 - i
	}
	return b.start + b.step*float64(i), true
}

func (b Band) Bandwidth() float64 {
	return b.bandwidth
}

func (b Band) Step() float64 {
	return b.step
}

func (b Band) Domain() []string {
	return append([]string(nil), b.domain...)
}

func (b Band) Len() int {
	return len(b.domain)
}

func (b Band) Range() (float64, float64) {
	return b.r0, b.r1
}
