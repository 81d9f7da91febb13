// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package surface

import (
	"time"
)

type Easing func(t float64) float64

func EaseLinear(t float64) float64 {
	return t
}

// Transition animates the height of a rectangle from From to its final height.
// Ease defaults to linear.
type Transition struct {
	Start    time.Time
	Duration time.Duration
	From     float64
	Ease     Easing
}

func (t *Transition) progress(now time.Time) float64 {
	if t.Duration <= 0 || !now.Before(t.Start.Add(t.Duration)) {
		return 1
	}
	if now.Before(t.Start) {
		return 0
	}
	p := float64(now.Sub(t.Start)) / float64(t.Duration)
	if t.Ease != nil {
		return t.Ease(p)
	}
	return EaseLinear(p)
}

func (t *Transition) Done(now time.Time) bool {
	return t == nil || t.progress(now) >= 1
}

// HeightAt returns the displayed height at now.
func (r Rect) HeightAt(now time.Time) float64 {
	if r.Transition == nil {
		return r.Height
	}
	p := r.Transition.progress(now)
	return r.Transition.From + (r.Height-r.Transition.From)*p
}

func (r Rect) Animating(now time.Time) bool {
	return !r.Transition.Done(now)
}
