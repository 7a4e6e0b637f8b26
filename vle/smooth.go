// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"math"
)

// SmoothMax computes a smooth approximation to max(a, b) with smoothing
// parameter eps
func SmoothMax(a, b, eps float64) float64 {
	return 0.5 * (a + b + math.Sqrt((a-b)*(a-b)+eps*eps))
}

// SmoothMin computes a smooth approximation to min(a, b)
func SmoothMin(a, b, eps float64) float64 {
	return 0.5 * (a + b - math.Sqrt((a-b)*(a-b)+eps*eps))
}

// Teq computes the equilibrium temperature of the smooth-VLE formulation:
// the actual temperature clamped smoothly between the bubble and dew
// temperatures so that the equilibrium expressions stay defined outside the
// two-phase region. the bubble clamp applies first, then the dew clamp
func (o *Equilib) Teq(T, Tbub, Tdew float64) float64 {
	return SmoothMin(SmoothMax(T, Tbub, o.Eps1), Tdew, o.Eps2)
}
