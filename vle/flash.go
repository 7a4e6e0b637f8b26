// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// Flash computes an isothermal flash at (T, P) for the overall composition z.
// it returns the molar vapor fraction beta and the phase compositions x
// (liquid) and y (vapor). ideal K-values Ki = Psat_i(T)/P are used for
// condensable components; non-condensables are pinned to the vapor phase,
// which is the K→∞ limit of the Rachford-Rice equation
func (o *Equilib) Flash(T, P float64, z []float64) (beta float64, x, y []float64, err error) {

	// K-values and non-condensable load
	n := len(o.Db.Components)
	if len(z) != n {
		return 0, nil, nil, chk.Err("composition has %d entries but the database declares %d components", len(z), n)
	}
	K := make([]float64, n)
	var znc float64
	for _, i := range o.cond {
		K[i] = o.Db.Components[i].PsatMdl.P(T) / P
	}
	for _, i := range o.noncond {
		znc += z[i]
	}

	// Rachford-Rice residual with the K→∞ terms taken exactly
	g := func(b float64) (res float64) {
		for _, i := range o.cond {
			if z[i] > 0 {
				res += z[i] * (K[i] - 1.0) / (1.0 + b*(K[i]-1.0))
			}
		}
		return res + znc/b
	}

	// endpoint cases
	x = make([]float64, n)
	y = make([]float64, n)
	δ := 1e-9
	if g(1.0) >= 0 { // superheated vapor: incipient liquid only
		copy(y, z)
		var sum float64
		for _, i := range o.cond {
			x[i] = z[i] / K[i]
			sum += x[i]
		}
		if sum > 0 {
			for i := range x {
				x[i] /= sum
			}
		}
		return 1, x, y, nil
	}
	if znc == 0 {
		if g(δ) <= 0 { // subcooled liquid: incipient vapor only
			copy(x, z)
			var sum float64
			for _, i := range o.cond {
				y[i] = K[i] * z[i]
				sum += y[i]
			}
			for i := range y {
				y[i] /= sum
			}
			return 0, x, y, nil
		}
	}

	// two-phase: solve for the vapor fraction; the endpoint cases above
	// guarantee the bracket [δ, 1]
	sol := num.NewBrent(g, nil)
	beta = sol.Root(δ, 1.0)

	// phase compositions
	for _, i := range o.cond {
		x[i] = z[i] / (1.0 + beta*(K[i]-1.0))
		y[i] = K[i] * x[i]
	}
	for _, i := range o.noncond {
		y[i] = z[i] / beta
	}
	return
}
