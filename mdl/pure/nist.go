// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pure

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Nist implements the Antoine correlation with the constants as published
// by the NIST Chemistry WebBook (pressure base is bar):
//   log10(Psat) = A - B / (T + C)
type Nist struct {
	a float64 // [-]
	b float64 // [K]
	c float64 // [K]
}

// add model to factory
func init() {
	satPressureAllocators["nist"] = func() SatPressure { return new(Nist) }
}

// Keys returns the coefficient keys read by this model
func (o *Nist) Keys() []string {
	return []string{"psatA", "psatB", "psatC"}
}

// Init initialises model
func (o *Nist) Init(prms dbf.Params) (err error) {
	var has [3]bool
	for _, p := range prms {
		switch p.N {
		case "psatA":
			o.a, has[0] = p.V, true
		case "psatB":
			o.b, has[1] = p.V, true
		case "psatC":
			o.c, has[2] = p.V, true
		}
	}
	for i, key := range o.Keys() {
		if !has[i] {
			return &PrmMissingError{Model: "nist", Key: key}
		}
	}
	return
}

// GetPrms gets (an example of) parameters; values are for benzene [4]
func (o Nist) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "psatA", V: 4.60362},
			&dbf.P{N: "psatB", V: 1701.073, U: "K"},
			&dbf.P{N: "psatC", V: 20.806, U: "K"},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "psatA", V: o.a},
		&dbf.P{N: "psatB", V: o.b, U: "K"},
		&dbf.P{N: "psatC", V: o.c, U: "K"},
	}
}

// P computes the saturation pressure [Pa]
func (o Nist) P(T float64) float64 {
	return 1e5 * math.Pow(10.0, o.a-o.b/(T+o.c))
}

// DPdT computes the derivative of the saturation pressure w.r.t temperature [Pa/K]
func (o Nist) DPdT(T float64) float64 {
	return o.P(T) * math.Ln10 * o.b / ((T + o.c) * (T + o.c))
}
