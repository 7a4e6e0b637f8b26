// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pure

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// Rpp implements the ideal-gas heat capacity polynomial from
// The Properties of Gases and Liquids (Reid, Prausnitz and Poling):
//   cp°(T) = A + B・T + C・T² + D・T³   [J/(mol·K)]
// the enthalpy is the integral of cp° from Tref, anchored at the vapor
// formation enthalpy
type Rpp struct {
	a, b, c, d float64 // polynomial coefficients [J/(mol·Kⁿ)]
	hf         float64 // formation enthalpy at reference state [J/mol]
}

// add model to factory
func init() {
	igEnthalpyAllocators["rpp"] = func() IgEnthalpy { return new(Rpp) }
}

// Keys returns the coefficient keys read by this model
func (o *Rpp) Keys() []string {
	return []string{"cpigA", "cpigB", "cpigC", "cpigD", "hformVap"}
}

// Init initialises model
func (o *Rpp) Init(prms dbf.Params) (err error) {
	var has [5]bool
	for _, p := range prms {
		switch p.N {
		case "cpigA":
			o.a, has[0] = p.V, true
		case "cpigB":
			o.b, has[1] = p.V, true
		case "cpigC":
			o.c, has[2] = p.V, true
		case "cpigD":
			o.d, has[3] = p.V, true
		case "hformVap":
			o.hf, has[4] = p.V, true
		}
	}
	for i, key := range o.Keys() {
		if !has[i] {
			return &PrmMissingError{Model: "rpp", Key: key}
		}
	}
	return
}

// GetPrms gets (an example of) parameters; values are for benzene [1]
func (o Rpp) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "cpigA", V: -3.392e1, U: "J/mol/K"},
			&dbf.P{N: "cpigB", V: 4.739e-1, U: "J/mol/K2"},
			&dbf.P{N: "cpigC", V: -3.017e-4, U: "J/mol/K3"},
			&dbf.P{N: "cpigD", V: 7.130e-8, U: "J/mol/K4"},
			&dbf.P{N: "hformVap", V: -82.9e3, U: "J/mol"},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "cpigA", V: o.a, U: "J/mol/K"},
		&dbf.P{N: "cpigB", V: o.b, U: "J/mol/K2"},
		&dbf.P{N: "cpigC", V: o.c, U: "J/mol/K3"},
		&dbf.P{N: "cpigD", V: o.d, U: "J/mol/K4"},
		&dbf.P{N: "hformVap", V: o.hf, U: "J/mol"},
	}
}

// Cp computes the ideal-gas molar heat capacity [J/(mol·K)]
func (o Rpp) Cp(T float64) float64 {
	return o.a + T*(o.b+T*(o.c+T*o.d))
}

// H computes the ideal-gas molar enthalpy [J/mol]
func (o Rpp) H(T, Tref float64) float64 {
	ii := func(t float64) float64 {
		return t * (o.a + t*(o.b/2.0+t*(o.c/3.0+t*o.d/4.0)))
	}
	return ii(T) - ii(Tref) + o.hf
}
