// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pure

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// PerrysDens implements equation 105 from Perry's Chemical Engineers' Handbook
// for the molar density of a saturated liquid:
//   ρ(T) = C1 / C2^(1 + (1 - T/C3)^C4)   [kmol/m³]
type PerrysDens struct {
	c1 float64 // [kmol/m³]
	c2 float64 // [-]
	c3 float64 // [K]
	c4 float64 // [-]
}

// PerrysCpLiq implements the liquid heat capacity polynomial from Perry's
// Chemical Engineers' Handbook:
//   cp(T) = C1 + C2・T + C3・T² + C4・T³ + C5・T⁴   [J/(kmol·K)]
// the enthalpy is the integral of cp from Tref, anchored at the liquid
// formation enthalpy
type PerrysCpLiq struct {
	c  [5]float64 // polynomial coefficients [J/(kmol·Kⁿ)]
	hf float64    // formation enthalpy at reference state [J/mol]
}

// add models to factory
func init() {
	liqDensityAllocators["perrys"] = func() LiqDensity { return new(PerrysDens) }
	liqEnthalpyAllocators["perrys"] = func() LiqEnthalpy { return new(PerrysCpLiq) }
}

// Keys returns the coefficient keys read by this model
func (o *PerrysDens) Keys() []string {
	return []string{"dens1", "dens2", "dens3", "dens4"}
}

// Init initialises model
func (o *PerrysDens) Init(prms dbf.Params) (err error) {
	var has [4]bool
	for _, p := range prms {
		switch p.N {
		case "dens1":
			o.c1, has[0] = p.V, true
		case "dens2":
			o.c2, has[1] = p.V, true
		case "dens3":
			o.c3, has[2] = p.V, true
		case "dens4":
			o.c4, has[3] = p.V, true
		}
	}
	for i, key := range o.Keys() {
		if !has[i] {
			return &PrmMissingError{Model: "perrys", Key: key}
		}
	}
	return
}

// GetPrms gets (an example of) parameters; values are for benzene [2] pg. 2-98
func (o PerrysDens) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "dens1", V: 1.0162, U: "kmol/m3"},
			&dbf.P{N: "dens2", V: 0.2655},
			&dbf.P{N: "dens3", V: 562.16, U: "K"},
			&dbf.P{N: "dens4", V: 0.28212},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "dens1", V: o.c1, U: "kmol/m3"},
		&dbf.P{N: "dens2", V: o.c2},
		&dbf.P{N: "dens3", V: o.c3, U: "K"},
		&dbf.P{N: "dens4", V: o.c4},
	}
}

// Rho computes the liquid molar density [mol/m³]
func (o PerrysDens) Rho(T float64) float64 {
	return 1000.0 * o.c1 / math.Pow(o.c2, 1.0+math.Pow(1.0-T/o.c3, o.c4))
}

// Keys returns the coefficient keys read by this model
func (o *PerrysCpLiq) Keys() []string {
	return []string{"cpliq1", "cpliq2", "cpliq3", "cpliq4", "cpliq5", "hformLiq"}
}

// Init initialises model
func (o *PerrysCpLiq) Init(prms dbf.Params) (err error) {
	var has [6]bool
	for _, p := range prms {
		switch p.N {
		case "cpliq1":
			o.c[0], has[0] = p.V, true
		case "cpliq2":
			o.c[1], has[1] = p.V, true
		case "cpliq3":
			o.c[2], has[2] = p.V, true
		case "cpliq4":
			o.c[3], has[3] = p.V, true
		case "cpliq5":
			o.c[4], has[4] = p.V, true
		case "hformLiq":
			o.hf, has[5] = p.V, true
		}
	}
	for i, key := range o.Keys() {
		if !has[i] {
			return &PrmMissingError{Model: "perrys", Key: key}
		}
	}
	return
}

// GetPrms gets (an example of) parameters; values are for benzene [2]
func (o PerrysCpLiq) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "cpliq1", V: 1.29e5, U: "J/kmol/K"},
			&dbf.P{N: "cpliq2", V: -1.7e2, U: "J/kmol/K2"},
			&dbf.P{N: "cpliq3", V: 6.48e-1, U: "J/kmol/K3"},
			&dbf.P{N: "cpliq4", V: 0, U: "J/kmol/K4"},
			&dbf.P{N: "cpliq5", V: 0, U: "J/kmol/K5"},
			&dbf.P{N: "hformLiq", V: -49.0e3, U: "J/mol"},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "cpliq1", V: o.c[0], U: "J/kmol/K"},
		&dbf.P{N: "cpliq2", V: o.c[1], U: "J/kmol/K2"},
		&dbf.P{N: "cpliq3", V: o.c[2], U: "J/kmol/K3"},
		&dbf.P{N: "cpliq4", V: o.c[3], U: "J/kmol/K4"},
		&dbf.P{N: "cpliq5", V: o.c[4], U: "J/kmol/K5"},
		&dbf.P{N: "hformLiq", V: o.hf, U: "J/mol"},
	}
}

// Cp computes the liquid molar heat capacity [J/(mol·K)]
func (o PerrysCpLiq) Cp(T float64) (cp float64) {
	for i := 4; i >= 0; i-- {
		cp = cp*T + o.c[i]
	}
	return cp / 1000.0
}

// H computes the liquid molar enthalpy [J/mol]
func (o PerrysCpLiq) H(T, Tref float64) (h float64) {
	for i := 0; i < 5; i++ {
		n := float64(i + 1)
		h += o.c[i] * (math.Pow(T, n) - math.Pow(Tref, n)) / n
	}
	return h/1000.0 + o.hf
}
