// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/chk"
)

// Ideal implements the ideal equation of state: ideal-gas volumetric behaviour
// for vapor phases, additive pure volumes for liquid phases, linear mixing for
// enthalpy and unity fugacity coefficients
type Ideal struct {
	vapor bool
}

// add model to factory
func init() {
	allocators["ideal"] = func() Model { return new(Ideal) }
}

// Init initialises model
func (o *Ideal) Init(kind string) (err error) {
	switch kind {
	case "vapor":
		o.vapor = true
	case "liquid":
		o.vapor = false
	default:
		return chk.Err("ideal: phase kind %q is incorrect; options are \"liquid\" and \"vapor\"", kind)
	}
	return
}

// Vapor tells whether this model was initialised for a vapor phase
func (o Ideal) Vapor() bool {
	return o.vapor
}

// MolarVol computes the mixture molar volume [m³/mol]
func (o Ideal) MolarVol(T, P float64, x, rho []float64) (v float64) {
	if o.vapor {
		return Rgas * T / P
	}
	for i, xi := range x {
		if xi > 0 {
			v += xi / rho[i]
		}
	}
	return
}

// MolarEnthalpy computes the mixture molar enthalpy [J/mol]
func (o Ideal) MolarEnthalpy(x, h []float64) (res float64) {
	for i, xi := range x {
		if xi > 0 {
			res += xi * h[i]
		}
	}
	return
}

// Fugacity computes the fugacity of one component with mole fraction frac [Pa].
// for a vapor phase this is the partial pressure; for a liquid phase the
// Raoult's law expression
func (o Ideal) Fugacity(frac, P, psat float64) float64 {
	if o.vapor {
		return frac * P
	}
	return frac * psat
}
