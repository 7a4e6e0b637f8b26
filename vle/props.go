// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/govle/inp"
)

// PhaseProps computes the molar volume [m³/mol] and molar enthalpy [J/mol] of
// one phase at (T, P) with composition frac, through the phase's equation of
// state and the pure-component correlation models
func (o *Equilib) PhaseProps(ph *inp.Phase, T, P float64, frac []float64) (v, h float64, err error) {
	n := len(o.Db.Components)
	if len(frac) != n {
		return 0, 0, chk.Err("composition has %d entries but the database declares %d components", len(frac), n)
	}
	rho := make([]float64, n)
	hp := make([]float64, n)
	Tref := o.Db.Tref.V
	for i, c := range o.Db.Components {
		if frac[i] == 0 {
			continue
		}
		if !o.Db.Valid(c, ph) {
			return 0, 0, chk.Err("component %q cannot exist in phase %q", c.Name, ph.Name)
		}
		if ph.Eos.Vapor() {
			hp[i] = c.EnthIgMdl.H(T, Tref)
		} else {
			hp[i] = c.EnthLiqMdl.H(T, Tref)
			rho[i] = c.DensLiqMdl.Rho(T)
		}
	}
	v = ph.Eos.MolarVol(T, P, frac, rho)
	h = ph.Eos.MolarEnthalpy(frac, hp)
	return
}

// Fug computes the fugacity of component i in phase ph with mole fraction
// frac at (T, P) [Pa]. at equilibrium the fugacities of a component in the
// two phases of the pair are equal
func (o *Equilib) Fug(ph *inp.Phase, i int, frac, T, P float64) float64 {
	var psat float64
	if !ph.Eos.Vapor() {
		psat = o.Db.Components[i].PsatMdl.P(T)
	}
	return ph.Eos.Fugacity(frac, P, psat)
}
