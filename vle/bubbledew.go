// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vle implements ideal vapor-liquid equilibrium computations over a
// property database
package vle

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"

	"github.com/cpmech/govle/inp"
)

// Equilib computes ideal vapor-liquid equilibrium for one declared phase pair
// of a property database. composition slices follow the ordering of
// PropDb.Components; entries of non-condensable components must be zero in
// liquid compositions
type Equilib struct {

	// access
	Db  *inp.PropDb // the property database
	Vap *inp.Phase  // the vapor phase of the pair
	Liq *inp.Phase  // the liquid phase of the pair

	// smoothing constants for the equilibrium temperature clamp
	Eps1 float64
	Eps2 float64

	// derived
	cond    []int // indices of condensable components
	noncond []int // indices of vapor-only components
}

// New returns a new equilibrium calculator for the declared pair (a, b), given
// in either order
func New(db *inp.PropDb, a, b string) (o *Equilib, err error) {
	if db.GetEquil(a, b) == nil {
		return nil, chk.Err("phases %q and %q are not declared in equilibrium", a, b)
	}
	if db.BubDew != "ideal" {
		return nil, chk.Err("bubble/dew method %q is not implemented; only \"ideal\" is", db.BubDew)
	}
	o = &Equilib{Db: db, Vap: db.GetPhase(a), Liq: db.GetPhase(b), Eps1: 0.01, Eps2: 0.0005}
	if o.Vap.Kind != "vapor" {
		o.Vap, o.Liq = o.Liq, o.Vap
	}
	for i, c := range db.Components {
		if db.Valid(c, o.Liq) {
			o.cond = append(o.cond, i)
		} else {
			o.noncond = append(o.noncond, i)
		}
	}
	if len(o.cond) == 0 {
		return nil, chk.Err("no component of the database may exist in phase %q", o.Liq.Name)
	}
	return
}

// BubbleP computes the bubble pressure of a liquid with composition x at
// temperature T [Pa]
func (o *Equilib) BubbleP(T float64, x []float64) (P float64, err error) {
	if err = o.checkLiqComp(x); err != nil {
		return
	}
	return o.bubbleP(T, x), nil
}

// DewP computes the dew pressure of a vapor with composition y at temperature
// T [Pa]. non-condensable components stay in the vapor and do not enter the
// incipient liquid
func (o *Equilib) DewP(T float64, y []float64) (P float64, err error) {
	if err = o.checkVapComp(y); err != nil {
		return
	}
	return o.dewP(T, y), nil
}

// BubbleT computes the bubble temperature of a liquid with composition x at
// pressure P [K]. the root is bracketed by the temperature state bounds
func (o *Equilib) BubbleT(P float64, x []float64) (T float64, err error) {
	if err = o.checkLiqComp(x); err != nil {
		return
	}
	return o.solveT(P, func(t float64) float64 {
		return o.bubbleP(t, x) - P
	})
}

// DewT computes the dew temperature of a vapor with composition y at pressure
// P [K]
func (o *Equilib) DewT(P float64, y []float64) (T float64, err error) {
	if err = o.checkVapComp(y); err != nil {
		return
	}
	return o.solveT(P, func(t float64) float64 {
		return o.dewP(t, y) - P
	})
}

// bubbleP computes Raoult's bubble pressure over the condensables
func (o *Equilib) bubbleP(T float64, x []float64) (P float64) {
	for _, i := range o.cond {
		P += x[i] * o.Db.Components[i].PsatMdl.P(T)
	}
	return
}

// dewP computes the ideal dew pressure over the condensables
func (o *Equilib) dewP(T float64, y []float64) float64 {
	var sum float64
	for _, i := range o.cond {
		sum += y[i] / o.Db.Components[i].PsatMdl.P(T)
	}
	return 1.0 / sum
}

// solveT locates the temperature where residual ffcn vanishes
func (o *Equilib) solveT(P float64, ffcn func(t float64) float64) (T float64, err error) {
	lo, up := o.Db.TempRange()
	if ffcn(lo)*ffcn(up) > 0 {
		return 0, chk.Err("no saturation temperature at P=%v Pa within the bounds [%v, %v] K", P, lo, up)
	}
	sol := num.NewBrent(ffcn, nil)
	return sol.Root(lo, up), nil
}

// checkLiqComp verifies that a liquid composition has no mass on vapor-only
// components
func (o *Equilib) checkLiqComp(x []float64) error {
	if len(x) != len(o.Db.Components) {
		return chk.Err("composition has %d entries but the database declares %d components", len(x), len(o.Db.Components))
	}
	for _, i := range o.noncond {
		if x[i] != 0 {
			return chk.Err("component %q cannot exist in phase %q", o.Db.Components[i].Name, o.Liq.Name)
		}
	}
	return nil
}

// checkVapComp verifies that a vapor composition carries at least one
// condensable component, otherwise no dew point exists
func (o *Equilib) checkVapComp(y []float64) error {
	if len(y) != len(o.Db.Components) {
		return chk.Err("composition has %d entries but the database declares %d components", len(y), len(o.Db.Components))
	}
	for _, i := range o.cond {
		if y[i] > 0 {
			return nil
		}
	}
	return chk.Err("vapor composition has no condensable component; dew point does not exist")
}
