// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// State holds the FpcTP state variables: molar flow per component,
// temperature, and pressure
type State struct {
	Flows []float64 // molar flow per component [mol/s]; same ordering as PropDb.Components
	T     float64   // temperature [K]
	P     float64   // pressure [Pa]
}

// NewState returns a state seeded with the nominal values of the solver bounds
func (o *PropDb) NewState() (s *State) {
	s = &State{Flows: make([]float64, len(o.Components))}
	fnom := o.GetBound("flow_mol_comp").Nom
	for i := range s.Flows {
		s.Flows[i] = fnom
	}
	s.T = o.GetBound("temperature").Nom
	s.P = o.GetBound("pressure").Nom
	return
}

// CheckState verifies that a state lies within the solver bounds
func (o *PropDb) CheckState(s *State) (err error) {
	if len(s.Flows) != len(o.Components) {
		return chk.Err("state has %d component flows but the database declares %d components", len(s.Flows), len(o.Components))
	}
	fb := o.GetBound("flow_mol_comp")
	for i, f := range s.Flows {
		if f < fb.Lo || f > fb.Up {
			return chk.Err("molar flow of %q (%v) is outside bounds [%v, %v]", o.Components[i].Name, f, fb.Lo, fb.Up)
		}
	}
	tb := o.GetBound("temperature")
	if s.T < tb.Lo || s.T > tb.Up {
		return chk.Err("temperature (%v) is outside bounds [%v, %v]", s.T, tb.Lo, tb.Up)
	}
	pb := o.GetBound("pressure")
	if s.P < pb.Lo || s.P > pb.Up {
		return chk.Err("pressure (%v) is outside bounds [%v, %v]", s.P, pb.Lo, pb.Up)
	}
	return
}

// TempRange returns the temperature bracket for equilibrium solves
func (o *PropDb) TempRange() (lo, up float64) {
	bnd := o.GetBound("temperature")
	return bnd.Lo, bnd.Up
}

// Fractions computes the total molar flow and the overall mole fractions of a
// state
func (s *State) Fractions() (ftot float64, z []float64) {
	for _, f := range s.Flows {
		ftot += f
	}
	z = make([]float64, len(s.Flows))
	if ftot > 0 {
		for i, f := range s.Flows {
			z[i] = f / ftot
		}
	}
	return
}
