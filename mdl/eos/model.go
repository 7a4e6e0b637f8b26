// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements equation of state models for fluid phases
package eos

import (
	"github.com/cpmech/gosl/chk"
)

// Rgas is the universal gas constant [J/(mol·K)]
const Rgas = 8.31446261815324

// Model defines an equation of state for one phase. Mole fraction slices and
// the pure-component property slices given to the methods share one ordering
type Model interface {
	Init(kind string) error                          // initialises model for a "liquid" or "vapor" phase
	Vapor() bool                                     // is vapor phase
	MolarVol(T, P float64, x, rho []float64) float64 // mixture molar volume [m³/mol]; rho holds pure liquid molar densities [mol/m³]
	MolarEnthalpy(x, h []float64) float64            // mixture molar enthalpy [J/mol]; h holds pure molar enthalpies
	Fugacity(frac, P, psat float64) float64          // fugacity of one component [Pa]; psat is ignored for vapor phases
}

// New returns new equation of state model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'eos' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
