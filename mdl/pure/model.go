// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pure implements pure-component property correlation models
package pure

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// LiqDensity computes the molar density of a saturated liquid
type LiqDensity interface {
	Init(prms dbf.Params) error // initialises model; fails with *PrmMissingError if a coefficient is absent
	Keys() []string             // coefficient keys read by this model
	Rho(T float64) float64      // liquid molar density [mol/m³]
}

// LiqEnthalpy computes heat capacity and molar enthalpy of a liquid
type LiqEnthalpy interface {
	Init(prms dbf.Params) error
	Keys() []string
	Cp(T float64) float64      // liquid molar heat capacity [J/(mol·K)]
	H(T, Tref float64) float64 // liquid molar enthalpy anchored at the formation value at Tref [J/mol]
}

// IgEnthalpy computes heat capacity and molar enthalpy of an ideal gas
type IgEnthalpy interface {
	Init(prms dbf.Params) error
	Keys() []string
	Cp(T float64) float64      // ideal-gas molar heat capacity [J/(mol·K)]
	H(T, Tref float64) float64 // ideal-gas molar enthalpy anchored at the formation value at Tref [J/mol]
}

// SatPressure computes the saturation pressure of a pure component
type SatPressure interface {
	Init(prms dbf.Params) error
	Keys() []string
	P(T float64) float64    // saturation pressure [Pa]
	DPdT(T float64) float64 // derivative of saturation pressure w.r.t temperature [Pa/K]
}

// PrmMissingError indicates that a correlation requires a coefficient which is
// absent from a component's parameters list
type PrmMissingError struct {
	Comp  string // component name; empty when not known by the model
	Model string // model name; e.g. "perrys"
	Key   string // missing coefficient key; e.g. "dens3"
}

func (e *PrmMissingError) Error() string {
	if e.Comp == "" {
		return io.Sf("model %q requires coefficient %q but it is not given", e.Model, e.Key)
	}
	return io.Sf("component %q does not provide coefficient %q required by model %q", e.Comp, e.Key, e.Model)
}

// NewLiqDensity returns a new liquid density model
func NewLiqDensity(name string) (model LiqDensity, err error) {
	allocator, ok := liqDensityAllocators[name]
	if !ok {
		return nil, chk.Err("liquid density model %q is not available in 'pure' database", name)
	}
	return allocator(), nil
}

// NewLiqEnthalpy returns a new liquid enthalpy model
func NewLiqEnthalpy(name string) (model LiqEnthalpy, err error) {
	allocator, ok := liqEnthalpyAllocators[name]
	if !ok {
		return nil, chk.Err("liquid enthalpy model %q is not available in 'pure' database", name)
	}
	return allocator(), nil
}

// NewIgEnthalpy returns a new ideal-gas enthalpy model
func NewIgEnthalpy(name string) (model IgEnthalpy, err error) {
	allocator, ok := igEnthalpyAllocators[name]
	if !ok {
		return nil, chk.Err("ideal-gas enthalpy model %q is not available in 'pure' database", name)
	}
	return allocator(), nil
}

// NewSatPressure returns a new saturation pressure model
func NewSatPressure(name string) (model SatPressure, err error) {
	allocator, ok := satPressureAllocators[name]
	if !ok {
		return nil, chk.Err("saturation pressure model %q is not available in 'pure' database", name)
	}
	return allocator(), nil
}

// allocators hold all available models
var (
	liqDensityAllocators  = map[string]func() LiqDensity{}
	liqEnthalpyAllocators = map[string]func() LiqEnthalpy{}
	igEnthalpyAllocators  = map[string]func() IgEnthalpy{}
	satPressureAllocators = map[string]func() SatPressure{}
)
