// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the property database read from a (.prop) JSON file
package inp

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/govle/mdl/eos"
	"github.com/cpmech/govle/mdl/pure"
)

// Component holds pure-component data: the correlation selections and the
// coefficients they read
type Component struct {

	// input
	Name      string     `json:"name"`      // name of component
	Phases    []string   `json:"phases"`    // valid phases; empty means all declared phases
	DensLiq   string     `json:"densliq"`   // liquid molar density model; e.g. "perrys"
	EnthLiq   string     `json:"enthliq"`   // liquid enthalpy model; e.g. "perrys"
	EnthIg    string     `json:"enthig"`    // ideal-gas enthalpy model; e.g. "rpp"
	Psat      string     `json:"psat"`      // saturation pressure model; e.g. "nist"
	EquilForm string     `json:"equilform"` // phase equilibrium form; e.g. "fugacity"
	Prms      dbf.Params `json:"prms"`      // coefficients with units

	// derived
	DensLiqMdl pure.LiqDensity  // allocated liquid density model
	EnthLiqMdl pure.LiqEnthalpy // allocated liquid enthalpy model
	EnthIgMdl  pure.IgEnthalpy  // allocated ideal-gas enthalpy model
	PsatMdl    pure.SatPressure // allocated saturation pressure model
}

// Phase holds one phase declaration
type Phase struct {

	// input
	Name  string `json:"name"`  // name of phase; e.g. "Liq", "Vap"
	Kind  string `json:"kind"`  // phase category: "liquid" or "vapor"
	Model string `json:"model"` // equation of state; e.g. "ideal"

	// derived
	Eos eos.Model // allocated equation of state
}

// Bound holds solver hints for one state variable. these seed and bracket the
// numerical solves; they are not physical invariants
type Bound struct {
	Var string  `json:"var"` // state variable; e.g. "temperature"
	Lo  float64 `json:"lo"`  // lower bound
	Nom float64 `json:"nom"` // nominal value
	Up  float64 `json:"up"`  // upper bound
	U   string  `json:"u"`   // unit
}

// EquilData declares one pair of phases in equilibrium
type EquilData struct {
	Pair  []string `json:"pair"`  // the two phase names
	State string   `json:"state"` // equilibrium state formulation; e.g. "smooth-vle"
}

// BaseUnits holds the base units of measurement
type BaseUnits struct {
	Time        string `json:"time"`
	Length      string `json:"length"`
	Mass        string `json:"mass"`
	Amount      string `json:"amount"`
	Temperature string `json:"temperature"`
}

// PropDb implements a property package database. the database is immutable
// after Init: it is read-only input to model building
type PropDb struct {

	// input
	Components []*Component `json:"components"` // all components
	Phases     []*Phase     `json:"phases"`     // all phases
	Units      BaseUnits    `json:"units"`      // base units of measurement
	StateDef   string       `json:"statedef"`   // state definition; e.g. "FpcTP"
	Bounds     []*Bound     `json:"bounds"`     // state variable bounds
	Tref       *dbf.P       `json:"tref"`       // reference temperature for formation enthalpies
	Pref       *dbf.P       `json:"pref"`       // reference pressure for formation enthalpies
	Equilibria []*EquilData `json:"equilibria"` // phases in equilibrium
	BubDew     string       `json:"bubdew"`     // bubble/dew point method; e.g. "ideal"

	// derived
	Condensables []*Component // components valid in at least one liquid phase
	VaporOnly    []*Component // components restricted to vapor phases
	compmap      map[string]*Component
	phasemap     map[string]*Phase
	boundmap     map[string]*Bound
}

// registries of database-level selections
var (
	stateDefs    = map[string]bool{"FpcTP": true}
	bubDews      = map[string]bool{"ideal": true}
	equilStates  = map[string]bool{"smooth-vle": true}
	equilForms   = map[string]bool{"fugacity": true}
	basePrmKeys  = []string{"mw", "pcrit", "tcrit"}
	basePrmModel = "base"
)

// ReadProp reads a property database from a JSON (.prop, .json) or YAML
// (.yaml, .yml) file and initialises it
func ReadProp(dir, fn string) (pdb *PropDb, err error) {

	// new database
	pdb = new(PropDb)

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, pdb)
	default:
		err = json.Unmarshal(b, pdb)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal property file %q:\n%v", fn, err)
	}

	// validate and allocate models
	err = pdb.Init()
	if err != nil {
		return nil, err
	}
	return
}

// Init validates the database and allocates all referenced models. every
// failure is eager and fatal for the database: no entry is ever defaulted
func (o *PropDb) Init() (err error) {

	// base units; the block is required, never defaulted
	if o.Units == (BaseUnits{}) {
		return chk.Err("property database must declare its base units")
	}
	for key, pair := range map[string][2]string{
		"time":        {o.Units.Time, "s"},
		"length":      {o.Units.Length, "m"},
		"mass":        {o.Units.Mass, "kg"},
		"amount":      {o.Units.Amount, "mol"},
		"temperature": {o.Units.Temperature, "K"},
	} {
		if err = checkUnit("units", key, pair[0], pair[1]); err != nil {
			return
		}
	}

	// phase registry
	o.phasemap = make(map[string]*Phase)
	for _, ph := range o.Phases {
		if _, ok := o.phasemap[ph.Name]; ok {
			return chk.Err("phase %q is declared twice", ph.Name)
		}
		if ph.Kind != "liquid" && ph.Kind != "vapor" {
			return chk.Err("phase %q has kind %q; options are \"liquid\" and \"vapor\"", ph.Name, ph.Kind)
		}
		ph.Eos, err = eos.New(ph.Model)
		if err != nil {
			return &UnknownModelError{Kind: "eos", Model: ph.Model}
		}
		if err = ph.Eos.Init(ph.Kind); err != nil {
			return
		}
		o.phasemap[ph.Name] = ph
	}
	if len(o.Phases) == 0 {
		return chk.Err("property database has no phases")
	}

	// state definition and bounds
	if !stateDefs[o.StateDef] {
		return &UnknownModelError{Kind: "statedef", Model: o.StateDef}
	}
	o.boundmap = make(map[string]*Bound)
	for _, bnd := range o.Bounds {
		if _, ok := o.boundmap[bnd.Var]; ok {
			return chk.Err("state variable %q is bounded twice", bnd.Var)
		}
		want, ok := boundUnits[bnd.Var]
		if !ok {
			return chk.Err("state variable %q is unknown", bnd.Var)
		}
		if err = checkUnit("state", bnd.Var, bnd.U, want); err != nil {
			return
		}
		if !(bnd.Lo <= bnd.Nom && bnd.Nom <= bnd.Up) {
			return chk.Err("bounds of %q must obey lo ≤ nom ≤ up; got (%v, %v, %v)", bnd.Var, bnd.Lo, bnd.Nom, bnd.Up)
		}
		o.boundmap[bnd.Var] = bnd
	}
	for varname := range boundUnits {
		if _, ok := o.boundmap[varname]; !ok {
			return chk.Err("state definition %q requires bounds for %q", o.StateDef, varname)
		}
	}

	// reference state
	if o.Tref == nil || o.Pref == nil {
		return chk.Err("reference temperature and pressure must both be given")
	}
	if err = checkUnit("state", "tref", o.Tref.U, "K"); err != nil {
		return
	}
	if err = checkUnit("state", "pref", o.Pref.U, "Pa"); err != nil {
		return
	}

	// equilibrium declarations
	for _, eq := range o.Equilibria {
		if len(eq.Pair) != 2 {
			return chk.Err("equilibrium declaration must name exactly two phases; got %v", eq.Pair)
		}
		var kinds [2]string
		for i, name := range eq.Pair {
			ph, ok := o.phasemap[name]
			if !ok {
				return &UnknownPhaseError{Where: "equilibria", Phase: name}
			}
			kinds[i] = ph.Kind
		}
		if kinds[0] == kinds[1] {
			return chk.Err("phases %q and %q in equilibrium must have different kinds", eq.Pair[0], eq.Pair[1])
		}
		if !equilStates[eq.State] {
			return &UnknownModelError{Kind: "equilstate", Model: eq.State}
		}
	}
	if len(o.Equilibria) > 0 && !bubDews[o.BubDew] {
		return &UnknownModelError{Kind: "bubdew", Model: o.BubDew}
	}

	// components
	o.compmap = make(map[string]*Component)
	for _, c := range o.Components {
		if _, ok := o.compmap[c.Name]; ok {
			return chk.Err("component %q is declared twice", c.Name)
		}
		o.compmap[c.Name] = c

		// valid phases must be a subset of the phase registry
		for _, name := range c.Phases {
			if _, ok := o.phasemap[name]; !ok {
				return &UnknownPhaseError{Where: c.Name, Phase: name}
			}
		}

		// allocate correlation models and collect the keys they read
		keys := append([]string{}, basePrmKeys...)
		if c.DensLiq != "" {
			if c.DensLiqMdl, err = pure.NewLiqDensity(c.DensLiq); err != nil {
				return &UnknownModelError{Comp: c.Name, Kind: "densliq", Model: c.DensLiq}
			}
			keys = append(keys, c.DensLiqMdl.Keys()...)
		}
		if c.EnthLiq != "" {
			if c.EnthLiqMdl, err = pure.NewLiqEnthalpy(c.EnthLiq); err != nil {
				return &UnknownModelError{Comp: c.Name, Kind: "enthliq", Model: c.EnthLiq}
			}
			keys = append(keys, c.EnthLiqMdl.Keys()...)
		}
		if c.EnthIg != "" {
			if c.EnthIgMdl, err = pure.NewIgEnthalpy(c.EnthIg); err != nil {
				return &UnknownModelError{Comp: c.Name, Kind: "enthig", Model: c.EnthIg}
			}
			keys = append(keys, c.EnthIgMdl.Keys()...)
		}
		if c.Psat != "" {
			if c.PsatMdl, err = pure.NewSatPressure(c.Psat); err != nil {
				return &UnknownModelError{Comp: c.Name, Kind: "psat", Model: c.Psat}
			}
			keys = append(keys, c.PsatMdl.Keys()...)
		}
		if c.EquilForm != "" && !equilForms[c.EquilForm] {
			return &UnknownModelError{Comp: c.Name, Kind: "equilform", Model: c.EquilForm}
		}

		// base quantities must be present
		for _, key := range basePrmKeys {
			if c.Prm(key) == nil {
				return &pure.PrmMissingError{Comp: c.Name, Model: basePrmModel, Key: key}
			}
		}

		// every provided coefficient must be read by some referenced correlation
		for _, p := range c.Prms {
			found := false
			for _, key := range keys {
				if p.N == key {
					found = true
					break
				}
			}
			if !found {
				return &PrmUnknownError{Comp: c.Name, Key: p.N}
			}
			if want, ok := prmUnits[p.N]; ok {
				if err = checkUnit(c.Name, p.N, p.U, want); err != nil {
					return
				}
			}
		}

		// initialise models; a missing coefficient fails here
		if err = o.initCompModels(c); err != nil {
			return
		}
	}

	// correlation coverage per phase capability
	for _, c := range o.Components {
		inLiq, inVap := false, false
		for _, ph := range o.Phases {
			if o.Valid(c, ph) {
				if ph.Kind == "liquid" {
					inLiq = true
				} else {
					inVap = true
				}
			}
		}
		if inLiq && (c.DensLiqMdl == nil || c.EnthLiqMdl == nil) {
			return chk.Err("component %q is valid in a liquid phase and must reference liquid density and enthalpy models", c.Name)
		}
		if inVap && c.EnthIgMdl == nil {
			return chk.Err("component %q is valid in a vapor phase and must reference an ideal-gas enthalpy model", c.Name)
		}
		if inLiq {
			o.Condensables = append(o.Condensables, c)
		} else {
			o.VaporOnly = append(o.VaporOnly, c)
		}
		if inLiq && inVap && len(o.Equilibria) > 0 {
			if c.PsatMdl == nil || c.EquilForm == "" {
				return chk.Err("component %q takes part in phase equilibrium and must reference a saturation pressure model and an equilibrium form", c.Name)
			}
		}
	}
	return
}

// initCompModels initialises the allocated correlation models of one component
func (o *PropDb) initCompModels(c *Component) (err error) {
	noteComp := func(err error) error {
		if e, ok := err.(*pure.PrmMissingError); ok {
			e.Comp = c.Name
		}
		return err
	}
	if c.DensLiqMdl != nil {
		if err = c.DensLiqMdl.Init(c.Prms); err != nil {
			return noteComp(err)
		}
	}
	if c.EnthLiqMdl != nil {
		if err = c.EnthLiqMdl.Init(c.Prms); err != nil {
			return noteComp(err)
		}
	}
	if c.EnthIgMdl != nil {
		if err = c.EnthIgMdl.Init(c.Prms); err != nil {
			return noteComp(err)
		}
	}
	if c.PsatMdl != nil {
		if err = c.PsatMdl.Init(c.Prms); err != nil {
			return noteComp(err)
		}
	}
	return
}

// Valid tells whether component c may exist in phase ph
func (o *PropDb) Valid(c *Component, ph *Phase) bool {
	if len(c.Phases) == 0 {
		return true
	}
	for _, name := range c.Phases {
		if name == ph.Name {
			return true
		}
	}
	return false
}

// GetComponent returns a component
//  Note: returns nil if not found
func (o *PropDb) GetComponent(name string) *Component {
	return o.compmap[name]
}

// GetPhase returns a phase
//  Note: returns nil if not found
func (o *PropDb) GetPhase(name string) *Phase {
	return o.phasemap[name]
}

// GetBound returns the bounds of one state variable
//  Note: returns nil if not found
func (o *PropDb) GetBound(varname string) *Bound {
	return o.boundmap[varname]
}

// GetEquil returns the declaration of the equilibrium pair (a, b), in either
// order
//  Note: returns nil if not found
func (o *PropDb) GetEquil(a, b string) *EquilData {
	for _, eq := range o.Equilibria {
		if (eq.Pair[0] == a && eq.Pair[1] == b) || (eq.Pair[0] == b && eq.Pair[1] == a) {
			return eq
		}
	}
	return nil
}

// Prm returns the coefficient named key
//  Note: returns nil if not found
func (o *Component) Prm(key string) *dbf.P {
	for _, p := range o.Prms {
		if p.N == key {
			return p
		}
	}
	return nil
}

// Mw returns the molecular weight [kg/mol]
func (o *Component) Mw() float64 {
	return o.Prm("mw").V
}

// Pcrit returns the critical pressure [Pa]
func (o *Component) Pcrit() float64 {
	return o.Prm("pcrit").V
}

// Tcrit returns the critical temperature [K]
func (o *Component) Tcrit() float64 {
	return o.Prm("tcrit").V
}

// SaveProp saves the database in the .prop format. reading the saved file
// reproduces every coefficient value and unit exactly
func (o *PropDb) SaveProp(dirout, fnkey string) {
	io.WriteFileD(dirout, fnkey+".prop", bytes.NewBufferString(o.String()))
}
