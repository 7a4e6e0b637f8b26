// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/io"
)

// UnknownModelError indicates a reference to a model name that is absent
// from the corresponding registry
type UnknownModelError struct {
	Comp  string // component name; empty for database-level selections
	Kind  string // which selection; e.g. "densliq", "eos", "statedef", "bubdew", "equilstate", "equilform"
	Model string // the unresolvable name
}

func (e *UnknownModelError) Error() string {
	if e.Comp == "" {
		return io.Sf("%s model %q is unknown", e.Kind, e.Model)
	}
	return io.Sf("component %q references unknown %s model %q", e.Comp, e.Kind, e.Model)
}

// UnknownPhaseError indicates a reference to a phase that is absent from the
// phase registry
type UnknownPhaseError struct {
	Where string // component name or "equilibria"
	Phase string // the unresolvable phase name
}

func (e *UnknownPhaseError) Error() string {
	return io.Sf("%s: phase %q is not declared in the phase registry", e.Where, e.Phase)
}

// PrmUnknownError indicates a coefficient that no referenced correlation and
// no base quantity reads
type PrmUnknownError struct {
	Comp string
	Key  string
}

func (e *PrmUnknownError) Error() string {
	return io.Sf("component %q provides coefficient %q which no referenced correlation reads", e.Comp, e.Key)
}

// UnitError indicates a unit that is dimensionally inconsistent with the
// quantity it annotates
type UnitError struct {
	Comp string // component name; "state" for bounds and reference values
	Key  string // coefficient key or state variable name
	Unit string // declared unit
	Want string // expected unit
}

func (e *UnitError) Error() string {
	return io.Sf("component %q: unit %q of %q is not dimensionally consistent with %q", e.Comp, e.Unit, e.Key, e.Want)
}
