// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// dimvec holds the exponents of the base dimensions (mass, length, time, amount, temperature)
type dimvec [5]int

// unitDims maps unit symbols to base dimensions. scale prefixes (kmol, g)
// carry the same dimension as the base symbol; the correlation models own the
// scale conversions, following the source tables
var unitDims = map[string]dimvec{
	"kg":   {1, 0, 0, 0, 0},
	"g":    {1, 0, 0, 0, 0},
	"m":    {0, 1, 0, 0, 0},
	"s":    {0, 0, 1, 0, 0},
	"mol":  {0, 0, 0, 1, 0},
	"kmol": {0, 0, 0, 1, 0},
	"K":    {0, 0, 0, 0, 1},
	"N":    {1, 1, -2, 0, 0},
	"J":    {1, 2, -2, 0, 0},
	"W":    {1, 2, -3, 0, 0},
	"Pa":   {1, -1, -2, 0, 0},
	"bar":  {1, -1, -2, 0, 0},
}

// parseUnit converts a unit expression such as "J/kmol/K2" or "kg*m/s2" into
// base dimensions. the first '/'-separated factor multiplies and all following
// factors divide; a trailing integer is the exponent of a symbol. an empty
// string or "-" is dimensionless
func parseUnit(unit string) (d dimvec, err error) {
	if unit == "" || unit == "-" {
		return
	}
	for i, factor := range strings.Split(unit, "/") {
		for _, tok := range strings.Split(factor, "*") {
			sym := strings.TrimRight(tok, "0123456789")
			exp := 1
			if sym != tok {
				exp, err = strconv.Atoi(tok[len(sym):])
				if err != nil {
					return d, chk.Err("cannot parse exponent in unit token %q of %q", tok, unit)
				}
			}
			base, ok := unitDims[sym]
			if !ok {
				return d, chk.Err("unit symbol %q in %q is unknown", sym, unit)
			}
			if i > 0 {
				exp = -exp
			}
			for j := 0; j < 5; j++ {
				d[j] += base[j] * exp
			}
		}
	}
	return
}

// prmUnits holds the expected unit of every named coefficient
var prmUnits = map[string]string{
	"mw":       "kg/mol",
	"pcrit":    "Pa",
	"tcrit":    "K",
	"dens1":    "kmol/m3",
	"dens2":    "",
	"dens3":    "K",
	"dens4":    "",
	"cpigA":    "J/mol/K",
	"cpigB":    "J/mol/K2",
	"cpigC":    "J/mol/K3",
	"cpigD":    "J/mol/K4",
	"cpliq1":   "J/kmol/K",
	"cpliq2":   "J/kmol/K2",
	"cpliq3":   "J/kmol/K3",
	"cpliq4":   "J/kmol/K4",
	"cpliq5":   "J/kmol/K5",
	"hformLiq": "J/mol",
	"hformVap": "J/mol",
	"psatA":    "",
	"psatB":    "K",
	"psatC":    "K",
}

// boundUnits holds the expected unit of every state variable
var boundUnits = map[string]string{
	"flow_mol_comp": "mol/s",
	"temperature":   "K",
	"pressure":      "Pa",
}

// checkUnit verifies that a declared unit is dimensionally consistent with the
// expected unit of the quantity named key
func checkUnit(comp, key, unit, want string) error {
	dgot, err := parseUnit(unit)
	if err != nil {
		return &UnitError{Comp: comp, Key: key, Unit: unit, Want: want}
	}
	dwant, err := parseUnit(want)
	if err != nil {
		chk.Panic("INTERNAL ERROR: expected unit %q of %q does not parse", want, key)
	}
	if dgot != dwant {
		return &UnitError{Comp: comp, Key: key, Unit: unit, Want: want}
	}
	return nil
}
