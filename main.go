// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/govle/inp"
	"github.com/cpmech/govle/vle"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/bthm", ".prop", true)
	verbose := io.ArgToBool(1, true)
	demo := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nGovle Version 1.0 -- Ideal VLE Property Packages\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"run demonstration", "demo", demo,
		))
	}

	// load property database
	dir, fn := filepath.Split(fnamepath)
	pdb, err := inp.ReadProp(dir, fn)
	if err != nil {
		chk.Panic("cannot load property database:\n%v", err)
	}
	if verbose {
		io.Pf("%v\n", pdb)
		io.Pfcyan("%d components, %d phases, %d condensable\n", len(pdb.Components), len(pdb.Phases), len(pdb.Condensables))
	}
	if !demo || len(pdb.Equilibria) == 0 {
		return
	}

	// equilibrium demonstration at the nominal state
	eq, err := vle.New(pdb, pdb.Equilibria[0].Pair[0], pdb.Equilibria[0].Pair[1])
	if err != nil {
		chk.Panic("cannot build equilibrium calculator:\n%v", err)
	}
	sta := pdb.NewState()
	_, z := sta.Fractions()
	beta, x, y, err := eq.Flash(sta.T, sta.P, z)
	if err != nil {
		chk.Panic("flash at nominal state failed:\n%v", err)
	}
	io.Pf("\nflash @ T=%g K, P=%g Pa:\n", sta.T, sta.P)
	io.Pf("  vapor fraction = %g\n", beta)
	for i, c := range pdb.Components {
		io.Pf("  %-10s z=%.6f  x=%.6f  y=%.6f\n", c.Name, z[i], x[i], y[i])
	}

	// saturation temperatures of the flashed streams
	Tb, err := eq.BubbleT(sta.P, x)
	if err != nil {
		chk.Panic("bubble temperature failed:\n%v", err)
	}
	Td, err := eq.DewT(sta.P, y)
	if err != nil {
		chk.Panic("dew temperature failed:\n%v", err)
	}
	io.Pf("\nbubble T = %.4f K    dew T = %.4f K    Teq(%g K) = %.4f K\n", Tb, Td, sta.T, eq.Teq(sta.T, Tb, Td))

	// phase properties at the nominal state
	vv, hv, err := eq.PhaseProps(eq.Vap, sta.T, sta.P, y)
	if err != nil {
		chk.Panic("vapor phase properties failed:\n%v", err)
	}
	vl, hl, err := eq.PhaseProps(eq.Liq, sta.T, sta.P, x)
	if err != nil {
		chk.Panic("liquid phase properties failed:\n%v", err)
	}
	io.Pf("%-4s molar volume = %.6g m3/mol    molar enthalpy = %.6g J/mol\n", eq.Vap.Name, vv, hv)
	io.Pf("%-4s molar volume = %.6g m3/mol    molar enthalpy = %.6g J/mol\n", eq.Liq.Name, vl, hl)
}
