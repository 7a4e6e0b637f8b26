// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/govle/inp"
	"github.com/cpmech/govle/mdl/eos"
)

// readBthm loads the BTHM table; component ordering is
// benzene, toluene, hydrogen, methane
func readBthm(tst *testing.T) *inp.PropDb {
	pdb, err := inp.ReadProp("../inp/data", "bthm.prop")
	if err != nil {
		tst.Fatalf("cannot read BTHM table:\n%v", err)
	}
	return pdb
}

func Test_bubdew01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bubdew01. bubble and dew pressures")

	pdb := readBthm(tst)
	eq, err := New(pdb, "Vap", "Liq")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// the pair may be given in either order
	eq2, err := New(pdb, "Liq", "Vap")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if eq2.Vap.Kind != "vapor" || eq2.Liq.Kind != "liquid" {
		tst.Errorf("test failed: phases not assigned by kind: (%q, %q)\n", eq2.Vap.Name, eq2.Liq.Name)
	}

	x := []float64{0.5, 0.5, 0, 0}
	Pb, err := eq.BubbleP(365, x)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("bubble P(365) = %v Pa\n", Pb)
	chk.Float64(tst, "bubble P", 1e-6, Pb, 108897.43234319432)

	Pd, err := eq.DewP(365, x)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("dew P(365) = %v Pa\n", Pd)
	chk.Float64(tst, "dew P", 1e-6, Pd, 88099.90943711178)
	if Pd >= Pb {
		tst.Errorf("test failed: dew pressure must be below bubble pressure\n")
	}

	// liquid composition cannot touch non-condensables
	if _, err = eq.BubbleP(365, []float64{0.4, 0.4, 0.2, 0}); err == nil {
		tst.Errorf("test failed: hydrogen in liquid composition not rejected\n")
	}
}

func Test_bubdew02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bubdew02. bubble and dew temperatures")

	pdb := readBthm(tst)
	eq, err := New(pdb, "Vap", "Liq")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	x := []float64{0.5, 0.5, 0, 0}
	P := 101325.0
	Tb, err := eq.BubbleT(P, x)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("bubble T = %v K\n", Tb)
	chk.Float64(tst, "bubble T", 1e-5, Tb, 362.3821866800945)

	Td, err := eq.DewT(P, x)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("dew T = %v K\n", Td)
	chk.Float64(tst, "dew T", 1e-5, Td, 369.8968922388442)

	// consistency with the pressure forms
	Pb, err := eq.BubbleP(Tb, x)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "P(Tbub)", 1e-4, Pb, P)

	// no root within the bounds
	if _, err = eq.BubbleT(1e12, x); err == nil {
		tst.Errorf("test failed: unreachable pressure not rejected\n")
	}
}

func Test_flash01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flash01. binary benzene-toluene flash")

	pdb := readBthm(tst)
	eq, err := New(pdb, "Vap", "Liq")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	z := []float64{0.5, 0.5, 0, 0}
	beta, x, y, err := eq.Flash(365, 1e5, z)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("beta = %v\n", beta)
	chk.Float64(tst, "beta", 1e-6, beta, 0.40708729281760236)
	chk.Float64(tst, "x benzene", 1e-6, x[0], 0.4065197052526854)
	chk.Float64(tst, "y benzene", 1e-6, y[0], 0.6361517679493683)

	// material balance per component
	for i := range z {
		chk.Float64(tst, io.Sf("balance %d", i), 1e-9, beta*y[i]+(1-beta)*x[i], z[i])
	}
}

func Test_flash02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flash02. flash with non-condensables")

	pdb := readBthm(tst)
	eq, err := New(pdb, "Vap", "Liq")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	z := []float64{0.45, 0.45, 0.05, 0.05}
	beta, x, y, err := eq.Flash(360, 2e5, z)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("beta = %v\nx = %v\ny = %v\n", beta, x, y)
	chk.Float64(tst, "beta", 1e-6, beta, 0.18686465614717757)
	chk.Float64(tst, "x benzene", 1e-6, x[0], 0.47816474098969064)
	chk.Float64(tst, "x toluene", 1e-6, x[1], 0.5218352590103094)
	chk.Float64(tst, "y benzene", 1e-6, y[0], 0.32744206517502167)
	chk.Float64(tst, "y hydrogen", 1e-6, y[2], 0.2675733390728486)

	// non-condensables are pinned to the vapor
	chk.Float64(tst, "x hydrogen", 1e-17, x[2], 0)
	chk.Float64(tst, "x methane", 1e-17, x[3], 0)

	// compositions close
	var sx, sy float64
	for i := range z {
		sx += x[i]
		sy += y[i]
	}
	chk.Float64(tst, "sum x", 1e-9, sx, 1)
	chk.Float64(tst, "sum y", 1e-9, sy, 1)

	// all-vapor feed flashes to vapor
	beta, _, y, err = eq.Flash(360, 2e5, []float64{0, 0, 0.5, 0.5})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "beta all vapor", 1e-12, beta, 1)
	chk.Float64(tst, "y hydrogen", 1e-17, y[2], 0.5)
}

func Test_smooth01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("smooth01. equilibrium temperature clamp")

	chk.Float64(tst, "smoothmax", 1e-7, SmoothMax(2, 3, 1e-4), 3)
	chk.Float64(tst, "smoothmin", 1e-7, SmoothMin(2, 3, 1e-4), 2)

	pdb := readBthm(tst)
	eq, err := New(pdb, "Vap", "Liq")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	Tbub, Tdew := 362.3821866800945, 369.8968922388442
	chk.Float64(tst, "Teq inside", 1e-3, eq.Teq(365, Tbub, Tdew), 365)
	chk.Float64(tst, "Teq subcooled", 1e-3, eq.Teq(350, Tbub, Tdew), Tbub)
	chk.Float64(tst, "Teq superheated", 1e-3, eq.Teq(380, Tbub, Tdew), Tdew)

	// the bubble clamp applies first, then the dew clamp
	for _, T := range []float64{350, Tbub, 365, Tdew, 380} {
		chk.Float64(tst, io.Sf("Teq(%g)", T), 1e-15, eq.Teq(T, Tbub, Tdew),
			SmoothMin(SmoothMax(T, Tbub, eq.Eps1), Tdew, eq.Eps2))
	}
}

func Test_props01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props01. phase properties and fugacity")

	pdb := readBthm(tst)
	eq, err := New(pdb, "Vap", "Liq")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// ideal-gas molar volume
	y := []float64{0, 0, 0.5, 0.5}
	v, h, err := eq.PhaseProps(eq.Vap, 300, 1e5, y)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "v vap", 1e-15, v, eos.Rgas*300.0/1e5)
	chk.Float64(tst, "h vap", 1e-9, h, -37500) // methane formation enthalpy only

	// pure benzene liquid enthalpy
	x := []float64{1, 0, 0, 0}
	_, h, err = eq.PhaseProps(eq.Liq, 350, 1e5, x)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "h liq", 1e-9, h, -41883.5)

	// hydrogen cannot enter the liquid phase
	if _, _, err = eq.PhaseProps(eq.Liq, 350, 1e5, []float64{0.5, 0, 0.5, 0}); err == nil {
		tst.Errorf("test failed: hydrogen in liquid phase not rejected\n")
	}

	// equal fugacities across the pair at the bubble point
	xb := []float64{0.5, 0.5, 0, 0}
	Tb, err := eq.BubbleT(101325, xb)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	for i := 0; i < 2; i++ {
		psat := pdb.Components[i].PsatMdl.P(Tb)
		yi := xb[i] * psat / 101325.0
		fliq := eq.Fug(eq.Liq, i, xb[i], Tb, 101325)
		fvap := eq.Fug(eq.Vap, i, yi, Tb, 101325)
		io.Pforan("%-8s fliq = %v, fvap = %v\n", pdb.Components[i].Name, fliq, fvap)
		chk.AnaNum(tst, io.Sf("fug %d", i), 1e-8, fliq, fvap, chk.Verbose)
	}
}
