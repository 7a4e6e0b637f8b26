// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_ideal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ideal01. vapor phase")

	mdl, err := New("ideal")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	err = mdl.Init("vapor")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if !mdl.Vapor() {
		tst.Errorf("test failed: model must report vapor phase\n")
		return
	}

	v := mdl.MolarVol(370, 1.5e5, nil, nil)
	io.Pforan("v = %v m3/mol\n", v)
	chk.Float64(tst, "v", 1e-15, v, Rgas*370.0/1.5e5)

	h := mdl.MolarEnthalpy([]float64{0.25, 0.75}, []float64{-100, 200})
	chk.Float64(tst, "h", 1e-13, h, 125.0)

	chk.Float64(tst, "fug", 1e-10, mdl.Fugacity(0.4, 1e5, 0), 0.4e5)
}

func Test_ideal02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ideal02. liquid phase")

	mdl, err := New("ideal")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	err = mdl.Init("liquid")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	x := []float64{0.5, 0.5}
	rho := []float64{10000, 8000}
	v := mdl.MolarVol(350, 1e5, x, rho)
	io.Pforan("v = %v m3/mol\n", v)
	chk.Float64(tst, "v", 1e-17, v, 0.5/10000.0+0.5/8000.0)

	// Raoult's law fugacity
	chk.Float64(tst, "fug", 1e-10, mdl.Fugacity(0.5, 1e5, 156487.3140784031), 0.5*156487.3140784031)
}

func Test_ideal03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ideal03. bad inputs")

	if _, err := New("peng-robinson"); err == nil {
		tst.Errorf("test failed: unknown model not rejected\n")
	}
	mdl, _ := New("ideal")
	if err := mdl.Init("solid"); err == nil {
		tst.Errorf("test failed: bad phase kind not rejected\n")
	}
}
