// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_lin01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("lin01. linear water-oil and gas-oil curves")

	mdl, err := New("lin")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "smin", 1e-15, mdl.SMin(), 0.2)
	chk.Float64(tst, "smax", 1e-15, mdl.SMax(), 1.0)
	chk.Float64(tst, "Pc(smin)", 1e-10, mdl.Pc(0.2), 2e5)
	chk.Float64(tst, "Pc(0.6)", 1e-10, mdl.Pc(0.6), 1e5)
	chk.Float64(tst, "Pc(smax)", 1e-10, mdl.Pc(1.0), 0)
	chk.Float64(tst, "Pc(0) clamped", 1e-10, mdl.Pc(0), 2e5)

	gas := new(Lin)
	err = gas.Init(dbf.Params{
		&dbf.P{N: "smin", V: 0},
		&dbf.P{N: "smax", V: 0.8},
		&dbf.P{N: "pc0", V: 0},
		&dbf.P{N: "pc1", V: 8e4},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Pcgo(0.4)", 1e-10, gas.Pc(0.4), 4e4)
	chk.Float64(tst, "Pcgo(0.9) clamped", 1e-10, gas.Pc(0.9), 8e4)

	err = gas.Init(dbf.Params{&dbf.P{N: "smin", V: 0.9}, &dbf.P{N: "smax", V: 0.5}})
	if err == nil {
		tst.Errorf("wrong limits should have been rejected\n")
	}
}

func Test_bc01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("bc01. Brooks-Corey curve is monotone and capped")

	mdl := new(BrooksCorey)
	err := mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Pc(smax)", 1e-10, mdl.Pc(1.0), 1e4)
	chk.Float64(tst, "Pc(smin)", 1e-10, mdl.Pc(0.15), 5e5)
	S := utl.LinSpace(mdl.SMin(), mdl.SMax(), 21)
	for i := 1; i < len(S); i++ {
		if mdl.Pc(S[i]) > mdl.Pc(S[i-1]) {
			tst.Errorf("Pc must not increase with s: Pc(%g)=%g > Pc(%g)=%g\n", S[i], mdl.Pc(S[i]), S[i-1], mdl.Pc(S[i-1]))
			return
		}
		io.Pforan("s=%6.3f Pc=%g\n", S[i], mdl.Pc(S[i]))
	}
}

func Test_table01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("table01. tabulated curve")

	mdl, err := New("table")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	tab := mdl.(*Table)
	err = tab.SetTable([]float64{0.2, 0.5, 1.0}, []float64{3e5, 1e5, 0})
	if err != nil {
		tst.Errorf("SetTable failed: %v\n", err)
		return
	}
	chk.Float64(tst, "smin", 1e-15, tab.SMin(), 0.2)
	chk.Float64(tst, "smax", 1e-15, tab.SMax(), 1.0)
	chk.Array(tst, "S", 1e-15, tab.S, []float64{0.2, 0.5, 1.0})
	chk.Array(tst, "Pcs", 1e-15, tab.Pcs, []float64{3e5, 1e5, 0})
	chk.Float64(tst, "Pc(0.35)", 1e-9, tab.Pc(0.35), 2e5)
	chk.Float64(tst, "Pc(0.75)", 1e-9, tab.Pc(0.75), 5e4)
	chk.Float64(tst, "Pc(0.1)", 1e-9, tab.Pc(0.1), 3e5)

	bad := new(Table)
	if bad.SetTable([]float64{0.2, 0.5, 1.0}, []float64{3e5, 0, 1e5}) == nil {
		tst.Errorf("non-monotone Pc should have been rejected\n")
	}
	if bad.SetTable([]float64{0.2}, []float64{3e5}) == nil {
		tst.Errorf("single row should have been rejected\n")
	}
	if bad.Init(dbf.Params{&dbf.P{N: "smin", V: 0}}) == nil {
		tst.Errorf("parameters should have been rejected\n")
	}
}

func Test_scaled01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("scaled01. scaled curve")

	mdl := new(Lin)
	err := mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	same := NewScaled(mdl, 1)
	if same != Model(mdl) {
		tst.Errorf("unit factor must return the model itself\n")
	}
	sc := NewScaled(mdl, 2.5)
	chk.Float64(tst, "Pc(0.6)", 1e-10, sc.Pc(0.6), 2.5e5)
	chk.Float64(tst, "smin", 1e-15, sc.SMin(), 0.2)

	_, err = New("vg")
	if err == nil {
		tst.Errorf("unknown model should have been rejected\n")
	}
}
