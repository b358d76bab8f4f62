// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"github.com/danielfmva/opm-core/grid"
	"github.com/danielfmva/opm-core/mdl/fluid"
	"github.com/danielfmva/opm-core/mdl/retention"
	"github.com/danielfmva/opm-core/phase"
	"github.com/danielfmva/opm-core/props"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// lin returns a linear capillary pressure curve
func lin(smin, smax, pc0, pc1 float64) retention.Model {
	m := new(retention.Lin)
	err := m.Init(dbf.Params{
		&dbf.P{N: "smin", V: smin},
		&dbf.P{N: "smax", V: smax},
		&dbf.P{N: "pc0", V: pc0},
		&dbf.P{N: "pc1", V: pc1},
	})
	if err != nil {
		chk.Panic("%v", err)
	}
	return m
}

// newFluids returns incompressible fluids. The saturated Rs grows from 0 at 1 bar
// to 200 at 400 bar and Rv from 0 to 1e-3
func newFluids() *props.Fluids {
	f := &props.Fluids{
		Water: fluid.Model{R0: 1000, P0: Barsa},
		Oil:   fluid.Model{R0: 800, P0: Barsa},
		Gas:   fluid.Model{R0: 200, P0: Barsa},
	}
	if err := f.RsSat.Init([]float64{Barsa, 400 * Barsa}, []float64{0, 200}); err != nil {
		chk.Panic("%v", err)
	}
	if err := f.RvSat.Init([]float64{Barsa, 400 * Barsa}, []float64{0, 1e-3}); err != nil {
		chk.Panic("%v", err)
	}
	return f
}

// newProps returns properties with a single PVT region and a single saturation region
func newProps(water, oil, gas bool, ncells int, f *props.Fluids, pcow, pcgo retention.Model) *props.Blackoil {
	usage, err := phase.NewUsage(water, oil, gas)
	if err != nil {
		chk.Panic("%v", err)
	}
	pr, err := props.NewBlackoil(usage, ncells, []*props.Fluids{f}, []*props.Curves{{Pcow: pcow, Pcgo: pcgo}}, nil, nil)
	if err != nil {
		chk.Panic("%v", err)
	}
	return pr
}

// column returns a grid with nx columns of nz layers of thickness dz starting at top
func column(nx, nz int, top, dz float64) *grid.Cartesian {
	Dz := make([]float64, nz)
	for k := range Dz {
		Dz[k] = dz
	}
	g, err := grid.NewCartesian(nx, 1, nz, []float64{top}, Dz, nil)
	if err != nil {
		chk.Panic("%v", err)
	}
	return g
}

// record returns an equilibration record
func record(zdatum, pdatum, zwoc, pcwoc, zgoc, pcgoc float64, rsvd, rvvd int) Record {
	return Record{
		Main:              Contact{zdatum, pdatum},
		Woc:               Contact{zwoc, pcwoc},
		Goc:               Contact{zgoc, pcgoc},
		LiveOilTableIndex: rsvd,
		WetGasTableIndex:  rvvd,
	}
}
