// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"strings"
	"testing"

	"github.com/danielfmva/opm-core/equil"
	"github.com/danielfmva/opm-core/grid"
	"github.com/danielfmva/opm-core/inp"
	"github.com/danielfmva/opm-core/phase"
	"github.com/danielfmva/opm-core/props"
	"github.com/danielfmva/opm-core/state"
	"github.com/danielfmva/opm-core/tests"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solve reads a case and computes its initial state
func solve(tst *testing.T, path string) (*inp.Case, *grid.Cartesian, *props.Blackoil, *equil.Initializer, *state.Blackoil) {
	cas, err := inp.ReadCase(path)
	require.NoError(tst, err)
	g, err := cas.NewGrid()
	require.NoError(tst, err)
	p, err := cas.NewProps(g)
	require.NoError(tst, err)
	ini, err := equil.NewInitializer(p, g, cas.Deck(), cas.Options())
	require.NoError(tst, err)
	require.NoError(tst, ini.Compute())
	st := state.NewBlackoil(g.NumCells(), p.Usage())
	require.NoError(tst, ini.Publish(st))
	return cas, g, p, ini, st
}

func Test_out01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("out01. table and summary")

	cas, g, p, ini, st := solve(tst, "../examples/twophase.json")
	tests.CheckSaturations(tst, st, p, 1e-12)
	res, err := NewResults(cas.Key, st, g, ini.Regions())
	require.NoError(tst, err)

	// table
	lines := strings.Split(strings.TrimSpace(res.Table().String()), "\n")
	require.Len(tst, lines, 11)
	assert.Contains(tst, lines[0], "p_water")
	assert.Contains(tst, lines[0], "s_oil")
	assert.NotContains(tst, lines[0], "p_gas")
	if chk.Verbose {
		io.Pf("%v\n", res.Table())
	}

	// summary
	sums := res.Summary()
	require.Len(tst, sums, 1)
	s := sums[0]
	io.Pforan("%v\n", s)
	chk.Int(tst, "region", s.Region, 1)
	chk.Int(tst, "ncells", s.Ncells, 10)
	chk.Float64(tst, "zmin", 1e-12, s.Zmin, 2005)
	chk.Float64(tst, "zmax", 1e-12, s.Zmax, 2095)
	po := st.PhasePressure(phase.Liquid)
	chk.Float64(tst, "pmin", 1e-15, s.Pmin, po[0])
	chk.Float64(tst, "pmax", 1e-15, s.Pmax, po[9])
	chk.Float64(tst, "sw + so", 1e-12, s.Sat[phase.Aqua]+s.Sat[phase.Liquid], 1)
	chk.Float64(tst, "sg", 1e-15, s.Sat[phase.Vapour], 0)
	assert.True(tst, s.Sat[phase.Aqua] > 0.2)
	if chk.Verbose {
		res.PrintSummary()
	}

	// file
	dirout := tst.TempDir()
	fn, err := res.WriteTable(dirout)
	require.NoError(tst, err)
	assert.True(tst, strings.HasSuffix(fn, "twophase.equil.txt"))
	b, err := os.ReadFile(fn)
	require.NoError(tst, err)
	assert.Equal(tst, res.Table().String(), string(b))
}

func Test_out02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("out02. analytical oil column")

	cas, g, p, _, st := solve(tst, "../examples/twophase.json")
	rec := cas.Equil[0]
	ref := OilColumn("oil", rec, p.Fluids(0).Oil, cas.Data.Gravity, g.CellDepth(0), g.CellDepth(9), 10)
	chk.Array(tst, "z", 1e-10, ref.Z, []float64{2005, 2015, 2025, 2035, 2045, 2055, 2065, 2075, 2085, 2095})
	chk.Array(tst, "po", 1e-3, st.PhasePressure(phase.Liquid), ref.V)

	// datum
	ref = OilColumn("oil", rec, p.Fluids(0).Oil, cas.Data.Gravity, rec.Main.Depth, rec.Main.Depth+10, 2)
	chk.Float64(tst, "p(datum)", 1e-15, ref.V[0], rec.Main.Press)

	if chk.Verbose {
		res, err := NewResults(cas.Key, st, g, nil)
		require.NoError(tst, err)
		res.Plot("/tmp/opm-core", []Curve{ref})
	}
}

func Test_out03(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("out03. regions and mismatch")

	cas, g, _, ini, st := solve(tst, "../examples/threephase.yaml")
	res, err := NewResults(cas.Key, st, g, ini.Regions())
	require.NoError(tst, err)

	sums := res.Summary()
	require.Len(tst, sums, 2)
	for _, s := range sums {
		chk.Int(tst, "ncells", s.Ncells, 10)
		chk.Float64(tst, "sw+so+sg", 1e-12, s.Sat[phase.Aqua]+s.Sat[phase.Liquid]+s.Sat[phase.Vapour], 1)
		assert.True(tst, s.Rs > 0)
	}

	// without regions all cells are summarised together
	res.Regs = nil
	sums = res.Summary()
	require.Len(tst, sums, 1)
	chk.Int(tst, "ncells", sums[0].Ncells, 20)

	// wrong sizes
	small := state.NewBlackoil(3, st.Usage)
	_, err = NewResults("x", small, g, nil)
	assert.Error(tst, err)
}
