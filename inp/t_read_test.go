// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielfmva/opm-core/equil"
	"github.com/danielfmva/opm-core/phase"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCase writes a case file into a temporary directory
func writeCase(tst *testing.T, fn, content string) string {
	path := filepath.Join(tst.TempDir(), fn)
	require.NoError(tst, os.WriteFile(path, []byte(content), 0644))
	return path
}

func Test_read01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("read01. JSON case")

	cas, err := ReadCase("../examples/twophase.json")
	require.NoError(tst, err)
	io.Pforan("desc = %v\n", cas.Data.Desc)

	assert.Equal(tst, "twophase", cas.Key)
	assert.Equal(tst, "/tmp/opm-core", cas.Data.DirOut)
	assert.Equal(tst, 100, cas.Data.Nsteps)
	assert.False(tst, cas.Data.Parallel)
	chk.Float64(tst, "gravity", 1e-15, cas.Data.Gravity, 9.80665)

	require.Len(tst, cas.Equil, 1)
	rec := cas.Equil[0]
	chk.Float64(tst, "datum depth", 1e-15, rec.Main.Depth, 2000)
	chk.Float64(tst, "datum press", 1e-15, rec.Main.Press, 3e7)
	chk.Float64(tst, "woc depth", 1e-15, rec.Woc.Depth, 2070)
	chk.Int(tst, "rsvd", rec.LiveOilTableIndex, 0)

	usage, err := cas.Usage()
	require.NoError(tst, err)
	chk.Int(tst, "np", usage.Num, 2)
	assert.True(tst, usage.Has(phase.Aqua))
	assert.False(tst, usage.Has(phase.Vapour))

	g, err := cas.NewGrid()
	require.NoError(tst, err)
	chk.Int(tst, "ncells", g.NumCells(), 10)
	chk.Float64(tst, "depth of first cell", 1e-12, g.CellDepth(0), 2005)
	chk.Float64(tst, "depth of last cell", 1e-12, g.CellDepth(9), 2095)

	p, err := cas.NewProps(g)
	require.NoError(tst, err)
	chk.Float64(tst, "ρw(p0)", 1e-12, p.Density(0, phase.Aqua, 1e5, 0, 0), 1000)
	chk.Float64(tst, "ρo(p0)", 1e-12, p.Density(0, phase.Liquid, 1e5, 0, 0), 800)
	chk.Float64(tst, "Pcow(0.2)", 1e-10, p.CapPress(0, phase.Aqua, 0.2), 1e5)
	chk.Float64(tst, "Pcow(0.6)", 1e-10, p.CapPress(0, phase.Aqua, 0.6), 5e4)
	smin, smax := p.SatRange(0, phase.Aqua)
	chk.Float64(tst, "smin", 1e-15, smin, 0.2)
	chk.Float64(tst, "smax", 1e-15, smax, 1.0)

	deck := cas.Deck()
	assert.False(tst, deck.DisGas)
	assert.Nil(tst, deck.Eqlnum)
	assert.Nil(tst, deck.Swatinit)
}

func Test_read02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("read02. YAML case")

	cas, err := ReadCase("../examples/threephase.yaml")
	require.NoError(tst, err)

	assert.Equal(tst, "threephase", cas.Key)
	assert.True(tst, cas.Data.Parallel)
	chk.Float64(tst, "default gravity", 1e-15, cas.Data.Gravity, equil.Gravity)
	chk.Int(tst, "default nsteps", cas.Data.Nsteps, equil.NumSteps)

	require.Len(tst, cas.Equil, 2)
	chk.Int(tst, "rsvd of region 2", cas.Equil[1].LiveOilTableIndex, 1)
	chk.Int(tst, "rvvd of region 2", cas.Equil[1].WetGasTableIndex, 1)
	chk.Ints(tst, "eqlnum[:4]", cas.Eqlnum[:4], []int{1, 2, 1, 2})
	require.Len(tst, cas.Rsvd, 1)
	chk.Array(tst, "rsvd depth", 1e-15, cas.Rsvd[0].Depth, []float64{2000, 2100})
	chk.Array(tst, "rvvd ratio", 1e-15, cas.Rvvd[0].Ratio, []float64{2e-4, 1e-4})

	deck := cas.Deck()
	assert.True(tst, deck.DisGas)
	assert.True(tst, deck.VapOil)

	opts := cas.Options()
	assert.True(tst, opts.Parallel)
	chk.Int(tst, "opts.Nsteps", opts.Nsteps, equil.NumSteps)

	g, err := cas.NewGrid()
	require.NoError(tst, err)
	chk.Int(tst, "ncells", g.NumCells(), 20)

	p, err := cas.NewProps(g)
	require.NoError(tst, err)
	chk.Int(tst, "np", p.Usage().Num, 3)
	chk.Float64(tst, "Rs_sat", 1e-10, p.RsSat(0, 2.005e7, equil.Temperature), 100)
	chk.Float64(tst, "Rv_sat", 1e-15, p.RvSat(0, 1e5, equil.Temperature), 0)
	chk.Float64(tst, "ρo(p0, rs=100)", 1e-12, p.Density(0, phase.Liquid, 1e5, 0, 100), 770)
	chk.Float64(tst, "Pcgo(0.2)", 1e-10, p.CapPress(0, phase.Vapour, 0.2), 2e4)
	chk.Float64(tst, "Pcow(1.0)", 1e-10, p.CapPress(0, phase.Aqua, 1.0), 1e4)
	_, smax := p.SatRange(0, phase.Vapour)
	chk.Float64(tst, "sg max", 1e-15, smax, 0.85)
}

func Test_read03(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("read03. errors")

	_, err := ReadCase("../examples/nonexistent.json")
	assert.Error(tst, err)

	// unknown keys are rejected in YAML
	path := writeCase(tst, "unknown.yaml", "data:\n  desc: x\n  colour: red\n")
	_, err = ReadCase(path)
	assert.Error(tst, err)

	// malformed JSON
	path = writeCase(tst, "bad.json", `{"data": {"desc": }`)
	_, err = ReadCase(path)
	assert.Error(tst, err)

	// no active phase
	path = writeCase(tst, "nophase.json", `{"grid": {"nx": 1, "ny": 1, "nz": 1, "tops": [0], "dz": [1]}}`)
	cas, err := ReadCase(path)
	require.NoError(tst, err)
	_, err = cas.Usage()
	assert.Error(tst, err)

	// unknown retention model
	path = writeCase(tst, "badmodel.yaml", `
phases: { water: true, oil: true }
grid: { nx: 1, ny: 1, nz: 2, tops: [0], dz: [1, 1] }
pvt:
  - water: [ { n: R0, v: 1000 } ]
    oil: [ { n: R0, v: 800 } ]
sat:
  - pcow: { model: vg }
`)
	cas, err = ReadCase(path)
	require.NoError(tst, err)
	g, err := cas.NewGrid()
	require.NoError(tst, err)
	_, err = cas.NewProps(g)
	assert.Error(tst, err)

	// wrong fluid parameter
	path = writeCase(tst, "badfluid.yaml", `
phases: { water: true, oil: true }
grid: { nx: 1, ny: 1, nz: 2, tops: [0], dz: [1, 1] }
pvt:
  - water: [ { n: R0, v: 1000 }, { n: mu, v: 1e-3 } ]
    oil: [ { n: R0, v: 800 } ]
sat:
  - pcow: { s: [0.2, 1], pc: [1e5, 0] }
`)
	cas, err = ReadCase(path)
	require.NoError(tst, err)
	g, err = cas.NewGrid()
	require.NoError(tst, err)
	_, err = cas.NewProps(g)
	assert.Error(tst, err)

	// PVTNUM too short
	path = writeCase(tst, "pvtnum.yaml", `
phases: { water: true, oil: true }
grid: { nx: 1, ny: 1, nz: 2, tops: [0], dz: [1, 1] }
pvtnum: [1]
pvt:
  - water: [ { n: R0, v: 1000 } ]
    oil: [ { n: R0, v: 800 } ]
sat:
  - pcow: { s: [0.2, 1], pc: [1e5, 0] }
`)
	cas, err = ReadCase(path)
	require.NoError(tst, err)
	g, err = cas.NewGrid()
	require.NoError(tst, err)
	_, err = cas.NewProps(g)
	assert.Error(tst, err)
}

func Test_read04(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("read04. regions of active cells")

	path := writeCase(tst, "regions.yaml", `
phases: { water: true, oil: true }
grid: { nx: 1, ny: 1, nz: 3, tops: [0], dz: [1, 1, 1], actnum: [1, 0, 1] }
pvtnum: [1, 1, 2]
satnum: [2, 2, 1]
pvt:
  - water: [ { n: R0, v: 1000 } ]
    oil: [ { n: R0, v: 800 } ]
  - water: [ { n: R0, v: 1100 } ]
    oil: [ { n: R0, v: 700 } ]
sat:
  - pcow: { s: [0.2, 1], pc: [1e5, 0] }
  - pcow: { s: [0.1, 1], pc: [2e5, 0] }
`)
	cas, err := ReadCase(path)
	require.NoError(tst, err)
	g, err := cas.NewGrid()
	require.NoError(tst, err)
	chk.Int(tst, "ncells", g.NumCells(), 2)

	pvtnum, err := cellRegions("PVTNUM", cas.Pvtnum, g)
	require.NoError(tst, err)
	chk.Ints(tst, "pvtnum", pvtnum, []int{0, 1})
	satnum, err := cellRegions("SATNUM", cas.Satnum, g)
	require.NoError(tst, err)
	chk.Ints(tst, "satnum", satnum, []int{1, 0})

	p, err := cas.NewProps(g)
	require.NoError(tst, err)
	chk.Float64(tst, "ρw cell 1", 1e-12, p.Density(1, phase.Aqua, 0, 0, 0), 1100)
	chk.Float64(tst, "Pcow cell 0", 1e-10, p.CapPress(0, phase.Aqua, 0.1), 2e5)
	chk.Float64(tst, "Pcow cell 1", 1e-10, p.CapPress(1, phase.Aqua, 0.1), 1e5)
}
