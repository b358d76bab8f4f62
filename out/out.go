// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of initial states: per-cell tables, per-region
// summaries and plots along depth
package out

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/danielfmva/opm-core/equil"
	"github.com/danielfmva/opm-core/phase"
	"github.com/danielfmva/opm-core/state"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Results holds an initial state together with its grid and equilibration regions
type Results struct {
	Key  string               // case key; e.g. "twophase"
	St   *state.Blackoil      // initial state
	Grid equil.Grid           // grid
	Regs *equil.RegionMapping // cells of each region
}

// NewResults returns a new Results structure
func NewResults(key string, st *state.Blackoil, g equil.Grid, regs *equil.RegionMapping) (o *Results, err error) {
	if st.NumCells() != g.NumCells() {
		return nil, chk.Err("out: state has %d cells but grid has %d cells", st.NumCells(), g.NumCells())
	}
	return &Results{key, st, g, regs}, nil
}

// region returns the one-based region of cell c
func (o *Results) region(c int) int {
	if o.Regs == nil {
		return 1
	}
	return o.Regs.Region(c) + 1
}

// Table returns the per-cell results as a text table
func (o *Results) Table() (buf *bytes.Buffer) {
	buf = new(bytes.Buffer)
	phases := o.St.Usage.Phases()
	io.Ff(buf, "%6s%8s%6s%12s", "cell", "deck", "reg", "depth")
	for _, ph := range phases {
		io.Ff(buf, "%18s", "p_"+ph.String())
	}
	for _, ph := range phases {
		io.Ff(buf, "%12s", "s_"+ph.String())
	}
	io.Ff(buf, "%14s%14s%12s\n", "rs", "rv", "pcowscale")
	for c := 0; c < o.St.NumCells(); c++ {
		io.Ff(buf, "%6d%8d%6d%12.4f", c, o.Grid.GlobalCell(c), o.region(c), o.Grid.CellDepth(c))
		for _, ph := range phases {
			io.Ff(buf, "%18.6f", o.St.Pressure[o.St.Usage.Pos[ph]][c])
		}
		for _, ph := range phases {
			io.Ff(buf, "%12.8f", o.St.Saturation[o.St.Usage.Pos[ph]][c])
		}
		io.Ff(buf, "%14.6e%14.6e%12.6f\n", o.St.Rs[c], o.St.Rv[c], o.St.PcowScale[c])
	}
	return
}

// WriteTable writes the per-cell table to <dirout>/<key>.equil.txt
func (o *Results) WriteTable(dirout string) (fn string, err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return "", chk.Err("out: cannot create directory %q:\n%v", dirout, err)
	}
	fn = filepath.Join(dirout, o.Key+".equil.txt")
	err = os.WriteFile(fn, o.Table().Bytes(), 0644)
	if err != nil {
		return "", chk.Err("out: cannot write file %q:\n%v", fn, err)
	}
	return
}

// RegionSummary holds statistics of one equilibration region
type RegionSummary struct {
	Region     int                // one-based region number
	Ncells     int                // number of cells
	Zmin, Zmax float64            // depth range of cell centres
	Pmin, Pmax float64            // range of the oil pressure
	Sat        [phase.Max]float64 // mean saturation of each phase; zero if inactive
	Rs, Rv     float64            // mean Rs and Rv
}

// String prints the summary of a region
func (o RegionSummary) String() string {
	return io.Sf("region %d: %d cells; z=[%g, %g]; po=[%g, %g]; sw=%.4f so=%.4f sg=%.4f; rs=%g rv=%g",
		o.Region, o.Ncells, o.Zmin, o.Zmax, o.Pmin, o.Pmax,
		o.Sat[phase.Aqua], o.Sat[phase.Liquid], o.Sat[phase.Vapour], o.Rs, o.Rv)
}

// Summary computes the statistics of each region with cells
func (o *Results) Summary() (res []RegionSummary) {
	nreg := 1
	if o.Regs != nil {
		nreg = o.Regs.NumRegions()
	}
	for r := 0; r < nreg; r++ {
		var cells []int
		if o.Regs == nil {
			cells = make([]int, o.St.NumCells())
			for c := range cells {
				cells[c] = c
			}
		} else {
			cells = o.Regs.Cells(r)
		}
		if len(cells) == 0 {
			continue
		}
		s := RegionSummary{Region: r + 1, Ncells: len(cells)}
		z := gather(cells, o.Grid.CellDepth)
		s.Zmin, s.Zmax = floats.Min(z), floats.Max(z)
		if o.St.Usage.Has(phase.Liquid) {
			po := gatherArray(cells, o.St.PhasePressure(phase.Liquid))
			s.Pmin, s.Pmax = floats.Min(po), floats.Max(po)
		}
		for _, ph := range o.St.Usage.Phases() {
			s.Sat[ph] = stat.Mean(gatherArray(cells, o.St.PhaseSaturation(ph)), nil)
		}
		s.Rs = stat.Mean(gatherArray(cells, o.St.Rs), nil)
		s.Rv = stat.Mean(gatherArray(cells, o.St.Rv), nil)
		res = append(res, s)
	}
	return
}

// PrintSummary prints the statistics of each region
func (o *Results) PrintSummary() {
	io.Pf("%s: %d cells, %d phases\n", o.Key, o.St.NumCells(), o.St.Usage.Num)
	for _, s := range o.Summary() {
		io.Pf("  %v\n", s)
	}
}

// gather computes f for each cell
func gather(cells []int, f func(c int) float64) (v []float64) {
	v = make([]float64, len(cells))
	for i, c := range cells {
		v[i] = f(c)
	}
	return
}

// gatherArray collects the values of the given cells
func gatherArray(cells []int, a []float64) (v []float64) {
	v = make([]float64, len(cells))
	for i, c := range cells {
		v[i] = a[c]
	}
	return
}
