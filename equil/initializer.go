// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"sync"

	"github.com/danielfmva/opm-core/phase"
	"github.com/danielfmva/opm-core/state"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/sirupsen/logrus"
)

// Options holds the settings of the equilibration
type Options struct {
	Gravity  float64 // acceleration of gravity along depth [m/s²]
	Nsteps   int     // number of RK4 steps on each side of an anchor
	Parallel bool    // compute regions concurrently
}

// SetDefault sets default values
func (o *Options) SetDefault() {
	o.Gravity = Gravity
	o.Nsteps = NumSteps
}

// NewOptions returns default options. Callers should start from these since a zero
// Gravity given to NewInitializer is taken as is
func NewOptions() *Options {
	o := new(Options)
	o.SetDefault()
	return o
}

// Initializer computes the initial state of all equilibration regions. Results are kept
// in private arrays and copied into a state container by Publish only after every
// region has been computed successfully
type Initializer struct {
	props    Props
	grid     Grid
	usage    phase.Usage
	opts     Options
	recs     []Record       // one per region
	regs     *RegionMapping // cells of each region
	rsFunc   []Miscibility  // [nregions] Rs functions
	rvFunc   []Miscibility  // [nregions] Rv functions
	swatinit []float64      // [ncells] prescribed water saturation; may be nil

	// results
	press [][]float64 // [np][ncells] phase pressures
	sat   [][]float64 // [np][ncells] phase saturations
	rs    []float64   // [ncells] dissolved gas-oil ratio
	rv    []float64   // [ncells] vaporised oil-gas ratio
	scale []float64   // [ncells] multiplier of the water-oil capillary curve
	done  bool        // results are available
}

// NewInitializer validates the deck and sets up the regions and their miscibility functions.
// opts may be nil, meaning default options. A non-nil opts is used as given except for a
// non-positive Nsteps; see NewOptions
func NewInitializer(props Props, g Grid, deck *Deck, opts *Options) (o *Initializer, err error) {

	// records
	recs, err := GetEquil(deck)
	if err != nil {
		return
	}

	// regions
	ids, err := Equilnum(deck, g)
	if err != nil {
		return
	}
	regs, err := NewRegionMapping(ids)
	if err != nil {
		return
	}
	if regs.NumRegions() > len(recs) {
		return nil, failure(ErrInconsistent, "cells refer to equilibration region %d but only %d EQUIL records are given", regs.NumRegions(), len(recs))
	}

	// phases
	usage := props.Usage()
	if !usage.Has(phase.Liquid) {
		return nil, failure(ErrUnsupported, "equilibration requires an active oil phase")
	}

	// options
	o = &Initializer{props: props, grid: g, usage: usage, recs: recs, regs: regs}
	o.opts.SetDefault()
	if opts != nil {
		o.opts = *opts
		if o.opts.Nsteps < 1 {
			o.opts.Nsteps = NumSteps
		}
	}

	// miscibility
	o.rsFunc = make([]Miscibility, len(recs))
	o.rvFunc = make([]Miscibility, len(recs))
	for r, rec := range recs {
		var rsSat, rvSat SatFunc
		if r < regs.NumRegions() && len(regs.Cells(r)) > 0 {
			cell := regs.Cells(r)[0]
			rsSat = func(p, t float64) float64 { return props.RsSat(cell, p, t) }
			rvSat = func(p, t float64) float64 { return props.RvSat(cell, p, t) }
		}
		o.rsFunc[r], err = newMiscibility("RSVD", r, rec, deck.DisGas, rec.LiveOilTableIndex, deck.Rsvd, rsSat, rec.Main.Press)
		if err != nil {
			return nil, err
		}
		o.rvFunc[r], err = newMiscibility("RVVD", r, rec, deck.VapOil, rec.WetGasTableIndex, deck.Rvvd, rvSat, rec.Main.Press+rec.Goc.Press)
		if err != nil {
			return nil, err
		}
	}

	// prescribed water saturation
	o.swatinit, err = Swatinit(deck, g)
	if err != nil {
		return nil, err
	}
	return
}

// newMiscibility selects the Rs or Rv function of region r. satf is nil for regions
// without cells; their data are validated but no function is built
func newMiscibility(key string, r int, rec Record, active bool, index int, tables []Table, satf SatFunc, pContact float64) (Miscibility, error) {
	if !active {
		return NoMixing{}, nil
	}
	if index > 0 {
		if index > len(tables) {
			return nil, failure(ErrMissingTable, "%s table %d not available", key, index)
		}
		tab := tables[index-1]
		fn, err := NewDepthTable(satf, tab.Depth, tab.Ratio)
		if err != nil {
			return nil, failure(ErrInconsistent, "%s table %d: %v", key, index, err)
		}
		return fn, nil
	}
	if rec.Goc.Depth != rec.Main.Depth {
		return nil, failure(ErrUnsupported, "when no explicit %s table is given, the datum depth must be at the gas-oil contact. In EQUIL region %d (counting from 1), this does not hold", key, r+1)
	}
	if satf == nil {
		return NoMixing{}, nil
	}
	return NewSatAtContact(satf, pContact, Temperature), nil
}

// Compute computes pressures, saturations, Rs and Rv of all regions. Regions without
// cells are skipped. The first error (in region order) is returned
func (o *Initializer) Compute() (err error) {
	if o.done {
		return
	}
	ncells := o.grid.NumCells()
	o.press = utl.Alloc(o.usage.Num, ncells)
	o.sat = utl.Alloc(o.usage.Num, ncells)
	o.rs = make([]float64, ncells)
	o.rv = make([]float64, ncells)
	o.scale = make([]float64, ncells)
	for c := range o.scale {
		o.scale[c] = 1
	}

	nreg := o.regs.NumRegions()
	errs := make([]error, nreg)
	if o.opts.Parallel {
		var wg sync.WaitGroup
		for r := 0; r < nreg; r++ {
			wg.Add(1)
			go func(r int) {
				defer wg.Done()
				errs[r] = o.computeRegion(r)
			}(r)
		}
		wg.Wait()
	} else {
		for r := 0; r < nreg; r++ {
			errs[r] = o.computeRegion(r)
			if errs[r] != nil {
				break
			}
		}
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	o.done = true
	return
}

// computeRegion computes region r and scatters its results. Regions are disjoint, thus
// concurrent calls write to different positions
func (o *Initializer) computeRegion(r int) (err error) {
	cells := o.regs.Cells(r)
	if len(cells) == 0 {
		return
	}
	reg := &Region{
		Rec:   o.recs[r],
		Rho:   NewDensityCalculator(o.props, cells[0]),
		Rs:    o.rsFunc[r],
		Rv:    o.rvFunc[r],
		Usage: o.usage,
	}
	logrus.Debugf("equil: region %d (counting from 1): %d cells: %v", r+1, len(cells), reg.Rec)

	press, err := PhasePressures(o.grid, reg, cells, o.opts.Gravity, o.opts.Nsteps)
	if err != nil {
		return
	}
	temp := temperature(cells)
	sat, scale := PhaseSaturations(reg, cells, o.props, o.swatinit, press)

	for p := 0; p < o.usage.Num; p++ {
		scatter(press[p], cells, o.press[p])
		scatter(sat[p], cells, o.sat[p])
	}
	scatter(scale, cells, o.scale)
	if o.usage.Has(phase.Liquid) && o.usage.Has(phase.Vapour) {
		jo, jg := o.usage.Pos[phase.Liquid], o.usage.Pos[phase.Vapour]
		scatter(ComputeRs(o.grid, cells, press[jo], temp, reg.Rs, sat[jg]), cells, o.rs)
		scatter(ComputeRs(o.grid, cells, press[jg], temp, reg.Rv, sat[jo]), cells, o.rv)
	}
	return
}

// scatter copies the values of a region into a global array
func scatter(src []float64, cells []int, dest []float64) {
	for i, c := range cells {
		dest[c] = src[i]
	}
}

// Publish copies the results into st
func (o *Initializer) Publish(st *state.Blackoil) (err error) {
	if !o.done {
		return chk.Err("equil: results are not available; Compute must succeed before Publish")
	}
	if st.NumCells() != o.grid.NumCells() || st.Usage != o.usage {
		return chk.Err("equil: state with %d cells and %d phases does not match grid with %d cells and %d phases", st.NumCells(), st.Usage.Num, o.grid.NumCells(), o.usage.Num)
	}
	for p := 0; p < o.usage.Num; p++ {
		copy(st.Pressure[p], o.press[p])
		copy(st.Saturation[p], o.sat[p])
	}
	copy(st.Rs, o.rs)
	copy(st.Rv, o.rv)
	copy(st.PcowScale, o.scale)
	return
}

// Records returns the equilibration records
func (o *Initializer) Records() []Record { return o.recs }

// Regions returns the region mapping
func (o *Initializer) Regions() *RegionMapping { return o.regs }

// Usage returns the active phases
func (o *Initializer) Usage() phase.Usage { return o.usage }

// Press returns the [np][ncells] phase pressures
func (o *Initializer) Press() [][]float64 { return o.press }

// Saturation returns the [np][ncells] phase saturations
func (o *Initializer) Saturation() [][]float64 { return o.sat }

// Rs returns the dissolved gas-oil ratio of each cell
func (o *Initializer) Rs() []float64 { return o.rs }

// Rv returns the vaporised oil-gas ratio of each cell
func (o *Initializer) Rv() []float64 { return o.rv }

// PcowScale returns the multiplier of the water-oil capillary curve of each cell
func (o *Initializer) PcowScale() []float64 { return o.scale }

// InitStateEquil computes the initial state by equilibration and stores it in st. st is
// not modified if any step fails
func InitStateEquil(g Grid, props Props, deck *Deck, opts *Options, st *state.Blackoil) (err error) {
	ini, err := NewInitializer(props, g, deck, opts)
	if err != nil {
		return
	}
	err = ini.Compute()
	if err != nil {
		return
	}
	return ini.Publish(st)
}
