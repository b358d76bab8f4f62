// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package props implements a black-oil property evaluator with linear compressibility
// fluids and capillary pressure curves given per saturation region
package props

import (
	"github.com/danielfmva/opm-core/mdl/fluid"
	"github.com/danielfmva/opm-core/mdl/retention"
	"github.com/danielfmva/opm-core/phase"

	"github.com/cpmech/gosl/chk"
)

// Fluids holds the fluid models of one PVT region
type Fluids struct {
	Water fluid.Model    // water density
	Oil   fluid.Model    // oil density; Rdis multiplies Rs
	Gas   fluid.Model    // gas density; Rdis multiplies Rv
	RsSat fluid.SatTable // saturated Rs(p)
	RvSat fluid.SatTable // saturated Rv(p)
}

// Curves holds the capillary pressure curves of one saturation region
type Curves struct {
	Pcow retention.Model // water-oil: Pcow(sw)
	Pcgo retention.Model // gas-oil: Pcgo(sg)
}

// Blackoil evaluates fluid and rock properties cell by cell
type Blackoil struct {
	usage  phase.Usage       // active phases
	fluids []*Fluids         // [npvt]
	curves []*Curves         // [nsat]
	pvtnum []int             // [ncells] zero-based PVT region; nil means region 0
	satnum []int             // [ncells] zero-based saturation region; nil means region 0
	pcow   []retention.Model // [ncells] scaled water-oil curves; nil if not scaled
	ncells int               // number of cells
}

// NewBlackoil returns a new property evaluator
//  pvtnum, satnum -- zero-based region of each cell or nil (all cells in region 0)
func NewBlackoil(usage phase.Usage, ncells int, fluids []*Fluids, curves []*Curves, pvtnum, satnum []int) (o *Blackoil, err error) {
	if len(fluids) == 0 || len(curves) == 0 {
		return nil, chk.Err("props: at least one PVT region and one saturation region are required")
	}
	err = checkRegions("PVTNUM", pvtnum, ncells, len(fluids))
	if err != nil {
		return
	}
	err = checkRegions("SATNUM", satnum, ncells, len(curves))
	if err != nil {
		return
	}
	for i, cv := range curves {
		if usage.Has(phase.Aqua) && cv.Pcow == nil {
			return nil, chk.Err("props: saturation region %d needs a water-oil capillary curve", i+1)
		}
		if usage.Has(phase.Vapour) && cv.Pcgo == nil {
			return nil, chk.Err("props: saturation region %d needs a gas-oil capillary curve", i+1)
		}
	}
	return &Blackoil{usage, fluids, curves, pvtnum, satnum, nil, ncells}, nil
}

// checkRegions checks the region of each cell
func checkRegions(key string, num []int, ncells, nreg int) error {
	if num == nil {
		return nil
	}
	if len(num) != ncells {
		return chk.Err("props: %s has %d values but there are %d cells", key, len(num), ncells)
	}
	for c, r := range num {
		if r < 0 || r >= nreg {
			return chk.Err("props: %s of cell %d is %d but there are %d regions", key, c, r+1, nreg)
		}
	}
	return nil
}

// Usage returns the active phases
func (o *Blackoil) Usage() phase.Usage {
	return o.usage
}

// NumCells returns the number of cells
func (o *Blackoil) NumCells() int {
	return o.ncells
}

// Fluids returns the fluid models of cell c
func (o *Blackoil) Fluids(c int) *Fluids {
	if o.pvtnum == nil {
		return o.fluids[0]
	}
	return o.fluids[o.pvtnum[c]]
}

// Curves returns the (unscaled) capillary pressure curves of cell c
func (o *Blackoil) Curves(c int) *Curves {
	if o.satnum == nil {
		return o.curves[0]
	}
	return o.curves[o.satnum[c]]
}

// Density computes the density of phase ph in cell c. Temperature has no effect
func (o *Blackoil) Density(c int, ph phase.Phase, p, temp, ratio float64) float64 {
	f := o.Fluids(c)
	switch ph {
	case phase.Aqua:
		return f.Water.Density(p, 0)
	case phase.Vapour:
		return f.Gas.Density(p, ratio)
	}
	return f.Oil.Density(p, ratio)
}

// RsSat computes the saturated dissolved gas-oil ratio in cell c
func (o *Blackoil) RsSat(c int, p, temp float64) float64 {
	return o.Fluids(c).RsSat.Eval(p)
}

// RvSat computes the saturated vaporised oil-gas ratio in cell c
func (o *Blackoil) RvSat(c int, p, temp float64) float64 {
	return o.Fluids(c).RvSat.Eval(p)
}

// Pcow returns the water-oil capillary curve of cell c including any scaling
func (o *Blackoil) Pcow(c int) retention.Model {
	if o.pcow != nil {
		return o.pcow[c]
	}
	return o.Curves(c).Pcow
}

// CapPress computes Pcow(s) for water and Pcgo(s) for gas in cell c; zero for oil
func (o *Blackoil) CapPress(c int, ph phase.Phase, s float64) float64 {
	switch ph {
	case phase.Aqua:
		return o.Pcow(c).Pc(s)
	case phase.Vapour:
		return o.Curves(c).Pcgo.Pc(s)
	}
	return 0
}

// SatRange returns the saturation end points of the capillary curve of phase ph in cell c
func (o *Blackoil) SatRange(c int, ph phase.Phase) (smin, smax float64) {
	switch ph {
	case phase.Aqua:
		m := o.Curves(c).Pcow
		return m.SMin(), m.SMax()
	case phase.Vapour:
		m := o.Curves(c).Pcgo
		return m.SMin(), m.SMax()
	}
	return 0, 1
}

// ApplyPcowScaling scales the water-oil capillary curve of each cell, e.g. with the
// multipliers obtained from SWATINIT
func (o *Blackoil) ApplyPcowScaling(scale []float64) (err error) {
	if !o.usage.Has(phase.Aqua) {
		return chk.Err("props: cannot scale water-oil capillary curves without water")
	}
	if len(scale) != o.ncells {
		return chk.Err("props: number of multipliers (%d) must be equal to the number of cells (%d)", len(scale), o.ncells)
	}
	pcow := make([]retention.Model, o.ncells)
	for c, f := range scale {
		if f <= 0 {
			return chk.Err("props: multiplier of cell %d must be positive: %g", c, f)
		}
		pcow[c] = retention.NewScaled(o.Curves(c).Pcow, f)
	}
	o.pcow = pcow
	return
}
