// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"github.com/danielfmva/opm-core/phase"

	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// Region bundles the data of one equilibration region
type Region struct {
	Rec   Record            // equilibration record
	Rho   DensityCalculator // densities
	Rs    Miscibility       // dissolved gas-oil ratio
	Rv    Miscibility       // vaporised oil-gas ratio
	Usage phase.Usage       // active phases
}

// Datum returns the datum depth
func (o *Region) Datum() float64 { return o.Rec.Main.Depth }

// Pressure returns the oil pressure at the datum
func (o *Region) Pressure() float64 { return o.Rec.Main.Press }

// Zwoc returns the depth of the water-oil contact
func (o *Region) Zwoc() float64 { return o.Rec.Woc.Depth }

// PcowWoc returns the water-oil capillary pressure at the water-oil contact
func (o *Region) PcowWoc() float64 { return o.Rec.Woc.Press }

// Zgoc returns the depth of the gas-oil contact
func (o *Region) Zgoc() float64 { return o.Rec.Goc.Depth }

// PcgoGoc returns the gas-oil capillary pressure at the gas-oil contact
func (o *Region) PcgoGoc() float64 { return o.Rec.Goc.Press }

// PressureProfiles holds the solution of the hydrostatic equation of each active phase
type PressureProfiles struct {
	Oil   *RK4IVP // oil pressure; anchored at the datum
	Water *RK4IVP // water pressure; anchored at the water-oil contact. nil if inactive
	Gas   *RK4IVP // gas pressure; anchored at the gas-oil contact. nil if inactive
}

// NewPressureProfiles integrates the hydrostatic equation
//
//   dp_α/dz = ρ_α(z, p_α)・g
//
// for each active phase across span. The oil pressure starts at the datum; the water
// pressure starts at the water-oil contact with p_o - Pcow; the gas pressure starts at
// the gas-oil contact with p_o + Pcgo. Oil and gas densities depend on depth through Rs
// and Rv evaluated as if the complementary phase were absent. Densities are evaluated
// at the current stage pressure without any further iteration
func NewPressureProfiles(reg *Region, span [2]float64, grav float64, nsteps int) (o *PressureProfiles, err error) {
	if !reg.Usage.Has(phase.Liquid) {
		return nil, failure(ErrUnsupported, "oil phase must be active since the datum pressure is an oil pressure")
	}
	temp := Temperature
	o = new(PressureProfiles)

	// oil
	oil := func(z, p float64) float64 {
		rs := reg.Rs.Eval(z, p, temp, 0)
		return reg.Rho.Density(phase.Liquid, p, temp, rs) * grav
	}
	o.Oil = NewRK4IVP(oil, span, reg.Datum(), reg.Pressure(), nsteps)

	// water
	if reg.Usage.Has(phase.Aqua) {
		water := func(z, p float64) float64 {
			return reg.Rho.Density(phase.Aqua, p, temp, 0) * grav
		}
		pw0 := o.Oil.Eval(reg.Zwoc()) - reg.PcowWoc()
		o.Water = NewRK4IVP(water, span, reg.Zwoc(), pw0, nsteps)
	}

	// gas
	if reg.Usage.Has(phase.Vapour) {
		gas := func(z, p float64) float64 {
			rv := reg.Rv.Eval(z, p, temp, 0)
			return reg.Rho.Density(phase.Vapour, p, temp, rv) * grav
		}
		pg0 := o.Oil.Eval(reg.Zgoc()) + reg.PcgoGoc()
		o.Gas = NewRK4IVP(gas, span, reg.Zgoc(), pg0, nsteps)
	}
	return
}

// Eval computes the pressure of phase ph at depth z
func (o *PressureProfiles) Eval(ph phase.Phase, z float64) float64 {
	switch ph {
	case phase.Aqua:
		return o.Water.Eval(z)
	case phase.Vapour:
		return o.Gas.Eval(z)
	}
	return o.Oil.Eval(z)
}

// Span returns the depth interval covering the cells, the datum and the active contacts
func Span(g Grid, reg *Region, cells []int) (span [2]float64) {
	z := make([]float64, 0, len(cells)+3)
	for _, c := range cells {
		z = append(z, g.CellDepth(c))
	}
	z = append(z, reg.Datum())
	if reg.Usage.Has(phase.Aqua) {
		z = append(z, reg.Zwoc())
	}
	if reg.Usage.Has(phase.Vapour) {
		z = append(z, reg.Zgoc())
	}
	span[0], span[1] = floats.Min(z), floats.Max(z)
	return
}

// PhasePressures computes the pressure of each active phase in each cell of a region.
// The result is indexed as [phase position][i] where i runs over cells
func PhasePressures(g Grid, reg *Region, cells []int, grav float64, nsteps int) (press [][]float64, err error) {
	prof, err := NewPressureProfiles(reg, Span(g, reg, cells), grav, nsteps)
	if err != nil {
		return
	}
	press = utl.Alloc(reg.Usage.Num, len(cells))
	for _, ph := range reg.Usage.Phases() {
		pos := reg.Usage.Pos[ph]
		for i, c := range cells {
			press[pos][i] = prof.Eval(ph, g.CellDepth(c))
		}
	}
	return
}
