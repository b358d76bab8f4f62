// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package state implements the black-oil state container consumed by simulators
package state

import (
	"github.com/danielfmva/opm-core/phase"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Blackoil holds the per-cell state of a black-oil model
type Blackoil struct {
	Usage      phase.Usage // active phases
	Pressure   [][]float64 // [np][ncells] phase pressures [Pa]
	Saturation [][]float64 // [np][ncells] phase saturations [-]
	Rs         []float64   // [ncells] dissolved gas-oil ratio [-]
	Rv         []float64   // [ncells] vaporised oil-gas ratio [-]
	PcowScale  []float64   // [ncells] multiplier of the water-oil capillary curve
}

// NewBlackoil allocates a state with zero values and unit Pcow scaling
func NewBlackoil(ncells int, usage phase.Usage) *Blackoil {
	o := &Blackoil{
		Usage:      usage,
		Pressure:   utl.Alloc(usage.Num, ncells),
		Saturation: utl.Alloc(usage.Num, ncells),
		Rs:         make([]float64, ncells),
		Rv:         make([]float64, ncells),
		PcowScale:  make([]float64, ncells),
	}
	for i := range o.PcowScale {
		o.PcowScale[i] = 1
	}
	return o
}

// NumCells returns the number of cells
func (o *Blackoil) NumCells() int {
	return len(o.Rs)
}

// PhasePressure returns the pressure array of phase p
func (o *Blackoil) PhasePressure(p phase.Phase) []float64 {
	if !o.Usage.Has(p) {
		chk.Panic("state: phase %v is not active", p)
	}
	return o.Pressure[o.Usage.Pos[p]]
}

// PhaseSaturation returns the saturation array of phase p
func (o *Blackoil) PhaseSaturation(p phase.Phase) []float64 {
	if !o.Usage.Has(p) {
		chk.Panic("state: phase %v is not active", p)
	}
	return o.Saturation[o.Usage.Pos[p]]
}
