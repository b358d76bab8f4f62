// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package equil computes an initial reservoir state by hydrostatic equilibration.
// Phase pressures are integrated along depth from the datum and the fluid contacts
// of each equilibration region, saturations are obtained by inverting capillary
// pressure curves, and dissolved-gas (Rs) and vaporised-oil (Rv) ratios are taken
// from depth tables or from saturated values at the gas-oil contact.
package equil

import "github.com/danielfmva/opm-core/phase"

// Grid gives the geometry needed by the equilibration
type Grid interface {
	NumCells() int           // number of (active) cells
	CellDepth(c int) float64 // depth of the centre of cell c; positive downwards
	GlobalCell(c int) int    // deck position of cell c
}

// Props evaluates fluid and rock properties of cells
//  Density  -- intrinsic density of phase ph at pressure p and temperature temp;
//              ratio is Rs for oil, Rv for gas and is ignored for water
//  CapPress -- water-oil capillary pressure Pcow(sw) for ph = Aqua (decreasing) and
//              gas-oil capillary pressure Pcgo(sg) for ph = Vapour (increasing)
//  SatRange -- saturation end points of the capillary curve of ph
type Props interface {
	Usage() phase.Usage
	Density(cell int, ph phase.Phase, p, temp, ratio float64) float64
	RsSat(cell int, p, temp float64) float64
	RvSat(cell int, p, temp float64) float64
	CapPress(cell int, ph phase.Phase, s float64) float64
	SatRange(cell int, ph phase.Phase) (smin, smax float64)
}

// Table holds a depth versus ratio table (RSVD or RVVD)
type Table struct {
	Depth []float64 `json:"depth" yaml:"depth"` // depths; strictly increasing
	Ratio []float64 `json:"ratio" yaml:"ratio"` // Rs or Rv values
}

// Deck holds the deck data used by the equilibration
type Deck struct {
	Equil    []Record  // EQUIL: one record per region
	Eqlnum   []int     // EQLNUM: 1-based region number of each deck cell; nil means one region
	DisGas   bool      // DISGAS: dissolved gas is active
	VapOil   bool      // VAPOIL: vaporised oil is active
	Rsvd     []Table   // RSVD tables
	Rvvd     []Table   // RVVD tables
	Swatinit []float64 // SWATINIT: prescribed water saturation of each deck cell; nil if absent
}
