// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import "github.com/danielfmva/opm-core/phase"

// DensityCalculator computes phase densities of a region using the fluid properties of
// one representative cell
type DensityCalculator struct {
	props Props
	cell  int
}

// NewDensityCalculator returns a calculator bound to the representative cell
func NewDensityCalculator(props Props, cell int) DensityCalculator {
	return DensityCalculator{props, cell}
}

// Cell returns the representative cell
func (o DensityCalculator) Cell() int {
	return o.cell
}

// Density computes the density of phase ph at pressure p, temperature temp and
// dissolved ratio r
func (o DensityCalculator) Density(ph phase.Phase, p, temp, r float64) float64 {
	return o.props.Density(o.cell, ph, p, temp, r)
}
