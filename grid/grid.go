// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements a Cartesian reservoir grid with inactive cells
package grid

import (
	"github.com/cpmech/gosl/chk"
)

// Cartesian holds a logically Cartesian grid with horizontal layers. Deck cells are
// numbered with i running fastest, then j, then k (top to bottom). Only active cells
// are numbered internally; GlobalCell maps them back to deck positions.
type Cartesian struct {
	Nx, Ny, Nz int       // number of deck cells along each direction
	Tops       []float64 // [nx*ny] depth of the top face of each column
	Dz         []float64 // [nz] thickness of each layer

	// derived
	depth  []float64 // [ncells] depth of cell centres
	global []int     // [ncells] deck position of each active cell; nil means identity
}

// NewCartesian returns a new grid
//  tops   -- either one value (flat top) or nx*ny values
//  actnum -- either nil (all active) or nx*ny*nz flags (0 = inactive)
func NewCartesian(nx, ny, nz int, tops, dz []float64, actnum []int) (o *Cartesian, err error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, chk.Err("grid: dimensions must be positive: nx=%d ny=%d nz=%d", nx, ny, nz)
	}
	ncol := nx * ny
	ntot := ncol * nz
	switch len(tops) {
	case 1:
		flat := tops[0]
		tops = make([]float64, ncol)
		for i := range tops {
			tops[i] = flat
		}
	case ncol:
	default:
		return nil, chk.Err("grid: number of tops (%d) must be 1 or nx*ny=%d", len(tops), ncol)
	}
	if len(dz) != nz {
		return nil, chk.Err("grid: number of layer thicknesses (%d) must be equal to nz=%d", len(dz), nz)
	}
	for k, h := range dz {
		if h <= 0 {
			return nil, chk.Err("grid: thickness of layer %d is not positive: dz=%g", k, h)
		}
	}
	if actnum != nil && len(actnum) != ntot {
		return nil, chk.Err("grid: size of actnum (%d) must be equal to nx*ny*nz=%d", len(actnum), ntot)
	}

	o = &Cartesian{Nx: nx, Ny: ny, Nz: nz, Tops: tops, Dz: dz}
	o.depth = make([]float64, 0, ntot)
	if actnum != nil {
		o.global = make([]int, 0, ntot)
	}
	for k := 0; k < nz; k++ {
		for col := 0; col < ncol; col++ {
			pos := k*ncol + col
			if actnum != nil && actnum[pos] == 0 {
				continue
			}
			z := tops[col] + 0.5*dz[k]
			for l := 0; l < k; l++ {
				z += dz[l]
			}
			o.depth = append(o.depth, z)
			if actnum != nil {
				o.global = append(o.global, pos)
			}
		}
	}
	if len(o.depth) == 0 {
		return nil, chk.Err("grid: there are no active cells")
	}
	return
}

// NumCells returns the number of active cells
func (o *Cartesian) NumCells() int {
	return len(o.depth)
}

// CellDepth returns the depth of the centre of active cell c
func (o *Cartesian) CellDepth(c int) float64 {
	return o.depth[c]
}

// GlobalCell returns the deck position of active cell c
func (o *Cartesian) GlobalCell(c int) int {
	if o.global == nil {
		return c
	}
	return o.global[c]
}

// IJK returns the logical indices of active cell c
func (o *Cartesian) IJK(c int) (i, j, k int) {
	pos := o.GlobalCell(c)
	i = pos % o.Nx
	j = (pos / o.Nx) % o.Ny
	k = pos / (o.Nx * o.Ny)
	return
}
