// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

// RegionMapping partitions cells into regions. The cells of each region are kept in
// grid order
type RegionMapping struct {
	reg   []int   // region of each cell
	cells [][]int // cells of each region
}

// NewRegionMapping builds the partition from the region of each cell
func NewRegionMapping(reg []int) (*RegionMapping, error) {
	nreg := 0
	for c, r := range reg {
		if r < 0 {
			return nil, failure(ErrInconsistent, "cell %d has region number %d; region numbers start at 1", c, r+1)
		}
		if r+1 > nreg {
			nreg = r + 1
		}
	}
	o := &RegionMapping{reg: reg, cells: make([][]int, nreg)}
	for c, r := range reg {
		o.cells[r] = append(o.cells[r], c)
	}
	return o, nil
}

// NumRegions returns the number of regions
func (o *RegionMapping) NumRegions() int {
	return len(o.cells)
}

// Region returns the region of cell c
func (o *RegionMapping) Region(c int) int {
	return o.reg[c]
}

// Cells returns the cells of region r
func (o *RegionMapping) Cells(r int) []int {
	return o.cells[r]
}
