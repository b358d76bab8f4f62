// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

// ComputeRs computes the dissolved gas-oil ratio (or the vaporised oil-gas ratio) of each
// cell of a region
//  press -- oil pressure for Rs; gas pressure for Rv
//  sat   -- gas saturation for Rs; oil saturation for Rv
func ComputeRs(g Grid, cells []int, press, temp []float64, fn Miscibility, sat []float64) (r []float64) {
	r = make([]float64, len(cells))
	for i, c := range cells {
		r[i] = fn.Eval(g.CellDepth(c), press[i], temp[i], sat[i])
	}
	return
}

// temperature returns the temperature of each cell of a region
func temperature(cells []int) (temp []float64) {
	temp = make([]float64, len(cells))
	for i := range temp {
		temp[i] = Temperature
	}
	return
}
