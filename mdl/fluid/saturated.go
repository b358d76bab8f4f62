// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// SatTable holds the saturated dissolved-gas ratio (Rs) or vaporised-oil ratio (Rv)
// as a function of pressure. Values outside the tabulated pressures are clamped
// to the end values.
type SatTable struct {
	P []float64 // pressures; strictly increasing [Pa]
	R []float64 // saturated ratios [-]

	// derived
	fit interp.PiecewiseLinear
}

// Init initialises the table. An empty table gives a zero ratio everywhere.
func (o *SatTable) Init(p, r []float64) (err error) {
	if len(p) != len(r) {
		return chk.Err("saturated table: number of pressures (%d) and ratios (%d) differ", len(p), len(r))
	}
	if len(p) < 2 {
		o.P, o.R = p, r
		return
	}
	if floats.HasNaN(p) || floats.HasNaN(r) {
		return chk.Err("saturated table: NaN found in data")
	}
	for i := 1; i < len(p); i++ {
		if p[i] <= p[i-1] {
			return chk.Err("saturated table: pressures must be strictly increasing. p = %v", p)
		}
	}
	err = o.fit.Fit(p, r)
	if err != nil {
		return chk.Err("saturated table: cannot fit data:\n%v", err)
	}
	o.P, o.R = p, r
	return
}

// Eval computes the saturated ratio at pressure p
func (o SatTable) Eval(p float64) float64 {
	switch len(o.P) {
	case 0:
		return 0
	case 1:
		return o.R[0]
	}
	return o.fit.Predict(p)
}
