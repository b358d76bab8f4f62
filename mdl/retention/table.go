// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Table implements a tabulated capillary pressure curve (e.g. from SWOF or SGOF).
// Pc is linearly interpolated and constant outside the tabulated saturations.
type Table struct {
	S   []float64 // saturations; strictly increasing
	Pcs []float64 // capillary pressures; monotone

	// derived
	fit interp.PiecewiseLinear
}

// add model to factory
func init() {
	allocators["table"] = func() Model { return new(Table) }
}

// Init initialises model. Data must be given by SetTable
func (o *Table) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("table: parameters are not accepted; use SetTable instead")
	}
	return
}

// SetTable sets the tabulated data
func (o *Table) SetTable(s, pc []float64) (err error) {
	if len(s) != len(pc) {
		return chk.Err("table: number of saturations (%d) and capillary pressures (%d) differ", len(s), len(pc))
	}
	if len(s) < 2 {
		return chk.Err("table: at least two rows are required")
	}
	if floats.HasNaN(s) || floats.HasNaN(pc) {
		return chk.Err("table: NaN found in data")
	}
	if s[0] < 0 || s[len(s)-1] > 1 {
		return chk.Err("table: saturations must be within [0, 1]. s = %v", s)
	}
	inc, dec := true, true
	for i := 1; i < len(pc); i++ {
		if pc[i] < pc[i-1] {
			inc = false
		}
		if pc[i] > pc[i-1] {
			dec = false
		}
	}
	if !inc && !dec {
		return chk.Err("table: capillary pressures must be monotone. pc = %v", pc)
	}
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return chk.Err("table: saturations must be strictly increasing. s = %v", s)
		}
	}
	err = o.fit.Fit(s, pc)
	if err != nil {
		return chk.Err("table: cannot fit data:\n%v", err)
	}
	o.S, o.Pcs = s, pc
	return
}

// GetPrms gets (an example) of parameters
func (o Table) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// SMin returns s_min
func (o Table) SMin() float64 {
	return o.S[0]
}

// SMax returns s_max
func (o Table) SMax() float64 {
	return o.S[len(o.S)-1]
}

// Pc computes the capillary pressure
func (o Table) Pc(s float64) float64 {
	return o.fit.Predict(s)
}
