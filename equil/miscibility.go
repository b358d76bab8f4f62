// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/interp"
)

// Miscibility computes a dissolved-gas ratio (Rs) or a vaporised-oil ratio (Rv)
//  sat -- saturation of the complementary phase: gas saturation when computing Rs,
//         oil saturation when computing Rv
type Miscibility interface {
	Eval(depth, press, temp, sat float64) float64
}

// SatFunc computes the saturated ratio at a given pressure and temperature
type SatFunc func(press, temp float64) float64

// NoMixing implements black oil without dissolution or vaporisation
type NoMixing struct{}

// Eval returns zero
func (o NoMixing) Eval(depth, press, temp, sat float64) float64 {
	return 0
}

// DepthTable computes the ratio from a depth table (RSVD or RVVD). The ratio never
// exceeds the saturated value and equals it where the complementary phase is present
type DepthTable struct {
	Depth []float64 // depths
	Ratio []float64 // ratios
	satf  SatFunc   // saturated ratio
	fit   interp.PiecewiseLinear
}

// NewDepthTable returns a new depth table
func NewDepthTable(satf SatFunc, depth, ratio []float64) (o *DepthTable, err error) {
	if len(depth) != len(ratio) {
		return nil, chk.Err("depth table: number of depths (%d) and ratios (%d) differ", len(depth), len(ratio))
	}
	if len(depth) == 0 {
		return nil, chk.Err("depth table: table is empty")
	}
	o = &DepthTable{Depth: depth, Ratio: ratio, satf: satf}
	for i := 1; i < len(depth); i++ {
		if depth[i] <= depth[i-1] {
			return nil, chk.Err("depth table: depths must be strictly increasing. depth = %v", depth)
		}
	}
	if len(depth) > 1 {
		err = o.fit.Fit(depth, ratio)
		if err != nil {
			return nil, chk.Err("depth table: cannot fit data:\n%v", err)
		}
	}
	return
}

// Interp interpolates the table at depth; the end values are used outside the table
func (o *DepthTable) Interp(depth float64) float64 {
	if len(o.Depth) == 1 {
		return o.Ratio[0]
	}
	return o.fit.Predict(depth)
}

// Eval computes the ratio
func (o *DepthTable) Eval(depth, press, temp, sat float64) float64 {
	satr := o.satf(press, temp)
	if sat > 0 {
		return satr
	}
	return math.Min(satr, o.Interp(depth))
}

// SatAtContact computes the ratio as the saturated value at the gas-oil contact
type SatAtContact struct {
	Contact float64 // ratio at contact conditions
	satf    SatFunc // saturated ratio
}

// NewSatAtContact returns a new function with the ratio evaluated at the contact
// pressure and temperature
func NewSatAtContact(satf SatFunc, pContact, tContact float64) *SatAtContact {
	return &SatAtContact{satf(pContact, tContact), satf}
}

// Eval computes the ratio
func (o *SatAtContact) Eval(depth, press, temp, sat float64) float64 {
	satr := o.satf(press, temp)
	if sat > 0 {
		return satr
	}
	return math.Min(satr, o.Contact)
}
