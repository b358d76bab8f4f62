// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import "github.com/cpmech/gosl/fun/dbf"

// Scaled multiplies the capillary pressure of another model by a factor. It is used
// to honour a prescribed initial water saturation (SWATINIT) cell by cell.
type Scaled struct {
	Mdl    Model   // unscaled model
	Factor float64 // multiplier
}

// NewScaled returns a scaled model; a factor of one returns mdl itself
func NewScaled(mdl Model, factor float64) Model {
	if factor == 1 {
		return mdl
	}
	return &Scaled{mdl, factor}
}

// Init initialises the underlying model
func (o *Scaled) Init(prms dbf.Params) error {
	return o.Mdl.Init(prms)
}

// GetPrms gets the parameters of the underlying model
func (o Scaled) GetPrms(example bool) dbf.Params {
	return o.Mdl.GetPrms(example)
}

// SMin returns s_min
func (o Scaled) SMin() float64 {
	return o.Mdl.SMin()
}

// SMax returns s_max
func (o Scaled) SMax() float64 {
	return o.Mdl.SMax()
}

// Pc computes the scaled capillary pressure
func (o Scaled) Pc(s float64) float64 {
	return o.Factor * o.Mdl.Pc(s)
}
