// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Lin implements a linear capillary pressure model:
//   Pc(s) := pc0 + (pc1 - pc0)・(s - smin) / (smax - smin)
// pc0 > pc1 gives a water-oil curve; pc0 < pc1 gives a gas-oil curve
type Lin struct {

	// parameters
	smin float64 // minimum saturation
	smax float64 // maximum saturation
	pc0  float64 // capillary pressure at smin
	pc1  float64 // capillary pressure at smax
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms dbf.Params) (err error) {
	o.smax = 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "smin":
			o.smin = p.V
		case "smax":
			o.smax = p.V
		case "pc0":
			o.pc0 = p.V
		case "pc1":
			o.pc1 = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.smin < 0 || o.smax > 1 || o.smin >= o.smax {
		return chk.Err("lin: saturation limits are incorrect: smin=%g, smax=%g", o.smin, o.smax)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "smin", V: 0.2},
			&dbf.P{N: "smax", V: 1.0},
			&dbf.P{N: "pc0", V: 2e5},
			&dbf.P{N: "pc1", V: 0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "smin", V: o.smin},
		&dbf.P{N: "smax", V: o.smax},
		&dbf.P{N: "pc0", V: o.pc0},
		&dbf.P{N: "pc1", V: o.pc1},
	}
}

// SMin returns s_min
func (o Lin) SMin() float64 {
	return o.smin
}

// SMax returns s_max
func (o Lin) SMax() float64 {
	return o.smax
}

// Pc computes the capillary pressure
func (o Lin) Pc(s float64) float64 {
	s = clamp(s, o.smin, o.smax)
	return o.pc0 + (o.pc1-o.pc0)*(s-o.smin)/(o.smax-o.smin)
}
