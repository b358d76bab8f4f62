// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// BrooksCorey implements the Brooks-Corey water-oil capillary pressure model
//   Se = (s - smin) / (smax - smin)
//   Pc = pd・Se^(-1/λ)   capped at pcmax
type BrooksCorey struct {

	// parameters
	pd    float64 // entry (displacement) pressure
	λ     float64 // pore-size distribution index
	smin  float64 // connate saturation
	smax  float64 // maximum saturation
	pcmax float64 // cap on Pc near smin
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(prms dbf.Params) (err error) {
	o.smax, o.λ = 1.0, 2.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pd":
			o.pd = p.V
		case "lam":
			o.λ = p.V
		case "smin":
			o.smin = p.V
		case "smax":
			o.smax = p.V
		case "pcmax":
			o.pcmax = p.V
		default:
			return chk.Err("bc: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.smin < 0 || o.smax > 1 || o.smin >= o.smax {
		return chk.Err("bc: saturation limits are incorrect: smin=%g, smax=%g", o.smin, o.smax)
	}
	if o.λ <= 0 {
		return chk.Err("bc: lam=%g must be positive", o.λ)
	}
	if o.pcmax <= 0 {
		o.pcmax = 100 * o.pd
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "pd", V: 1e4},
			&dbf.P{N: "lam", V: 2},
			&dbf.P{N: "smin", V: 0.15},
			&dbf.P{N: "smax", V: 1.0},
			&dbf.P{N: "pcmax", V: 5e5},
		}
	}
	return dbf.Params{
		&dbf.P{N: "pd", V: o.pd},
		&dbf.P{N: "lam", V: o.λ},
		&dbf.P{N: "smin", V: o.smin},
		&dbf.P{N: "smax", V: o.smax},
		&dbf.P{N: "pcmax", V: o.pcmax},
	}
}

// SMin returns s_min
func (o BrooksCorey) SMin() float64 {
	return o.smin
}

// SMax returns s_max
func (o BrooksCorey) SMax() float64 {
	return o.smax
}

// Pc computes the capillary pressure
func (o BrooksCorey) Pc(s float64) float64 {
	s = clamp(s, o.smin, o.smax)
	se := (s - o.smin) / (o.smax - o.smin)
	if se <= 0 {
		return o.pcmax
	}
	return math.Min(o.pd*math.Pow(se, -1.0/o.λ), o.pcmax)
}
