// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements models for fluid density
package fluid

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements a model to compute the intrinsic density (R) of a reservoir fluid
// phase at pressure (p) carrying a dissolved (or vaporised) ratio (r). The model is:
//   R(p, r) = R0 + C・(p - p0) + Rdis・r   thus   dR/dp = C
type Model struct {
	R0   float64 // intrinsic density corresponding to p0 without dissolved component [kg/m³]
	P0   float64 // pressure corresponding to R0 [Pa]
	C    float64 // compressibility coefficient; e.g. R0/Kbulk [kg/(m³・Pa)]
	Rdis float64 // density added per unit of dissolved ratio [kg/m³]
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "r0":
			o.R0 = p.V
		case "p0":
			o.P0 = p.V
		case "c":
			o.C = p.V
		case "rdis":
			o.Rdis = p.V
		default:
			return chk.Err("fluid: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.R0 <= 0 {
		return chk.Err("fluid: reference density R0=%g must be positive", o.R0)
	}
	if o.C < 0 {
		return chk.Err("fluid: compressibility coefficient C=%g must not be negative", o.C)
	}
	return
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters (water); othewise returs current parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // water
			&dbf.P{N: "R0", V: 1000.0},  // [kg/m³]
			&dbf.P{N: "P0", V: 1.0e5},   // [Pa]
			&dbf.P{N: "C", V: 4.545e-7}, // [kg/(m³・Pa)]
			&dbf.P{N: "Rdis", V: 0},     // [kg/m³]
		}
	}
	return dbf.Params{
		&dbf.P{N: "R0", V: o.R0},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "Rdis", V: o.Rdis},
	}
}

// Density computes the intrinsic density at pressure p with dissolved ratio r
func (o Model) Density(p, r float64) float64 {
	return o.R0 + o.C*(p-o.P0) + o.Rdis*r
}
