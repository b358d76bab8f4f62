// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements capillary pressure curves Pc(s) of reservoir rocks.
// The water-oil curve Pcow(sw) decreases with water saturation and the gas-oil curve
// Pcgo(sg) increases with gas saturation; all models are monotone and constant
// outside [SMin, SMax].
package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements a capillary pressure model
type Model interface {
	Init(prms dbf.Params) error     // initialises the model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	SMin() float64                   // returns s_min
	SMax() float64                   // returns s_max
	Pc(s float64) float64            // computes the capillary pressure at saturation s
}

// New returns new capillary pressure model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// clamp limits s to [smin, smax]
func clamp(s, smin, smax float64) float64 {
	if s < smin {
		return smin
	}
	if s > smax {
		return smax
	}
	return s
}
