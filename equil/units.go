// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

// constants
const (
	Gravity     = 9.80665     // standard acceleration of gravity [m/s²]
	Barsa       = 1e5         // one bar [Pa]
	Temperature = 273.15 + 20 // reference temperature used everywhere [K]
	NumSteps    = 100         // default number of RK4 steps on each side of an anchor
)
