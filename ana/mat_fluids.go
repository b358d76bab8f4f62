// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/cpmech/gosl/fun/dbf"

// Water handles the properties of water
type Water struct {
	Θ   float64 // reference temperature; default = 20°C or 293.15K
	K   float64 // bulk modulus @ reference temperature
	Rho float64 // intrinsic density @ reference temperature
	C   float64 // compressibility @ reference temperature
}

// DryAir handles the properties of dry air
type DryAir struct {
	Θ    float64 // reference temperature; default = 20°C or 293.15K
	R    float64 // specific ideal gas constant
	Patm float64 // absolute atmospheric pressure
	Rho  float64 // intrinsic density @ reference temperature
	C    float64 // compressibility @ reference temperature
}

// Init initialises data
func (o *Water) Init() {
	o.Θ = 293.15      // [K]      20°C
	o.K = 2.2e9       // [Pa]     20°C
	o.Rho = 998.2071  // [kg/m³]  20°C
	o.C = o.Rho / o.K // [kg/(m³・Pa)]
}

// Init initialises data
func (o *DryAir) Init() {
	o.Θ = 293.15                 // [K]          20°C
	o.R = 287.058                // [J/(kg・K)]
	o.Patm = 101325              // [Pa]
	o.Rho = o.Patm / (o.R * o.Θ) // [kg/m³]      20°C
	o.C = 1.0 / (o.R * o.Θ)      // [kg/(m³・Pa)]
}

// Prms returns the parameters of a fluid density model
func (o Water) Prms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "R0", V: o.Rho},
		&dbf.P{N: "P0", V: 101325},
		&dbf.P{N: "C", V: o.C},
	}
}

// Prms returns the parameters of a fluid density model
func (o DryAir) Prms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "R0", V: o.Rho},
		&dbf.P{N: "P0", V: o.Patm},
		&dbf.P{N: "C", V: o.C},
	}
}
