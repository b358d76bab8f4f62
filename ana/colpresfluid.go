// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used as references for the equilibration
package ana

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// ColumnFluidPressure computes pressure (p) and intrinsic density (R) of a fluid
// along a vertical column with gravity (g). Depth (z) is positive downwards and
// (R0, p0) are known at depth Z0. The hydrostatic equation is:
//
//    R     = R0 + C・(p - p0)   thus   dR/dp = C
//    dp/dz = R(p)・g
//
// with solution
//
//    p(z) = p0 + (R0/C)・(exp(C・g・(z - Z0)) - 1)
//
// which tends to p0 + R0・g・(z - Z0) when C → 0
type ColumnFluidPressure struct {
	R0   float64 // intrinsic density corresponding to p0
	P0   float64 // pressure corresponding to R0
	C    float64 // compressibility coefficient; e.g. R0/Kbulk
	Grav float64 // gravity acceleration (positive constant)
	Z0   float64 // depth where (R0,p0) is known
}

// Init initialises this structure
func (o *ColumnFluidPressure) Init(R0, p0, C, g, Z0 float64) {
	o.R0 = R0
	o.P0 = p0
	o.C = C
	o.Grav = g
	o.Z0 = Z0
}

// Calc computes pressure and density at depth z
func (o ColumnFluidPressure) Calc(z float64) (p, R float64) {
	Δz := z - o.Z0
	if o.C == 0 {
		p = o.P0 + o.R0*o.Grav*Δz
	} else {
		p = o.P0 + (o.R0/o.C)*math.Expm1(o.C*o.Grav*Δz)
	}
	R = o.R0 + o.C*(p-o.P0)
	return
}

// Sample computes pressures and densities at np depths between zmin and zmax
func (o ColumnFluidPressure) Sample(zmin, zmax float64, np int) (Z, P, R []float64) {
	Z = utl.LinSpace(zmin, zmax, np)
	P = make([]float64, np)
	R = make([]float64, np)
	for i, z := range Z {
		P[i], R[i] = o.Calc(z)
	}
	return
}

// Contact computes the depth where the pressures of two columns differ by pc, i.e.
// where pa(z) - pb(z) = pc, for incompressible fluids with densities Ra ≠ Rb
func Contact(a, b ColumnFluidPressure, pc float64) float64 {
	// pa(z) - pb(z) = (pa0 - Ra g za) - (pb0 - Rb g zb) + (Ra - Rb) g z
	c0 := (a.P0 - a.R0*a.Grav*a.Z0) - (b.P0 - b.R0*b.Grav*b.Z0)
	return (pc - c0) / ((a.R0 - b.R0) * a.Grav)
}
