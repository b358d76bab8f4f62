// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to check initial states
package tests

import (
	"math"
	"testing"

	"github.com/danielfmva/opm-core/phase"
	"github.com/danielfmva/opm-core/state"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// RangeProps gives the saturation end points of each phase in each cell
type RangeProps interface {
	SatRange(cell int, ph phase.Phase) (smin, smax float64)
}

// Column holds depths and a quantity along a vertical column
type Column struct {
	Z []float64 // depths
	V []float64 // values
}

// CheckSaturations checks that saturations sum to one in every cell and that each
// saturation lies within [0, 1], or within the end points given by props if not nil
func CheckSaturations(tst *testing.T, st *state.Blackoil, props RangeProps, tol float64) {
	for c := 0; c < st.NumCells(); c++ {
		sum := 0.0
		for _, ph := range st.Usage.Phases() {
			s := st.Saturation[st.Usage.Pos[ph]][c]
			smin, smax := 0.0, 1.0
			if props != nil && ph != phase.Liquid {
				smin, smax = props.SatRange(c, ph)
			}
			if s < smin-tol || s > smax+tol {
				tst.Errorf("cell %d: %v saturation %g is outside [%g, %g]\n", c, ph, s, smin, smax)
				return
			}
			sum += s
		}
		if math.Abs(sum-1) > tol {
			tst.Errorf("cell %d: sum of saturations %g != 1\n", c, sum)
			return
		}
	}
}

// CheckMonotone checks that values strictly increase with depth
func CheckMonotone(tst *testing.T, name string, col Column) {
	z := make([]float64, len(col.Z))
	copy(z, col.Z)
	idx := make([]int, len(z))
	floats.Argsort(z, idx)
	for k := 1; k < len(idx); k++ {
		a, b := idx[k-1], idx[k]
		if col.Z[b] > col.Z[a] && col.V[b] <= col.V[a] {
			tst.Errorf("%s must increase with depth: v(%g)=%g, v(%g)=%g\n", name, col.Z[a], col.V[a], col.Z[b], col.V[b])
			return
		}
	}
}

// CompareStates compares two states
func CompareStates(tst *testing.T, a, b *state.Blackoil, tolP, tolS float64) {
	if a.NumCells() != b.NumCells() || a.Usage != b.Usage {
		tst.Errorf("states have different sizes\n")
		return
	}
	for _, ph := range a.Usage.Phases() {
		p := a.Usage.Pos[ph]
		chk.Array(tst, io.Sf("p_%v", ph), tolP, a.Pressure[p], b.Pressure[p])
		chk.Array(tst, io.Sf("s_%v", ph), tolS, a.Saturation[p], b.Saturation[p])
	}
	chk.Array(tst, "Rs", tolS, a.Rs, b.Rs)
	chk.Array(tst, "Rv", tolS, a.Rv, b.Rv)
	chk.Array(tst, "Pcow scale", tolS, a.PcowScale, b.PcowScale)
}

// Print prints the state of the cells along a column
func Print(st *state.Blackoil, depth func(c int) float64) {
	io.Pf("%6s%10s", "cell", "z")
	for _, ph := range st.Usage.Phases() {
		io.Pf("%16s%10s", "p_"+ph.String(), "s_"+ph.String())
	}
	io.Pf("%12s%12s\n", "Rs", "Rv")
	for c := 0; c < st.NumCells(); c++ {
		io.Pf("%6d%10.3f", c, depth(c))
		for _, ph := range st.Usage.Phases() {
			p := st.Usage.Pos[ph]
			io.Pf("%16.3f%10.6f", st.Pressure[p][c], st.Saturation[p][c])
		}
		io.Pf("%12.6g%12.6g\n", st.Rs[c], st.Rv[c])
	}
}
