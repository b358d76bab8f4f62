// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/danielfmva/opm-core/ana"
	"github.com/danielfmva/opm-core/equil"
	"github.com/danielfmva/opm-core/mdl/fluid"

	"github.com/cpmech/gosl/plt"
	"gonum.org/v1/gonum/floats"
)

// Curve holds a reference curve drawn as a line together with the results
type Curve struct {
	Label string    // legend
	Z     []float64 // depths
	V     []float64 // values
}

// OilColumn returns the analytical oil pressure along depth for a region whose oil
// carries no dissolved gas. The density is linear in pressure and equal to the model
// density at the datum pressure
func OilColumn(label string, rec equil.Record, oil fluid.Model, grav, zmin, zmax float64, np int) Curve {
	var col ana.ColumnFluidPressure
	p := rec.Main.Press
	col.Init(oil.Density(p, 0), p, oil.C, grav, rec.Main.Depth)
	Z, P, _ := col.Sample(zmin, zmax, np)
	return Curve{label, Z, P}
}

// Plot plots phase pressures and saturations versus depth and saves the figure as
// <dirout>/<key>.equil.png. refs are drawn on the pressure plot
func (o *Results) Plot(dirout string, refs []Curve) {

	// depths
	ncells := o.St.NumCells()
	z := make([]float64, ncells)
	for c := 0; c < ncells; c++ {
		z[c] = o.Grid.CellDepth(c)
	}
	zmin, zmax := floats.Min(z), floats.Max(z)
	sty := GetDefaultStyles()

	// pressures
	plt.Reset(false, nil)
	plt.Subplot(1, 2, 1)
	for _, ph := range o.St.Usage.Phases() {
		plt.Plot(o.St.PhasePressure(ph), z, &sty[ph])
	}
	for _, r := range refs {
		plt.Plot(r.V, r.Z, &plt.A{C: "k", Ls: "-", L: r.Label})
	}
	plt.AxisYrange(zmax, zmin)
	plt.Gll(GetTexLabel("p", "[Pa]"), GetTexLabel("z", "[m]"), nil)

	// saturations
	plt.Subplot(1, 2, 2)
	for _, ph := range o.St.Usage.Phases() {
		plt.Plot(o.St.PhaseSaturation(ph), z, &sty[ph])
	}
	plt.AxisXrange(0, 1)
	plt.AxisYrange(zmax, zmin)
	plt.Gll(GetTexLabel("s", ""), GetTexLabel("z", "[m]"), nil)

	// save
	plt.Save(dirout, o.Key+".equil")
}
