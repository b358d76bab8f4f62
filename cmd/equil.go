// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/danielfmva/opm-core/equil"
	"github.com/danielfmva/opm-core/grid"
	"github.com/danielfmva/opm-core/inp"
	"github.com/danielfmva/opm-core/out"
	"github.com/danielfmva/opm-core/phase"
	"github.com/danielfmva/opm-core/props"
	"github.com/danielfmva/opm-core/state"

	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

// RunConfig holds the command line settings of an equilibration run. Zero values keep
// the settings of the case file; for Gravity, negative values do
type RunConfig struct {
	Parallel bool    // compute regions concurrently
	Nsteps   int     // number of RK4 steps on each side of an anchor
	Gravity  float64 // acceleration of gravity; negative keeps the case value
	DirOut   string  // output directory
	Plot     bool    // plot pressures and saturations versus depth
}

// runCfg holds the CLI flags of the equil command
var runCfg RunConfig

// equilCmd computes the initial state of a case
var equilCmd = &cobra.Command{
	Use:   "equil <case.{json,yaml}>",
	Short: "Compute the equilibrated initial state of a case",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := runCfg
		if !cmd.Flags().Changed("gravity") {
			cfg.Gravity = -1
		}
		res, err := RunEquil(args[0], cfg)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		res.PrintSummary()
	},
}

func init() {
	equilCmd.Flags().BoolVar(&runCfg.Parallel, "parallel", false, "Compute equilibration regions concurrently")
	equilCmd.Flags().IntVar(&runCfg.Nsteps, "nsteps", 0, "Number of RK4 steps on each side of an anchor (0 keeps the case value)")
	equilCmd.Flags().Float64Var(&runCfg.Gravity, "gravity", equil.Gravity, "Acceleration of gravity [m/s²]")
	equilCmd.Flags().StringVar(&runCfg.DirOut, "out", "", "Output directory (empty keeps the case value)")
	equilCmd.Flags().BoolVar(&runCfg.Plot, "plot", false, "Plot pressures and saturations versus depth")
}

// RunEquil reads a case, computes its initial state and writes the per-cell table
func RunEquil(path string, cfg RunConfig) (res *out.Results, err error) {

	// input
	cas, err := inp.ReadCase(path)
	if err != nil {
		return
	}
	if cfg.Parallel {
		cas.Data.Parallel = true
	}
	if cfg.Nsteps > 0 {
		cas.Data.Nsteps = cfg.Nsteps
	}
	if cfg.Gravity >= 0 {
		cas.Data.Gravity = cfg.Gravity
	}
	if cfg.DirOut != "" {
		cas.Data.DirOut = cfg.DirOut
	}
	logrus.Infof("case %q: %s", cas.Key, cas.Data.Desc)

	// grid and properties
	g, err := cas.NewGrid()
	if err != nil {
		return
	}
	p, err := cas.NewProps(g)
	if err != nil {
		return
	}
	logrus.Infof("grid: %d active cells; phases: %v", g.NumCells(), p.Usage().Phases())

	// equilibration
	ini, err := equil.NewInitializer(p, g, cas.Deck(), cas.Options())
	if err != nil {
		return
	}
	err = ini.Compute()
	if err != nil {
		return
	}
	st := state.NewBlackoil(g.NumCells(), p.Usage())
	err = ini.Publish(st)
	if err != nil {
		return
	}

	// scaled water-oil curves are used by subsequent simulations
	if cas.Swatinit != nil && p.Usage().Has(phase.Aqua) {
		err = p.ApplyPcowScaling(st.PcowScale)
		if err != nil {
			return
		}
	}

	// output
	res, err = out.NewResults(cas.Key, st, g, ini.Regions())
	if err != nil {
		return
	}
	fn, err := res.WriteTable(cas.Data.DirOut)
	if err != nil {
		return
	}
	logrus.Infof("file <%s> written", fn)
	if cfg.Plot {
		res.Plot(cas.Data.DirOut, references(cas, g, p, ini))
		logrus.Infof("figure %s.equil.png written to %s", cas.Key, cas.Data.DirOut)
	}
	return
}

// references returns the analytical oil pressure of each region whose oil carries no
// dissolved gas
func references(cas *inp.Case, g *grid.Cartesian, p *props.Blackoil, ini *equil.Initializer) (refs []out.Curve) {
	regs := ini.Regions()
	for r := 0; r < regs.NumRegions(); r++ {
		cells := regs.Cells(r)
		if len(cells) == 0 {
			continue
		}
		oil := p.Fluids(cells[0]).Oil
		if cas.Phases.DisGas && oil.Rdis != 0 {
			logrus.Debugf("region %d: live oil has no analytical reference", r+1)
			continue
		}
		z := make([]float64, len(cells))
		for i, c := range cells {
			z[i] = g.CellDepth(c)
		}
		label := io.Sf("oil (analytical, region %d)", r+1)
		refs = append(refs, out.OilColumn(label, ini.Records()[r], oil, cas.Data.Gravity, floats.Min(z), floats.Max(z), 21))
	}
	return
}
