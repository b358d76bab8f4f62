// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a case file in JSON (.json) or
// YAML (.yaml, .yml) format
package inp

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielfmva/opm-core/equil"
	"github.com/danielfmva/opm-core/grid"
	"github.com/danielfmva/opm-core/mdl/fluid"
	"github.com/danielfmva/opm-core/mdl/retention"
	"github.com/danielfmva/opm-core/phase"
	"github.com/danielfmva/opm-core/props"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data of a case
type Data struct {
	Desc     string  `json:"desc" yaml:"desc"`         // description of case
	DirOut   string  `json:"dirout" yaml:"dirout"`     // directory for output; e.g. /tmp/opm-core
	Gravity  float64 `json:"gravity" yaml:"gravity"`   // acceleration of gravity [m/s²]
	Nsteps   int     `json:"nsteps" yaml:"nsteps"`     // number of RK4 steps on each side of an anchor
	Parallel bool    `json:"parallel" yaml:"parallel"` // compute regions concurrently
}

// SetDefault sets default values
func (o *Data) SetDefault() {
	o.DirOut = "/tmp/opm-core"
	o.Gravity = equil.Gravity
	o.Nsteps = equil.NumSteps
}

// PhaseData holds the active phases and miscibility switches
type PhaseData struct {
	Water  bool `json:"water" yaml:"water"`   // WATER
	Oil    bool `json:"oil" yaml:"oil"`       // OIL
	Gas    bool `json:"gas" yaml:"gas"`       // GAS
	DisGas bool `json:"disgas" yaml:"disgas"` // DISGAS: dissolved gas in oil
	VapOil bool `json:"vapoil" yaml:"vapoil"` // VAPOIL: vaporised oil in gas
}

// GridData holds the dimensions and geometry of a Cartesian grid
type GridData struct {
	Nx     int       `json:"nx" yaml:"nx"`         // number of cells along x
	Ny     int       `json:"ny" yaml:"ny"`         // number of cells along y
	Nz     int       `json:"nz" yaml:"nz"`         // number of layers
	Tops   []float64 `json:"tops" yaml:"tops"`     // one value or nx*ny values [m]
	Dz     []float64 `json:"dz" yaml:"dz"`         // thickness of each layer [m]
	Actnum []int     `json:"actnum" yaml:"actnum"` // nx*ny*nz flags; empty means all active
}

// SatTableData holds a saturated ratio versus pressure table
type SatTableData struct {
	P []float64 `json:"p" yaml:"p"` // pressures [Pa]
	R []float64 `json:"r" yaml:"r"` // saturated ratios
}

// PvtData holds the fluid data of one PVT region
type PvtData struct {
	Water dbf.Params   `json:"water" yaml:"water"` // parameters of fluid.Model
	Oil   dbf.Params   `json:"oil" yaml:"oil"`     // parameters of fluid.Model
	Gas   dbf.Params   `json:"gas" yaml:"gas"`     // parameters of fluid.Model
	RsSat SatTableData `json:"rssat" yaml:"rssat"` // saturated Rs(p)
	RvSat SatTableData `json:"rvsat" yaml:"rvsat"` // saturated Rv(p)
}

// CurveData holds a capillary pressure curve. Model "table" takes S and Pc; other models
// take Prms
type CurveData struct {
	Model string     `json:"model" yaml:"model"` // retention model name; e.g. "lin", "bc", "table"
	Prms  dbf.Params `json:"prms" yaml:"prms"`   // model parameters
	S     []float64  `json:"s" yaml:"s"`         // tabulated saturations
	Pc    []float64  `json:"pc" yaml:"pc"`       // tabulated capillary pressures [Pa]
}

// SatData holds the capillary pressure curves of one saturation region
type SatData struct {
	Pcow CurveData `json:"pcow" yaml:"pcow"` // water-oil curve Pcow(sw)
	Pcgo CurveData `json:"pcgo" yaml:"pcgo"` // gas-oil curve Pcgo(sg)
}

// Case holds all data of an equilibration case
type Case struct {

	// global
	Data   Data      `json:"data" yaml:"data"`
	Phases PhaseData `json:"phases" yaml:"phases"`
	Grid   GridData  `json:"grid" yaml:"grid"`

	// equilibration
	Equil    []equil.Record `json:"equil" yaml:"equil"`       // EQUIL: one record per region
	Eqlnum   []int          `json:"eqlnum" yaml:"eqlnum"`     // EQLNUM: 1-based region of each deck cell
	Rsvd     []equil.Table  `json:"rsvd" yaml:"rsvd"`         // RSVD tables
	Rvvd     []equil.Table  `json:"rvvd" yaml:"rvvd"`         // RVVD tables
	Swatinit []float64      `json:"swatinit" yaml:"swatinit"` // SWATINIT of each deck cell

	// properties
	Pvt    []PvtData `json:"pvt" yaml:"pvt"`       // one set per PVT region
	Sat    []SatData `json:"sat" yaml:"sat"`       // one set per saturation region
	Pvtnum []int     `json:"pvtnum" yaml:"pvtnum"` // PVTNUM: 1-based PVT region of each deck cell
	Satnum []int     `json:"satnum" yaml:"satnum"` // SATNUM: 1-based saturation region of each deck cell

	// derived
	Key  string // file name key; e.g. "twophase" for "twophase.yaml"
	Path string // path of case file
}

// ReadCase reads a case file. The format follows the extension: .yaml and .yml files are
// YAML and everything else is JSON
func ReadCase(path string) (o *Case, err error) {

	// read file
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("inp: cannot read case file %q:\n%v", path, err)
	}

	// set default values
	o = new(Case)
	o.Data.SetDefault()

	// decode
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("inp: cannot decode case file %q:\n%v", path, err)
	}
	o.Path = path
	o.Key = io.FnKey(path)

	// check
	if o.Data.Nsteps < 1 {
		o.Data.Nsteps = equil.NumSteps
	}
	return
}

// Usage returns the active phases
func (o *Case) Usage() (phase.Usage, error) {
	return phase.NewUsage(o.Phases.Water, o.Phases.Oil, o.Phases.Gas)
}

// Options returns the equilibration options
func (o *Case) Options() *equil.Options {
	return &equil.Options{
		Gravity:  o.Data.Gravity,
		Nsteps:   o.Data.Nsteps,
		Parallel: o.Data.Parallel,
	}
}

// Deck returns the deck data used by the equilibration
func (o *Case) Deck() *equil.Deck {
	return &equil.Deck{
		Equil:    o.Equil,
		Eqlnum:   o.Eqlnum,
		DisGas:   o.Phases.DisGas,
		VapOil:   o.Phases.VapOil,
		Rsvd:     o.Rsvd,
		Rvvd:     o.Rvvd,
		Swatinit: o.Swatinit,
	}
}

// NewGrid allocates the grid
func (o *Case) NewGrid() (*grid.Cartesian, error) {
	var actnum []int
	if len(o.Grid.Actnum) > 0 {
		actnum = o.Grid.Actnum
	}
	return grid.NewCartesian(o.Grid.Nx, o.Grid.Ny, o.Grid.Nz, o.Grid.Tops, o.Grid.Dz, actnum)
}

// NewProps allocates the property evaluator of the active cells of g
func (o *Case) NewProps(g *grid.Cartesian) (p *props.Blackoil, err error) {
	usage, err := o.Usage()
	if err != nil {
		return
	}

	// fluids
	fluids := make([]*props.Fluids, len(o.Pvt))
	for i, d := range o.Pvt {
		fluids[i], err = d.fluids(usage)
		if err != nil {
			return nil, chk.Err("inp: PVT region %d:\n%v", i+1, err)
		}
	}

	// capillary curves
	curves := make([]*props.Curves, len(o.Sat))
	for i, d := range o.Sat {
		curves[i], err = d.curves(usage)
		if err != nil {
			return nil, chk.Err("inp: saturation region %d:\n%v", i+1, err)
		}
	}

	// regions
	pvtnum, err := cellRegions("PVTNUM", o.Pvtnum, g)
	if err != nil {
		return
	}
	satnum, err := cellRegions("SATNUM", o.Satnum, g)
	if err != nil {
		return
	}
	return props.NewBlackoil(usage, g.NumCells(), fluids, curves, pvtnum, satnum)
}

// fluids initialises the fluid models of the active phases
func (o PvtData) fluids(usage phase.Usage) (f *props.Fluids, err error) {
	f = new(props.Fluids)
	models := []struct {
		ph   phase.Phase
		mdl  *fluid.Model
		prms dbf.Params
	}{
		{phase.Aqua, &f.Water, o.Water},
		{phase.Liquid, &f.Oil, o.Oil},
		{phase.Vapour, &f.Gas, o.Gas},
	}
	for _, m := range models {
		if !usage.Has(m.ph) {
			continue
		}
		err = m.mdl.Init(m.prms)
		if err != nil {
			return nil, chk.Err("%v:\n%v", m.ph, err)
		}
	}
	err = f.RsSat.Init(o.RsSat.P, o.RsSat.R)
	if err != nil {
		return
	}
	err = f.RvSat.Init(o.RvSat.P, o.RvSat.R)
	return
}

// curves allocates the capillary pressure curves needed by the active phases
func (o SatData) curves(usage phase.Usage) (c *props.Curves, err error) {
	c = new(props.Curves)
	if usage.Has(phase.Aqua) {
		c.Pcow, err = o.Pcow.model()
		if err != nil {
			return nil, chk.Err("water-oil curve:\n%v", err)
		}
	}
	if usage.Has(phase.Vapour) {
		c.Pcgo, err = o.Pcgo.model()
		if err != nil {
			return nil, chk.Err("gas-oil curve:\n%v", err)
		}
	}
	return
}

// model allocates and initialises a retention model
func (o CurveData) model() (mdl retention.Model, err error) {
	name := o.Model
	if name == "" {
		name = "table"
	}
	mdl, err = retention.New(name)
	if err != nil {
		return
	}
	err = mdl.Init(o.Prms)
	if err != nil {
		return
	}
	if tab, ok := mdl.(*retention.Table); ok {
		err = tab.SetTable(o.S, o.Pc)
	}
	return
}

// cellRegions converts 1-based region numbers of deck cells into zero-based regions of
// active cells. nil input gives nil output (one region)
func cellRegions(key string, num []int, g *grid.Cartesian) (res []int, err error) {
	if len(num) == 0 {
		return
	}
	res = make([]int, g.NumCells())
	for c := range res {
		pos := g.GlobalCell(c)
		if pos >= len(num) {
			return nil, chk.Err("inp: %s has %d values but cell %d is at deck position %d", key, len(num), c, pos)
		}
		res[c] = num[pos] - 1
	}
	return
}
