// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"math"

	"github.com/danielfmva/opm-core/phase"

	"github.com/cpmech/gosl/utl"
	"github.com/sirupsen/logrus"
)

// tolerances of the capillary pressure inversion
const (
	satTolS   = 1e-15 // saturation interval
	satTolF   = 1e-12 // relative capillary pressure residual
	satMaxIt  = 100   // max number of iterations
	pcEpsilon = 1e-9  // smallest capillary pressure used to scale a curve [Pa]
)

// PhaseSaturations computes the saturation of each active phase in each cell of a region
// from the phase pressures computed by PhasePressures.
//  swatinit -- prescribed water saturation of each grid cell; may be nil
//  Output:
//   sat   -- [phase position][i] saturations where i runs over cells
//   scale -- [i] multiplier of the water-oil capillary curve (1 if not scaled)
func PhaseSaturations(reg *Region, cells []int, props Props, swatinit []float64, press [][]float64) (sat [][]float64, scale []float64) {
	u := reg.Usage
	jw, jo, jg := u.Pos[phase.Aqua], u.Pos[phase.Liquid], u.Pos[phase.Vapour]
	water, gas := u.Has(phase.Aqua), u.Has(phase.Vapour)
	sat = utl.Alloc(u.Num, len(cells))
	scale = make([]float64, len(cells))
	for i, c := range cells {
		scale[i] = 1
		po := press[jo][i]

		// water
		sw := 0.0
		if water {
			pcow := po - press[jw][i]
			if swatinit != nil {
				sw, scale[i] = swatinitScaling(props, c, swatinit[c], pcow)
			} else {
				sw = satFromPc(props, c, phase.Aqua, pcow, false)
			}
			sat[jw][i] = sw
		}

		// gas
		sg := 0.0
		if gas {
			pcgo := press[jg][i] - po
			sg = satFromPc(props, c, phase.Vapour, pcgo, true)
			sat[jg][i] = sg
		}

		// overlapping transition zones: no oil
		if water && gas && sw+sg > 1 {
			pcgw := press[jg][i] - press[jw][i]
			sw = satFromSumOfPcs(props, c, scale[i], pcgw)
			sg = 1 - sw
			sat[jw][i] = sw
			sat[jg][i] = sg
		}

		// oil
		sat[jo][i] = 1 - sw - sg
	}
	return
}

// swatinitScaling returns the prescribed water saturation and the multiplier of the
// water-oil capillary curve reproducing pcow at that saturation. Cells where no positive
// multiplier exists fall back to the unscaled inversion
func swatinitScaling(props Props, cell int, swinit, pcow float64) (sw, scale float64) {
	smin, smax := props.SatRange(cell, phase.Aqua)
	sw = min(max(swinit, smin), smax)
	pc := props.CapPress(cell, phase.Aqua, sw)
	if pcow > 0 && pc > pcEpsilon {
		return sw, pcow / pc
	}
	logrus.Debugf("equil: cell %d: SWATINIT=%g cannot be honoured (Pcow=%g, Pcow(swinit)=%g); using the unscaled curve", cell, swinit, pcow, pc)
	return satFromPc(props, cell, phase.Aqua, pcow, false), 1
}

// satFromPc inverts the capillary pressure curve of phase ph. The water-oil curve
// decreases and the gas-oil curve increases with saturation. Targets outside the range
// of the curve give the saturation end points
func satFromPc(props Props, cell int, ph phase.Phase, target float64, increasing bool) float64 {
	smin, smax := props.SatRange(cell, ph)
	pc := func(s float64) float64 {
		return props.CapPress(cell, ph, s)
	}
	return invert(pc, smin, smax, target, increasing)
}

// satFromSumOfPcs computes the water saturation where water and gas touch:
//   scale・Pcow(sw) + Pcgo(1 - sw) = pg - pw
// The left-hand side decreases with sw
func satFromSumOfPcs(props Props, cell int, scale, target float64) float64 {
	smin, smax := props.SatRange(cell, phase.Aqua)
	pc := func(sw float64) float64 {
		return scale*props.CapPress(cell, phase.Aqua, sw) + props.CapPress(cell, phase.Vapour, 1-sw)
	}
	return invert(pc, smin, smax, target, false)
}

// invert solves pc(s) = target for s in [smin, smax]
func invert(pc func(s float64) float64, smin, smax, target float64, increasing bool) float64 {
	sign := 1.0
	if !increasing {
		sign = -1
	}
	f := func(s float64) float64 {
		return sign * (pc(s) - target)
	}
	fa, fb := f(smin), f(smax)
	if fa >= 0 {
		return smin
	}
	if fb <= 0 {
		return smax
	}
	return regulaFalsi(f, smin, smax, fa, fb, satTolF*max(1, math.Abs(target)))
}

// regulaFalsi finds the root of f bracketed by [a, b] with f(a) < 0 < f(b) using the
// Illinois variant of the false position method
func regulaFalsi(f func(x float64) float64, a, b, fa, fb, tolF float64) (x float64) {
	side := 0
	for it := 0; it < satMaxIt; it++ {
		x = (a*fb - b*fa) / (fb - fa)
		if b-a < satTolS {
			return
		}
		fx := f(x)
		if math.Abs(fx) <= tolF {
			return
		}
		if fx > 0 {
			b, fb = x, fx
			if side == -1 {
				fa /= 2
			}
			side = -1
		} else {
			a, fa = x, fx
			if side == 1 {
				fb /= 2
			}
			side = 1
		}
	}
	return
}
