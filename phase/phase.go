// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phase defines black-oil phase identifiers and phase usage
package phase

import "github.com/cpmech/gosl/chk"

// Phase identifies a black-oil phase
type Phase int

// phases
const (
	Aqua   Phase = iota // water
	Liquid              // oil
	Vapour              // gas
	Max                 // number of possible phases
)

// String returns the phase name
func (o Phase) String() string {
	switch o {
	case Aqua:
		return "water"
	case Liquid:
		return "oil"
	case Vapour:
		return "gas"
	}
	return "unknown"
}

// Usage holds the active phases and their positions in per-phase arrays
type Usage struct {
	Num  int       // number of active phases
	Used [Max]bool // active flags
	Pos  [Max]int  // position of each active phase; -1 if inactive
}

// NewUsage returns phase usage for the given active flags
func NewUsage(water, oil, gas bool) (o Usage, err error) {
	flags := [Max]bool{water, oil, gas}
	for p := Aqua; p < Max; p++ {
		o.Pos[p] = -1
		if flags[p] {
			o.Used[p] = true
			o.Pos[p] = o.Num
			o.Num++
		}
	}
	if o.Num == 0 {
		err = chk.Err("phase: at least one phase must be active")
	}
	return
}

// Has tells whether phase p is active
func (o Usage) Has(p Phase) bool {
	return o.Used[p]
}

// Phases returns the active phases in position order
func (o Usage) Phases() (res []Phase) {
	for p := Aqua; p < Max; p++ {
		if o.Used[p] {
			res = append(res, p)
		}
	}
	return
}
