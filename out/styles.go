// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/danielfmva/opm-core/phase"

	"github.com/cpmech/gosl/plt"
)

// Styles holds one plot style per phase
type Styles [phase.Max]plt.A

// GetDefaultStyles returns markers without lines since cells of different columns
// may share the same depth
func GetDefaultStyles() (sty Styles) {
	sty[phase.Aqua] = plt.A{C: "b", M: "o", Ls: "none", L: GetTexLabel("water", "")}
	sty[phase.Liquid] = plt.A{C: "g", M: "s", Ls: "none", L: GetTexLabel("oil", "")}
	sty[phase.Vapour] = plt.A{C: "r", M: "^", Ls: "none", L: GetTexLabel("gas", "")}
	return
}

// GetTexLabel returns a TeX label for a phase name or a quantity key
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "water":
		l += "w"
	case "oil":
		l += "o"
	case "gas":
		l += "g"
	case "z":
		l += "z"
	case "p":
		l += "p_{\\alpha}"
	case "s":
		l += "s_{\\alpha}"
	case "rs":
		l += "R_s"
	case "rv":
		l += "R_v"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
