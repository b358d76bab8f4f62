// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_usage01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("usage01. positions of active phases")

	u, err := NewUsage(false, true, true)
	if err != nil {
		tst.Errorf("NewUsage failed: %v\n", err)
		return
	}
	chk.Int(tst, "num", u.Num, 2)
	chk.Int(tst, "pos(water)", u.Pos[Aqua], -1)
	chk.Int(tst, "pos(oil)", u.Pos[Liquid], 0)
	chk.Int(tst, "pos(gas)", u.Pos[Vapour], 1)
	chk.String(tst, u.Phases()[1].String(), "gas")

	_, err = NewUsage(false, false, false)
	if err == nil {
		tst.Errorf("empty phase set should have been rejected\n")
	}
}
