// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import "github.com/cpmech/gosl/io"

// Contact holds a depth and a pressure. For the datum, Press is the oil pressure at
// the datum depth; for contacts, Press is the capillary pressure at the contact
type Contact struct {
	Depth float64 `json:"depth" yaml:"depth"` // [m]
	Press float64 `json:"press" yaml:"press"` // [Pa]
}

// Record holds the equilibration data of one region (one EQUIL record)
type Record struct {
	Main Contact `json:"datum" yaml:"datum"` // datum depth and pressure
	Woc  Contact `json:"woc" yaml:"woc"`     // water-oil contact depth and capillary pressure
	Goc  Contact `json:"goc" yaml:"goc"`     // gas-oil contact depth and capillary pressure

	LiveOilTableIndex int `json:"rsvd" yaml:"rsvd"` // 1-based RSVD table; 0 means saturated at contact
	WetGasTableIndex  int `json:"rvvd" yaml:"rvvd"` // 1-based RVVD table; 0 means saturated at contact
	N                 int `json:"n" yaml:"n"`       // accuracy of initial fluid in place; only 0 is supported
}

// String prints a record
func (o Record) String() string {
	return io.Sf("datum=(%g, %g) woc=(%g, %g) goc=(%g, %g) rsvd=%d rvvd=%d N=%d",
		o.Main.Depth, o.Main.Press, o.Woc.Depth, o.Woc.Press, o.Goc.Depth, o.Goc.Press,
		o.LiveOilTableIndex, o.WetGasTableIndex, o.N)
}

// GetEquil returns the equilibration records of the deck. A deck without records or
// a record with an accuracy target other than zero cannot be handled
func GetEquil(deck *Deck) ([]Record, error) {
	if deck == nil || len(deck.Equil) == 0 {
		return nil, ErrNoEquilData
	}
	for i, rec := range deck.Equil {
		if rec.N != 0 {
			return nil, failure(ErrUnsupported, "EQUIL record %d (counting from 1): only N=0 is supported; N=%d", i+1, rec.N)
		}
		if rec.LiveOilTableIndex < 0 || rec.WetGasTableIndex < 0 {
			return nil, failure(ErrInconsistent, "EQUIL record %d (counting from 1): table indices must not be negative", i+1)
		}
	}
	return deck.Equil, nil
}

// Equilnum returns the zero-based equilibration region of each cell of the grid. All
// cells belong to region zero when the deck has no EQLNUM or when every EQLNUM value
// is zero
func Equilnum(deck *Deck, g Grid) ([]int, error) {
	ncells := g.NumCells()
	eqlnum := make([]int, ncells)
	if deck == nil || len(deck.Eqlnum) == 0 || allZero(deck.Eqlnum) {
		return eqlnum, nil
	}
	for c := 0; c < ncells; c++ {
		pos := g.GlobalCell(c)
		if pos < 0 || pos >= len(deck.Eqlnum) {
			return nil, failure(ErrInconsistent, "EQLNUM has %d values but cell %d is at deck position %d", len(deck.Eqlnum), c, pos)
		}
		eqlnum[c] = deck.Eqlnum[pos] - 1
	}
	return eqlnum, nil
}

// Swatinit returns the prescribed water saturation of each cell of the grid or nil
// when the deck has no SWATINIT
func Swatinit(deck *Deck, g Grid) ([]float64, error) {
	if deck == nil || len(deck.Swatinit) == 0 {
		return nil, nil
	}
	ncells := g.NumCells()
	swat := make([]float64, ncells)
	for c := 0; c < ncells; c++ {
		pos := g.GlobalCell(c)
		if pos < 0 || pos >= len(deck.Swatinit) {
			return nil, failure(ErrInconsistent, "SWATINIT has %d values but cell %d is at deck position %d", len(deck.Swatinit), c, pos)
		}
		swat[c] = deck.Swatinit[pos]
	}
	return swat, nil
}

// allZero tells whether all region numbers are zero
func allZero(reg []int) bool {
	for _, r := range reg {
		if r != 0 {
			return false
		}
	}
	return true
}
