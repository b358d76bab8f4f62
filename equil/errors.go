// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/io"
)

// Errors returned by the equilibration. All of them are fatal: no state is published.
var (
	// ErrNoEquilData indicates that the deck has no equilibration records
	ErrNoEquilData = errors.New("equil: deck does not provide equilibration data")

	// ErrMissingTable indicates that a record refers to a depth table that is not available
	ErrMissingTable = errors.New("equil: table not available")

	// ErrUnsupported indicates a configuration this procedure cannot handle
	ErrUnsupported = errors.New("equil: unsupported configuration")

	// ErrInconsistent indicates contradictory input data
	ErrInconsistent = errors.New("equil: inconsistent data")
)

// failure wraps one of the sentinel errors with a formatted message
func failure(kind error, msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, io.Sf(msg, prm...))
}
