///////////////////////////////////////////////////////////////////////////////
// Copyright © 2020 xx network SEZC                                          //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

// Package io validates user input and renders factorization results. All
// validation happens here, before the services core is invoked; the core has
// no error paths of its own.
package io

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"gitlab.com/elixxir/factorizer/globals"
)

const errInvalidEntry = "Invalid entry -- try again"
const errOutOfRange = "Please enter a number between 2 and %s"

var digitsOnly = regexp.MustCompile("^[0-9]+$")

// ValidateInput parses a textual factorization request. The text must be
// decimal digits only and parse to a value in [2, globals.NLimit). A value
// overflowing 64 bits is treated the same as one out of range; the engine
// never sees either. The returned errors carry the user-facing message.
func ValidateInput(input string) (int64, error) {

	if !digitsOnly.MatchString(input) {
		return 0, errors.New(errInvalidEntry)
	}

	n, err := strconv.ParseInt(input, 10, 64)

	if err != nil || n >= globals.NLimit || n < 2 {
		return 0, errors.Errorf(errOutOfRange, FormatInt(globals.NLimit))
	}

	return n, nil
}
