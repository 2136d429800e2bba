///////////////////////////////////////////////////////////////////////////////
// Copyright © 2020 xx network SEZC                                          //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

package io

import (
	"testing"
)

// Tests that well-formed in-range inputs parse to their values.
func TestValidateInput_Valid(t *testing.T) {
	cases := []struct {
		input    string
		expected int64
	}{
		{"2", 2},
		{"600851475143", 600851475143},
		{"35184372088832", 35184372088832},
		{"9223372036854775806", 9223372036854775806},
	}

	for _, c := range cases {
		n, err := ValidateInput(c.input)
		if err != nil {
			t.Errorf("ValidateInput(%q) returned an error: %+v",
				c.input, err)
		}
		if n != c.expected {
			t.Errorf("ValidateInput(%q) returned %d, expected %d",
				c.input, n, c.expected)
		}
	}
}

// Tests that non-numeric text is rejected before parsing.
func TestValidateInput_NotNumeric(t *testing.T) {
	for _, input := range []string{"", "abc", "12a3", "-5", "1.5", " 12",
		"12 ", "0x10"} {
		if _, err := ValidateInput(input); err == nil {
			t.Errorf("ValidateInput(%q) did not reject non-numeric input",
				input)
		}
	}
}

// Tests that values below 2 and at or above the 64-bit limit are rejected,
// including values that overflow the parse entirely.
func TestValidateInput_OutOfRange(t *testing.T) {
	for _, input := range []string{
		"0",
		"1",
		"9223372036854775807",
		"9223372036854775808",
		"99999999999999999999999999",
	} {
		if _, err := ValidateInput(input); err == nil {
			t.Errorf("ValidateInput(%q) did not reject out-of-range input",
				input)
		}
	}
}
