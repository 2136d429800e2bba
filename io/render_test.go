///////////////////////////////////////////////////////////////////////////////
// Copyright © 2020 xx network SEZC                                          //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

package io

import (
	"strings"
	"testing"
	"time"

	"gitlab.com/elixxir/factorizer/services"
)

// Tests comma grouping across digit-count boundaries.
func TestFormatInt(t *testing.T) {
	cases := []struct {
		n        int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{600851475143, "600,851,475,143"},
		{-1234, "-1,234"},
		{9223372036854775807, "9,223,372,036,854,775,807"},
	}

	for _, c := range cases {
		if FormatInt(c.n) != c.expected {
			t.Errorf("FormatInt(%d) returned %q, expected %q",
				c.n, FormatInt(c.n), c.expected)
		}
	}
}

// Tests exponent rendering with Unicode superscript digits.
func TestSuperscript(t *testing.T) {
	cases := []struct {
		exp      uint32
		expected string
	}{
		{1, "¹"},
		{2, "²"},
		{45, "⁴⁵"},
		{100, "¹⁰⁰"},
	}

	for _, c := range cases {
		if Superscript(c.exp) != c.expected {
			t.Errorf("Superscript(%d) returned %q, expected %q",
				c.exp, Superscript(c.exp), c.expected)
		}
	}
}

// Tests the caret rendering of grouped factors, exponent omitted for single
// occurrences.
func TestFormatTerms(t *testing.T) {
	terms := services.Terms([]int64{2, 2, 2, 3, 5, 5})

	expected := "2^3 * 3 * 5^2"
	if FormatTerms(terms) != expected {
		t.Errorf("FormatTerms returned %q, expected %q",
			FormatTerms(terms), expected)
	}

	if FormatTerms(services.Terms([]int64{7919})) != "7919" {
		t.Errorf("FormatTerms of a single factor returned %q, expected"+
			" \"7919\"", FormatTerms(services.Terms([]int64{7919})))
	}
}

// Tests the prime-number message for a single-factor report.
func TestFormatReport_Prime(t *testing.T) {
	r := services.Report{
		Input:   7919,
		Factors: []int64{7919},
		Elapsed: time.Millisecond,
	}

	expected := "7,919 is a prime number -- try again"
	if FormatReport(r) != expected {
		t.Errorf("FormatReport returned %q, expected %q",
			FormatReport(r), expected)
	}
}

// Tests the full answer text for a composite report.
func TestFormatReport_Composite(t *testing.T) {
	r := services.Report{
		Input:   35184372088832,
		Factors: services.NewEngine(0, 0).Factorize(35184372088832),
		Elapsed: 1234 * time.Millisecond,
	}

	out := FormatReport(r)

	if !strings.Contains(out, "The prime factors of 35,184,372,088,832") {
		t.Errorf("FormatReport output missing header: %q", out)
	}
	if !strings.Contains(out, "2⁴⁵") {
		t.Errorf("FormatReport output missing superscript factor: %q", out)
	}
	if !strings.Contains(out, "Calculated in approx. 1,234 ms") {
		t.Errorf("FormatReport output missing elapsed time: %q", out)
	}
}

// Tests the canceled message for an aborted report.
func TestFormatReport_Aborted(t *testing.T) {
	r := services.Report{
		Input:   9223371873002223329,
		Factors: []int64{},
		Aborted: true,
	}

	expected := "Factorization of 9,223,371,873,002,223,329 was canceled"
	if FormatReport(r) != expected {
		t.Errorf("FormatReport returned %q, expected %q",
			FormatReport(r), expected)
	}
}
