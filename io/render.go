///////////////////////////////////////////////////////////////////////////////
// Copyright © 2020 xx network SEZC                                          //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

package io

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/elixxir/factorizer/services"
)

// The 1, 2, 3 superscript characters are ISO 8859-1 ("Latin 1"); the rest
// live in the Unicode superscripts block.
var superscriptDigits = [10]rune{
	'⁰', '¹', '²', '³', '⁴',
	'⁵', '⁶', '⁷', '⁸', '⁹',
}

// FormatInt renders n with comma thousands separators.
func FormatInt(n int64) string {
	s := strconv.FormatInt(n, 10)

	neg := ""
	if strings.HasPrefix(s, "-") {
		neg, s = "-", s[1:]
	}

	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}

	return neg + sb.String()
}

// Superscript renders exp with Unicode superscript digits.
func Superscript(exp uint32) string {
	var sb strings.Builder
	for _, d := range strconv.FormatUint(uint64(exp), 10) {
		sb.WriteRune(superscriptDigits[d-'0'])
	}
	return sb.String()
}

// FormatTerms renders grouped factors in the caret style,
// "factor^exponent * factor * ...", omitting the exponent for a
// multiplicity of 1.
func FormatTerms(terms []services.FactorTerm) string {
	parts := make([]string, len(terms))

	for i, term := range terms {
		if term.Power > 1 {
			parts[i] = fmt.Sprintf("%d^%d", term.Prime, term.Power)
		} else {
			parts[i] = strconv.FormatInt(term.Prime, 10)
		}
	}

	return strings.Join(parts, " * ")
}

// formatTermsSuperscript renders grouped factors with comma-separated digits
// and Unicode superscript exponents, the display style of the answer panel.
func formatTermsSuperscript(terms []services.FactorTerm) string {
	parts := make([]string, len(terms))

	for i, term := range terms {
		parts[i] = FormatInt(term.Prime)
		if term.Power > 1 {
			parts[i] += Superscript(term.Power)
		}
	}

	return strings.Join(parts, " * ")
}

// FormatReport renders the user-facing text for a finished factorization. A
// result with fewer than two factors means the input itself is prime.
func FormatReport(r services.Report) string {
	if r.Aborted {
		return fmt.Sprintf("Factorization of %s was canceled",
			FormatInt(r.Input))
	}

	if len(r.Factors) < 2 {
		return fmt.Sprintf("%s is a prime number -- try again",
			FormatInt(r.Input))
	}

	return fmt.Sprintf("The prime factors of %s are: \n\n%s\n\n"+
		"Calculated in approx. %s ms",
		FormatInt(r.Input),
		formatTermsSuperscript(services.Terms(r.Factors)),
		FormatInt(r.Elapsed.Milliseconds()))
}
