////////////////////////////////////////////////////////////////////////////////
// Copyright © 2018 Privategrity Corporation                                   /
//                                                                             /
// All rights reserved.                                                        /
////////////////////////////////////////////////////////////////////////////////

package benchmark

import (
	"testing"

	"gitlab.com/elixxir/factorizer/services"
)

// Tests that an iteration sweep returns one positive duration per run.
func TestFactorIterations(t *testing.T) {
	inputs := []int64{600851475143, 35184372088832}

	durations := FactorIterations(services.NewEngine(0, 0), inputs, 2)

	if len(durations) != 4 {
		t.Fatalf("FactorIterations returned %d durations, expected 4",
			len(durations))
	}

	for i, d := range durations {
		if d <= 0 {
			t.Errorf("Duration %d is %s, expected positive", i, d)
		}
	}
}
