////////////////////////////////////////////////////////////////////////////////
// Copyright © 2018 Privategrity Corporation                                   /
//                                                                             /
// All rights reserved.                                                        /
////////////////////////////////////////////////////////////////////////////////

// benchmark runs parameterized timing iterations of the factorization engine
package benchmark

import (
	"time"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/factorizer/services"
)

// RecommendedInputs are the standard timing inputs: a four-factor composite,
// a high-multiplicity prime power, and a composite whose cofactor is a
// twelve-digit prime. The last one takes on the order of a minute.
var RecommendedInputs = []int64{
	600851475143,
	35184372088832,
	7653567865434567,
}

// WorstCaseInput is the product of the ten-digit primes 3037000493 and
// 3037000453. Its only factors sit at the square root of the input, so
// factoring it requires every prime below that bound and takes hours. It is
// deliberately not part of RecommendedInputs.
const WorstCaseInput = int64(9223371873002223329)

// FactorIterations times the engine over the given inputs for the requested
// number of iterations and reports per-run durations. A nil engine uses the
// default parameters.
func FactorIterations(e *services.Engine, inputs []int64,
	iterations int) []time.Duration {

	if e == nil {
		e = services.NewEngine(0, 0)
	}

	durations := make([]time.Duration, 0, len(inputs)*iterations)

	for i := 0; i < iterations; i++ {
		for _, n := range inputs {
			start := time.Now()
			factors := e.Factorize(n)
			elapsed := time.Since(start)

			if services.Product(factors) != n {
				jww.FATAL.Panicf("Benchmark factorization of %d is wrong:"+
					" got %v", n, factors)
			}

			jww.INFO.Printf("Factored %d into %d factors in %s", n,
				len(factors), elapsed)

			durations = append(durations, elapsed)
		}
	}

	return durations
}
