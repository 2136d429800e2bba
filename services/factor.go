////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package services

import "math"

const (
	// DefaultBatchSize is the number of candidate primes requested from
	// NextPrimes per generator call.
	DefaultBatchSize = 1000

	// DefaultCheckInterval is how many batches pass between checks of the
	// running factor product against the input. The check is an amortization
	// heuristic, not a correctness requirement.
	DefaultCheckInterval = 100
)

// Engine factors 64-bit integers by trial division against batches of
// candidate primes. The zero value is not usable; construct with NewEngine.
type Engine struct {
	// BatchSize is the number of primes fetched per generator call.
	BatchSize int

	// CheckInterval is the batch period of the early product-match check.
	CheckInterval int
}

// NewEngine returns an Engine with the given batch size and check interval.
// Values below 1 fall back to the package defaults.
func NewEngine(batchSize, checkInterval int) *Engine {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	if checkInterval < 1 {
		checkInterval = DefaultCheckInterval
	}
	return &Engine{
		BatchSize:     batchSize,
		CheckInterval: checkInterval,
	}
}

// Factorize returns the prime factors of N with multiplicity, in
// non-decreasing order. The product of the returned factors equals N for any
// N of at least 2. An N below 2 returns an empty list; an empty list on its
// own is not evidence of primality. A single-element result means N is prime.
//
// The worst case, a product of two primes near the square root of N, requires
// generating every prime below that square root and can take hours. See
// Dispatcher for running such calls off a caller that must stay responsive.
func (e *Engine) Factorize(N int64) []int64 {
	factors, _ := e.factorize(N, nil)
	return factors
}

// factorize runs batched trial division. The quit channel is polled once per
// batch; receiving on it aborts the run and the partial factor list is
// returned with aborted set. A kill acknowledgement channel received over
// quit is signaled before returning, matching Dispatcher.Kill.
func (e *Engine) factorize(N int64, quit <-chan chan bool) ([]int64, bool) {
	factors := make([]int64, 0)

	if N < 2 {
		return factors, false
	}

	b, n := int64(1), N
	s := math.Sqrt(float64(N))
	c := 1

	for float64(b) <= s {
		select {
		case killNotify := <-quit:
			if killNotify != nil {
				killNotify <- true
			}
			return factors, true
		default:
		}

		primes := NextPrimes(b, e.BatchSize)

		i := 0

		for n > 1 && i < len(primes) {
			if n%primes[i] == 0 {
				factors = append(factors, primes[i])
				n /= primes[i]
			} else {
				i++
			}
		}

		// The cofactor is fully reduced, no candidate past this point can
		// divide anything
		if n == 1 {
			return factors, false
		}

		b = primes[len(primes)-1]

		if c%e.CheckInterval == 0 {
			if Product(factors) == N {
				return factors, false
			}
		}
		c++
	}

	// An integer N has at most one prime factor greater than the floor of
	// its square root. With t the product of all factors found below that
	// bound, the remaining factor, if any, is N / t.
	if t := Product(factors); t != N && N%t == 0 {
		factors = append(factors, N/t)
	}

	return factors, false
}

// Product multiplies the elements of a factor list. An empty list yields 1.
// Every element of a factor list divides the original input, so the product
// is bounded by that input and cannot overflow.
func Product(factors []int64) int64 {
	product := int64(1)

	for _, f := range factors {
		product *= f
	}

	return product
}

// FactorTerm is one prime of a factorization together with its multiplicity.
type FactorTerm struct {
	Prime int64
	Power uint32
}

// Terms groups an ordered factor list into its (prime, power) pairs,
// preserving order. The flat list must be non-decreasing, as produced by
// Factorize.
func Terms(factors []int64) []FactorTerm {
	terms := make([]FactorTerm, 0, len(factors))

	for _, f := range factors {
		if len(terms) > 0 && terms[len(terms)-1].Prime == f {
			terms[len(terms)-1].Power++
		} else {
			terms = append(terms, FactorTerm{Prime: f, Power: 1})
		}
	}

	return terms
}
