////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package services

import "math"

// IsPrime reports whether n is prime. Any value below 2 is not prime. Even
// values other than 2 are rejected outright, then odd divisors are tested up
// to the floor of the square root of n. Deterministic with no side effects.
func IsPrime(n int64) bool {
	if (n != 2 && n%2 == 0) || n < 2 {
		return false
	}

	sqrtOf := int64(math.Sqrt(float64(n)))

	for i := int64(3); i <= sqrtOf; i += 2 {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// NextPrimes finds the next count primes strictly greater than bound by
// testing successive integers with IsPrime. The returned slice is strictly
// increasing. There is no cache; callers that advance bound monotonically
// never pay for the same range twice.
func NextPrimes(bound int64, count int) []int64 {
	primes := make([]int64, count)

	i := 0

	for i < count {
		bound++
		if IsPrime(bound) {
			primes[i] = bound
			i++
		}
	}

	return primes
}
