////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package services

import "sync"

var factorization map[int64][]int64
var factorLock sync.Mutex

func init() {
	factorization = make(map[int64][]int64)
}

// Factor returns the prime factors of integer, consulting a process-wide
// cache before running the engine with default parameters. Factoring the same
// value twice only pays once. Callers receive a copy, so mutating the result
// cannot poison the cache.
func Factor(integer int64) []int64 {

	factorLock.Lock()

	factors, ok := factorization[integer]

	if !ok {
		factors = NewEngine(0, 0).Factorize(integer)
		factorization[integer] = factors
	}

	factorLock.Unlock()

	out := make([]int64, len(factors))
	copy(out, factors)

	return out
}
