////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package globals

import "math"

// NLimit is the exclusive upper bound on factorization inputs. Values at or
// above it are rejected before the engine is ever invoked; the engine's
// domain is [2, NLimit).
const NLimit = int64(math.MaxInt64)
