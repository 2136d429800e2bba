////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Factors positive 64-bit integers into their prime constituents. This
// general problem is a key component of public key cryptography.
package main

import "gitlab.com/elixxir/factorizer/cmd"

func main() {
	cmd.Execute()
}
