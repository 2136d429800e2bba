////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package globals

import (
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/factorizer/conf"
)

var params *conf.Params

// SetParams allows the global params to be set once.
func SetParams(p *conf.Params) {
	if params != nil {
		jww.CRITICAL.Panicf("Cannot set the global params twice")
	}

	params = p
}

// GetParams retrieves the set global params.
func GetParams() *conf.Params {
	return params
}
