////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package globals

import (
	"fmt"
	"reflect"
	"testing"

	"gitlab.com/elixxir/factorizer/conf"
)

// Tests that the params that are set are the same that are retrieved, and
// that setting them a second time panics.
func TestSetParams_GetParams(t *testing.T) {
	p := &conf.Params{BatchSize: 100, CheckInterval: 10}

	SetParams(p)

	if !reflect.DeepEqual(GetParams(), p) {
		t.Errorf("The params returned by GetParams() do not match the set"+
			" params\n\trecieved: %#v\n\texpected: %#v", GetParams(), p)
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Println("Recovered in SetParams(): ", r)
		} else {
			t.Errorf("SetParams() did not panick when expected while" +
				" attempting to set the params again")
		}
	}()

	SetParams(p)
}
