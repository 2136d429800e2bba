///////////////////////////////////////////////////////////////////////////////
// Copyright © 2020 xx network SEZC                                          //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

package conf

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"gitlab.com/elixxir/factorizer/services"
)

// Params holds the runtime configuration of the factorizer.
// It should be constructed from a viper object with NewParams.
type Params struct {
	Verbose bool `yaml:"verbose"`

	// BatchSize is the number of candidate primes generated per batch.
	BatchSize int `yaml:"batchSize"`

	// CheckInterval is the batch period of the early product-match check.
	CheckInterval int `yaml:"checkInterval"`

	Node Node `yaml:"node"`
}

// Node contains the node-local config params.
type Node struct {
	Paths Paths `yaml:"paths"`
}

// Paths contains the config params for file paths used by the system.
type Paths struct {
	Log string `yaml:"log"`
}

// NewParams gets elements of the viper object and updates the params object.
// Unset tunables fall back to the engine defaults; negative values are
// rejected.
func NewParams(vip *viper.Viper) (*Params, error) {

	if vip == nil {
		return nil, errors.New("Invalid or non-existent config object")
	}

	params := Params{}

	params.Verbose = vip.GetBool("verbose")

	params.BatchSize = vip.GetInt("batchSize")
	if params.BatchSize == 0 {
		params.BatchSize = services.DefaultBatchSize
	}
	if params.BatchSize < 1 {
		return nil, errors.Errorf("Invalid batchSize %d in params",
			params.BatchSize)
	}

	params.CheckInterval = vip.GetInt("checkInterval")
	if params.CheckInterval == 0 {
		params.CheckInterval = services.DefaultCheckInterval
	}
	if params.CheckInterval < 1 {
		return nil, errors.Errorf("Invalid checkInterval %d in params",
			params.CheckInterval)
	}

	params.Node.Paths.Log = vip.GetString("node.paths.log")

	return &params, nil
}

// String renders the params as yaml for debug logging.
func (p *Params) String() string {
	out, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Sprintf("%+v", *p)
	}
	return string(out)
}
