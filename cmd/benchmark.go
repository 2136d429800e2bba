////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package cmd

import (
	"time"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/factorizer/benchmark"
	"gitlab.com/elixxir/factorizer/globals"
	"gitlab.com/elixxir/factorizer/services"
)

var iterations int
var worstCase bool

func init() {
	benchmarkCmd.Flags().IntVarP(&iterations, "iterations", "i", 1,
		"Number of times to iterate the benchmark")
	benchmarkCmd.Flags().BoolVarP(&worstCase, "worstCase", "", false,
		"Include the ten-digit semiprime worst case (takes hours)")

	rootCmd.AddCommand(benchmarkCmd)
}

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Factorization benchmarking runs",
	Long: `Time the factorization engine over the recommended inputs. The
worst-case semiprime input must be requested explicitly because factoring it
takes hours.`,
	Run: func(cmd *cobra.Command, args []string) {
		globals.SetParams(loadParams())
		params := globals.GetParams()

		inputs := benchmark.RecommendedInputs
		if worstCase {
			inputs = append(inputs, benchmark.WorstCaseInput)
		}

		durations := benchmark.FactorIterations(
			services.NewEngine(params.BatchSize, params.CheckInterval),
			inputs, iterations)

		var total time.Duration
		for _, d := range durations {
			total += d
		}
		jww.INFO.Printf("Benchmark finished: %d runs in %s",
			len(durations), total)
	},
}
