////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package cmd initializes the CLI and config parsers as well as the logger.
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"gitlab.com/elixxir/factorizer/conf"
	"gitlab.com/elixxir/factorizer/globals"
	"gitlab.com/elixxir/factorizer/io"
	"gitlab.com/elixxir/factorizer/services"
)

var cfgFile string
var verbose bool
var batchSize int
var showVer bool

// rootCmd represents the base command when called without any sub-commands
var rootCmd = &cobra.Command{
	Use:   "factorizer [integer]",
	Short: "Factors a positive 64-bit integer into its prime constituents",
	Long: `factorizer decomposes a positive 64-bit integer into its prime
factors by tuned trial division. Pass the integer as an argument for a single
factorization, or pass nothing for an interactive prompt. A number that is
the product of two ten-digit primes is the worst case and can take hours.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if showVer {
			printVersion()
			return
		}

		params := loadParams()
		globals.SetParams(params)

		dispatcher := services.NewDispatcher(
			services.NewEngine(params.BatchSize, params.CheckInterval))

		// Exiting must not leave a factorization running past the process
		exitCh := ReceiveExitSignal()
		go func() {
			<-exitCh
			jww.INFO.Printf("Exit signal received, killing in-flight" +
				" factorization...")
			dispatcher.Kill(false)
			os.Exit(0)
		}()

		// SIGUSR1 cancels the in-flight factorization without exiting,
		// useful when a worst-case input was entered by mistake
		ReceiveSignal(func() { dispatcher.Kill(false) }, syscall.SIGUSR1)

		if len(args) == 1 {
			runOnce(dispatcher, args[0])
			return
		}

		runInteractive(dispatcher)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		jww.ERROR.Printf("Factorizer exiting with error: %s", err.Error())
		os.Exit(1)
	}
}

// runOnce validates and factors a single command line argument.
func runOnce(dispatcher *services.Dispatcher, input string) {
	n, err := io.ValidateInput(input)
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}

	out, err := dispatcher.Submit(n)
	if err != nil {
		jww.FATAL.Panicf("Could not submit factorization: %+v", err)
	}

	fmt.Println(io.FormatReport(<-out))
}

// runInteractive reads factorization requests from stdin until EOF. Entries
// made while a factorization is in flight are refused, not queued; the
// answer for each accepted entry is printed when its run completes.
func runInteractive(dispatcher *services.Dispatcher) {
	scanner := bufio.NewScanner(os.Stdin)

	results := make(chan services.Report)
	go func() {
		for r := range results {
			fmt.Println(io.FormatReport(r))
		}
	}()

	for {
		fmt.Print("Enter integer to factor: ")

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		n, err := io.ValidateInput(input)
		if err != nil {
			fmt.Println(err.Error())
			continue
		}

		out, err := dispatcher.Submit(n)
		if err != nil {
			fmt.Println("Waiting on current execution -- please wait")
			continue
		}

		go func() {
			results <- <-out
		}()
	}

	// Block until any in-flight run acknowledges the kill so the process
	// does not exit mid-batch
	dispatcher.Kill(true)
}

// loadParams builds the runtime params from the viper object.
func loadParams() *conf.Params {
	params, err := conf.NewParams(viper.GetViper())
	if err != nil {
		jww.FATAL.Panicf("Unable to load params: %+v", err)
	}

	jww.DEBUG.Printf("Loaded params:\n%s", params)

	return params
}

// init is the initialization function for Cobra which defines commands
// and flags.
func init() {
	// NOTE: The point of init() is to be declarative.  There
	// is one init in each sub command. Do not put variable
	// declarations here, and ensure all the Flags are of the *P
	// variety, unless there's a very good reason not to have them
	// as local params to sub command."
	cobra.OnInitialize(initConfig, initLog)

	rootCmd.Flags().StringVarP(&cfgFile, "config", "", "",
		"config file (default is $HOME/.elixxir/factorizer.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Verbose mode for debugging")
	rootCmd.PersistentFlags().IntVarP(&batchSize, "batch", "b", 0,
		"Prime candidate batch size (default 1000)")
	rootCmd.Flags().BoolVarP(&showVer, "version", "V", false,
		"Show the factorizer version information.")

	err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup(
		"verbose"))
	handleBindingError(err, "verbose")

	err = viper.BindPFlag("batchSize", rootCmd.PersistentFlags().Lookup(
		"batch"))
	handleBindingError(err, "batchSize")
}

func handleBindingError(err error, flag string) {
	if err != nil {
		jww.FATAL.Panicf("Error on binding flag \"%s\":%+v", flag, err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	//Use default config location if none is passed
	if cfgFile == "" {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			jww.ERROR.Println(err)
			os.Exit(1)
		}

		cfgFile = home + "/.elixxir/factorizer.yaml"
	}

	viper.SetConfigFile(cfgFile)

	viper.AutomaticEnv() // read in environment variables that match

	// A missing config file is not an error; the built-in defaults apply
	if err := viper.ReadInConfig(); err != nil {
		jww.DEBUG.Printf("Unable to read config file (%s): %s", cfgFile,
			err.Error())
	}
}

// initLog initializes logging thresholds and the log path.
func initLog() {
	// If verbose flag set then log more info for debugging
	if viper.GetBool("verbose") {
		jww.SetLogThreshold(jww.LevelDebug)
		jww.SetStdoutThreshold(jww.LevelDebug)
	} else {
		jww.SetLogThreshold(jww.LevelInfo)
		jww.SetStdoutThreshold(jww.LevelWarn)
	}

	if viper.Get("node.paths.log") != nil {
		// Create log file, overwrites if existing
		logPath := viper.GetString("node.paths.log")
		logFile, err := os.Create(logPath)
		if err != nil {
			fmt.Printf("Invalid or missing log path %s, "+
				"default path used.\n", logPath)
		} else {
			jww.SetLogOutput(logFile)
		}
	}
}
