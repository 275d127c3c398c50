// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/strata-network/stratad/cache"
	"github.com/strata-network/stratad/fault"
	"github.com/strata-network/stratad/mode"
	"github.com/strata-network/stratad/reservoir"
	"github.com/strata-network/stratad/version"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not need the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if len(options["config-file"]) != 1 {
		exitwithstatus.Message("%s: exactly one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if err != nil {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands need the configuration and
	// perform enquiries on it
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// console logging for interactive use
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); err != nil {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version.Version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// set up the fault panic log (now that logging is available)
	if err := fault.Initialise(); err != nil {
		exitwithstatus.Message("%s: fault initialise error: %s", program, err)
	}
	defer fault.Finalise()

	// ------------------
	// start of real main
	// ------------------

	// refuse to run with unusable settlement parameters
	if err := theConfiguration.Settlement.Verify(); err != nil {
		log.Criticalf("settlement configuration error: %s", err)
		exitwithstatus.Message("%s: settlement configuration error: %s", program, err)
	}

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if theConfiguration.PidFile != "" {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if err != nil {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("%s: mode initialise error: %s", program, err)
	}
	defer mode.Finalise()

	if mode.IsTesting() {
		log.Warnf("running on test chain: %s", mode.ChainName())
	}

	// the memory pools with their sweeper
	err = cache.Initialise(theConfiguration.MemoryPools)
	if err != nil {
		log.Criticalf("cache initialise error: %s", err)
		exitwithstatus.Message("%s: cache initialise error: %s", program, err)
	}
	defer cache.Finalise()

	// the transaction intake
	err = reservoir.Initialise(theConfiguration.Reservoir)
	if err != nil {
		log.Criticalf("reservoir initialise error: %s", err)
		exitwithstatus.Message("%s: reservoir initialise error: %s", program, err)
	}
	defer reservoir.Finalise()

	// all subsystems are up
	mode.Set(mode.Normal)

	// wait for termination
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	mode.Set(mode.Stopped)

	accepted, duplicate, throttled := reservoir.ReadCounters()
	log.Infof("reservoir counters: accepted: %d  duplicate: %d  throttled: %d", accepted, duplicate, throttled)
	log.Info("shutting down…")
	log.Flush()
}
