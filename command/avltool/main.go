// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/spf13/afero"

	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "tree", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "removal", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "keys", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'k'},
		{Long: "order", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'o'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s\n", version)
		return
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--version] [--verbose] [--config-file=FILE] [--tree=avl|bst] [--removal=copy|fusion] [--keys=int|string] [--order=in|pre|post] [operation ...]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: at most one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	fs := afero.NewOsFs()
	theConfiguration, err := getConfiguration(fs, configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command-line values take precedence
	if err := theConfiguration.override(options); nil != err {
		exitwithstatus.Message("%s: invalid option: %s", program, err)
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels = map[string]string{
			logger.DefaultTag: "debug",
		}
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	interpreter, err := newInterpreter(theConfiguration, os.Stdout, logger.New("tree"))
	if nil != err {
		exitwithstatus.Message("%s: setup failed with error: %s", program, err)
	}

	operations := append(theConfiguration.script(), arguments...)
	if err := interpreter.run(operations); nil != err {
		log.Errorf("run error: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}
}
