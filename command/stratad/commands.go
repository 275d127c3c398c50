// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/strata-network/stratad/chain"
	"github.com/strata-network/stratad/version"
)

// setup commands that run before the configuration is loaded
// returns true if the command was handled
func processSetupCommand(program string, arguments []string) bool {

	switch arguments[0] {
	case "help", "h":
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [command]\n", program)
		fmt.Printf("       %s --config-file=FILE show-config     display the parsed configuration\n", program)
		fmt.Printf("       %s --config-file=FILE check           verify the configuration and exit\n", program)
		fmt.Printf("       %s version                            display version and exit\n", program)
		fmt.Printf("       %s chains                             display supported chains and exit\n", program)

	case "version", "v":
		fmt.Println(version.Version)

	case "chains":
		fmt.Printf("%s\n%s\n%s\n", chain.Strata, chain.Testing, chain.Local)

	default:
		// not handled here, check the config commands
		return false
	}
	return true
}

// enquiry commands that need the parsed configuration
// returns true if the command was handled
func processConfigCommand(arguments []string, options *Configuration) bool {

	switch arguments[0] {
	case "show-config":
		b, err := json.MarshalIndent(options, "", "  ")
		if err != nil {
			exitwithstatus.Message("cannot display configuration, error: %s", err)
		}
		fmt.Printf("%s\n", b)

	case "check":
		if err := options.Settlement.Verify(); err != nil {
			exitwithstatus.Message("settlement configuration error: %s", err)
		}
		fmt.Println("configuration ok")

	default:
		exitwithstatus.Message("unknown command: %q, see: help", arguments[0])
	}
	return true
}
