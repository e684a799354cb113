// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"

	"github.com/hashicorp/groundwork/internal/logging"
	"github.com/hashicorp/groundwork/version"
)

// Ui is the cli.Ui used for communicating to the outside world.
var Ui cli.Ui

func main() {
	os.Exit(realMain())
}

func realMain() int {
	log := logging.HCLogger()
	log.Info("groundwork version", "version", version.String())

	Ui = &cli.BasicUi{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Reader:      os.Stdin,
	}

	initCommands()

	c := &cli.CLI{
		Name:       "groundwork",
		Version:    version.String(),
		Args:       os.Args[1:],
		Commands:   Commands,
		HelpFunc:   cli.BasicHelpFunc("groundwork"),
		HelpWriter: os.Stdout,
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err)
		return 1
	}

	return exitCode
}
