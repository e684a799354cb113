// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/cli"

	"github.com/hashicorp/groundwork/internal/configs"
)

// ValidateCommand is a Command implementation that loads a configuration
// directory, builds the provider registry from it, and reports any static
// declaration errors found along the way.
type ValidateCommand struct {
	Meta
}

func (c *ValidateCommand) Help() string {
	return helpText(validateCommandHelp)
}

func (c *ValidateCommand) Synopsis() string {
	return "Check whether the configuration is valid"
}

func (c *ValidateCommand) Run(args []string) int {
	if len(args) > 1 {
		c.Ui.Error("The validate command expects at most one argument.")
		return cli.RunResultHelp
	}
	configPath := "."
	if len(args) == 1 {
		configPath = args[0]
	}

	empty, err := configs.IsEmptyDir(configPath)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error validating configuration directory: %s", err))
		return 1
	}
	if empty {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			absPath = configPath
		}
		c.Ui.Error(fmt.Sprintf("The directory %s contains no configuration files.", absPath))
		return 1
	}

	parser := configs.NewParser(nil)
	mod, diags := parser.LoadConfigDir(configPath)
	if !diags.HasErrors() {
		_, regDiags := mod.BuildRegistry()
		diags = append(diags, regDiags...)
	}

	c.showDiagnostics(parser, diags)
	if diags.HasErrors() {
		return 1
	}

	c.Ui.Output("Success! The configuration is valid.")
	return 0
}

const validateCommandHelp = `
Usage: groundwork validate [dir]

  Validates the configuration in the given directory, or the current
  directory if none is given: the provider requirement declarations, the
  provider configuration blocks, and the mapping between them. Validation
  is purely static and never contacts any remote service.
`
