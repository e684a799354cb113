// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/cli"

	"github.com/hashicorp/groundwork/internal/configs"
	"github.com/hashicorp/groundwork/internal/logging"
)

// ProvidersCommand is a Command implementation that prints out information
// about the providers required by the current configuration and the
// provider configurations declared for them.
type ProvidersCommand struct {
	Meta
}

func (c *ProvidersCommand) Help() string {
	return helpText(providersCommandHelp)
}

func (c *ProvidersCommand) Synopsis() string {
	return "Show the providers required for this configuration"
}

func (c *ProvidersCommand) Run(args []string) int {
	if len(args) > 1 {
		c.Ui.Error("The providers command expects at most one argument.")
		return cli.RunResultHelp
	}
	configPath := "."
	if len(args) == 1 {
		configPath = args[0]
	}

	log := logging.NewLogger("command")

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
	if diags.HasErrors() {
		c.showDiagnostics(parser, diags)
		return 1
	}

	reg, regDiags := mod.BuildRegistry()
	diags = append(diags, regDiags...)
	c.showDiagnostics(parser, diags)
	if diags.HasErrors() {
		return 1
	}

	reqs := reg.AllRequirements()
	log.Debug("loaded provider registry",
		"requirements", len(reqs),
		"instances", len(reg.AllInstances()),
	)

	c.Ui.Output("Providers required by configuration:")
	for _, req := range reqs {
		if s := req.ConstraintsString(); s != "" {
			c.Ui.Output(fmt.Sprintf("\nprovider[%s] %s", req.Provider.ForDisplay(), s))
		} else {
			c.Ui.Output(fmt.Sprintf("\nprovider[%s]", req.Provider.ForDisplay()))
		}
		for _, inst := range reg.InstancesForProvider(req.Provider) {
			if inst.Addr.Alias == "" {
				c.Ui.Output("    default configuration")
			} else {
				c.Ui.Output(fmt.Sprintf("    configuration %q", inst.Addr.Alias))
			}
		}
	}

	return 0
}

const providersCommandHelp = `
Usage: groundwork providers [dir]

  Prints out a list of the providers required by the configuration in the
  given directory, or the current directory if none is given, along with
  the version constraint declared for each one and the provider
  configurations (default and aliased) declared for it.
`
