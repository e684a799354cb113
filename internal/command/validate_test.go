// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"strings"
	"testing"

	"github.com/hashicorp/cli"
)

func TestValidateCommand(t *testing.T) {
	ui := cli.NewMockUi()
	c := &ValidateCommand{
		Meta: Meta{Ui: ui},
	}

	if code := c.Run([]string{"testdata/providers-basic"}); code != 0 {
		t.Fatalf("wrong exit code %d; want 0\nstderr:\n%s", code, ui.ErrorWriter.String())
	}
	if got := ui.OutputWriter.String(); !strings.Contains(got, "The configuration is valid") {
		t.Errorf("wrong output:\n%s", got)
	}
}

func TestValidateCommandInvalidConfig(t *testing.T) {
	ui := cli.NewMockUi()
	c := &ValidateCommand{
		Meta: Meta{Ui: ui},
	}

	if code := c.Run([]string{"testdata/invalid"}); code != 1 {
		t.Fatalf("wrong exit code %d; want 1", code)
	}
}
