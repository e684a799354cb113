// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"strings"
	"testing"

	"github.com/hashicorp/cli"
)

func TestProvidersCommand(t *testing.T) {
	ui := cli.NewMockUi()
	c := &ProvidersCommand{
		Meta: Meta{Ui: ui},
	}

	code := c.Run([]string{"testdata/providers-basic"})
	if code != 0 {
		t.Fatalf("wrong exit code %d; want 0\nstderr:\n%s", code, ui.ErrorWriter.String())
	}

	output := ui.OutputWriter.String()
	wantLines := []string{
		"provider[hashicorp/aws] ~> 6.0",
		"default configuration",
		`configuration "ap-south-1"`,
		`configuration "us_east_1"`,
	}
	for _, want := range wantLines {
		if !strings.Contains(output, want) {
			t.Errorf("output does not contain %q:\n%s", want, output)
		}
	}
}

func TestProvidersCommandInvalidConfig(t *testing.T) {
	ui := cli.NewMockUi()
	c := &ProvidersCommand{
		Meta: Meta{Ui: ui},
	}

	if code := c.Run([]string{"testdata/invalid"}); code != 1 {
		t.Fatalf("wrong exit code %d; want 1", code)
	}
}

func TestProvidersCommandTooManyArgs(t *testing.T) {
	ui := cli.NewMockUi()
	c := &ProvidersCommand{
		Meta: Meta{Ui: ui},
	}

	if code := c.Run([]string{"a", "b"}); code != cli.RunResultHelp {
		t.Fatalf("wrong exit code %d; want cli.RunResultHelp", code)
	}
}

func TestProvidersCommandEmptyDir(t *testing.T) {
	ui := cli.NewMockUi()
	c := &ProvidersCommand{
		Meta: Meta{Ui: ui},
	}

	if code := c.Run([]string{t.TempDir()}); code != 1 {
		t.Fatalf("wrong exit code %d; want 1", code)
	}
	if got := ui.ErrorWriter.String(); !strings.Contains(got, "contains no configuration files") {
		t.Errorf("wrong error output:\n%s", got)
	}
}
