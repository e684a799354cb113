// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package command contains the CLI commands of groundwork. Each command is
// an implementation of cli.Command that loads a configuration directory,
// builds the provider registry from it, and reports on the result.
package command

import (
	"os"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/hcl/v2"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"

	"github.com/hashicorp/groundwork/internal/configs"
)

// Meta contains the meta-options and functionality that nearly every command
// inherits.
type Meta struct {
	// Ui is used for basic command output.
	Ui cli.Ui
}

// showDiagnostics renders the given diagnostics to stderr, including source
// snippets from the given parser's cache when a diagnostic has a source
// location.
func (m *Meta) showDiagnostics(parser *configs.Parser, diags hcl.Diagnostics) {
	if len(diags) == 0 {
		return
	}

	width, color := terminalSettings(os.Stderr)
	wr := hcl.NewDiagnosticTextWriter(os.Stderr, parser.Files(), width, color)

	// Any error writing the diagnostics themselves is not actionable, so
	// it is intentionally discarded here.
	wr.WriteDiagnostics(diags)
}

// terminalSettings returns the output width and whether color sequences are
// appropriate for the given output file.
func terminalSettings(f *os.File) (uint, bool) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 78, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 78, true
	}
	return uint(w), true
}

// helpText prepares a command help string for display, wrapping it to the
// terminal width up to a fixed maximum.
func helpText(text string) string {
	width, _ := terminalSettings(os.Stdout)
	if width > 80 {
		width = 80
	}
	return strings.TrimSpace(wordwrap.WrapString(strings.TrimSpace(text), width))
}
