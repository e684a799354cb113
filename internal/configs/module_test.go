// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zclconf/go-cty/cty"

	"github.com/hashicorp/groundwork/internal/addrs"
	"github.com/hashicorp/groundwork/internal/providerreqs"
)

func TestLoadConfigDirValid(t *testing.T) {
	for _, dir := range []string{"testdata/valid", "testdata/valid-json"} {
		t.Run(filepath.Base(dir), func(t *testing.T) {
			parser := NewParser(nil)
			mod, diags := parser.LoadConfigDir(dir)
			if diags.HasErrors() {
				t.Fatalf("unexpected errors: %s", diags.Error())
			}

			reg, regDiags := mod.BuildRegistry()
			if regDiags.HasErrors() {
				t.Fatalf("unexpected errors: %s", regDiags.Error())
			}

			aws := addrs.MustParseProviderSourceString("hashicorp/aws")
			req := reg.Requirement(aws)
			if req == nil {
				t.Fatal("no requirement registered for hashicorp/aws")
			}
			if got, want := req.ConstraintsString(), "~> 6.0"; got != want {
				t.Errorf("wrong constraints\ngot:  %s\nwant: %s", got, want)
			}

			ok, err := reg.CheckVersionSatisfied(aws, providerreqs.MustParseVersion("6.2.0"))
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if !ok {
				t.Error("6.2.0 should satisfy ~> 6.0")
			}

			// The default instance has no region argument, the aliased one
			// carries it opaquely in its config body.
			defInst, err := reg.Resolve(addrs.RootProviderConfig{Provider: aws})
			if err != nil {
				t.Fatalf("unexpected error resolving default instance: %s", err)
			}
			if attrs, _ := defInst.Config.JustAttributes(); len(attrs) != 0 {
				t.Errorf("default instance should have no arguments, has %d", len(attrs))
			}

			aliased, err := reg.Resolve(addrs.RootProviderConfig{Provider: aws, Alias: "ap-south-1"})
			if err != nil {
				t.Fatalf("unexpected error resolving aliased instance: %s", err)
			}
			attrs, attrDiags := aliased.Config.JustAttributes()
			if attrDiags.HasErrors() {
				t.Fatalf("unexpected errors reading instance config: %s", attrDiags.Error())
			}
			regionAttr, exists := attrs["region"]
			if !exists {
				t.Fatal("aliased instance has no region argument")
			}
			region, valDiags := regionAttr.Expr.Value(nil)
			if valDiags.HasErrors() {
				t.Fatalf("unexpected errors evaluating region: %s", valDiags.Error())
			}
			if got, want := region, cty.StringVal("ap-south-1"); !got.RawEquals(want) {
				t.Errorf("wrong region value\ngot:  %#v\nwant: %#v", got, want)
			}
		})
	}
}

func TestLoadConfigDirCoreVersion(t *testing.T) {
	parser := NewParser(nil)
	mod, diags := parser.LoadConfigDir("testdata/valid")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Error())
	}

	if got := len(mod.CoreVersionConstraints); got != 1 {
		t.Fatalf("wrong number of core version constraints %d; want 1", got)
	}
	if got, want := mod.CoreVersionConstraints[0].Required.String(), ">= 1.0.0"; got != want {
		t.Errorf("wrong core version constraint\ngot:  %s\nwant: %s", got, want)
	}
}

func TestLoadConfigDirInvalid(t *testing.T) {
	base := "testdata/invalid-modules"
	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatal(err)
	}

	wantSummaries := map[string]string{
		"bad-alias":                 "Invalid provider configuration alias",
		"bad-constraint":            "Invalid version constraint",
		"conflicting-requirements":  "Conflicting provider requirement",
		"duplicate-local-name":      "Duplicate required provider",
		"duplicate-provider-config": "Duplicate provider configuration",
		"undeclared-provider":       "Provider not declared",
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		t.Run(entry.Name(), func(t *testing.T) {
			parser := NewParser(nil)
			mod, diags := parser.LoadConfigDir(filepath.Join(base, entry.Name()))
			if mod != nil {
				_, regDiags := mod.BuildRegistry()
				diags = append(diags, regDiags...)
			}
			if !diags.HasErrors() {
				t.Fatal("success; want errors")
			}

			want, exists := wantSummaries[entry.Name()]
			if !exists {
				t.Fatalf("missing expected summary for fixture %q", entry.Name())
			}
			found := false
			for _, diag := range diags {
				if diag.Summary == want {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("no diagnostic with summary %q in:\n%s", want, diags.Error())
			}
		})
	}
}
