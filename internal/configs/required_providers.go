// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package configs

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/hashicorp/groundwork/internal/addrs"
)

// RequiredProvider represents a declaration of a dependency on a particular
// provider version, associating a local short name with the provider's
// fully-qualified source address and a version constraint.
type RequiredProvider struct {
	Name        string
	Source      string
	Provider    addrs.Provider
	Requirement string // version constraint string, empty when unconstrained

	DeclRange hcl.Range
}

// RequiredProviders represents one required_providers block: the table of
// required provider declarations keyed by local name.
type RequiredProviders struct {
	RequiredProviders map[string]*RequiredProvider
	DeclRange         hcl.Range
}

func decodeRequiredProvidersBlock(block *hcl.Block) (*RequiredProviders, hcl.Diagnostics) {
	ret := &RequiredProviders{
		RequiredProviders: make(map[string]*RequiredProvider),
		DeclRange:         block.DefRange,
	}

	attrs, diags := block.Body.JustAttributes()
	for name, attr := range attrs {
		rp := &RequiredProvider{
			Name:      name,
			DeclRange: attr.Expr.Range(),
		}

		nameDiags := checkProviderNameNormalized(name, attr.Expr.Range())
		diags = append(diags, nameDiags...)
		if nameDiags.HasErrors() {
			continue
		}

		kvs, mapDiags := hcl.ExprMap(attr.Expr)
		if mapDiags.HasErrors() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid provider requirement",
				Detail:   fmt.Sprintf("The provider requirement for %q must be an object with \"source\" and \"version\" attributes.", name),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}

		for _, kv := range kvs {
			key, keyDiags := kv.Key.Value(nil)
			if keyDiags.HasErrors() {
				diags = append(diags, keyDiags...)
				continue
			}

			if key.Type() != cty.String {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid Attribute",
					Detail:   fmt.Sprintf("Invalid attribute value for provider requirement: %#v", key),
					Subject:  kv.Key.Range().Ptr(),
				})
				continue
			}

			switch key.AsString() {

			case "version":
				version, valDiags := kv.Value.Value(nil)
				if valDiags.HasErrors() || version.Type() != cty.String {
					diags = append(diags, &hcl.Diagnostic{
						Severity: hcl.DiagError,
						Summary:  "Invalid version constraint",
						Detail:   "Version must be specified as a string.",
						Subject:  kv.Value.Range().Ptr(),
					})
					continue
				}
				if !version.IsNull() {
					rp.Requirement = version.AsString()
				}

			case "source":
				source, valDiags := kv.Value.Value(nil)
				if valDiags.HasErrors() || source.Type() != cty.String {
					diags = append(diags, &hcl.Diagnostic{
						Severity: hcl.DiagError,
						Summary:  "Invalid source",
						Detail:   "Source must be specified as a string.",
						Subject:  kv.Value.Range().Ptr(),
					})
					continue
				}
				if !source.IsNull() {
					rp.Source = source.AsString()
				}

			default:
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid Attribute",
					Detail:   fmt.Sprintf("Invalid attribute %q for provider requirement, only \"source\" and \"version\" are allowed.", key.AsString()),
					Subject:  kv.Key.Range().Ptr(),
				})
			}
		}

		if rp.Source == "" {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing provider source",
				Detail:   fmt.Sprintf("The provider requirement for %q must include a \"source\" attribute giving the provider's source address, like \"hashicorp/aws\".", name),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}

		provider, sourceDiags := addrs.ParseProviderSourceString(rp.Source)
		if sourceDiags.HasErrors() {
			for _, diag := range sourceDiags {
				diags = append(diags, &hcl.Diagnostic{
					Severity: diag.Severity,
					Summary:  diag.Summary,
					Detail:   diag.Detail,
					Subject:  attr.Expr.Range().Ptr(),
				})
			}
			continue
		}
		rp.Provider = provider

		ret.RequiredProviders[rp.Name] = rp
	}

	return ret, diags
}
