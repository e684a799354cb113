// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package addrs

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	tfaddr "github.com/hashicorp/terraform-registry-address"
	svchost "github.com/hashicorp/terraform-svchost"
)

// Provider encapsulates a single provider type. Provider source addresses
// follow the registry convention of hostname/namespace/type, where the
// hostname may be omitted to imply the default registry.
type Provider = tfaddr.Provider

// DefaultProviderRegistryHost is the hostname used for provider addresses
// that do not have an explicit hostname.
const DefaultProviderRegistryHost = tfaddr.DefaultProviderRegistryHost

// NewProvider constructs a provider address from its parts, with the parts
// already normalized. It will panic if any of the parts are invalid, so use
// ParseProviderSourceString to process a source string given by a user.
func NewProvider(hostname svchost.Hostname, namespace, typeName string) Provider {
	return tfaddr.NewProvider(hostname, namespace, typeName)
}

// ParseProviderSourceString parses a string intended to be interpreted as a
// provider source address, such as "hashicorp/aws" or
// "registry.example.com/acme/frobnicate".
//
// Unlike some other registry-based tools we require the namespace portion to
// always be present: a single-part source like "aws" is an error rather than
// an implied default namespace, so that configurations are explicit about
// which publisher they intend to depend on.
func ParseProviderSourceString(str string) (Provider, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	ret, err := tfaddr.ParseProviderSource(str)
	if pe, ok := err.(*tfaddr.ParserError); ok {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  pe.Summary,
			Detail:   pe.Detail,
		})
		return ret, diags
	}
	if err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid provider source address",
			Detail:   fmt.Sprintf("Cannot use %q as a provider source address: %s.", str, err),
		})
		return ret, diags
	}

	if !ret.HasKnownNamespace() {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid provider source address",
			Detail:   fmt.Sprintf("The source address %q does not include a namespace. Provider source addresses must be of the form [hostname/]namespace/type.", str),
		})
		return ret, diags
	}

	return ret, diags
}

// MustParseProviderSourceString is a wrapper around ParseProviderSourceString
// that panics if it returns an error.
func MustParseProviderSourceString(str string) Provider {
	result, diags := ParseProviderSourceString(str)
	if diags.HasErrors() {
		panic(diags.Error())
	}
	return result
}

// ParseProviderPart processes an addrs.Provider namespace or type string
// provided by an end-user, producing a normalized version if possible or
// an error if the string contains invalid characters.
func ParseProviderPart(given string) (string, error) {
	return tfaddr.ParseProviderPart(given)
}

// MustParseProviderPart is a wrapper around ParseProviderPart that panics if
// it returns an error.
func MustParseProviderPart(given string) string {
	result, err := ParseProviderPart(given)
	if err != nil {
		panic(err.Error())
	}
	return result
}
