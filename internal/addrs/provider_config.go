// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package addrs

import (
	"fmt"
)

// LocalProviderConfig is the address of a provider configuration from the
// perspective of the configuration document that declared it, using the
// short local name assigned in the required_providers table rather than the
// provider's fully-qualified source address.
type LocalProviderConfig struct {
	LocalName string

	// If not empty, Alias identifies which non-default (aliased)
	// provider configuration this address refers to.
	Alias string
}

func (pc LocalProviderConfig) String() string {
	if pc.LocalName == "" {
		// Should never happen; always indicates a bug
		return "provider.<invalid>"
	}

	if pc.Alias != "" {
		return fmt.Sprintf("provider.%s.%s", pc.LocalName, pc.Alias)
	}

	return "provider." + pc.LocalName
}

// StringCompact is an alternative to String that returns the form that can
// be parsed by ParseProviderConfigCompact, without the "provider." prefix.
func (pc LocalProviderConfig) StringCompact() string {
	if pc.Alias != "" {
		return fmt.Sprintf("%s.%s", pc.LocalName, pc.Alias)
	}
	return pc.LocalName
}

// RootProviderConfig is the address of a provider configuration once its
// local name has been resolved to a fully-qualified provider source address.
//
// The zero Alias represents the default (unaliased) configuration for the
// provider. An explicitly empty alias is forbidden at declaration time, so
// there is no ambiguity between "no alias" and "empty alias".
type RootProviderConfig struct {
	Provider Provider
	Alias    string
}

func (p RootProviderConfig) String() string {
	ret := fmt.Sprintf("provider[%q]", p.Provider)
	if p.Alias != "" {
		ret += "." + p.Alias
	}
	return ret
}

// ForDisplay returns a copy of the receiver's string representation using
// the display form of the provider address, which omits the hostname when
// it is the default registry host.
func (p RootProviderConfig) ForDisplay() string {
	ret := fmt.Sprintf("provider[%q]", p.Provider.ForDisplay())
	if p.Alias != "" {
		ret += "." + p.Alias
	}
	return ret
}
