// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"fmt"

	"github.com/hashicorp/groundwork/internal/addrs"
)

// DuplicateRequirementError is returned from RegisterRequirement when the
// given provider already has a registered requirement with a different
// version constraint.
type DuplicateRequirementError struct {
	Provider addrs.Provider

	// Existing and New are the canonical string forms of the two
	// conflicting constraints.
	Existing string
	New      string
}

func (err DuplicateRequirementError) Error() string {
	return fmt.Sprintf(
		"provider %s is already required with version constraint %q, which conflicts with %q",
		err.Provider.ForDisplay(), err.Existing, err.New,
	)
}

// UnknownProviderSourceError is returned when an operation refers to a
// provider that has no registered requirement.
type UnknownProviderSourceError struct {
	Provider addrs.Provider
}

func (err UnknownProviderSourceError) Error() string {
	return fmt.Sprintf(
		"no requirement is registered for provider %s",
		err.Provider.ForDisplay(),
	)
}

// DuplicateInstanceError is returned from RegisterInstance when another
// instance was already registered for the same provider and alias.
type DuplicateInstanceError struct {
	Addr addrs.RootProviderConfig
}

func (err DuplicateInstanceError) Error() string {
	if err.Addr.Alias == "" {
		return fmt.Sprintf(
			"a default configuration for provider %s is already registered",
			err.Addr.Provider.ForDisplay(),
		)
	}
	return fmt.Sprintf(
		"a configuration for provider %s with alias %q is already registered",
		err.Addr.Provider.ForDisplay(), err.Addr.Alias,
	)
}

// UnresolvedProviderReferenceError is returned from Resolve when no
// registered instance matches the requested address.
type UnresolvedProviderReferenceError struct {
	Addr addrs.RootProviderConfig
}

func (err UnresolvedProviderReferenceError) Error() string {
	if err.Addr.Alias == "" {
		return fmt.Sprintf(
			"no default configuration is declared for provider %s",
			err.Addr.Provider.ForDisplay(),
		)
	}
	return fmt.Sprintf(
		"no configuration with alias %q is declared for provider %s",
		err.Addr.Alias, err.Addr.Provider.ForDisplay(),
	)
}

// MalformedVersionConstraintError is returned when a version constraint
// string cannot be parsed.
type MalformedVersionConstraintError struct {
	Provider   addrs.Provider
	Constraint string
	Err        error
}

func (err MalformedVersionConstraintError) Error() string {
	return fmt.Sprintf(
		"invalid version constraint %q for provider %s: %s",
		err.Constraint, err.Provider.ForDisplay(), err.Err,
	)
}

func (err MalformedVersionConstraintError) Unwrap() error {
	return err.Err
}
