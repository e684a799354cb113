// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package providerreqs contains the representation of provider version
// numbers and version constraints as they appear in provider requirement
// declarations, along with the operations the engine needs to decide
// whether a particular available plugin release satisfies a requirement.
package providerreqs

import (
	"fmt"
	"strings"

	"github.com/apparentlymart/go-versions/versions"
	"github.com/apparentlymart/go-versions/versions/constraints"
)

// Version represents a particular single version of a provider.
type Version = versions.Version

// UnspecifiedVersion is the zero value of Version, representing the absence
// of a version number.
var UnspecifiedVersion Version = versions.Unspecified

// VersionList represents a list of versions.
type VersionList = versions.List

// VersionSet represents a set of versions, usually describing the acceptable
// versions that can be selected under a particular version constraint.
type VersionSet = versions.Set

// VersionConstraints represents a set of version constraints, which can
// define the membership of a VersionSet by exclusion.
type VersionConstraints = constraints.IntersectionSpec

// ParseVersion parses a string as a version number, or returns an error if
// it is not parseable as a version number.
func ParseVersion(str string) (Version, error) {
	return versions.ParseVersion(str)
}

// MustParseVersion is a variant of ParseVersion that panics if it encounters
// an error while parsing.
func MustParseVersion(str string) Version {
	ret, err := ParseVersion(str)
	if err != nil {
		panic(err)
	}
	return ret
}

// ParseVersionConstraints parses a "Ruby-like" version constraint string
// into a VersionConstraints value, using the same syntax as provider
// requirement declarations accept: a comma-separated sequence of selections
// like ">= 1.2", "~> 6.0", or "1.2.3".
func ParseVersionConstraints(str string) (VersionConstraints, error) {
	return constraints.ParseRubyStyleMulti(str)
}

// MustParseVersionConstraints is a variant of ParseVersionConstraints that
// panics if it encounters an error while parsing.
func MustParseVersionConstraints(str string) VersionConstraints {
	ret, err := ParseVersionConstraints(str)
	if err != nil {
		panic(err)
	}
	return ret
}

// MeetingConstraints returns a version set that contains all of the versions
// that meet the given constraints, ignoring any prerelease versions that the
// constraints do not mention exactly.
func MeetingConstraints(vc VersionConstraints) VersionSet {
	return versions.MeetingConstraints(vc)
}

// MeetingConstraintsString parses a constraint string in our canonical
// comma-separated syntax and returns the set of versions meeting it.
func MeetingConstraintsString(str string) (VersionSet, error) {
	vc, err := ParseVersionConstraints(str)
	if err != nil {
		return versions.None, err
	}
	return MeetingConstraints(vc), nil
}

// ConstraintsAllowPrerelease returns true if and only if at least one of the
// selections in the given constraints names a specific prerelease version,
// which we take as a request to opt in to prerelease selection for that
// series. Constraints that mention only release versions never match
// prerelease builds.
func ConstraintsAllowPrerelease(vc VersionConstraints) bool {
	for _, sel := range vc {
		if sel.Boundary.Prerelease != "" {
			return true
		}
	}
	return false
}

// VersionConstraintsString returns a canonical string representation of
// a VersionConstraints value, in the same comma-separated syntax that
// ParseVersionConstraints accepts.
func VersionConstraintsString(spec VersionConstraints) string {
	var b strings.Builder

	for i, sel := range spec {
		if i > 0 {
			b.WriteString(", ")
		}
		switch sel.Operator {
		case constraints.OpUnconstrained:
			b.WriteString("")
		case constraints.OpGreaterThan:
			b.WriteString("> ")
		case constraints.OpLessThan:
			b.WriteString("< ")
		case constraints.OpGreaterThanOrEqual:
			b.WriteString(">= ")
		case constraints.OpGreaterThanOrEqualMinorOnly:
			b.WriteString("~> ")
		case constraints.OpGreaterThanOrEqualPatchOnly:
			b.WriteString("~> ")
		case constraints.OpLessThanOrEqual:
			b.WriteString("<= ")
		case constraints.OpMatch:
			b.WriteString("")
		case constraints.OpNotEqual:
			b.WriteString("!= ")
		default:
			// The above covers all of the operators the parser can
			// produce, so this should not happen.
			b.WriteString("??? ")
		}

		// The parser allows a less specific version number to stand in
		// for a family of versions, so we only include the components
		// that were actually constrained.
		fmt.Fprintf(&b, "%d", sel.Boundary.Major.Num)
		if sel.Boundary.Minor.Unconstrained {
			continue
		}
		fmt.Fprintf(&b, ".%d", sel.Boundary.Minor.Num)
		if sel.Boundary.Patch.Unconstrained {
			continue
		}
		fmt.Fprintf(&b, ".%d", sel.Boundary.Patch.Num)
		if sel.Boundary.Prerelease != "" {
			b.WriteString("-" + sel.Boundary.Prerelease)
		}
		if sel.Boundary.Metadata != "" {
			b.WriteString("+" + sel.Boundary.Metadata)
		}
	}

	return b.String()
}
