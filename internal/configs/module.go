// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package configs

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"

	"github.com/hashicorp/groundwork/internal/addrs"
	"github.com/hashicorp/groundwork/internal/registry"
)

// Module is a container for the contents of a whole configuration
// directory: the result of merging together all of that directory's
// configuration files.
type Module struct {
	SourceDir string

	CoreVersionConstraints []VersionConstraint

	// ProviderRequirements is the merged required_providers table across
	// all files, keyed by provider local name.
	ProviderRequirements map[string]*RequiredProvider

	// ProviderConfigs are the provider blocks in declaration order across
	// all files. Duplicate detection is deferred to BuildRegistry, where
	// the registry is the authority on instance uniqueness.
	ProviderConfigs []*Provider
}

// NewModule takes a list of loaded files and combines them into a single
// Module object, applying the rules for combining multiple files.
func NewModule(sourceDir string, files []*File) (*Module, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	mod := &Module{
		SourceDir:            sourceDir,
		ProviderRequirements: make(map[string]*RequiredProvider),
	}

	for _, file := range files {
		fileDiags := mod.appendFile(file)
		diags = append(diags, fileDiags...)
	}

	return mod, diags
}

// LoadConfigDir reads the configuration files in the given directory and
// combines them into a Module.
func (p *Parser) LoadConfigDir(path string) (*Module, hcl.Diagnostics) {
	paths, diags := p.ConfigDirFiles(path)
	if diags.HasErrors() {
		return nil, diags
	}

	var files []*File
	for _, filePath := range paths {
		f, fDiags := p.LoadConfigFile(filePath)
		diags = append(diags, fDiags...)
		if f != nil {
			files = append(files, f)
		}
	}

	mod, modDiags := NewModule(path, files)
	diags = append(diags, modDiags...)
	return mod, diags
}

func (m *Module) appendFile(file *File) hcl.Diagnostics {
	var diags hcl.Diagnostics

	m.CoreVersionConstraints = append(m.CoreVersionConstraints, file.CoreVersionConstraints...)

	for _, reqs := range file.RequiredProviders {
		for name, rp := range reqs.RequiredProviders {
			if existing, exists := m.ProviderRequirements[name]; exists {
				// The same declaration repeated across files is tolerated,
				// since the engine merges every file in the directory.
				if existing.Source == rp.Source && existing.Requirement == rp.Requirement {
					continue
				}
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate required provider",
					Detail: fmt.Sprintf(
						"Provider local name %q was already declared at %s. A provider local name may be declared only once per configuration, unless every declaration agrees on source and version.",
						name, existing.DeclRange,
					),
					Subject: rp.DeclRange.Ptr(),
				})
				continue
			}
			m.ProviderRequirements[name] = rp
		}
	}

	m.ProviderConfigs = append(m.ProviderConfigs, file.ProviderConfigs...)

	return diags
}

// BuildRegistry performs the two-phase load of the provider registry from
// the module's declarations: all requirements first, then all provider
// configurations. Registry errors are converted into diagnostics that point
// back at the declarations involved.
//
// The returned registry is complete only when the returned diagnostics have
// no errors; a partial registry from a failed load must not be used.
func (m *Module) BuildRegistry() (*registry.Registry, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	reg := registry.NewRegistry()

	names := make([]string, 0, len(m.ProviderRequirements))
	for name := range m.ProviderRequirements {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rp := m.ProviderRequirements[name]
		err := reg.RegisterRequirementString(rp.Provider, rp.Requirement, rp.DeclRange)
		switch err := err.(type) {
		case nil:
			// ok
		case registry.MalformedVersionConstraintError:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid version constraint",
				Detail:   fmt.Sprintf("The version constraint %q for provider %s is not valid: %s.", err.Constraint, err.Provider.ForDisplay(), err.Err),
				Subject:  rp.DeclRange.Ptr(),
			})
		case registry.DuplicateRequirementError:
			// Two different local names mapped to the same provider with
			// disagreeing constraints.
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Conflicting provider requirement",
				Detail:   fmt.Sprintf("Provider %s is already required with version constraint %q, which conflicts with %q.", err.Provider.ForDisplay(), err.Existing, err.New),
				Subject:  rp.DeclRange.Ptr(),
			})
		default:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid provider requirement",
				Detail:   fmt.Sprintf("Cannot require provider %s: %s.", rp.Provider.ForDisplay(), err),
				Subject:  rp.DeclRange.Ptr(),
			})
		}
	}

	for _, pc := range m.ProviderConfigs {
		rp, exists := m.ProviderRequirements[pc.Name]
		if !exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Provider not declared",
				Detail:   fmt.Sprintf("The provider local name %q is not declared in the required_providers table, so a configuration for it cannot be declared here.", pc.Name),
				Subject:  pc.NameRange.Ptr(),
			})
			continue
		}

		addr := addrs.RootProviderConfig{
			Provider: rp.Provider,
			Alias:    pc.Alias,
		}
		err := reg.RegisterInstance(addr, pc.Config, pc.DeclRange)
		switch err.(type) {
		case nil:
			// ok
		case registry.DuplicateInstanceError:
			existing, _ := reg.Resolve(addr)
			detail := fmt.Sprintf("A default configuration for %s was already declared at %s.", addr.Provider.ForDisplay(), existing.DeclRange)
			if addr.Alias != "" {
				detail = fmt.Sprintf("A configuration for %s with alias %q was already declared at %s.", addr.Provider.ForDisplay(), addr.Alias, existing.DeclRange)
			}
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate provider configuration",
				Detail:   detail,
				Subject:  pc.DeclRange.Ptr(),
			})
		default:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid provider configuration",
				Detail:   fmt.Sprintf("Cannot declare this configuration for %s: %s.", addr.Provider.ForDisplay(), err),
				Subject:  pc.DeclRange.Ptr(),
			})
		}
	}

	return reg, diags
}
