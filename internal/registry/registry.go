// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"sort"

	"github.com/hashicorp/hcl/v2"

	"github.com/hashicorp/groundwork/internal/addrs"
	"github.com/hashicorp/groundwork/internal/providerreqs"
)

// Registry is the top-level type representing the provider requirements and
// provider configurations declared in a configuration.
//
// A Registry is mutable via the various registration methods, but it is not
// safe for concurrent modifications, so it's the caller's responsibility to
// prevent concurrent writes and writes concurrent with reads. In practice
// all mutation happens during the single-threaded configuration load phase
// and the registry is read-only thereafter.
type Registry struct {
	requirements map[addrs.Provider]*Requirement
	instances    map[addrs.RootProviderConfig]*ProviderInstance
}

// Requirement records that the configuration depends on a particular
// provider, constrained to a set of acceptable versions.
type Requirement struct {
	Provider    addrs.Provider
	Constraints providerreqs.VersionConstraints

	// DeclRange is the source range of the declaration this requirement
	// was built from, for use in diagnostic messages.
	DeclRange hcl.Range
}

// ConstraintsString returns the canonical string form of the requirement's
// version constraints.
func (r *Requirement) ConstraintsString() string {
	return providerreqs.VersionConstraintsString(r.Constraints)
}

// ProviderInstance is one configured instance of a provider: the default
// (unaliased) instance or one of any number of aliased instances.
//
// Config is the instance's configuration arguments (region, credentials
// hints, and so on) left as an undecoded HCL body. Their schema belongs to
// the provider plugin, so this layer passes them through opaquely.
type ProviderInstance struct {
	Addr   addrs.RootProviderConfig
	Config hcl.Body

	DeclRange hcl.Range
}

// NewRegistry constructs and returns a new Registry that initially contains
// no requirements and no instances.
func NewRegistry() *Registry {
	return &Registry{
		requirements: make(map[addrs.Provider]*Requirement),
		instances:    make(map[addrs.RootProviderConfig]*ProviderInstance),
	}
}

// RegisterRequirement records that the configuration requires the given
// provider with the given version constraints.
//
// Registering the same provider again with an equivalent constraint is a
// no-op, because the same requirement can legitimately be repeated across
// the several files of one configuration. A second registration with a
// different constraint returns a DuplicateRequirementError.
func (r *Registry) RegisterRequirement(provider addrs.Provider, constraints providerreqs.VersionConstraints, declRange hcl.Range) error {
	new := &Requirement{
		Provider:    provider,
		Constraints: constraints,
		DeclRange:   declRange,
	}
	if existing, exists := r.requirements[provider]; exists {
		if existing.ConstraintsString() != new.ConstraintsString() {
			return DuplicateRequirementError{
				Provider: provider,
				Existing: existing.ConstraintsString(),
				New:      new.ConstraintsString(),
			}
		}
		return nil
	}
	r.requirements[provider] = new
	return nil
}

// RegisterRequirementString is a variant of RegisterRequirement that parses
// the version constraints from their string form first, returning a
// MalformedVersionConstraintError if the string is not valid constraint
// syntax.
func (r *Registry) RegisterRequirementString(provider addrs.Provider, constraintStr string, declRange hcl.Range) error {
	constraints, err := providerreqs.ParseVersionConstraints(constraintStr)
	if err != nil {
		return MalformedVersionConstraintError{
			Provider:   provider,
			Constraint: constraintStr,
			Err:        err,
		}
	}
	return r.RegisterRequirement(provider, constraints, declRange)
}

// RegisterInstance records a configured instance of a provider whose
// requirement was already registered.
//
// The empty alias in addr represents the default instance. Registration
// fails with UnknownProviderSourceError if no requirement exists for
// addr.Provider, or with DuplicateInstanceError if an instance was already
// registered at the same address.
func (r *Registry) RegisterInstance(addr addrs.RootProviderConfig, config hcl.Body, declRange hcl.Range) error {
	if _, exists := r.requirements[addr.Provider]; !exists {
		return UnknownProviderSourceError{Provider: addr.Provider}
	}
	if _, exists := r.instances[addr]; exists {
		return DuplicateInstanceError{Addr: addr}
	}
	r.instances[addr] = &ProviderInstance{
		Addr:      addr,
		Config:    config,
		DeclRange: declRange,
	}
	return nil
}

// Requirement returns the stored requirement for the given provider, or nil
// if that provider has no registered requirement.
func (r *Registry) Requirement(provider addrs.Provider) *Requirement {
	return r.requirements[provider]
}

// Resolve returns the provider instance registered at the given address.
//
// Alias matching is exact and case-sensitive. An address with an empty
// alias resolves only to the default instance, so resolution fails with
// UnresolvedProviderReferenceError when no default instance was declared
// even if aliased instances of the same provider exist.
func (r *Registry) Resolve(addr addrs.RootProviderConfig) (*ProviderInstance, error) {
	inst, exists := r.instances[addr]
	if !exists {
		return nil, UnresolvedProviderReferenceError{Addr: addr}
	}
	return inst, nil
}

// CheckVersionSatisfied reports whether the given available version is
// acceptable under the version constraints registered for the given
// provider.
//
// Prerelease versions are never acceptable unless one of the registered
// constraint selections names a prerelease exactly, which we take as an
// explicit opt-in. It returns UnknownProviderSourceError if the provider
// has no registered requirement, so that the engine cannot accidentally
// accept a plugin the configuration never declared.
func (r *Registry) CheckVersionSatisfied(provider addrs.Provider, available providerreqs.Version) (bool, error) {
	req, exists := r.requirements[provider]
	if !exists {
		return false, UnknownProviderSourceError{Provider: provider}
	}
	if available.Prerelease != "" && !providerreqs.ConstraintsAllowPrerelease(req.Constraints) {
		return false, nil
	}
	return providerreqs.MeetingConstraints(req.Constraints).Has(available), nil
}

// AllRequirements returns all registered requirements, sorted by provider
// address.
func (r *Registry) AllRequirements() []*Requirement {
	ret := make([]*Requirement, 0, len(r.requirements))
	for _, req := range r.requirements {
		ret = append(ret, req)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].Provider.String() < ret[j].Provider.String()
	})
	return ret
}

// AllInstances returns all registered instances, sorted by provider address
// and then by alias, with each provider's default instance first.
func (r *Registry) AllInstances() []*ProviderInstance {
	ret := make([]*ProviderInstance, 0, len(r.instances))
	for _, inst := range r.instances {
		ret = append(ret, inst)
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Addr.Provider != ret[j].Addr.Provider {
			return ret[i].Addr.Provider.String() < ret[j].Addr.Provider.String()
		}
		return ret[i].Addr.Alias < ret[j].Addr.Alias
	})
	return ret
}

// InstancesForProvider returns the registered instances of one particular
// provider, in the same order as AllInstances.
func (r *Registry) InstancesForProvider(provider addrs.Provider) []*ProviderInstance {
	var ret []*ProviderInstance
	for addr, inst := range r.instances {
		if addr.Provider == provider {
			ret = append(ret, inst)
		}
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].Addr.Alias < ret[j].Addr.Alias
	})
	return ret
}

// UnreferencedInstances returns the addresses of registered instances that
// do not appear in the given set of referenced addresses, sorted in the
// same order as AllInstances.
//
// Whether an unreferenced instance is worth a warning is the calling
// engine's policy decision; the registry only reports the difference.
func (r *Registry) UnreferencedInstances(referenced map[addrs.RootProviderConfig]struct{}) []addrs.RootProviderConfig {
	var ret []addrs.RootProviderConfig
	for addr := range r.instances {
		if _, ok := referenced[addr]; !ok {
			ret = append(ret, addr)
		}
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Provider != ret[j].Provider {
			return ret[i].Provider.String() < ret[j].Provider.String()
		}
		return ret[i].Alias < ret[j].Alias
	})
	return ret
}
