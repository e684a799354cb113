// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package registry implements the provider registry: the table of declared
// provider requirements and configured provider instances that the rest of
// the engine consults when it needs a concrete provider configuration for a
// resource, or when it needs to decide whether an available plugin release
// is acceptable.
//
// A registry is populated in two phases during configuration loading, with
// all requirements registered before any instances, and is read-only once
// loading has completed. All registration and resolution failures are static
// declaration errors: the registry performs no I/O and nothing it reports is
// retryable.
package registry
