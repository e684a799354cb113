// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package configs knows how to read the declarative configuration documents
// that describe a module's provider requirements and provider
// configurations, and how to turn a set of parsed documents into the
// provider registry that the rest of the engine consults.
//
// A specific configuration document is read with a Parser, whose methods
// return hcl.Diagnostics describing any problems found along the way.
// Loading is a strictly synchronous, load-time activity: all of the errors
// this package can produce are static declaration errors that the user must
// fix before re-running.
package configs
