// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package addrs contains types that represent "addresses", which are
// references to specific objects within a Groundwork configuration.
//
// All addresses have string representations based on HCL traversal syntax,
// which should be used when communicating with an end-user, and also
// comparable representations that can be used as map keys.
package addrs
