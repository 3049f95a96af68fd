// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for go-pass-search.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. YAML config file (path from CONFIG or --config)
//  2. Environment variables
//  3. Command-line flags
//
// Unset fields are then filled with defaults derived from the home directory
// (see [StructuredConfig.applyDefaults]) and the result is validated.
//
// The main entry point is [GetStructuredConfig].
package config
