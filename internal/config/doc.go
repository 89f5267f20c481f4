// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

// Package config provides configuration loading, merging, and validation
// for the orato backend.
//
// Configuration is assembled from several sources. A field set by an
// earlier source is never overwritten by a later one:
//  1. Environment variables (a ./.env file is loaded into the environment first)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
