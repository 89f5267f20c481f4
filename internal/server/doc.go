// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

// Package server wires and runs the application's transport server together
// with its background runners.
//
// It owns startup, signal handling and graceful shutdown: on SIGINT, SIGTERM
// or SIGQUIT the HTTP server stops accepting connections, in-flight requests
// get up to the configured shutdown timeout, and runners are cancelled.
package server
