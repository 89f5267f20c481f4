// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down
	// gracefully.
	RunServer() error

	// Run serves until ctx is cancelled or a component fails.
	Run(ctx context.Context) error
}

// Runner is a long-running component started next to the HTTP server, such
// as the background workers. Run blocks until ctx is cancelled.
type Runner interface {
	Run(ctx context.Context) error
}
