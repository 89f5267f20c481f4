// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

// Package workers runs the background jobs of the server.
//
// The only job today is the expired reset code cleanup, scheduled with
// robfig/cron. Workers are started together by [Workers.Run] and stop when
// its context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled and returns
// a non-nil error only if the job cannot continue.
type Worker interface {
	Run(ctx context.Context) error
}
