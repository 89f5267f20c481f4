// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same normalized
	// email is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")
)

// Low-level database operation errors. These are wrapped together with the
// driver error when a SQL-level operation fails.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan user row")
	ErrUnsupportedDSN     = errors.New("unsupported database dsn")
)

// Limiter errors.
var (
	ErrLimiterUnavailable = errors.New("otp request limiter unavailable")
)
