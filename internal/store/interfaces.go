// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

// Package store implements the credential store and the OTP request limiter.
//
// Users live in a SQL database: PostgreSQL through pgx, or SQLite through
// mattn/go-sqlite3 when the DSN has the sqlite:// scheme. Queries are built
// with squirrel for the connected dialect and rows are scanned with sqlx.
// Every read-modify-write on a user is a single conditional statement, so
// reset codes are consumed at most once without application locks.
package store

import (
	"context"
	"time"

	"github.com/Anjana-1234/orato-robot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists [models.User] records. Emails passed in must
// already be normalized.
type UserRepository interface {
	// Create inserts user and returns it with CreatedAt and UpdatedAt set.
	// A duplicate email yields [ErrEmailAlreadyExists].
	Create(ctx context.Context, user models.User) (models.User, error)

	// FindByEmail returns the user with email or [ErrUserNotFound].
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// FindByID returns the user with id or [ErrUserNotFound].
	FindByID(ctx context.Context, id string) (models.User, error)

	// SetResetOTP stores digest and expiresAt together, replacing any pending
	// code. An unknown email yields [ErrUserNotFound].
	SetResetOTP(ctx context.Context, email, digest string, expiresAt time.Time) error

	// ClearResetOTP clears the pending code only if it still equals digest.
	// It reports whether a row changed.
	ClearResetOTP(ctx context.Context, email, digest string) (bool, error)

	// ConsumeResetOTP sets passwordHash and clears the pending code in one
	// statement, only if the stored digest equals digest and has not expired
	// at now. It reports whether the code was consumed.
	ConsumeResetOTP(ctx context.Context, email, digest, passwordHash string, now time.Time) (bool, error)

	// UpdateFullName changes the display name and returns the updated user.
	UpdateFullName(ctx context.Context, id, fullName string) (models.User, error)

	// ClearExpiredOTPs clears every pending code that expired at or before now
	// and returns the number of affected users.
	ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error)
}

// OTPRequestLimiter bounds how many reset codes one email may request per window.
type OTPRequestLimiter interface {
	// Allow records a request for email and reports whether it is within the limit.
	Allow(ctx context.Context, email string) (bool, error)
}

// ErrorClassificator maps driver errors of one SQL dialect onto store semantics.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed if retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}
