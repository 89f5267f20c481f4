// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package models

import (
	"strings"
	"time"
)

// User represents one registered learner as it is persisted by the
// credential store.
//
// Sensitive fields (PasswordHash, ResetOTPHash) are never serialised to JSON;
// use [User.Public] to build the representation returned to clients.
type User struct {
	// ID is the opaque unique identifier of the user (UUIDv7 string).
	// It is assigned at creation and never changes.
	ID string `db:"id" json:"id"`

	// FullName is the display name of the user.
	FullName string `db:"full_name" json:"fullName"`

	// Email is the login identifier, stored lower-cased and trimmed.
	Email string `db:"email" json:"email"`

	// PasswordHash is the bcrypt hash of the current password.
	PasswordHash string `db:"password_hash" json:"-"`

	// ResetOTPHash is the HMAC digest of the most recently issued reset OTP.
	// It is nil when no reset is pending.
	ResetOTPHash *string `db:"reset_otp_hash" json:"-"`

	// ResetOTPExpiresAt is the absolute expiry of ResetOTPHash.
	// It is nil exactly when ResetOTPHash is nil.
	ResetOTPExpiresAt *time.Time `db:"reset_otp_expires_at" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPendingOTP reports whether a reset OTP is currently stored for the user.
func (u User) HasPendingOTP() bool {
	return u.ResetOTPHash != nil && u.ResetOTPExpiresAt != nil
}

// Public returns the client-facing projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the subset of [User] that may leave the server.
type PublicUser struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Every store lookup and insert goes through the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
