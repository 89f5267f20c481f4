// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package models

// Commands are the validated, fully-populated inputs consumed by the account
// service. They are only produced by the validators package: emails are
// already normalised and every required field is present.

// SignupCommand creates a new account.
type SignupCommand struct {
	FullName string
	Email    string
	Password string
}

// SigninCommand authenticates an existing account.
type SigninCommand struct {
	Email    string
	Password string
}

// ForgotPasswordCommand requests a password reset OTP.
type ForgotPasswordCommand struct {
	Email string
}

// ResetPasswordCommand consumes a reset OTP and sets a new password.
type ResetPasswordCommand struct {
	Email       string
	OTP         string
	NewPassword string
}

// UpdateProfileCommand changes the mutable profile fields of a user.
type UpdateProfileCommand struct {
	UserID   string
	FullName string
}
