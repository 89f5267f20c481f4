// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

// Package service implements the account flows of the backend: signup,
// signin, OTP based password reset, profile access and session tokens.
//
// Services receive commands that were already validated and normalized by
// the validators package. Lower-layer failures are either mapped onto the
// sentinel errors of this package and of the store package, or wrapped as
// internal errors that the transport reports without detail.
package service

import (
	"context"

	"github.com/Anjana-1234/orato-robot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService manages user accounts and password resets.
type AccountService interface {
	// Signup creates an account and signs the new user in.
	Signup(ctx context.Context, cmd models.SignupCommand) (models.AuthResult, error)

	// Signin checks credentials and issues a session token.
	Signin(ctx context.Context, cmd models.SigninCommand) (models.AuthResult, error)

	// ForgotPasswordOTP issues a reset code and delivers it to the user.
	// The code itself is never returned.
	ForgotPasswordOTP(ctx context.Context, cmd models.ForgotPasswordCommand) error

	// ResetPasswordOTP consumes a pending reset code and sets a new password.
	ResetPasswordOTP(ctx context.Context, cmd models.ResetPasswordCommand) error

	// Profile returns the public profile of the user.
	Profile(ctx context.Context, userID string) (models.PublicUser, error)

	// UpdateProfile changes the display name of the user.
	UpdateProfile(ctx context.Context, cmd models.UpdateProfileCommand) (models.PublicUser, error)

	// ClearExpiredOTPs drops every reset code that has expired and returns
	// the number of affected users.
	ClearExpiredOTPs(ctx context.Context) (int64, error)
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	Issue(ctx context.Context, userID string) (models.Token, error)

	// Verify returns [ErrInvalidToken] for any malformed, forged, foreign or
	// expired token.
	Verify(ctx context.Context, token string) (models.Token, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
