// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package service

import "errors"

// Errors surfaced to the transport layer. Messages are safe to show to clients.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrTooManyOTPRequests = errors.New("too many OTP requests, try again later")
	ErrOTPDeliveryFailed  = errors.New("failed to send OTP email")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrInvalidDataProvided = errors.New("invalid data provided")
)

// Construction errors.
var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrMissingDependency     = errors.New("missing service dependency")
)
