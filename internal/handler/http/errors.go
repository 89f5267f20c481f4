// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import "errors"

// Request errors detected by the transport itself.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request has no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body is not a single JSON object.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)

// Client-facing messages.
const (
	msgInvalidJSON       = "Invalid JSON was passed"
	msgNoToken           = "Not authorized, no token provided"
	msgInvalidToken      = "Not authorized, token invalid"
	msgOTPSent           = "OTP sent to your email"
	msgPasswordReset     = "Password reset successful"
	msgInternalError     = "Internal Server Error"
	msgOTPDeliveryFailed = "Failed to send OTP email"
	msgInvalidData       = "Invalid data provided"
	msgRequestTimedOut   = "Request timed out"
)
