// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package crypto

import "errors"

var (
	ErrEmptyPassword     = errors.New("password is empty")
	ErrPasswordTooLong   = errors.New("password exceeds 72 bytes")
	ErrMalformedHash     = errors.New("malformed password hash")
	ErrEmptyOTPHashKey   = errors.New("otp hash key is empty")
	ErrOTPGenerateFailed = errors.New("failed to generate otp")
)
