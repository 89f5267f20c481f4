// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package validators

import (
	"errors"
)

var (
	ErrInvalidData     = errors.New("invalid data provided")
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError describes the first rule a request violated.
// It unwraps to [ErrInvalidData].
type ValidationError struct {
	// Field is the JSON name of the offending field.
	Field string

	// Message is a short human-readable explanation safe to return to clients.
	Message string
}

func (e *ValidationError) Error() string {
	return ErrInvalidData.Error() + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidData
}
