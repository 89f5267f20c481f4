// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

// Package validators turns raw request bodies into typed, fully-populated
// commands for the service layer.
//
// Struct rules are declared with go-playground/validator tags on the request
// DTOs in the models package. A failed rule is reported as a
// [*ValidationError] wrapping [ErrInvalidData].
package validators

import (
	"context"

	"github.com/Anjana-1234/orato-robot/models"
)

// Validator defines a generic validation interface for arbitrary input values.
// Optional field names restrict validation to those struct fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

// AccountValidator validates account requests and builds service commands.
type AccountValidator interface {
	Validator

	SignupCommand(ctx context.Context, req models.SignupRequest) (models.SignupCommand, error)
	SigninCommand(ctx context.Context, req models.SigninRequest) (models.SigninCommand, error)
	ForgotPasswordCommand(ctx context.Context, req models.ForgotPasswordRequest) (models.ForgotPasswordCommand, error)
	ResetPasswordCommand(ctx context.Context, req models.ResetPasswordRequest) (models.ResetPasswordCommand, error)
	UpdateProfileCommand(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.UpdateProfileCommand, error)
}
