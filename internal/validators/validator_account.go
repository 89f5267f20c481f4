// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Anjana-1234/orato-robot/models"
	"github.com/go-playground/validator/v10"
)

// maxPasswordBytes is the bcrypt input limit. The max tag on the DTOs counts
// runes, so multi-byte passwords are checked again here.
const maxPasswordBytes = 72

type accountValidator struct {
	validate *validator.Validate
}

// NewAccountValidator returns an [AccountValidator] reporting fields by their JSON names.
func NewAccountValidator() AccountValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &accountValidator{validate: v}
}

// Validate checks obj against its struct tags. fields are Go struct field
// names; when given, only those fields are validated.
func (v *accountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if obj == nil {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return toValidationError(err)
}

func (v *accountValidator) SignupCommand(ctx context.Context, req models.SignupRequest) (models.SignupCommand, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = models.NormalizeEmail(req.Email)

	if err := v.Validate(ctx, req); err != nil {
		return models.SignupCommand{}, err
	}
	if err := checkPasswordBytes("password", req.Password); err != nil {
		return models.SignupCommand{}, err
	}

	return models.SignupCommand{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	}, nil
}

func (v *accountValidator) SigninCommand(ctx context.Context, req models.SigninRequest) (models.SigninCommand, error) {
	req.Email = models.NormalizeEmail(req.Email)

	if err := v.Validate(ctx, req); err != nil {
		return models.SigninCommand{}, err
	}

	return models.SigninCommand{Email: req.Email, Password: req.Password}, nil
}

func (v *accountValidator) ForgotPasswordCommand(ctx context.Context, req models.ForgotPasswordRequest) (models.ForgotPasswordCommand, error) {
	req.Email = models.NormalizeEmail(req.Email)

	if err := v.Validate(ctx, req); err != nil {
		return models.ForgotPasswordCommand{}, err
	}

	return models.ForgotPasswordCommand{Email: req.Email}, nil
}

func (v *accountValidator) ResetPasswordCommand(ctx context.Context, req models.ResetPasswordRequest) (models.ResetPasswordCommand, error) {
	req.Email = models.NormalizeEmail(req.Email)

	if err := v.Validate(ctx, req); err != nil {
		return models.ResetPasswordCommand{}, err
	}
	if err := checkPasswordBytes("newPassword", req.NewPassword); err != nil {
		return models.ResetPasswordCommand{}, err
	}

	return models.ResetPasswordCommand{
		Email:       req.Email,
		OTP:         req.OTP,
		NewPassword: req.NewPassword,
	}, nil
}

func (v *accountValidator) UpdateProfileCommand(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.UpdateProfileCommand, error) {
	if userID == "" {
		return models.UpdateProfileCommand{}, &ValidationError{Field: "id", Message: "user id is required"}
	}

	req.FullName = strings.TrimSpace(req.FullName)
	if err := v.Validate(ctx, req); err != nil {
		return models.UpdateProfileCommand{}, err
	}

	return models.UpdateProfileCommand{UserID: userID, FullName: req.FullName}, nil
}

func checkPasswordBytes(field, password string) error {
	if len(password) > maxPasswordBytes {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d bytes", field, maxPasswordBytes),
		}
	}
	return nil
}

// toValidationError reports the first failed rule of err.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Message: fieldMessage(fe)}
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "number", "numeric":
		return field + " must contain digits only"
	default:
		return field + " is invalid"
	}
}
