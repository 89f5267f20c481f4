// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package models

// SignupRequest is the raw JSON body of POST /api/auth/signup.
// It is turned into a [SignupCommand] by the validation step.
type SignupRequest struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// SigninRequest is the raw JSON body of POST /api/auth/signin.
type SigninRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest is the raw JSON body of POST /api/auth/forgot-password-otp.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ResetPasswordRequest is the raw JSON body of POST /api/auth/reset-password-otp.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required"`
	OTP         string `json:"otp" validate:"required,len=6,number"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"`
}

// UpdateProfileRequest is the raw JSON body of PUT /api/users/profile.
type UpdateProfileRequest struct {
	FullName string `json:"fullName" validate:"required,max=100"`
}
