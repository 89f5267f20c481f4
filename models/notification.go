// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package models

import "time"

// OTPNotification is the message handed to a notification sender when a
// password reset OTP has to be delivered.
type OTPNotification struct {
	// Email is the registered (normalised) address of the recipient.
	Email string `json:"email"`

	// FullName is used to personalise the message.
	FullName string `json:"fullName"`

	// Code is the plain six-digit OTP. It only ever travels to the sender.
	Code string `json:"otp"`

	// ExpiresAt is the absolute expiry of Code.
	ExpiresAt time.Time `json:"expiresAt"`
}
