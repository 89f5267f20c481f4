// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package models

// AuthResult is returned by signup and signin: a freshly issued session token
// together with the public profile of the authenticated user.
type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// MessageResponse is the body of successful operations that have nothing to
// return besides a confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error response. Message is short,
// human-readable and never contains internal details.
type ErrorResponse struct {
	Message string `json:"message"`
}
