// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package utils

import "errors"

var (
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrInvalidTokenParams         = errors.New("invalid params for generating JWT token")
	ErrEmptySubject               = errors.New("empty subject in token")
)
