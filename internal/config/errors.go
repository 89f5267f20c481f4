// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a required
// configuration group is incomplete or invalid. Each is wrapped with the
// name of the offending setting.
var (
	ErrInvalidAppConfigs          = errors.New("invalid app configuration")
	ErrInvalidStorageConfigs      = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs       = errors.New("invalid server configuration")
	ErrInvalidNotificationConfigs = errors.New("invalid notification configuration")
	ErrInvalidWorkerConfigs       = errors.New("invalid worker configuration")
)
