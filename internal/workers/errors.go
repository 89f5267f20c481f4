// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package workers

import "errors"

var (
	ErrInvalidSchedule  = errors.New("invalid worker schedule")
	ErrNoAccountService = errors.New("account service is required")
)
