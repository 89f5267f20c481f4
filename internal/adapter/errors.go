// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package adapter

import "errors"

var (
	// ErrDeliveryFailed wraps every failure to hand a message to its channel.
	ErrDeliveryFailed = errors.New("notification delivery failed")

	ErrUnsupportedChannel = errors.New("unsupported notification channel")
	ErrNotConfigured      = errors.New("notification channel is not configured")
)

// Webhook response classes, mapped from the HTTP status.
var (
	ErrWebhookRejected    = errors.New("webhook rejected notification")
	ErrWebhookUnavailable = errors.New("webhook unavailable")
)
