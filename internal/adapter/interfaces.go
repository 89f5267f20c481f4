// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

// Package adapter delivers password reset codes to users.
//
// [NotificationSender] hides the delivery channel from the service layer.
// The channel is chosen by [NewNotificationSender] from configuration: a
// console outbox for local development, SMTP through jordan-wright/email,
// the Resend API, or a JSON webhook posted with resty.
//
// Every failure is wrapped with [ErrDeliveryFailed] so callers can roll back
// the code they just issued with a single [errors.Is] check.
package adapter

import (
	"context"

	"github.com/Anjana-1234/orato-robot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NotificationSender delivers a one-time password to its recipient.
type NotificationSender interface {
	// SendOTP delivers n.Code to n.Email. A nil error means the channel
	// accepted the message.
	SendOTP(ctx context.Context, n models.OTPNotification) error
}
