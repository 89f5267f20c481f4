// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/models"
	"github.com/resend/resend-go/v2"
)

// resendEmails is the part of the Resend client used to send mail.
type resendEmails interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type resendSender struct {
	emails  resendEmails
	from    string
	appName string
	now     func() time.Time
}

// NewResendSender returns a [NotificationSender] backed by the Resend API.
func NewResendSender(cfg config.Notification) (NotificationSender, error) {
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("%w: resend api key is empty", ErrNotConfigured)
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	return &resendSender{
		emails:  client.Emails,
		from:    cfg.From,
		appName: cfg.AppName,
		now:     time.Now,
	}, nil
}

func (s *resendSender) SendOTP(ctx context.Context, n models.OTPNotification) error {
	msg := renderOTPMessage(s.appName, n, s.now())

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{n.Email},
		Subject: msg.Subject,
		Text:    msg.Text,
	}

	sent, err := s.emails.SendWithContext(ctx, params)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*resendSender.SendOTP").Msg("failed to send email")
		return fmt.Errorf("%w: resend: %w", ErrDeliveryFailed, err)
	}

	log := logger.FromContext(ctx).Info().Str("channel", "resend")
	if sent != nil {
		log = log.Str("message_id", sent.Id)
	}
	log.Msg("otp notification sent")
	return nil
}
