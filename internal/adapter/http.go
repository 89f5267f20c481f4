// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/utils"
	"github.com/Anjana-1234/orato-robot/models"
)

// webhookPayload is the JSON body posted to the notification webhook.
type webhookPayload struct {
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	OTP       string    `json:"otp"`
	ExpiresAt time.Time `json:"expiresAt"`
	Subject   string    `json:"subject"`
	Text      string    `json:"text"`
}

type webhookSender struct {
	client  *utils.HTTPClient
	url     string
	appName string
	now     func() time.Time
}

// NewWebhookSender returns a [NotificationSender] that POSTs every message as
// JSON to cfg.WebhookURL, for relays that own the actual email delivery.
func NewWebhookSender(cfg config.Notification) (NotificationSender, error) {
	target, err := normalizeWebhookURL(cfg.WebhookURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotConfigured, err)
	}

	return &webhookSender{
		client:  utils.NewHTTPClient(cfg.RequestTimeout),
		url:     target,
		appName: cfg.AppName,
		now:     time.Now,
	}, nil
}

func normalizeWebhookURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty webhook url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("webhook url must include http(s) scheme and host")
	}

	return u.String(), nil
}

func (s *webhookSender) SendOTP(ctx context.Context, n models.OTPNotification) error {
	msg := renderOTPMessage(s.appName, n, s.now())

	req := s.client.R().SetContext(ctx)
	if traceID := utils.GetTraceIDFromContext(ctx); traceID != "" {
		req.SetHeader("X-Trace-ID", traceID)
	}

	resp, err := req.
		SetBody(webhookPayload{
			Email:     n.Email,
			FullName:  n.FullName,
			OTP:       n.Code,
			ExpiresAt: n.ExpiresAt.UTC(),
			Subject:   msg.Subject,
			Text:      msg.Text,
		}).
		Post(s.url)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*webhookSender.SendOTP").Msg("webhook request failed")
		return fmt.Errorf("%w: webhook request: %w", ErrDeliveryFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*webhookSender.SendOTP").Msg("webhook returned an error")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	logger.FromContext(ctx).Info().Str("channel", "webhook").Msg("otp notification sent")
	return nil
}
