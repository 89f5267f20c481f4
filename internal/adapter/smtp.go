// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package adapter

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/models"
	"github.com/jordan-wright/email"
)

type smtpSender struct {
	addr    string
	auth    smtp.Auth
	from    string
	appName string

	send func(e *email.Email, addr string, auth smtp.Auth) error
	now  func() time.Time
}

// NewSMTPSender returns a [NotificationSender] that sends plain-text email
// through the SMTP relay described by cfg.SMTP.
func NewSMTPSender(cfg config.Notification) (NotificationSender, error) {
	if cfg.SMTP.Host == "" {
		return nil, fmt.Errorf("%w: smtp host is empty", ErrNotConfigured)
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &smtpSender{
		addr:    net.JoinHostPort(cfg.SMTP.Host, strconv.Itoa(cfg.SMTP.Port)),
		auth:    auth,
		from:    cfg.From,
		appName: cfg.AppName,
		send:    (*email.Email).Send,
		now:     time.Now,
	}, nil
}

func (s *smtpSender) SendOTP(ctx context.Context, n models.OTPNotification) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: smtp: %w", ErrDeliveryFailed, err)
	}

	msg := renderOTPMessage(s.appName, n, s.now())

	e := email.NewEmail()
	e.From = s.from
	e.To = []string{n.Email}
	e.Subject = msg.Subject
	e.Text = []byte(msg.Text)

	if err := s.send(e, s.addr, s.auth); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*smtpSender.SendOTP").Msg("failed to send email")
		return fmt.Errorf("%w: smtp: %w", ErrDeliveryFailed, err)
	}

	logger.FromContext(ctx).Info().Str("channel", "smtp").Msg("otp notification sent")
	return nil
}
