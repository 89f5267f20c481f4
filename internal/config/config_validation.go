// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
)

// validate checks that the merged [StructuredConfig] can start the server.
// All violations are reported together.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.App.validate(),
		cfg.Storage.validate(),
		cfg.Server.validate(),
		cfg.Notification.validate(),
		cfg.Workers.validate(),
	)
}

func (a App) validate() error {
	var errs []error
	if a.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: APP_TOKEN_SIGN_KEY is required", ErrInvalidAppConfigs))
	}
	if a.OTPHashKey == "" {
		errs = append(errs, fmt.Errorf("%w: APP_OTP_HASH_KEY is required", ErrInvalidAppConfigs))
	}
	if a.TokenIssuer == "" {
		errs = append(errs, fmt.Errorf("%w: token issuer is empty", ErrInvalidAppConfigs))
	}
	if a.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}
	if a.OTPTTL <= 0 {
		errs = append(errs, fmt.Errorf("%w: otp ttl must be positive", ErrInvalidAppConfigs))
	}
	if a.MaxConcurrentHashes < 0 {
		errs = append(errs, fmt.Errorf("%w: max concurrent hashes must not be negative", ErrInvalidAppConfigs))
	}
	if a.LogFormat != "" && a.LogFormat != "json" && a.LogFormat != "console" {
		errs = append(errs, fmt.Errorf("%w: log format must be json or console", ErrInvalidAppConfigs))
	}
	return errors.Join(errs...)
}

func (s Storage) validate() error {
	var errs []error
	if s.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: STORAGE_DB_DATABASE_URI is required", ErrInvalidStorageConfigs))
	}
	if s.Redis.Address != "" && (s.OTPRequestLimit <= 0 || s.OTPRequestWindow <= 0) {
		errs = append(errs, fmt.Errorf("%w: otp request limit and window must be positive", ErrInvalidStorageConfigs))
	}
	return errors.Join(errs...)
}

func (s Server) validate() error {
	var errs []error
	if s.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: address is empty", ErrInvalidServerConfigs))
	}
	if s.RequestTimeout < 0 || s.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs))
	}
	if s.AuthRateLimit > 0 && s.AuthRateWindow <= 0 {
		errs = append(errs, fmt.Errorf("%w: auth rate window must be positive", ErrInvalidServerConfigs))
	}
	return errors.Join(errs...)
}

func (n Notification) validate() error {
	switch strings.ToLower(n.Channel) {
	case ChannelLog:
		return nil
	case ChannelSMTP:
		if n.SMTP.Host == "" || n.SMTP.Port <= 0 || n.From == "" {
			return fmt.Errorf("%w: smtp channel needs host, port and from address", ErrInvalidNotificationConfigs)
		}
	case ChannelResend:
		if n.ResendAPIKey == "" || n.From == "" {
			return fmt.Errorf("%w: resend channel needs api key and from address", ErrInvalidNotificationConfigs)
		}
	case ChannelWebhook:
		u, err := url.Parse(n.WebhookURL)
		if n.WebhookURL == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: webhook channel needs an http(s) url", ErrInvalidNotificationConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown channel %q", ErrInvalidNotificationConfigs, n.Channel)
	}
	return nil
}

func (w Workers) validate() error {
	if strings.TrimSpace(w.OTPCleanupSchedule) == "" {
		return fmt.Errorf("%w: otp cleanup schedule is empty", ErrInvalidWorkerConfigs)
	}
	if _, err := cron.ParseStandard(w.OTPCleanupSchedule); err != nil {
		return fmt.Errorf("%w: otp cleanup schedule: %w", ErrInvalidWorkerConfigs, err)
	}
	return nil
}
