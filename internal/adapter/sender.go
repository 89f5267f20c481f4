// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package adapter

import (
	"fmt"
	"os"

	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/logger"
)

// NewNotificationSender builds the sender selected by cfg.Channel.
func NewNotificationSender(cfg config.Notification, log *logger.Logger) (NotificationSender, error) {
	var (
		sender NotificationSender
		err    error
	)

	switch cfg.Channel {
	case config.ChannelLog, "":
		sender = NewConsoleSender(os.Stdout, cfg.From, cfg.AppName)
	case config.ChannelSMTP:
		sender, err = NewSMTPSender(cfg)
	case config.ChannelResend:
		sender, err = NewResendSender(cfg)
	case config.ChannelWebhook:
		sender, err = NewWebhookSender(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChannel, cfg.Channel)
	}
	if err != nil {
		log.Err(err).Str("func", "NewNotificationSender").Str("channel", cfg.Channel).Msg("error creating notification sender")
		return nil, err
	}

	log.Info().Str("channel", cfg.Channel).Msg("notification sender created")
	return sender, nil
}
