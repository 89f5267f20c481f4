// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package adapter

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/models"
)

// consoleSender prints rendered messages to an io.Writer. It is the
// development outbox: nothing leaves the machine.
type consoleSender struct {
	mu      sync.Mutex
	out     io.Writer
	appName string
	from    string
	now     func() time.Time
}

// NewConsoleSender returns a [NotificationSender] that writes each message to out.
func NewConsoleSender(out io.Writer, from, appName string) NotificationSender {
	return &consoleSender{out: out, from: from, appName: appName, now: time.Now}
}

func (s *consoleSender) SendOTP(ctx context.Context, n models.OTPNotification) error {
	msg := renderOTPMessage(s.appName, n, s.now())

	s.mu.Lock()
	_, err := fmt.Fprintf(s.out, "From: %s\nTo: %s\nSubject: %s\n\n%s\n", s.from, n.Email, msg.Subject, msg.Text)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: console: %w", ErrDeliveryFailed, err)
	}

	logger.FromContext(ctx).Info().Str("channel", "log").Msg("otp notification written to console")
	return nil
}
