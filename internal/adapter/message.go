// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package adapter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Anjana-1234/orato-robot/models"
)

// message is the rendered plain-text email for one reset code.
type message struct {
	Subject string
	Text    string
}

func renderOTPMessage(appName string, n models.OTPNotification, now time.Time) message {
	name := strings.TrimSpace(n.FullName)
	if name == "" {
		name = "there"
	}

	minutes := int(math.Ceil(n.ExpiresAt.Sub(now).Minutes()))
	if minutes < 1 {
		minutes = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", name)
	fmt.Fprintf(&b, "Your %s password reset code is: %s\n\n", appName, n.Code)
	unit := "minutes"
	if minutes == 1 {
		unit = "minute"
	}
	fmt.Fprintf(&b, "The code is valid for %d %s (until %s) and can be used once.\n",
		minutes, unit, n.ExpiresAt.UTC().Format("2006-01-02 15:04 MST"))
	b.WriteString("If you did not request a password reset, you can ignore this email.\n\n")
	fmt.Fprintf(&b, "The %s team\n", appName)

	return message{
		Subject: fmt.Sprintf("Your %s password reset code", appName),
		Text:    b.String(),
	}
}
