// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package config

import "time"

const defaultDotEnvPath = ".env"

// defaultConfig returns the values used for every field no other source set.
// Secrets and the DSN have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "orato",
			TokenDuration:    7 * 24 * time.Hour,
			OTPTTL:           10 * time.Minute,
			PasswordHashCost: 10,
			Version:          "1.0.0",
			LogLevel:         "info",
			LogFormat:        "json",
		},
		Storage: Storage{
			OTPRequestLimit:  5,
			OTPRequestWindow: 15 * time.Minute,
		},
		Server: Server{
			HTTPAddress:     ":5000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AuthRateLimit:   20,
			AuthRateWindow:  time.Minute,
			AllowedOrigins:  []string{"*"},
		},
		Notification: Notification{
			Channel:        ChannelLog,
			From:           "no-reply@orato.app",
			AppName:        "Orato",
			SMTP:           SMTP{Port: 587},
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			OTPCleanupSchedule: "@every 15m",
		},
	}
}
