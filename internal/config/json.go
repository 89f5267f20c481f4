// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations ("10m", "168h").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenDuration       Duration `json:"token_duration"`
		OTPHashKey          string   `json:"otp_hash_key"`
		OTPTTL              Duration `json:"otp_ttl"`
		PasswordHashCost    int      `json:"password_hash_cost"`
		MaxConcurrentHashes int      `json:"max_concurrent_hashes"`
		Version             string   `json:"version"`
		LogLevel            string   `json:"log_level"`
		LogFormat           string   `json:"log_format"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis"`
		OTPRequestLimit  int      `json:"otp_request_limit"`
		OTPRequestWindow Duration `json:"otp_request_window"`
	} `json:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		AuthRateLimit   int      `json:"auth_rate_limit"`
		AuthRateWindow  Duration `json:"auth_rate_window"`
		Production      bool     `json:"production"`
		AllowedOrigins  []string `json:"allowed_origins"`
	} `json:"server"`

	Notification struct {
		Channel string `json:"channel"`
		From    string `json:"from"`
		AppName string `json:"app_name"`
		SMTP    struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"smtp"`
		ResendAPIKey   string   `json:"resend_api_key"`
		WebhookURL     string   `json:"webhook_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"notification"`

	Workers struct {
		OTPCleanupSchedule string `json:"otp_cleanup_schedule"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:        j.App.TokenSignKey,
			TokenIssuer:         j.App.TokenIssuer,
			TokenDuration:       time.Duration(j.App.TokenDuration),
			OTPHashKey:          j.App.OTPHashKey,
			OTPTTL:              time.Duration(j.App.OTPTTL),
			PasswordHashCost:    j.App.PasswordHashCost,
			MaxConcurrentHashes: j.App.MaxConcurrentHashes,
			Version:             j.App.Version,
			LogLevel:            j.App.LogLevel,
			LogFormat:           j.App.LogFormat,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
			Redis: Redis{
				Address:  j.Storage.Redis.Address,
				Password: j.Storage.Redis.Password,
				DB:       j.Storage.Redis.DB,
			},
			OTPRequestLimit:  j.Storage.OTPRequestLimit,
			OTPRequestWindow: time.Duration(j.Storage.OTPRequestWindow),
		},
		Server: Server{
			HTTPAddress:     j.Server.HTTPAddress,
			RequestTimeout:  time.Duration(j.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(j.Server.ShutdownTimeout),
			AuthRateLimit:   j.Server.AuthRateLimit,
			AuthRateWindow:  time.Duration(j.Server.AuthRateWindow),
			Production:      j.Server.Production,
			AllowedOrigins:  j.Server.AllowedOrigins,
		},
		Notification: Notification{
			Channel: j.Notification.Channel,
			From:    j.Notification.From,
			AppName: j.Notification.AppName,
			SMTP: SMTP{
				Host:     j.Notification.SMTP.Host,
				Port:     j.Notification.SMTP.Port,
				Username: j.Notification.SMTP.Username,
				Password: j.Notification.SMTP.Password,
			},
			ResendAPIKey:   j.Notification.ResendAPIKey,
			WebhookURL:     j.Notification.WebhookURL,
			RequestTimeout: time.Duration(j.Notification.RequestTimeout),
		},
		Workers: Workers{
			OTPCleanupSchedule: j.Workers.OTPCleanupSchedule,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
