// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line configuration flags from args.
//
// Flags:
//
//	-a                  server address in format [host]:port
//	-d                  database DSN (postgres URL or sqlite://path)
//	-redis              redis address for the OTP request limiter
//	-c / -config        json file path with configs
//	-token-sign-key     token signing key
//	-token-issuer       token issuer name
//	-token-duration     token duration (e.g. "168h")
//	-otp-hash-key       OTP digest key
//	-otp-ttl            OTP validity window (e.g. "10m")
//	-request-timeout    request timeout (e.g. "30s")
//	-notification       notification channel (log, smtp, resend, webhook)
//	-log-level          log level (debug, info, warn, error)
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("orato", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, redisAddress string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var otpHashKey string
	var otpTTL time.Duration
	var requestTimeout time.Duration
	var notificationChannel string
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	fs.StringVar(&otpHashKey, "otp-hash-key", "", "OTP digest key")
	fs.DurationVar(&otpTTL, "otp-ttl", 0, "OTP validity window (e.g., 10m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&notificationChannel, "notification", "", "Notification channel: log, smtp, resend, webhook")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			OTPHashKey:    otpHashKey,
			OTPTTL:        otpTTL,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Redis: Redis{Address: redisAddress},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Notification: Notification{
			Channel: notificationChannel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address is returned as the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
