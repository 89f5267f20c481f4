// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package service

import (
	"fmt"

	"github.com/Anjana-1234/orato-robot/internal/adapter"
	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/crypto"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/store"
	"github.com/Anjana-1234/orato-robot/internal/utils"
)

// Services bundles the business services consumed by the handlers and workers.
type Services struct {
	AccountService AccountService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices builds every service from the connected storages and the
// notification sender.
func NewServices(storages *store.Storages, sender adapter.NotificationSender, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	otps, err := crypto.NewOTPGenerator(cfg.App.OTPHashKey)
	if err != nil {
		return nil, fmt.Errorf("error creating otp generator: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tokens := NewTokenService(cfg.App, logger)
	accounts, err := NewAccountService(AccountDeps{
		Users:   storages.UserRepository,
		Limiter: storages.OTPRequestLimiter,
		Hasher:  crypto.NewPasswordHasher(cfg.App.PasswordHashCost, cfg.App.MaxConcurrentHashes),
		OTPs:    otps,
		Sender:  sender,
		Tokens:  tokens,
		IDs:     utils.NewUUIDGenerator(),
	}, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AccountService: accounts,
		TokenService:   tokens,
		AppInfoService: appInfo,
	}, nil
}
