// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/utils"
	"github.com/Anjana-1234/orato-robot/models"
)

// tokenService signs HS256 session tokens whose subject is the user id.
type tokenService struct {
	signKey  string
	issuer   string
	duration time.Duration
	now      func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the App configuration.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *tokenService) loggerFor(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, s.logger)
}

func (s *tokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, userID, s.duration, s.now(), s.signKey)
	if err != nil {
		s.loggerFor(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, s.now())
	if err != nil {
		s.loggerFor(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}
