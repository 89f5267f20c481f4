// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import (
	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/service"
	"github.com/Anjana-1234/orato-robot/internal/validators"
)

// Handler serves the REST API on top of the business services.
type Handler struct {
	services  *service.Services
	validator validators.AccountValidator
	cfg       config.Server

	logger *logger.Logger
}

// NewHandler creates a Handler. Requests are turned into service commands by
// validator.
func NewHandler(services *service.Services, validator validators.AccountValidator, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		cfg:       cfg,
		logger:    logger,
	}
}
