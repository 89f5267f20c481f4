// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

// Package handler assembles the inbound transport handlers of the server.
package handler

import (
	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/handler/http"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/service"
	"github.com/Anjana-1234/orato-robot/internal/validators"
)

// Handlers holds the transport handlers enabled by the server configuration.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the handlers for every configured transport.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, validators.NewAccountValidator(), cfg, logger),
	}, nil
}
