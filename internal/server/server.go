// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/handler"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	runners    []Runner
	logger     *logger.Logger
}

// NewServer creates the HTTP server for handlers. runners are started and
// stopped together with it.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, runners ...Runner) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		runners:    runners,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.httpServer.Run(ctx)
	})
	for _, runner := range s.runners {
		g.Go(func() error {
			return runner.Run(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Str("func", "*server.Run").Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
