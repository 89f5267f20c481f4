// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package main

import (
	"context"
	"os"

	"github.com/Anjana-1234/orato-robot/internal/adapter"
	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/handler"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/server"
	"github.com/Anjana-1234/orato-robot/internal/service"
	"github.com/Anjana-1234/orato-robot/internal/store"
	"github.com/Anjana-1234/orato-robot/internal/workers"
	"github.com/Anjana-1234/orato-robot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const serviceName = "orato-server"

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(serviceName).Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log, err := newLogger(cfg.App)
	if err != nil {
		logger.NewLogger(serviceName).Fatal().Err(err).Msg("error creating logger")
	}

	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting server")

	if err = run(cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	sender, err := adapter.NewNotificationSender(cfg.Notification, log)
	if err != nil {
		return err
	}

	services, err := service.NewServices(storages, sender, *cfg, log)
	if err != nil {
		return err
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return err
	}

	backgroundWorkers, err := workers.NewWorkers(services, cfg.Workers, log)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, backgroundWorkers)
	if err != nil {
		return err
	}

	return srv.RunServer()
}

func newLogger(cfg config.App) (*logger.Logger, error) {
	log, err := logger.NewLoggerWithFormat(serviceName, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return log.WithLevel(cfg.LogLevel)
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
