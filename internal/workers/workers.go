// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package workers

import (
	"context"

	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/service"
	"golang.org/x/sync/errgroup"
)

// Workers runs a set of workers as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers creates every configured background job.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) (*Workers, error) {
	cleanup, err := NewOTPCleanupWorker(services.AccountService, cfg.OTPCleanupSchedule, logger)
	if err != nil {
		return nil, err
	}

	return &Workers{workers: []Worker{cleanup}}, nil
}

// Run starts all workers and waits for them. The first failing worker
// cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
