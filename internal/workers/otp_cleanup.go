// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/service"
	"github.com/robfig/cron/v3"
)

// cleanupTimeout bounds a single cleanup run.
const cleanupTimeout = time.Minute

type otpCleanupWorker struct {
	accounts service.AccountService
	schedule cron.Schedule

	logger *logger.Logger
}

// NewOTPCleanupWorker returns a worker that drops expired password reset
// codes on spec, a standard cron expression or descriptor such as
// "@every 15m". Codes that are still valid are never touched.
func NewOTPCleanupWorker(accounts service.AccountService, spec string, logger *logger.Logger) (Worker, error) {
	if accounts == nil {
		return nil, ErrNoAccountService
	}

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSchedule, spec, err)
	}

	return &otpCleanupWorker{
		accounts: accounts,
		schedule: schedule,
		logger:   logger,
	}, nil
}

func (w *otpCleanupWorker) Run(ctx context.Context) error {
	log := cronLogger{w.logger}

	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(log),
		cron.WithChain(cron.Recover(log), cron.SkipIfStillRunning(log)),
	)
	c.Schedule(w.schedule, cron.FuncJob(func() {
		w.cleanup(ctx)
	}))

	w.logger.Info().Str("worker", "otp-cleanup").Msg("worker started")
	c.Start()

	<-ctx.Done()

	<-c.Stop().Done()
	w.logger.Info().Str("worker", "otp-cleanup").Msg("worker stopped")

	return nil
}

func (w *otpCleanupWorker) cleanup(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, cleanupTimeout)
	defer cancel()

	cleared, err := w.accounts.ClearExpiredOTPs(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*otpCleanupWorker.cleanup").Msg("error clearing expired reset codes")
		return
	}

	if cleared > 0 {
		w.logger.Info().Int64("cleared", cleared).Msg("expired reset codes cleared")
	}
}

// cronLogger adapts the application logger to [cron.Logger].
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
