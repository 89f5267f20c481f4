// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages bundles the connected persistence backends.
type Storages struct {
	UserRepository    UserRepository
	OTPRequestLimiter OTPRequestLimiter

	db    *DB
	redis *redis.Client
}

// NewStorages connects the credential store, applies migrations and sets up
// the OTP request limiter. Redis is optional: without an address every
// request is allowed.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	storages := &Storages{
		UserRepository:    NewUserRepository(db, log),
		OTPRequestLimiter: NewNoopOTPRequestLimiter(),
		db:                db,
	}

	if cfg.Redis.Address != "" {
		client, err := NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		storages.redis = client
		storages.OTPRequestLimiter = NewRedisOTPRequestLimiter(client, cfg.OTPRequestLimit, cfg.OTPRequestWindow, log)
	} else {
		log.Warn().Str("func", "NewStorages").Msg("redis address is empty, otp request limiting is disabled")
	}

	return storages, nil
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
