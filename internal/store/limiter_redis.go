// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/redis/go-redis/v9"
)

const otpRequestKeyPrefix = "otp:req:"

// otpRequestScript increments the counter and arms the window in one step.
// A counter left without a TTL gets one on its next hit.
var otpRequestScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// redisOTPRequestLimiter is a fixed-window counter shared by every instance
// pointed at the same Redis.
type redisOTPRequestLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	logger *logger.Logger
}

// NewRedisClient connects to the Redis described by cfg and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}
	log.Info().Str("func", "NewRedisClient").Str("address", cfg.Address).Msg("connected to redis successfully")

	return client, nil
}

// NewRedisOTPRequestLimiter allows at most limit requests per email in each window.
func NewRedisOTPRequestLimiter(client *redis.Client, limit int, window time.Duration, log *logger.Logger) OTPRequestLimiter {
	return &redisOTPRequestLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		logger: log,
	}
}

func (l *redisOTPRequestLimiter) Allow(ctx context.Context, email string) (bool, error) {
	key := otpRequestKeyPrefix + email

	count, err := otpRequestScript.Run(ctx, l.client, []string{key}, l.window.Milliseconds()).Int64()
	if err != nil {
		logger.FromContextOr(ctx, l.logger).Err(err).Str("func", "*redisOTPRequestLimiter.Allow").Msg("error incrementing counter")
		return false, fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}

	return count <= l.limit, nil
}

type noopOTPRequestLimiter struct{}

// NewNoopOTPRequestLimiter returns a limiter that allows every request.
func NewNoopOTPRequestLimiter() OTPRequestLimiter {
	return noopOTPRequestLimiter{}
}

func (noopOTPRequestLimiter) Allow(context.Context, string) (bool, error) {
	return true, nil
}
