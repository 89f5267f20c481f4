// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/models"
	"github.com/google/uuid"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// timestamp returns the current time in UTC at the precision every
// supported backend preserves.
func (r *userRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.timestamp()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.ResetOTPHash = nil
	user.ResetOTPExpiresAt = nil

	query, args, err := r.db.queries.insertUser(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.Create").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findBy(ctx, columnEmail, email)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	// ids are always UUID strings; anything else cannot match a row
	if _, err := uuid.Parse(id); err != nil {
		return models.User{}, ErrUserNotFound
	}
	return r.findBy(ctx, columnID, id)
}

func (r *userRepository) findBy(ctx context.Context, column string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.selectUserBy(column, value)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.GetContext(ctx, &user, query, args...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findBy").Str("column", column).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return normalizeTimes(user), nil
}

func (r *userRepository) SetResetOTP(ctx context.Context, email, digest string, expiresAt time.Time) error {
	query, args, err := r.db.queries.setResetOTP(email, digest, expiresAt.UTC(), r.timestamp())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*userRepository.SetResetOTP", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) ClearResetOTP(ctx context.Context, email, digest string) (bool, error) {
	query, args, err := r.db.queries.clearResetOTP(email, digest, r.timestamp())
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*userRepository.ClearResetOTP", query, args)
	return affected > 0, err
}

func (r *userRepository) ConsumeResetOTP(ctx context.Context, email, digest, passwordHash string, now time.Time) (bool, error) {
	query, args, err := r.db.queries.consumeResetOTP(email, digest, passwordHash, now.UTC())
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*userRepository.ConsumeResetOTP", query, args)
	return affected > 0, err
}

func (r *userRepository) UpdateFullName(ctx context.Context, id, fullName string) (models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.User{}, ErrUserNotFound
	}

	query, args, err := r.db.queries.updateFullName(id, fullName, r.timestamp())
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*userRepository.UpdateFullName", query, args)
	if err != nil {
		return models.User{}, err
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *userRepository) ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := r.db.queries.clearExpiredOTPs(now.UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*userRepository.ClearExpiredOTPs", query, args)
}

// exec runs a single UPDATE and returns the number of affected rows.
func (r *userRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func normalizeTimes(user models.User) models.User {
	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()
	if user.ResetOTPExpiresAt != nil {
		expiresAt := user.ResetOTPExpiresAt.UTC()
		user.ResetOTPExpiresAt = &expiresAt
	}
	return user
}
