// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package store

import (
	"context"
	"strings"
	"time"

	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/migrations"
	"github.com/jmoiron/sqlx"
	"github.com/sethvargo/go-retry"
)

const sqliteScheme = "sqlite://"

// DB is a connected credential store of one dialect.
type DB struct {
	*sqlx.DB
	dialect            string
	errorClassificator ErrorClassificator
	queries            queryBuilder
	logger             *logger.Logger
}

func newDB(conn *sqlx.DB, dialect string, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: classifier,
		queries:            newQueryBuilder(dialect),
		logger:             log,
	}
}

// NewConnect opens the database named by cfg.DSN: "sqlite://<path>" selects
// SQLite, anything else is handed to the PostgreSQL driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if path, ok := strings.CutPrefix(cfg.DSN, sqliteScheme); ok {
		return NewConnectSQLite(ctx, path, log)
	}
	if cfg.DSN == "" {
		return nil, ErrUnsupportedDSN
	}

	return NewConnectPostgres(ctx, cfg.DSN, log)
}

// Dialect returns the migrations dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the connected dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB.DB, db.dialect)
}

// withRetry runs an idempotent operation, repeating it while the dialect
// classifies the failure as transient.
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(2, retry.NewExponential(50*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}
