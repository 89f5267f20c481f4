// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package store

import (
	"time"

	"github.com/Anjana-1234/orato-robot/migrations"
	"github.com/Anjana-1234/orato-robot/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable = "users"

	columnID                = "id"
	columnFullName          = "full_name"
	columnEmail             = "email"
	columnPasswordHash      = "password_hash"
	columnResetOTPHash      = "reset_otp_hash"
	columnResetOTPExpiresAt = "reset_otp_expires_at"
	columnCreatedAt         = "created_at"
	columnUpdatedAt         = "updated_at"
)

var userColumns = []string{
	columnID,
	columnFullName,
	columnEmail,
	columnPasswordHash,
	columnResetOTPHash,
	columnResetOTPExpiresAt,
	columnCreatedAt,
	columnUpdatedAt,
}

// queryBuilder renders the user statements with the placeholder style of
// one SQL dialect.
type queryBuilder struct {
	sb sq.StatementBuilderType
}

func newQueryBuilder(dialect string) queryBuilder {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		format = sq.Dollar
	}

	return queryBuilder{sb: sq.StatementBuilder.PlaceholderFormat(format)}
}

func (q queryBuilder) insertUser(user models.User) (string, []any, error) {
	return q.sb.Insert(usersTable).
		Columns(columnID, columnFullName, columnEmail, columnPasswordHash, columnCreatedAt, columnUpdatedAt).
		Values(user.ID, user.FullName, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func (q queryBuilder) selectUserBy(column string, value any) (string, []any, error) {
	return q.sb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func (q queryBuilder) setResetOTP(email, digest string, expiresAt, now time.Time) (string, []any, error) {
	return q.sb.Update(usersTable).
		Set(columnResetOTPHash, digest).
		Set(columnResetOTPExpiresAt, expiresAt).
		Set(columnUpdatedAt, now).
		Where(sq.Eq{columnEmail: email}).
		ToSql()
}

func (q queryBuilder) clearResetOTP(email, digest string, now time.Time) (string, []any, error) {
	return q.sb.Update(usersTable).
		Set(columnResetOTPHash, nil).
		Set(columnResetOTPExpiresAt, nil).
		Set(columnUpdatedAt, now).
		Where(sq.Eq{columnEmail: email, columnResetOTPHash: digest}).
		ToSql()
}

func (q queryBuilder) consumeResetOTP(email, digest, passwordHash string, now time.Time) (string, []any, error) {
	return q.sb.Update(usersTable).
		Set(columnPasswordHash, passwordHash).
		Set(columnResetOTPHash, nil).
		Set(columnResetOTPExpiresAt, nil).
		Set(columnUpdatedAt, now).
		Where(sq.And{
			sq.Eq{columnEmail: email},
			sq.Eq{columnResetOTPHash: digest},
			sq.Gt{columnResetOTPExpiresAt: now},
		}).
		ToSql()
}

func (q queryBuilder) updateFullName(id, fullName string, now time.Time) (string, []any, error) {
	return q.sb.Update(usersTable).
		Set(columnFullName, fullName).
		Set(columnUpdatedAt, now).
		Where(sq.Eq{columnID: id}).
		ToSql()
}

func (q queryBuilder) clearExpiredOTPs(now time.Time) (string, []any, error) {
	return q.sb.Update(usersTable).
		Set(columnResetOTPHash, nil).
		Set(columnResetOTPExpiresAt, nil).
		Set(columnUpdatedAt, now).
		Where(sq.And{
			sq.NotEq{columnResetOTPExpiresAt: nil},
			sq.LtOrEq{columnResetOTPExpiresAt: now},
		}).
		ToSql()
}
