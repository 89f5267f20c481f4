// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package store

import (
	"testing"
	"time"

	"github.com/Anjana-1234/orato-robot/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryBuilder_Placeholders(t *testing.T) {
	const selectColumns = "SELECT id, full_name, email, password_hash, reset_otp_hash, reset_otp_expires_at, created_at, updated_at FROM users"

	tests := []struct {
		name       string
		dialect    string
		wantSelect string
		wantLast   string
		notWant    string
	}{
		{
			name:       "postgres uses dollar placeholders",
			dialect:    migrations.DialectPostgres,
			wantSelect: selectColumns + " WHERE email = $1",
			wantLast:   "$7",
			notWant:    "?",
		},
		{
			name:       "sqlite uses question placeholders",
			dialect:    migrations.DialectSQLite,
			wantSelect: selectColumns + " WHERE email = ?",
			wantLast:   "?",
			notWant:    "$",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newQueryBuilder(tt.dialect)

			query, args, err := q.selectUserBy(columnEmail, "jane@x.com")
			require.NoError(t, err)
			assert.Equal(t, tt.wantSelect, query)
			assert.Equal(t, []any{"jane@x.com"}, args)

			now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
			query, args, err = q.consumeResetOTP("jane@x.com", "digest", "hash", now)
			require.NoError(t, err)
			assert.Contains(t, query, tt.wantLast)
			assert.NotContains(t, query, tt.notWant)
			assert.Len(t, args, 7)
		})
	}
}
