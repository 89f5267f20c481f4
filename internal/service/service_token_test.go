// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package service

import (
	"context"
	"testing"
	"time"

	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(now time.Time) *tokenService {
	s := NewTokenService(config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "orato",
		TokenDuration: 168 * time.Hour,
	}, logger.Nop()).(*tokenService)
	s.now = func() time.Time { return now }
	return s
}

func TestTokenService_IssueVerify(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newTestTokenService(issuedAt)

	token, err := s.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.True(t, token.ExpiresAt.Time.Equal(issuedAt.Add(7*24*time.Hour)))

	verified, err := s.Verify(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", verified.UserID)
}

func TestTokenService_VerifyRejects(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token, err := newTestTokenService(issuedAt).Issue(context.Background(), "user-1")
	require.NoError(t, err)

	other := NewTokenService(config.App{TokenSignKey: "other-key", TokenIssuer: "orato", TokenDuration: time.Hour}, logger.Nop()).(*tokenService)
	other.now = func() time.Time { return issuedAt }
	foreign, err := other.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		now   time.Time
	}{
		{name: "empty", token: "", now: issuedAt},
		{name: "garbage", token: "not.a.jwt", now: issuedAt},
		{name: "tampered", token: token.SignedString + "x", now: issuedAt},
		{name: "foreign key", token: foreign.SignedString, now: issuedAt},
		{name: "expired", token: token.SignedString, now: issuedAt.Add(7*24*time.Hour + time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestTokenService(tt.now).Verify(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenService_IssueEmptyUser(t *testing.T) {
	_, err := newTestTokenService(time.Now()).Issue(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
