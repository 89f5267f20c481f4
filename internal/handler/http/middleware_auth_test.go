// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Anjana-1234/orato-robot/internal/service"
	"github.com/Anjana-1234/orato-robot/internal/utils"
	"github.com/Anjana-1234/orato-robot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
		wantUserID  string
	}{
		{
			name:        "missing header",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Not authorized, no token provided",
		},
		{
			name:        "wrong scheme",
			header:      "Basic " + testToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Not authorized, no token provided",
		},
		{
			name:        "scheme without token",
			header:      "Bearer ",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Not authorized, no token provided",
		},
		{
			name:        "token only",
			header:      testToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Not authorized, no token provided",
		},
		{
			name:        "forged token",
			header:      "Bearer forged",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Not authorized, token invalid",
		},
		{
			name:       "valid token",
			header:     "Bearer " + testToken,
			wantStatus: http.StatusOK,
			wantUserID: testUserID,
		},
		{
			name:       "scheme is case-insensitive",
			header:     "bearer " + testToken,
			wantStatus: http.StatusOK,
			wantUserID: testUserID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockAccountService{}, nil)

			nextCalled := false
			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.False(t, nextCalled)
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
				return
			}
			require.True(t, nextCalled)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}

func TestAuthMiddleware_PassesTokenToVerifier(t *testing.T) {
	var verified string
	tokens := &mockTokenService{
		verifyFn: func(_ context.Context, token string) (models.Token, error) {
			verified = token
			return models.Token{}, service.ErrInvalidToken
		},
	}
	h := newTestHandler(&mockAccountService{}, tokens)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer  abc.def.ghi ")
	h.auth(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "abc.def.ghi", verified)
}
