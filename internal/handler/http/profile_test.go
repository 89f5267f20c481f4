// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Anjana-1234/orato-robot/internal/store"
	"github.com/Anjana-1234/orato-robot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	var gotUserID string
	accounts := &mockAccountService{
		profileFn: func(_ context.Context, userID string) (models.PublicUser, error) {
			gotUserID = userID
			return testPublicUser(), nil
		},
	}
	router := newTestHandler(accounts, nil).Init()

	rec := doRequest(t, router, http.MethodGet, "/api/users/profile", "", bearer(testToken))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUserID, gotUserID)

	var body models.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, testPublicUser(), body)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
	assert.NotContains(t, rec.Body.String(), "resetOtp")
}

func TestGetProfile_UserDeleted(t *testing.T) {
	accounts := &mockAccountService{
		profileFn: func(_ context.Context, _ string) (models.PublicUser, error) {
			return models.PublicUser{}, store.ErrUserNotFound
		},
	}
	router := newTestHandler(accounts, nil).Init()

	rec := doRequest(t, router, http.MethodGet, "/api/users/profile", "", bearer(testToken))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeMessage(t, rec))
}

func TestGetProfile_RequiresToken(t *testing.T) {
	router := newTestHandler(&mockAccountService{}, nil).Init()

	rec := doRequest(t, router, http.MethodGet, "/api/users/profile", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authorized, no token provided", decodeMessage(t, rec))
}

func TestGetProfile_WithoutUserInContext(t *testing.T) {
	h := newTestHandler(&mockAccountService{}, nil)

	rec := httptest.NewRecorder()
	h.getProfile(rec, httptest.NewRequest(http.MethodGet, "/api/users/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "name updated",
			body:       `{"fullName":"  Jane Smith "}`,
			wantStatus: http.StatusOK,
		},
		{
			name:        "empty name",
			body:        `{"fullName":"   "}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "fullName is required",
		},
		{
			name:        "malformed json",
			body:        `fullName=Jane`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name:        "user deleted",
			body:        `{"fullName":"Jane Smith"}`,
			serviceErr:  store.ErrUserNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "User not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.UpdateProfileCommand
			accounts := &mockAccountService{
				updateProfileFn: func(_ context.Context, cmd models.UpdateProfileCommand) (models.PublicUser, error) {
					got = cmd
					if tt.serviceErr != nil {
						return models.PublicUser{}, tt.serviceErr
					}
					user := testPublicUser()
					user.FullName = cmd.FullName
					return user, nil
				},
			}
			router := newTestHandler(accounts, nil).Init()

			rec := doRequest(t, router, http.MethodPut, "/api/users/profile", tt.body, bearer(testToken))

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
				return
			}

			assert.Equal(t, models.UpdateProfileCommand{UserID: testUserID, FullName: "Jane Smith"}, got)
			var body models.PublicUser
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Jane Smith", body.FullName)
		})
	}
}
