// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/service"
	"github.com/Anjana-1234/orato-robot/internal/validators"
	"github.com/Anjana-1234/orato-robot/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AccountService
// ─────────────────────────────────────────────

// mockAccountService implements service.AccountService for unit tests.
// A nil method field fails the test through a panic.
type mockAccountService struct {
	signupFn           func(ctx context.Context, cmd models.SignupCommand) (models.AuthResult, error)
	signinFn           func(ctx context.Context, cmd models.SigninCommand) (models.AuthResult, error)
	forgotPasswordFn   func(ctx context.Context, cmd models.ForgotPasswordCommand) error
	resetPasswordFn    func(ctx context.Context, cmd models.ResetPasswordCommand) error
	profileFn          func(ctx context.Context, userID string) (models.PublicUser, error)
	updateProfileFn    func(ctx context.Context, cmd models.UpdateProfileCommand) (models.PublicUser, error)
	clearExpiredOTPsFn func(ctx context.Context) (int64, error)
}

func (m *mockAccountService) Signup(ctx context.Context, cmd models.SignupCommand) (models.AuthResult, error) {
	return m.signupFn(ctx, cmd)
}

func (m *mockAccountService) Signin(ctx context.Context, cmd models.SigninCommand) (models.AuthResult, error) {
	return m.signinFn(ctx, cmd)
}

func (m *mockAccountService) ForgotPasswordOTP(ctx context.Context, cmd models.ForgotPasswordCommand) error {
	return m.forgotPasswordFn(ctx, cmd)
}

func (m *mockAccountService) ResetPasswordOTP(ctx context.Context, cmd models.ResetPasswordCommand) error {
	return m.resetPasswordFn(ctx, cmd)
}

func (m *mockAccountService) Profile(ctx context.Context, userID string) (models.PublicUser, error) {
	return m.profileFn(ctx, userID)
}

func (m *mockAccountService) UpdateProfile(ctx context.Context, cmd models.UpdateProfileCommand) (models.PublicUser, error) {
	return m.updateProfileFn(ctx, cmd)
}

func (m *mockAccountService) ClearExpiredOTPs(ctx context.Context) (int64, error) {
	return m.clearExpiredOTPsFn(ctx)
}

// ─────────────────────────────────────────────
// Mock TokenService
// ─────────────────────────────────────────────

type mockTokenService struct {
	issueFn  func(ctx context.Context, userID string) (models.Token, error)
	verifyFn func(ctx context.Context, token string) (models.Token, error)
}

func (m *mockTokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	return m.issueFn(ctx, userID)
}

func (m *mockTokenService) Verify(ctx context.Context, token string) (models.Token, error) {
	return m.verifyFn(ctx, token)
}

// acceptToken returns a TokenService that accepts only token and maps it to userID.
func acceptToken(token, userID string) *mockTokenService {
	return &mockTokenService{
		verifyFn: func(_ context.Context, got string) (models.Token, error) {
			if got != token {
				return models.Token{}, service.ErrInvalidToken
			}
			return models.Token{UserID: userID}, nil
		},
	}
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testToken  = "valid-token"
	testUserID = "0190f3c4-7b1e-7c3a-9d2f-1a2b3c4d5e6f"
)

var testCreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testPublicUser() models.PublicUser {
	return models.PublicUser{
		ID:        testUserID,
		FullName:  "Jane Doe",
		Email:     "jane@x.com",
		CreatedAt: testCreatedAt,
	}
}

// newTestHandler builds a Handler on top of the given mocks with the real
// request validator.
func newTestHandler(accounts service.AccountService, tokens service.TokenService) *Handler {
	if tokens == nil {
		tokens = acceptToken(testToken, testUserID)
	}
	return NewHandler(&service.Services{
		AccountService: accounts,
		TokenService:   tokens,
		AppInfoService: &mockAppInfoService{version: "1.0.0"},
	}, validators.NewAccountValidator(), config.Server{}, logger.Nop())
}

// doRequest runs a request through the full router.
func doRequest(t *testing.T, router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp.Message
}
