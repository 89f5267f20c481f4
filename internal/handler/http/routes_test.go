// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Anjana-1234/orato-robot/internal/config"
	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/service"
	"github.com/Anjana-1234/orato-robot/internal/validators"
	"github.com/Anjana-1234/orato-robot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	cfg := config.Server{AuthRateLimit: 3}
	h := NewHandler(svc, validators.NewAccountValidator(), cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, cfg, h.cfg)
	assert.NotNil(t, h.validator)
}

// every route Init must register; anything but 404/405 proves it exists
var expectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/"},
	{http.MethodGet, "/api/version"},
	{http.MethodPost, "/api/auth/signup"},
	{http.MethodPost, "/api/auth/signin"},
	{http.MethodPost, "/api/auth/forgot-password-otp"},
	{http.MethodPost, "/api/auth/reset-password-otp"},
	{http.MethodPost, "/api/auth/reset-password"},
	{http.MethodGet, "/api/users/profile"},
	{http.MethodPut, "/api/users/profile"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(&mockAccountService{}, nil).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			// an empty body fails JSON decoding before any service call
			rec := doRequest(t, router, tc.method, tc.path, "", nil)

			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UnknownRoutesAndMethods(t *testing.T) {
	router := newTestHandler(&mockAccountService{}, nil).Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodGet, "/api/auth/signin"},
		{http.MethodDelete, "/api/users/profile"},
		{http.MethodPost, "/api/version"},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, "", bearer(testToken))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "Not Found", decodeMessage(t, rec))
		})
	}
}

func TestInit_RootAndVersion(t *testing.T) {
	router := newTestHandler(&mockAccountService{}, nil).Init()

	rec := doRequest(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Orato Backend Running", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	rec = doRequest(t, router, http.MethodGet, "/api/version", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.0.0", rec.Body.String())
}

func TestInit_CommonHeaders(t *testing.T) {
	router := newTestHandler(&mockAccountService{}, nil).Init()

	rec := doRequest(t, router, http.MethodGet, "/", "", map[string]string{traceIDHeader: "trace-42"})

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	accounts := &mockAccountService{
		signinFn: func(_ context.Context, _ models.SigninCommand) (models.AuthResult, error) {
			panic("unexpected")
		},
	}
	router := newTestHandler(accounts, nil).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/auth/signin", `{"email":"jane@x.com","password":"abcdef"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInit_AuthRateLimit(t *testing.T) {
	accounts := &mockAccountService{
		signinFn: func(_ context.Context, _ models.SigninCommand) (models.AuthResult, error) {
			return models.AuthResult{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(accounts, nil)
	h.cfg.AuthRateLimit = 2
	h.cfg.AuthRateWindow = time.Minute
	router := h.Init()

	signin := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusBadRequest, signin("10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusBadRequest, signin("10.0.0.1:1234").Code)

	limited := signin("10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "Too many requests, try again later", decodeMessage(t, limited))

	// other clients and other route groups are not affected
	assert.Equal(t, http.StatusBadRequest, signin("10.0.0.2:1234").Code)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInit_RequestTimeout(t *testing.T) {
	accounts := &mockAccountService{
		signinFn: func(ctx context.Context, _ models.SigninCommand) (models.AuthResult, error) {
			<-ctx.Done()
			return models.AuthResult{}, ctx.Err()
		},
	}
	h := newTestHandler(accounts, nil)
	h.cfg.RequestTimeout = 20 * time.Millisecond
	router := h.Init()

	rec := doRequest(t, router, http.MethodPost, "/api/auth/signin", `{"email":"jane@x.com","password":"abcdef"}`, nil)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "Request timed out", decodeMessage(t, rec))
}
