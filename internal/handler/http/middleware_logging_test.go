// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeLoggedRequest creates a request whose context logger writes to buf,
// the same way withTraceID attaches it.
func makeLoggedRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		target        string
		status        int
		response      string
		wantInLogLine []string
	}{
		{
			name:     "signin 200",
			method:   http.MethodPost,
			target:   "/api/auth/signin",
			status:   http.StatusOK,
			response: `{"token":"t"}`,
			wantInLogLine: []string{
				`"method":"POST"`,
				`"uri":"/api/auth/signin"`,
				`"status":200`,
				`"size":13`,
				`"duration":`,
			},
		},
		{
			name:   "profile 401",
			method: http.MethodGet,
			target: "/api/users/profile",
			status: http.StatusUnauthorized,
			wantInLogLine: []string{
				`"method":"GET"`,
				`"status":401`,
				`"size":0`,
			},
		},
		{
			name:     "query string is kept",
			method:   http.MethodGet,
			target:   "/api/version?verbose=1",
			status:   http.StatusOK,
			response: "1.0.0",
			wantInLogLine: []string{
				`"uri":"/api/version?verbose=1"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.response != "" {
					w.Write([]byte(tt.response))
				}
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, makeLoggedRequest(tt.method, tt.target, &logBuf))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, 1, strings.Count(logBuf.String(), "\n"))
			for _, want := range tt.wantInLogLine {
				assert.Contains(t, logBuf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatusIs200(t *testing.T) {
	var logBuf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(http.MethodGet, "/", &logBuf))

	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
