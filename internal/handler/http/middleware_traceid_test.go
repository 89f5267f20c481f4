// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBufferedHandler returns a Handler whose logger writes JSON lines to buf.
func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
	}{
		{name: "trace id from request header is reused", requestTraceID: "my-custom-trace-id"},
		{name: "uuid from request header is reused", requestTraceID: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "trace id is generated when header is missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := newBufferedHandler(&logBuf)

			var ctxTraceID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxTraceID = utils.GetTraceIDFromContext(r.Context())
				logger.FromRequest(r).Info().Msg("inside")
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			traceID := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, traceID)
			if tt.requestTraceID != "" {
				assert.Equal(t, tt.requestTraceID, traceID)
			} else {
				_, err := uuid.Parse(traceID)
				assert.NoError(t, err)
			}

			assert.Equal(t, http.StatusTeapot, rec.Code)
			assert.Equal(t, traceID, ctxTraceID)
			assert.Contains(t, logBuf.String(), `"trace_id":"`+traceID+`"`)
		})
	}
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(traceIDHeader)
		_, duplicate := seen[id]
		require.False(t, duplicate, "duplicate trace id %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_DoesNotChangeParentLogger(t *testing.T) {
	var logBuf bytes.Buffer
	h := newBufferedHandler(&logBuf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "request-1")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	h.logger.Info().Msg("outside")

	assert.NotContains(t, logBuf.String(), "request-1")
}
