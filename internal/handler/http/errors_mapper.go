// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/service"
	"github.com/Anjana-1234/orato-robot/internal/store"
	"github.com/Anjana-1234/orato-robot/internal/utils"
	"github.com/Anjana-1234/orato-robot/internal/validators"
	"github.com/Anjana-1234/orato-robot/models"
)

// errorMapping ties a sentinel to the status and message it is reported
// with. Entries are matched in order, so a chain wrapping several sentinels
// resolves to the first listed one.
type errorMapping struct {
	err     error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, msgInvalidJSON},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, msgInvalidData},
	{validators.ErrInvalidData, http.StatusBadRequest, msgInvalidData},
	{service.ErrInvalidOTP, http.StatusBadRequest, "Invalid or expired OTP"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{service.ErrInvalidToken, http.StatusUnauthorized, msgInvalidToken},
	{service.ErrTooManyOTPRequests, http.StatusTooManyRequests, "Too many OTP requests, try again later"},
	{store.ErrEmailAlreadyExists, http.StatusConflict, "User already exists"},
	{store.ErrUserNotFound, http.StatusNotFound, "User not found"},

	// Delivery keeps its own status even when the sender timed out.
	{service.ErrOTPDeliveryFailed, http.StatusInternalServerError, msgOTPDeliveryFailed},

	{context.DeadlineExceeded, http.StatusGatewayTimeout, msgRequestTimedOut},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, msgInternalError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, msgInternalError},
	{store.ErrExecutingStatement, http.StatusInternalServerError, msgInternalError},
	{store.ErrScanningRow, http.StatusInternalServerError, msgInternalError},
}

// mapError returns the status and client-facing text for err. Unknown
// errors never leak their details.
func mapError(err error) (int, string) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, msgInternalError
}

// writeError logs err and writes the mapped status with a {"message"} body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := mapError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	writeErrorMessage(w, message, status)
}

func writeErrorMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
