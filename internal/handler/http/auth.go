// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/utils"
	"github.com/Anjana-1234/orato-robot/models"
)

const maxRequestBodyBytes = 1 << 20

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.signup", err)
		return
	}

	cmd, err := h.validator.SignupCommand(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.signup", err)
		return
	}

	result, err := h.services.AccountService.Signup(ctx, cmd)
	if err != nil {
		writeError(w, r, "*Handler.signup", err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", result.User.ID).Msg("user signed up")
	writeAuthResult(w, r, result, http.StatusCreated)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SigninRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.signin", err)
		return
	}

	cmd, err := h.validator.SigninCommand(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.signin", err)
		return
	}

	result, err := h.services.AccountService.Signin(ctx, cmd)
	if err != nil {
		writeError(w, r, "*Handler.signin", err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", result.User.ID).Msg("user signed in")
	writeAuthResult(w, r, result, http.StatusOK)
}

func (h *Handler) forgotPasswordOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ForgotPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.forgotPasswordOTP", err)
		return
	}

	cmd, err := h.validator.ForgotPasswordCommand(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.forgotPasswordOTP", err)
		return
	}

	if err = h.services.AccountService.ForgotPasswordOTP(ctx, cmd); err != nil {
		writeError(w, r, "*Handler.forgotPasswordOTP", err)
		return
	}

	utils.WriteMessage(w, msgOTPSent, http.StatusOK)
}

func (h *Handler) resetPasswordOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ResetPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.resetPasswordOTP", err)
		return
	}

	cmd, err := h.validator.ResetPasswordCommand(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.resetPasswordOTP", err)
		return
	}

	if err = h.services.AccountService.ResetPasswordOTP(ctx, cmd); err != nil {
		writeError(w, r, "*Handler.resetPasswordOTP", err)
		return
	}

	utils.WriteMessage(w, msgPasswordReset, http.StatusOK)
}

// writeAuthResult sends the session token both in the body and as a bearer
// Authorization header.
func writeAuthResult(w http.ResponseWriter, r *http.Request, result models.AuthResult, status int) {
	w.Header().Set("Authorization", "Bearer "+result.Token)
	if _, err := utils.WriteJSON(w, result, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeAuthResult").Msg("error writing response")
	}
}

// decodeJSON reads a single JSON object from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
