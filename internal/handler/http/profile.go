// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import (
	"net/http"

	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/service"
	"github.com/Anjana-1234/orato-robot/internal/utils"
	"github.com/Anjana-1234/orato-robot/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, "*Handler.getProfile", service.ErrInvalidToken)
		return
	}

	profile, err := h.services.AccountService.Profile(ctx, userID)
	if err != nil {
		writeError(w, r, "*Handler.getProfile", err)
		return
	}

	writeProfile(w, r, profile)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, "*Handler.updateProfile", service.ErrInvalidToken)
		return
	}

	var req models.UpdateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	cmd, err := h.validator.UpdateProfileCommand(ctx, userID, req)
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	profile, err := h.services.AccountService.UpdateProfile(ctx, cmd)
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	writeProfile(w, r, profile)
}

func writeProfile(w http.ResponseWriter, r *http.Request, profile models.PublicUser) {
	if _, err := utils.WriteJSON(w, profile, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeProfile").Msg("error writing response")
	}
}
