// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import (
	"net/http"

	"github.com/Anjana-1234/orato-robot/internal/logger"
	"github.com/Anjana-1234/orato-robot/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization: Bearer <token>" header,
// verifies it via [service.TokenService.Verify] and stores the user id in
// the request context under [utils.UserIDCtxKey] before delegating to next.
//
// A missing header, a non-Bearer scheme or an empty token is answered with
// 401 and "Not authorized, no token provided"; a forged, foreign or expired
// token with 401 and "Not authorized, token invalid".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			writeErrorMessage(w, msgNoToken, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Send()
			writeErrorMessage(w, msgNoToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.auth").Msg("token rejected")
			writeErrorMessage(w, msgInvalidToken, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
