// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import (
	"net/http"

	"github.com/Anjana-1234/orato-robot/internal/logger"
)

const rootBanner = "Orato Backend Running"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeText(w, r, rootBanner)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeText(w, r, h.services.AppInfoService.GetAppVersion(r.Context()))
}

func writeText(w http.ResponseWriter, r *http.Request, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(text)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeText").Msg("error writing response")
	}
}
