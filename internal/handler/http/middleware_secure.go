// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import (
	"net/http"

	"github.com/unrolled/secure"
)

// withSecureHeaders adds the standard security response headers. HSTS is
// only sent in production.
func (h *Handler) withSecureHeaders() func(http.Handler) http.Handler {
	options := secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:         !h.cfg.Production,
	}
	if h.cfg.Production {
		options.STSSeconds = 31536000
		options.STSIncludeSubdomains = true
	}

	return secure.New(options).Handler
}
