// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// Init builds the router with every route and middleware of the API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if len(h.cfg.AllowedOrigins) > 0 {
		router.Use(h.withCORS())
	}
	router.Use(h.withSecureHeaders())
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/", h.root)
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Route("/api/auth", func(r chi.Router) {
		if h.cfg.AuthRateLimit > 0 {
			r.Use(h.authRateLimiter())
		}

		r.Post("/signup", h.signup)
		r.Post("/signin", h.signin)
		r.Post("/forgot-password-otp", h.forgotPasswordOTP)
		r.Post("/reset-password-otp", h.resetPasswordOTP)
		r.Post("/reset-password", h.resetPasswordOTP)
	})

	// routes with authorization
	router.Route("/api/users", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/profile", h.getProfile)
		r.Put("/profile", h.updateProfile)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// authRateLimiter limits /api/auth requests per client IP.
func (h *Handler) authRateLimiter() func(http.Handler) http.Handler {
	return httprate.Limit(h.cfg.AuthRateLimit, h.cfg.AuthRateWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeErrorMessage(w, "Too many requests, try again later", http.StatusTooManyRequests)
		}),
	)
}
