// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

// Package http implements the REST transport of the account backend.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as bearer authentication, request tracing, access logging,
// security headers, per-IP rate limiting and response compression are handled
// here before requests reach the service layer. Every error response has the
// body {"message": "..."}.
package http
