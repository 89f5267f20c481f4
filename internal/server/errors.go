// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errServe               = errors.New("http server stopped serving")
	errShutdown            = errors.New("http server shutdown failed")
)
