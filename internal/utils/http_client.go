// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for outbound calls such as notification webhooks.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client. A positive timeout bounds
// every request made through it.
//
//	client := utils.NewHTTPClient(5 * time.Second)
//	resp, err := client.R().SetBody(payload).Post(url)
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "orato-backend")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
