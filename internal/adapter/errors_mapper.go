// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx webhook response into an error. 4xx answers
// mean the receiver refused the payload, everything else is treated as the
// receiver being unavailable.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() >= http.StatusBadRequest && resp.StatusCode() < http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrWebhookRejected, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrWebhookUnavailable, resp.StatusCode(), body)
	}
}
