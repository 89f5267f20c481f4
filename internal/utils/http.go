// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Anjana-1234/orato-robot/models"
)

// WriteJSON serializes data to JSON and writes it with the given status code.
//
// It sets "Content-Type: application/json" before writing the header.
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
//
//	utils.WriteJSON(w, models.AuthResult{...}, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteMessage writes a {"message": ...} body with the given status code.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

// ParseBearerToken extracts the credential from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
