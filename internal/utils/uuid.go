// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for users and trace ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random v4 if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
