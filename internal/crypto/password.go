// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package crypto

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// bcryptMaxPasswordLen is the number of input bytes bcrypt actually consumes.
const bcryptMaxPasswordLen = 72

// decoySaltAndHash is a well-formed bcrypt salt and digest no password maps to
// in practice.
const decoySaltAndHash = "N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// DecoyHash returns a bcrypt hash of the given cost that never matches a real
// password. Verifying against it costs the same as verifying a stored hash.
func DecoyHash(cost int) string {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return fmt.Sprintf("$2a$%02d$%s", cost, decoySaltAndHash)
}

type bcryptHasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewPasswordHasher returns a bcrypt-backed [PasswordHasher].
//
// cost outside [bcrypt.MinCost, bcrypt.MaxCost] falls back to bcrypt.DefaultCost.
// maxConcurrent bounds how many hashes run at once; values < 1 mean GOMAXPROCS.
func NewPasswordHasher(cost int, maxConcurrent int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if maxConcurrent < 1 {
		maxConcurrent = runtime.GOMAXPROCS(0)
	}

	return &bcryptHasher{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

func (h *bcryptHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	if len(plaintext) > bcryptMaxPasswordLen {
		return "", ErrPasswordTooLong
	}

	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("waiting for hashing slot: %w", err)
	}
	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (h *bcryptHasher) Verify(ctx context.Context, plaintext, hash string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, fmt.Errorf("waiting for hashing slot: %w", err)
	}
	defer h.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}
