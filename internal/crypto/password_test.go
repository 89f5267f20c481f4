// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package crypto

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(maxConcurrent int) *bcryptHasher {
	return NewPasswordHasher(bcrypt.MinCost, maxConcurrent).(*bcryptHasher)
}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := newTestHasher(2)
	ctx := context.Background()

	hash, err := h.Hash(ctx, "abcdef")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "abcdef" || hash == "" {
		t.Fatalf("hash must not be empty or equal to the plaintext")
	}

	ok, err := h.Verify(ctx, "abcdef", hash)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatalf("expected matching password to verify")
	}

	ok, err = h.Verify(ctx, "abcdeg", hash)
	if err != nil {
		t.Fatalf("Verify error on mismatch: %v", err)
	}
	if ok {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestPasswordHasher_SaltedPerCall(t *testing.T) {
	h := newTestHasher(1)

	h1, err := h.Hash(context.Background(), "same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := h.Hash(context.Background(), "same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("expected different hashes for the same password")
	}
}

func TestPasswordHasher_CostFallback(t *testing.T) {
	tests := []struct {
		cost int
		want int
	}{
		{cost: 0, want: bcrypt.DefaultCost},
		{cost: bcrypt.MaxCost + 1, want: bcrypt.DefaultCost},
		{cost: bcrypt.MinCost, want: bcrypt.MinCost},
		{cost: 12, want: 12},
	}

	for _, tt := range tests {
		h := NewPasswordHasher(tt.cost, 1).(*bcryptHasher)
		if h.cost != tt.want {
			t.Errorf("cost %d: got %d, want %d", tt.cost, h.cost, tt.want)
		}
	}
}

func TestPasswordHasher_RejectsInvalidInput(t *testing.T) {
	h := newTestHasher(1)

	if _, err := h.Hash(context.Background(), ""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
	if _, err := h.Hash(context.Background(), strings.Repeat("a", 73)); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := newTestHasher(1)

	ok, err := h.Verify(context.Background(), "abcdef", "not-a-bcrypt-hash")
	if !errors.Is(err, ErrMalformedHash) {
		t.Fatalf("expected ErrMalformedHash, got %v", err)
	}
	if ok {
		t.Fatalf("malformed hash must not verify")
	}
}

func TestDecoyHash(t *testing.T) {
	h := newTestHasher(1)

	decoy := DecoyHash(bcrypt.MinCost)
	cost, err := bcrypt.Cost([]byte(decoy))
	if err != nil {
		t.Fatalf("decoy must be a well-formed bcrypt hash: %v", err)
	}
	if cost != bcrypt.MinCost {
		t.Fatalf("expected cost %d, got %d", bcrypt.MinCost, cost)
	}

	for _, password := range []string{"abcdef", "", "password"} {
		ok, err := h.Verify(context.Background(), password, decoy)
		if err != nil {
			t.Fatalf("Verify(%q) error: %v", password, err)
		}
		if ok {
			t.Fatalf("decoy hash must never verify, matched %q", password)
		}
	}

	if got := DecoyHash(0); !strings.HasPrefix(got, "$2a$10$") {
		t.Fatalf("out-of-range cost must fall back to the default, got %q", got)
	}
}

func TestPasswordHasher_WaitsForSlotAndHonoursContext(t *testing.T) {
	h := newTestHasher(1)

	// occupy the only slot
	if err := h.sem.Acquire(context.Background(), 1); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer h.sem.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := h.Hash(ctx, "abcdef"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded while waiting for slot, got %v", err)
	}
	if _, err := h.Verify(ctx, "abcdef", "$2a$04$abc"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded while waiting for slot, got %v", err)
	}
}
