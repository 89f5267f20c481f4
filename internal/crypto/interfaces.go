// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

// Package crypto holds the one-way transforms used by account flows:
// the slow salted password hash and the fast keyed digest for reset codes.
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns passwords into adaptive salted hashes and checks them.
// Implementations never log or return the plaintext.
type PasswordHasher interface {
	// Hash returns a self-describing hash (algorithm, cost and salt embedded).
	// It blocks until a hashing slot is free or ctx is done.
	Hash(ctx context.Context, plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A mismatch is (false, nil);
	// a malformed hash or a cancelled ctx is an error.
	Verify(ctx context.Context, plaintext, hash string) (bool, error)
}

// OTPGenerator issues one-time reset codes and digests them for storage.
type OTPGenerator interface {
	// Generate returns a uniformly drawn 6-digit decimal code in [100000, 999999].
	Generate() (string, error)

	// Digest returns the fixed-length keyed digest of code that is persisted
	// instead of the code itself.
	Digest(code string) string

	// Equal compares two digests in constant time.
	Equal(a, b string) bool
}
