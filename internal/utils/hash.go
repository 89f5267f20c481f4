// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over data using hashKey
// and returns it hex-encoded.
//
//	digest := utils.HashString("493817", "otp-hash-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// EqualStrings compares a and b in constant time with respect to their content.
func EqualStrings(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
