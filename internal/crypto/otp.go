// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/Anjana-1234/orato-robot/internal/utils"
)

const (
	otpMin = 100000
	otpMax = 999999
)

type otpGenerator struct {
	hashKey string
	random  io.Reader
}

// NewOTPGenerator returns an [OTPGenerator] drawing from crypto/rand and
// digesting with HMAC-SHA256 keyed by hashKey.
func NewOTPGenerator(hashKey string) (OTPGenerator, error) {
	return newOTPGenerator(hashKey, rand.Reader)
}

func newOTPGenerator(hashKey string, random io.Reader) (*otpGenerator, error) {
	if hashKey == "" {
		return nil, ErrEmptyOTPHashKey
	}
	return &otpGenerator{hashKey: hashKey, random: random}, nil
}

func (g *otpGenerator) Generate() (string, error) {
	n, err := rand.Int(g.random, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOTPGenerateFailed, err)
	}

	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}

func (g *otpGenerator) Digest(code string) string {
	return utils.HashString(code, g.hashKey)
}

func (g *otpGenerator) Equal(a, b string) bool {
	return utils.EqualStrings(a, b)
}
