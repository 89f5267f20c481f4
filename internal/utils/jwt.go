// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orato Authors

package utils

import (
	"fmt"
	"time"

	"github.com/Anjana-1234/orato-robot/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates an HMAC-SHA256 signed session token.
//
// The token carries the registered claims iss, sub (the user id), iat and
// exp = now + tokenDuration. All parameters are required.
//
//	token, err := utils.GenerateJWTToken("orato", user.ID, 168*time.Hour, now, key)
func GenerateJWTToken(issuer, userID string, tokenDuration time.Duration, now time.Time, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		UserID:           userID,
	}, nil
}

// ValidateAndParseJWTToken verifies the signature, algorithm, issuer and
// expiry of tokenString and returns the token with UserID taken from sub.
//
// Only HS256 is accepted, so a token re-signed with "none" or an asymmetric
// algorithm is rejected before the key is consulted.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (models.Token, error) {
	parsed := models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, &parsed.RegisteredClaims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed.Token = token
	parsed.SignedString = tokenString

	if parsed.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}
	parsed.UserID = parsed.Subject

	return parsed, nil
}
