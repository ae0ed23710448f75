// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the subset of auth service token claims the client reads.
type AccessClaims struct {
	// Subject is the user identifier ("sub").
	Subject string

	// Email is the "email" claim, empty when absent.
	Email string

	// ExpiresAt is the "exp" claim, zero when absent.
	ExpiresAt time.Time
}

// ParseAccessClaimsUnverified decodes the claims of an access token without
// verifying its signature. The client never holds the signing secret; the
// remote service remains the authority on validity. The result is only used
// to skip calls with tokens that are already expired.
//
// Returns an error when the token is malformed or carries no subject.
func ParseAccessClaimsUnverified(tokenString string) (AccessClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return AccessClaims{}, fmt.Errorf("error parsing access token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return AccessClaims{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return AccessClaims{}, err
	}
	if sub == "" {
		return AccessClaims{}, errors.New("empty subject error")
	}

	result := AccessClaims{Subject: sub}
	if email, ok := claims["email"].(string); ok {
		result.Email = email
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return AccessClaims{}, err
	}
	if exp != nil {
		result.ExpiresAt = exp.Time
	}

	return result, nil
}
