// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an identity known to the remote auth service.
type User struct {
	// ID is the auth service's user identifier (a UUID string).
	ID string `json:"id"`

	// Email is the account e-mail. Used for the administrator check.
	Email string `json:"email"`
}

// Credentials is the password sign-in request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthSession is the result of a successful password sign-in.
// It is persisted locally so that a restart keeps the user signed in.
type AuthSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`

	// ExpiresIn is the access token lifetime in seconds as reported by the
	// auth service.
	ExpiresIn int64 `json:"expires_in,omitempty"`

	// ExpiresAt is the absolute expiry in unix seconds. Zero means unknown.
	ExpiresAt int64 `json:"expires_at,omitempty"`

	User User `json:"user"`
}

// Expired reports whether the access token is past its expiry at now.
// A session with unknown expiry never expires locally.
func (s AuthSession) Expired(now time.Time) bool {
	if s.ExpiresAt == 0 {
		return false
	}
	return now.Unix() >= s.ExpiresAt
}
