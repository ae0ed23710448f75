// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// SignInWithPassword implements [AuthAdapter].
// POST /auth/v1/token?grant_type=password
func (h *httpBackendAdapter) SignInWithPassword(ctx context.Context, creds models.Credentials) (models.AuthSession, error) {
	resp, err := h.request(ctx, Session{}).
		SetHeader(headerContentType, mimeJSON).
		SetQueryParam("grant_type", "password").
		SetBody(creds).
		Post(authPrefix + "token")
	if err != nil {
		return models.AuthSession{}, h.fail("SignInWithPassword", fmt.Errorf("sign in request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthSession{}, h.fail("SignInWithPassword", err)
	}

	var session models.AuthSession
	if err = decodeBody(resp, &session); err != nil {
		return models.AuthSession{}, h.fail("SignInWithPassword", err)
	}
	if session.AccessToken == "" {
		return models.AuthSession{}, h.fail("SignInWithPassword", fmt.Errorf("sign in response: empty access token"))
	}

	return session, nil
}

// SignOut implements [AuthAdapter]. POST /auth/v1/logout
func (h *httpBackendAdapter) SignOut(ctx context.Context, sess Session) error {
	resp, err := h.request(ctx, sess).Post(authPrefix + "logout")
	if err != nil {
		return h.fail("SignOut", fmt.Errorf("sign out request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return h.fail("SignOut", err)
	}

	return nil
}

// GetUser implements [AuthAdapter]. GET /auth/v1/user
func (h *httpBackendAdapter) GetUser(ctx context.Context, sess Session) (models.User, error) {
	if sess.AccessToken == "" {
		return models.User{}, fmt.Errorf("get user: %w", ErrUnauthorized)
	}

	resp, err := h.request(ctx, sess).Get(authPrefix + "user")
	if err != nil {
		return models.User{}, h.fail("GetUser", fmt.Errorf("get user request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, h.fail("GetUser", err)
	}

	var user models.User
	if err = decodeBody(resp, &user); err != nil {
		return models.User{}, h.fail("GetUser", err)
	}

	return user, nil
}

// RefreshSession implements [AuthAdapter].
// POST /auth/v1/token?grant_type=refresh_token
func (h *httpBackendAdapter) RefreshSession(ctx context.Context, refreshToken string) (models.AuthSession, error) {
	if refreshToken == "" {
		return models.AuthSession{}, fmt.Errorf("refresh session: %w", ErrUnauthorized)
	}

	resp, err := h.request(ctx, Session{}).
		SetHeader(headerContentType, mimeJSON).
		SetQueryParam("grant_type", "refresh_token").
		SetBody(map[string]string{"refresh_token": refreshToken}).
		Post(authPrefix + "token")
	if err != nil {
		return models.AuthSession{}, h.fail("RefreshSession", fmt.Errorf("refresh request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthSession{}, h.fail("RefreshSession", err)
	}

	var session models.AuthSession
	if err = decodeBody(resp, &session); err != nil {
		return models.AuthSession{}, h.fail("RefreshSession", err)
	}
	if session.AccessToken == "" {
		return models.AuthSession{}, h.fail("RefreshSession", fmt.Errorf("refresh response: empty access token"))
	}

	return session, nil
}
