// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
)

// SessionTokenKey is the key/value entry holding the session token.
const SessionTokenKey = "inventario.sessionId"

type sessionIdentity struct {
	kv        store.KeyValueRepository
	generator *utils.TokenGenerator

	mu      sync.Mutex
	current string

	logger *logger.Logger
}

func NewSessionIdentity(kv store.KeyValueRepository, logger *logger.Logger) SessionIdentity {
	return &sessionIdentity{
		kv:        kv,
		generator: utils.NewTokenGenerator(),
		logger:    logger,
	}
}

func (s *sessionIdentity) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

func (s *sessionIdentity) Ensure(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != "" {
		return s.current, nil
	}

	token, err := s.kv.Get(ctx, SessionTokenKey)
	switch {
	case err == nil && token != "":
		s.current = token
		return token, nil
	case err != nil && !errors.Is(err, store.ErrKeyNotFound):
		return "", fmt.Errorf("error loading session token: %w", err)
	}

	return s.mint(ctx)
}

func (s *sessionIdentity) Renew(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mint(ctx)
}

func (s *sessionIdentity) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = ""
	if err := s.kv.Delete(ctx, SessionTokenKey); err != nil {
		return fmt.Errorf("error clearing session token: %w", err)
	}

	return nil
}

// mint must be called with mu held.
func (s *sessionIdentity) mint(ctx context.Context) (string, error) {
	token := s.generator.Generate()
	if err := s.kv.Set(ctx, SessionTokenKey, token); err != nil {
		return "", fmt.Errorf("error persisting session token: %w", err)
	}

	s.current = token
	s.logger.Debug().Str("func", "sessionIdentity.mint").Msg("new session token issued")

	return token, nil
}
