// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/mock"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
)

func newTestSessionIdentity(t *testing.T, ctrl *gomock.Controller) (*sessionIdentity, *mock.MockKeyValueRepository) {
	t.Helper()
	kv := mock.NewMockKeyValueRepository(ctrl)
	return NewSessionIdentity(kv, logger.Nop()).(*sessionIdentity), kv
}

func TestSessionIdentity_CurrentEmptyInitially(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestSessionIdentity(t, ctrl)
	assert.Empty(t, s.Current())
}

func TestSessionIdentity_EnsureLoadsPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s, kv := newTestSessionIdentity(t, ctrl)
	kv.EXPECT().Get(ctx, SessionTokenKey).Return("persisted-token", nil)

	token, err := s.Ensure(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted-token", token)
	assert.Equal(t, "persisted-token", s.Current())

	// second call is served from memory
	token, err = s.Ensure(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted-token", token)
}

func TestSessionIdentity_EnsureMintsWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s, kv := newTestSessionIdentity(t, ctrl)

	var saved string
	gomock.InOrder(
		kv.EXPECT().Get(ctx, SessionTokenKey).Return("", store.ErrKeyNotFound),
		kv.EXPECT().Set(ctx, SessionTokenKey, gomock.Any()).DoAndReturn(func(_ context.Context, _, value string) error {
			saved = value
			return nil
		}),
	)

	token, err := s.Ensure(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, token)
	_, err = uuid.Parse(token)
	assert.NoError(t, err, "token must be a uuid")
}

func TestSessionIdentity_EnsureStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s, kv := newTestSessionIdentity(t, ctrl)
	dbErr := errors.New("disk I/O error")
	kv.EXPECT().Get(ctx, SessionTokenKey).Return("", dbErr)

	_, err := s.Ensure(ctx)
	assert.ErrorIs(t, err, dbErr)
	assert.Empty(t, s.Current())
}

func TestSessionIdentity_RenewReplacesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s, kv := newTestSessionIdentity(t, ctrl)
	s.current = "old-token"
	kv.EXPECT().Set(ctx, SessionTokenKey, gomock.Any()).Return(nil)

	token, err := s.Renew(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "old-token", token)
	assert.Equal(t, token, s.Current())
}

func TestSessionIdentity_RenewPersistFailureKeepsOld(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s, kv := newTestSessionIdentity(t, ctrl)
	s.current = "old-token"
	kv.EXPECT().Set(ctx, SessionTokenKey, gomock.Any()).Return(errors.New("readonly"))

	_, err := s.Renew(ctx)
	require.Error(t, err)
	assert.Equal(t, "old-token", s.Current())
}

func TestSessionIdentity_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s, kv := newTestSessionIdentity(t, ctrl)
	s.current = "token"
	kv.EXPECT().Delete(ctx, SessionTokenKey).Return(nil)

	require.NoError(t, s.Clear(ctx))
	assert.Empty(t, s.Current())
}

func TestSessionIdentity_ClearError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s, kv := newTestSessionIdentity(t, ctrl)
	kv.EXPECT().Delete(ctx, SessionTokenKey).Return(errors.New("locked"))

	assert.Error(t, s.Clear(ctx))
}
