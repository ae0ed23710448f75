// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/mock"
	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type routerMocks struct {
	remote *mock.MockItemBackend
	local  *mock.MockItemBackend
	prober *mock.MockStatusProber
	auth   *mock.MockAuthGateway
}

func newTestRouter(t *testing.T, ctrl *gomock.Controller) (*BackendRouter, routerMocks) {
	t.Helper()
	m := routerMocks{
		remote: mock.NewMockItemBackend(ctrl),
		local:  mock.NewMockItemBackend(ctrl),
		prober: mock.NewMockStatusProber(ctrl),
		auth:   mock.NewMockAuthGateway(ctrl),
	}
	return NewBackendRouter(m.remote, m.local, m.prober, m.auth, logger.Nop()), m
}

func newTestLocalOnlyRouter(t *testing.T, ctrl *gomock.Controller) (*BackendRouter, *mock.MockItemBackend) {
	t.Helper()
	local := mock.NewMockItemBackend(ctrl)
	return NewBackendRouter(nil, local, nil, nil, logger.Nop()), local
}

var (
	testDraft     = models.ItemDraft{NumeroPatrimonio: "100", NomeObjeto: "Mesa"}
	remoteFailure = remoteErr("add", adapter.ErrUnavailable)
)

// ─────────────────────────────────────────────
// remote not configured
// ─────────────────────────────────────────────

func TestRouter_LocalOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	router, local := newTestLocalOnlyRouter(t, ctrl)
	assert.False(t, router.RemoteEnabled())

	local.EXPECT().Add(ctx, testDraft, models.PhotoFiles{}).Return(models.Item{ID: 1}, nil)
	item, err := router.AddItem(ctx, testDraft, models.PhotoFiles{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)

	local.EXPECT().List(ctx).Return([]models.Item{{ID: 1}}, nil)
	items, err := router.GetItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	local.EXPECT().Delete(ctx, int64(1)).Return(nil)
	assert.NoError(t, router.DeleteItem(ctx, 1))

	local.EXPECT().Update(ctx, int64(1), gomock.Any(), gomock.Any()).Return(ErrLocalUpdateUnsupported)
	assert.ErrorIs(t, router.UpdateItem(ctx, 1, models.ItemUpdate{NomeObjeto: strPtr("x")}, models.PhotoFiles{}), ErrLocalUpdateUnsupported)
}

func TestRouter_LocalOnlyAuthSurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	router, _ := newTestLocalOnlyRouter(t, ctrl)

	_, err := router.SignIn(ctx, models.Credentials{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, ErrRemoteNotConfigured)
	assert.ErrorIs(t, router.SignOut(ctx), ErrRemoteNotConfigured)
	assert.Nil(t, router.GetAuthUser(ctx))
	assert.False(t, router.IsAdmin(ctx))
	assert.Equal(t, models.BackendStatus{}, router.GetBackendStatus(ctx))
}

// ─────────────────────────────────────────────
// AddItem
// ─────────────────────────────────────────────

func TestRouter_AddRemoteSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	router, m := newTestRouter(t, ctrl)
	m.remote.EXPECT().Add(ctx, testDraft, models.PhotoFiles{}).Return(models.Item{NumeroPatrimonio: "100"}, nil)

	item, err := router.AddItem(ctx, testDraft, models.PhotoFiles{})
	require.NoError(t, err)
	assert.Equal(t, "100", item.NumeroPatrimonio)
}

func TestRouter_AddFallsBackOnRemoteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	router, m := newTestRouter(t, ctrl)
	gomock.InOrder(
		m.remote.EXPECT().Add(ctx, testDraft, models.PhotoFiles{}).Return(models.Item{}, remoteFailure),
		m.local.EXPECT().Add(ctx, testDraft, models.PhotoFiles{}).Return(models.Item{ID: 5}, nil),
	)

	item, err := router.AddItem(ctx, testDraft, models.PhotoFiles{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), item.ID)
}

func TestRouter_AddFallsBackWhenNotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	router, m := newTestRouter(t, ctrl)
	m.remote.EXPECT().Add(ctx, testDraft, gomock.Any()).Return(models.Item{}, remoteErr("add", ErrNotAuthenticated))
	m.local.EXPECT().Add(ctx, testDraft, gomock.Any()).Return(models.Item{ID: 6}, nil)

	item, err := router.AddItem(ctx, testDraft, models.PhotoFiles{})
	require.NoError(t, err)
	assert.Equal(t, int64(6), item.ID)
}

func TestRouter_AddValidationErrorSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	router, m := newTestRouter(t, ctrl)
	m.remote.EXPECT().Add(ctx, gomock.Any(), gomock.Any()).Return(models.Item{}, validators.ErrPhotoTooLarge)

	_, err := router.AddItem(ctx, testDraft, models.PhotoFiles{})
	assert.ErrorIs(t, err, validators.ErrPhotoTooLarge)
}

func TestRouter_AddBothFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	router, m := newTestRouter(t, ctrl)
	localErr := errors.New("disk full")
	m.remote.EXPECT().Add(ctx, gomock.Any(), gomock.Any()).Return(models.Item{}, remoteFailure)
	m.local.EXPECT().Add(ctx, gomock.Any(), gomock.Any()).Return(models.Item{}, localErr)

	_, err := router.AddItem(ctx, testDraft, models.PhotoFiles{})
	assert.ErrorIs(t, err, localErr)
}

// ─────────────────────────────────────────────
// GetItems / SearchItems / PatrimonyExists
// ─────────────────────────────────────────────

func TestRouter_GetItemsFallback(t *testing.T) {
	t.Run("anonymous gets empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx := context.Background()
		router, m := newTestRouter(t, ctrl)
		m.remote.EXPECT().List(ctx).Return(nil, remoteErr("list", adapter.ErrUnavailable))
		m.auth.EXPECT().SignedIn(ctx).Return(false)

		items, err := router.GetItems(ctx)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("signed in user gets local cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx := context.Background()
		router, m := newTestRouter(t, ctrl)
		m.remote.EXPECT().List(ctx).Return(nil, remoteErr("list", adapter.ErrUnavailable))
		m.auth.EXPECT().SignedIn(ctx).Return(true)
		m.local.EXPECT().List(ctx).Return([]models.Item{{ID: 1}, {ID: 2}}, nil)

		items, err := router.GetItems(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})
}

func TestRouter_OfflineWriteVisibleToAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	router, m := newTestRouter(t, ctrl)
	saved := models.Item{ID: 7, NumeroPatrimonio: "12345", NomeObjeto: "Cadeira"}

	// the auth service is unreachable too, so only the persisted session counts
	m.remote.EXPECT().Add(ctx, testDraft, gomock.Any()).Return(models.Item{}, remoteErr("add", adapter.ErrUnavailable))
	m.local.EXPECT().Add(ctx, testDraft, gomock.Any()).Return(saved, nil)
	m.remote.EXPECT().List(ctx).Return(nil, remoteErr("list", adapter.ErrUnavailable))
	m.auth.EXPECT().SignedIn(ctx).Return(true)
	m.auth.EXPECT().CurrentUser(gomock.Any()).Times(0)
	m.local.EXPECT().List(ctx).Return([]models.Item{saved}, nil)

	item, err := router.AddItem(ctx, testDraft, models.PhotoFiles{})
	require.NoError(t, err)
	assert.Equal(t, saved, item)

	items, err := router.GetItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Item{saved}, items)
}

func TestRouter_SearchItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	router, m := newTestRouter(t, ctrl)
	all := []models.Item{
		{ID: 1, NumeroPatrimonio: "1001", NomeObjeto: "Cadeira Giratoria"},
		{ID: 2, NumeroPatrimonio: "2002", NomeObjeto: "Mesa", LocalizacaoTexto: strPtr("Sala da Diretoria")},
		{ID: 3, NumeroPatrimonio: "3003", NomeObjeto: "Projetor"},
	}
	m.remote.EXPECT().List(ctx).Return(all, nil).AnyTimes()

	tests := []struct {
		term string
		want []int64
	}{
		{"cadeira", []int64{1}},
		{"DIRETORIA", []int64{2}},
		{"00", []int64{1, 2, 3}},
		{"300", []int64{3}},
		{"  ", []int64{1, 2, 3}},
		{"impressora", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			items, err := router.SearchItems(ctx, tt.term)
			require.NoError(t, err)

			ids := make([]int64, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRouter_PatrimonyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	router, m := newTestRouter(t, ctrl)
	m.remote.EXPECT().List(ctx).Return([]models.Item{{NumeroPatrimonio: "12345"}}, nil).Times(2)

	exists, err := router.PatrimonyExists(ctx, "12.345")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = router.PatrimonyExists(ctx, "999")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = router.PatrimonyExists(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, exists, "no digits means no lookup")
}

// ─────────────────────────────────────────────
// DeleteItem / UpdateItem
// ─────────────────────────────────────────────

func TestRouter_DeleteFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	router, m := newTestRouter(t, ctrl)
	m.remote.EXPECT().Delete(ctx, int64(8)).Return(remoteErr("delete", adapter.ErrBadGateway))
	m.local.EXPECT().Delete(ctx, int64(8)).Return(nil)

	assert.NoError(t, router.DeleteItem(ctx, 8))
}

func TestRouter_UpdateRemoteFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	router, m := newTestRouter(t, ctrl)
	m.remote.EXPECT().Update(ctx, int64(2), gomock.Any(), gomock.Any()).Return(remoteErr("update", adapter.ErrForbidden))

	err := router.UpdateItem(ctx, 2, models.ItemUpdate{NomeObjeto: strPtr("x")}, models.PhotoFiles{})
	assert.ErrorIs(t, err, adapter.ErrForbidden)
	assert.True(t, IsRemoteError(err))
}

// ─────────────────────────────────────────────
// status & auth
// ─────────────────────────────────────────────

func TestRouter_GetBackendStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	router, m := newTestRouter(t, ctrl)

	m.prober.EXPECT().Probe(ctx).Return(nil)
	assert.Equal(t, models.BackendStatus{Enabled: true, Reachable: true}, router.GetBackendStatus(ctx))

	m.prober.EXPECT().Probe(ctx).Return(&adapter.APIError{
		Status:  404,
		Code:    "42P01",
		Message: `relation "public.inventario" does not exist`,
		Err:     adapter.ErrNotFound,
	})
	status := router.GetBackendStatus(ctx)
	assert.True(t, status.Enabled)
	assert.False(t, status.Reachable)
	require.NotNil(t, status.Error)
	assert.Equal(t, `42P01: relation "public.inventario" does not exist`, *status.Error)

	m.prober.EXPECT().Probe(ctx).Return(errors.New("dial tcp: connection refused"))
	status = router.GetBackendStatus(ctx)
	assert.Equal(t, "dial tcp: connection refused", *status.Error)
}

func TestRouter_AuthDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	router, m := newTestRouter(t, ctrl)
	creds := models.Credentials{Email: "maria@example.com", Password: "pw"}

	m.auth.EXPECT().SignIn(ctx, creds).Return(testUser, nil)
	user, err := router.SignIn(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, testUser, user)

	m.auth.EXPECT().CurrentUser(ctx).Return(&testUser)
	assert.Equal(t, &testUser, router.GetAuthUser(ctx))

	m.auth.EXPECT().IsAdmin(ctx).Return(true)
	assert.True(t, router.IsAdmin(ctx))

	m.auth.EXPECT().SignOut(ctx).Return(nil)
	assert.NoError(t, router.SignOut(ctx))
}
