// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/mock"
	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

var (
	testUser    = models.User{ID: "user-1", Email: "maria@example.com"}
	testSession = adapter.Session{AccessToken: "jwt", SessionID: "session-1"}
)

func newTestRemoteSvc(t *testing.T, ctrl *gomock.Controller) (
	*remoteItemService,
	*mock.MockTableAdapter,
	*mock.MockImageBlobService,
	*mock.MockAuthGateway,
) {
	t.Helper()
	table := mock.NewMockTableAdapter(ctrl)
	blobs := mock.NewMockImageBlobService(ctrl)
	auth := mock.NewMockAuthGateway(ctrl)

	svc := NewRemoteItemService(table, blobs, auth, logger.Nop()).(*remoteItemService)
	svc.now = func() time.Time { return fixedNow }

	return svc, table, blobs, auth
}

func signedIn(auth *mock.MockAuthGateway, ctx context.Context) {
	auth.EXPECT().CurrentUser(ctx).Return(&testUser)
	auth.EXPECT().Session(ctx).Return(testSession)
}

func assertRemoteError(t *testing.T, err error, op string) {
	t.Helper()
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, op, re.Op)
}

// ─────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────

func TestRemoteAdd_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, _, _, auth := newTestRemoteSvc(t, ctrl)
	auth.EXPECT().CurrentUser(ctx).Return(nil)

	_, err := svc.Add(ctx, models.ItemDraft{NumeroPatrimonio: "1", NomeObjeto: "Mesa"}, models.PhotoFiles{})
	assertRemoteError(t, err, "add")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestRemoteAdd_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, table, blobs, auth := newTestRemoteSvc(t, ctrl)
	signedIn(auth, ctx)

	files := models.PhotoFiles{FotoObjeto: jpegPhoto()}
	objeto := &models.UploadedPhoto{URL: "https://p.example.co/storage/v1/object/public/fotos/items/o.jpg", Path: "items/o.jpg"}

	gomock.InOrder(
		blobs.EXPECT().UploadPair(ctx, testSession, files).Return(objeto, nil, nil),
		table.EXPECT().InsertItem(ctx, testSession, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ adapter.Session, row models.ItemRow) error {
				assert.Equal(t, "0042", row.NumeroPatrimonio)
				assert.Equal(t, "user-1", *row.OwnerID)
				assert.Equal(t, "maria@example.com", *row.OwnerEmail)
				assert.Equal(t, "session-1", *row.SessionID)
				assert.Equal(t, "items/o.jpg", *row.FotoObjetoPath)
				return nil
			}),
	)

	item, err := svc.Add(ctx, models.ItemDraft{NumeroPatrimonio: "00.42", NomeObjeto: "Mesa"}, files)
	require.NoError(t, err)
	assert.Zero(t, item.ID, "insert is not read back")
	assert.Equal(t, "0042", item.NumeroPatrimonio)
	assert.Equal(t, objeto.URL, *item.FotoObjeto)
	assert.Equal(t, fixedNow.UnixMilli(), item.CriadoEm)
}

func TestRemoteAdd_InsertFailureReleasesPhotos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, table, blobs, auth := newTestRemoteSvc(t, ctrl)
	signedIn(auth, ctx)

	objeto := &models.UploadedPhoto{URL: "u1", Path: "items/o.jpg"}
	localizacao := &models.UploadedPhoto{URL: "u2", Path: "items/l.png"}
	blobs.EXPECT().UploadPair(ctx, testSession, gomock.Any()).Return(objeto, localizacao, nil)
	table.EXPECT().InsertItem(ctx, testSession, gomock.Any()).Return(adapter.ErrForbidden)
	blobs.EXPECT().Remove(ctx, testSession, []string{"items/o.jpg", "items/l.png"}).Return(models.BestEffortResult{})

	_, err := svc.Add(ctx, models.ItemDraft{NumeroPatrimonio: "1", NomeObjeto: "Mesa"}, models.PhotoFiles{})
	assertRemoteError(t, err, "add")
	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

func TestRemoteAdd_UploadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, _, blobs, auth := newTestRemoteSvc(t, ctrl)
	signedIn(auth, ctx)
	blobs.EXPECT().UploadPair(ctx, testSession, gomock.Any()).Return(nil, nil, adapter.ErrUnavailable)

	_, err := svc.Add(ctx, models.ItemDraft{NumeroPatrimonio: "1", NomeObjeto: "Mesa"}, models.PhotoFiles{})
	assertRemoteError(t, err, "add")
}

func TestRemoteAdd_InvalidPhotoIsNotRemoteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, _, blobs, auth := newTestRemoteSvc(t, ctrl)
	signedIn(auth, ctx)
	blobs.EXPECT().UploadPair(ctx, testSession, gomock.Any()).Return(nil, nil, validators.ErrPhotoTooLarge)

	_, err := svc.Add(ctx, models.ItemDraft{NumeroPatrimonio: "1", NomeObjeto: "Mesa"}, models.PhotoFiles{})
	assert.ErrorIs(t, err, validators.ErrPhotoTooLarge)
	assert.False(t, IsRemoteError(err))
}

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestRemoteList_Visibility(t *testing.T) {
	tests := []struct {
		name       string
		user       *models.User
		admin      bool
		wantFilter *adapter.ItemFilter
	}{
		{"anonymous reads all", nil, false, nil},
		{"admin reads all", &testUser, true, nil},
		{"user reads own session", &testUser, false, &adapter.ItemFilter{OwnerID: "user-1", SessionID: "session-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx := context.Background()
			svc, table, _, auth := newTestRemoteSvc(t, ctrl)
			auth.EXPECT().CurrentUser(ctx).Return(tt.user)
			auth.EXPECT().Session(ctx).Return(testSession)
			if tt.user != nil {
				auth.EXPECT().CheckAdmin(ctx, *tt.user).Return(tt.admin)
			}

			rows := []models.ItemRow{{ID: 2, NumeroPatrimonio: "2", NomeObjeto: "B"}, {ID: 1, NumeroPatrimonio: "1", NomeObjeto: "A"}}
			table.EXPECT().SelectItems(ctx, testSession, tt.wantFilter).Return(rows, nil)

			items, err := svc.List(ctx)
			require.NoError(t, err)
			require.Len(t, items, 2)
			assert.Equal(t, int64(2), items[0].ID)
		})
	}
}

func TestRemoteList_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, table, _, auth := newTestRemoteSvc(t, ctrl)
	auth.EXPECT().CurrentUser(ctx).Return(nil)
	auth.EXPECT().Session(ctx).Return(adapter.Session{})
	table.EXPECT().SelectItems(ctx, adapter.Session{}, nil).Return(nil, errors.New("connection refused"))

	_, err := svc.List(ctx)
	assertRemoteError(t, err, "list")
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestRemoteDelete_ReleasesStoredAndDerivedKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, table, blobs, auth := newTestRemoteSvc(t, ctrl)
	auth.EXPECT().Session(ctx).Return(testSession)

	legacyURL := "https://p.example.co/storage/v1/object/public/fotos/items/l.png"
	refs := models.ItemBlobRefs{
		FotoObjetoPath:     strPtr("items/o.jpg"),
		FotoLocalizacaoURL: strPtr(legacyURL),
	}

	gomock.InOrder(
		table.EXPECT().SelectBlobRefs(ctx, testSession, int64(9)).Return(refs, nil),
		blobs.EXPECT().DerivePath(legacyURL).Return("items/l.png", true),
		blobs.EXPECT().Remove(ctx, testSession, []string{"items/o.jpg", "items/l.png"}).Return(models.BestEffortResult{}),
		table.EXPECT().DeleteItem(ctx, testSession, int64(9)).Return(nil),
	)

	require.NoError(t, svc.Delete(ctx, 9))
}

func TestRemoteDelete_BlobFailureStillDeletesRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, table, blobs, auth := newTestRemoteSvc(t, ctrl)
	auth.EXPECT().Session(ctx).Return(testSession)

	table.EXPECT().SelectBlobRefs(ctx, testSession, int64(3)).Return(models.ItemBlobRefs{FotoObjetoPath: strPtr("items/o.jpg")}, nil)
	blobs.EXPECT().Remove(ctx, testSession, gomock.Any()).Return(models.BestEffortResult{Err: errors.New("storage down")})
	table.EXPECT().DeleteItem(ctx, testSession, int64(3)).Return(nil)

	assert.NoError(t, svc.Delete(ctx, 3))
}

func TestRemoteDelete_MissingRowTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, table, blobs, auth := newTestRemoteSvc(t, ctrl)
	auth.EXPECT().Session(ctx).Return(testSession)

	table.EXPECT().SelectBlobRefs(ctx, testSession, int64(5)).Return(models.ItemBlobRefs{}, &adapter.APIError{Code: "PGRST116", Err: adapter.ErrNotFound})
	blobs.EXPECT().Remove(ctx, testSession, []string{"", ""}).Return(models.BestEffortResult{})
	table.EXPECT().DeleteItem(ctx, testSession, int64(5)).Return(nil)

	assert.NoError(t, svc.Delete(ctx, 5))
}

func TestRemoteDelete_Errors(t *testing.T) {
	t.Run("select fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx := context.Background()
		svc, table, _, auth := newTestRemoteSvc(t, ctrl)
		auth.EXPECT().Session(ctx).Return(testSession)
		table.EXPECT().SelectBlobRefs(ctx, testSession, int64(1)).Return(models.ItemBlobRefs{}, adapter.ErrUnavailable)

		err := svc.Delete(ctx, 1)
		assertRemoteError(t, err, "delete")
		assert.ErrorIs(t, err, adapter.ErrUnavailable)
	})

	t.Run("row delete fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx := context.Background()
		svc, table, blobs, auth := newTestRemoteSvc(t, ctrl)
		auth.EXPECT().Session(ctx).Return(testSession)
		table.EXPECT().SelectBlobRefs(ctx, testSession, int64(1)).Return(models.ItemBlobRefs{}, nil)
		blobs.EXPECT().Remove(ctx, testSession, gomock.Any()).Return(models.BestEffortResult{})
		table.EXPECT().DeleteItem(ctx, testSession, int64(1)).Return(adapter.ErrForbidden)

		err := svc.Delete(ctx, 1)
		assertRemoteError(t, err, "delete")
		assert.ErrorIs(t, err, adapter.ErrForbidden)
	})
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestRemoteUpdate_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, _, _, auth := newTestRemoteSvc(t, ctrl)
	auth.EXPECT().CurrentUser(ctx).Return(nil)

	err := svc.Update(ctx, 1, models.ItemUpdate{NomeObjeto: strPtr("x")}, models.PhotoFiles{})
	assertRemoteError(t, err, "update")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestRemoteUpdate_PatchesProvidedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, table, blobs, auth := newTestRemoteSvc(t, ctrl)
	signedIn(auth, ctx)

	newLoc := &models.UploadedPhoto{URL: "https://x/l.png", Path: "items/l.png"}
	update := models.ItemUpdate{NomeObjeto: strPtr("Mesa nova"), RemoveFotoObjeto: true}
	files := models.PhotoFiles{FotoObjeto: jpegPhoto(), FotoLocalizacao: pngPhoto()}

	// the object photo is being removed, so its file is not uploaded
	blobs.EXPECT().UploadPair(ctx, testSession, models.PhotoFiles{FotoLocalizacao: files.FotoLocalizacao}).Return(nil, newLoc, nil)
	table.EXPECT().PatchItem(ctx, testSession, int64(4), map[string]any{
		models.ColumnNomeObjeto:          "Mesa nova",
		models.ColumnFotoObjetoURL:       nil,
		models.ColumnFotoObjetoPath:      nil,
		models.ColumnFotoLocalizacaoURL:  "https://x/l.png",
		models.ColumnFotoLocalizacaoPath: "items/l.png",
	}).Return(nil)

	require.NoError(t, svc.Update(ctx, 4, update, files))
}

func TestRemoteUpdate_PatchFailureReleasesNewPhotos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, table, blobs, auth := newTestRemoteSvc(t, ctrl)
	signedIn(auth, ctx)

	objeto := &models.UploadedPhoto{URL: "u", Path: "items/o.jpg"}
	blobs.EXPECT().UploadPair(ctx, testSession, gomock.Any()).Return(objeto, nil, nil)
	table.EXPECT().PatchItem(ctx, testSession, int64(4), gomock.Any()).Return(adapter.ErrNotFound)
	blobs.EXPECT().Remove(ctx, testSession, []string{"items/o.jpg"}).Return(models.BestEffortResult{})

	err := svc.Update(ctx, 4, models.ItemUpdate{}, models.PhotoFiles{FotoObjeto: jpegPhoto()})
	assertRemoteError(t, err, "update")
}

func TestRemoteUpdate_NothingToPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, _, blobs, auth := newTestRemoteSvc(t, ctrl)
	signedIn(auth, ctx)
	blobs.EXPECT().UploadPair(ctx, testSession, models.PhotoFiles{}).Return(nil, nil, nil)

	assert.NoError(t, svc.Update(ctx, 4, models.ItemUpdate{}, models.PhotoFiles{}))
}

func TestRemoteProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, table, _, auth := newTestRemoteSvc(t, ctrl)
	auth.EXPECT().Session(ctx).Return(adapter.Session{}).Times(2)

	table.EXPECT().ProbeTable(ctx, adapter.Session{}).Return(nil)
	assert.NoError(t, svc.Probe(ctx))

	table.EXPECT().ProbeTable(ctx, adapter.Session{}).Return(adapter.ErrNotFound)
	assert.ErrorIs(t, svc.Probe(ctx), adapter.ErrNotFound)
}
