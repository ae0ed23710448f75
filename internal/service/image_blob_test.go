// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"regexp"
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

var fixedNow = time.UnixMilli(1700000000000)

func newTestBlobSvc(t *testing.T, ctrl *gomock.Controller) (*imageBlobService, *mock.MockStorageAdapter) {
	t.Helper()
	storage := mock.NewMockStorageAdapter(ctrl)
	svc := NewImageBlobService(storage, logger.Nop()).(*imageBlobService)
	svc.now = func() time.Time { return fixedNow }
	return svc, storage
}

func jpegPhoto() *models.PhotoFile {
	return &models.PhotoFile{Name: "cadeira.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")}
}

func pngPhoto() *models.PhotoFile {
	return &models.PhotoFile{Name: "sala.PNG", ContentType: "image/png", Data: []byte("png")}
}

func publicURL(key string) string {
	return "https://proj.example.co/storage/v1/object/public/fotos/" + key
}

func TestImageBlob_UploadNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestBlobSvc(t, ctrl)
	photo, err := svc.Upload(context.Background(), adapter.Session{}, nil)
	assert.NoError(t, err)
	assert.Nil(t, photo)
}

func TestImageBlob_UploadSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	sess := adapter.Session{AccessToken: "jwt", SessionID: "s1"}
	svc, storage := newTestBlobSvc(t, ctrl)

	keyPattern := regexp.MustCompile(`^items/1700000000000-[0-9a-z]+\.png$`)
	var uploadedKey string
	storage.EXPECT().UploadObject(ctx, sess, gomock.Any(), "image/png", []byte("png")).
		DoAndReturn(func(_ context.Context, _ adapter.Session, key, _ string, _ []byte) error {
			uploadedKey = key
			return nil
		})
	storage.EXPECT().PublicURL(gomock.Any()).DoAndReturn(publicURL)

	photo, err := svc.Upload(ctx, sess, pngPhoto())
	require.NoError(t, err)
	assert.Regexp(t, keyPattern, uploadedKey)
	assert.Equal(t, uploadedKey, photo.Path)
	assert.Equal(t, publicURL(uploadedKey), photo.URL)
}

func TestImageBlob_UploadValidation(t *testing.T) {
	tests := []struct {
		name    string
		file    *models.PhotoFile
		wantErr error
	}{
		{"too large", &models.PhotoFile{Name: "a.jpg", ContentType: "image/jpeg", Data: make([]byte, 11*1024*1024)}, validators.ErrPhotoTooLarge},
		{"pdf", &models.PhotoFile{Name: "a.jpg", ContentType: "application/pdf"}, validators.ErrPhotoContentType},
		{"gif name", &models.PhotoFile{Name: "a.gif", ContentType: "image/jpeg"}, validators.ErrPhotoExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no storage expectations: validation fails before any request
			svc, _ := newTestBlobSvc(t, ctrl)
			_, err := svc.Upload(context.Background(), adapter.Session{}, tt.file)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, validators.ErrValidation)
		})
	}
}

func TestImageBlob_UploadStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestBlobSvc(t, ctrl)
	storage.EXPECT().UploadObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(adapter.ErrConflict)

	_, err := svc.Upload(context.Background(), adapter.Session{}, jpegPhoto())
	assert.ErrorIs(t, err, adapter.ErrConflict)
	assert.NotErrorIs(t, err, validators.ErrValidation)
}

func TestImageBlob_UploadPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestBlobSvc(t, ctrl)
	storage.EXPECT().UploadObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	storage.EXPECT().PublicURL(gomock.Any()).DoAndReturn(publicURL).Times(2)

	objeto, localizacao, err := svc.UploadPair(context.Background(), adapter.Session{}, models.PhotoFiles{
		FotoObjeto:      jpegPhoto(),
		FotoLocalizacao: pngPhoto(),
	})
	require.NoError(t, err)
	assert.Regexp(t, `\.jpg$`, objeto.Path)
	assert.Regexp(t, `\.png$`, localizacao.Path)
	assert.NotEqual(t, objeto.Path, localizacao.Path)
}

func TestImageBlob_UploadPairOnlyOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestBlobSvc(t, ctrl)
	storage.EXPECT().UploadObject(gomock.Any(), gomock.Any(), gomock.Any(), "image/png", gomock.Any()).Return(nil)
	storage.EXPECT().PublicURL(gomock.Any()).DoAndReturn(publicURL)

	objeto, localizacao, err := svc.UploadPair(context.Background(), adapter.Session{}, models.PhotoFiles{FotoLocalizacao: pngPhoto()})
	require.NoError(t, err)
	assert.Nil(t, objeto)
	require.NotNil(t, localizacao)
}

func TestImageBlob_UploadPairPartialFailureReleasesUploaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestBlobSvc(t, ctrl)

	var jpegKey string
	storage.EXPECT().UploadObject(gomock.Any(), gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ adapter.Session, key, _ string, _ []byte) error {
			jpegKey = key
			return nil
		})
	storage.EXPECT().UploadObject(gomock.Any(), gomock.Any(), gomock.Any(), "image/png", gomock.Any()).Return(adapter.ErrPayloadTooLarge)
	storage.EXPECT().PublicURL(gomock.Any()).DoAndReturn(publicURL)
	storage.EXPECT().RemoveObjects(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ adapter.Session, keys []string) error {
			assert.Equal(t, []string{jpegKey}, keys)
			return nil
		})

	_, _, err := svc.UploadPair(context.Background(), adapter.Session{}, models.PhotoFiles{
		FotoObjeto:      jpegPhoto(),
		FotoLocalizacao: pngPhoto(),
	})
	assert.ErrorIs(t, err, adapter.ErrPayloadTooLarge)
}

func TestImageBlob_UploadPairValidatesBothFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestBlobSvc(t, ctrl)
	_, _, err := svc.UploadPair(context.Background(), adapter.Session{}, models.PhotoFiles{
		FotoObjeto:      jpegPhoto(),
		FotoLocalizacao: &models.PhotoFile{Name: "doc.pdf", ContentType: "application/pdf"},
	})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestImageBlob_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, storage := newTestBlobSvc(t, ctrl)

	assert.True(t, svc.Remove(ctx, adapter.Session{}, nil).OK())
	assert.True(t, svc.Remove(ctx, adapter.Session{}, []string{"", ""}).OK())

	storage.EXPECT().RemoveObjects(ctx, adapter.Session{}, []string{"items/a.jpg"}).Return(nil)
	assert.True(t, svc.Remove(ctx, adapter.Session{}, []string{"items/a.jpg", ""}).OK())

	storage.EXPECT().RemoveObjects(ctx, adapter.Session{}, []string{"items/b.jpg"}).Return(errors.New("boom"))
	res := svc.Remove(ctx, adapter.Session{}, []string{"items/b.jpg"})
	assert.False(t, res.OK())
}

func TestImageBlob_DerivePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestBlobSvc(t, ctrl)
	storage.EXPECT().Bucket().Return("fotos").AnyTimes()

	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{"public", "https://p.example.co/storage/v1/object/public/fotos/items/1-a.jpg", "items/1-a.jpg", true},
		{"signed", "https://p.example.co/storage/v1/object/sign/fotos/items/1-a.jpg?token=abc", "items/1-a.jpg", true},
		{"encoded key", "https://p.example.co/storage/v1/object/public/fotos/items/foto%20sala.png", "items/foto sala.png", true},
		{"other bucket", "https://p.example.co/storage/v1/object/public/avatars/items/1-a.jpg", "", false},
		{"no key", "https://p.example.co/storage/v1/object/public/fotos/", "", false},
		{"foreign url", "https://cdn.example.com/items/1-a.jpg", "", false},
		{"data url", "data:image/png;base64,AAAA", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := svc.DerivePath(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
