// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/metrics"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

const blobKeyPrefix = "items/"

// Object URL shapes served by the storage gateway. The bucket name follows
// the marker, then the key.
var objectURLMarkers = []string{
	"/storage/v1/object/public/",
	"/storage/v1/object/sign/",
}

type imageBlobService struct {
	storage   adapter.StorageAdapter
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewImageBlobService(storage adapter.StorageAdapter, logger *logger.Logger) ImageBlobService {
	return &imageBlobService{
		storage:   storage,
		validator: validators.NewItemValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *imageBlobService) Upload(ctx context.Context, sess adapter.Session, file *models.PhotoFile) (*models.UploadedPhoto, error) {
	if file == nil {
		return nil, nil
	}

	if err := s.validator.Validate(ctx, file); err != nil {
		return nil, fmt.Errorf("error during photo validation before upload: %w", err)
	}

	key := s.newKey(*file)
	if err := s.storage.UploadObject(ctx, sess, key, file.ContentType, file.Data); err != nil {
		s.logger.Err(err).Str("func", "imageBlobService.Upload").Str("key", key).Msg("photo upload failed")
		return nil, fmt.Errorf("error uploading photo: %w", err)
	}

	return &models.UploadedPhoto{URL: s.storage.PublicURL(key), Path: key}, nil
}

func (s *imageBlobService) UploadPair(ctx context.Context, sess adapter.Session, files models.PhotoFiles) (*models.UploadedPhoto, *models.UploadedPhoto, error) {
	// both photos are checked before either is sent
	if err := s.validator.Validate(ctx, files); err != nil {
		return nil, nil, fmt.Errorf("error during photo validation before upload: %w", err)
	}

	var objeto, localizacao *models.UploadedPhoto

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		objeto, err = s.Upload(gctx, sess, files.FotoObjeto)
		return err
	})
	g.Go(func() error {
		var err error
		localizacao, err = s.Upload(gctx, sess, files.FotoLocalizacao)
		return err
	})

	if err := g.Wait(); err != nil {
		s.Remove(ctx, sess, uploadedPaths(objeto, localizacao))
		return nil, nil, err
	}

	return objeto, localizacao, nil
}

func (s *imageBlobService) Remove(ctx context.Context, sess adapter.Session, paths []string) models.BestEffortResult {
	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			keys = append(keys, p)
		}
	}
	if len(keys) == 0 {
		return models.BestEffortResult{}
	}

	if err := s.storage.RemoveObjects(ctx, sess, keys); err != nil {
		s.logger.Warn().Err(err).Str("func", "imageBlobService.Remove").Strs("keys", keys).Msg("failed to remove photos")
		metrics.ObserveBlobRemovalFailure()
		return models.BestEffortResult{Err: fmt.Errorf("error removing photos: %w", err)}
	}

	return models.BestEffortResult{}
}

func (s *imageBlobService) DerivePath(rawURL string) (string, bool) {
	if rawURL == "" {
		return "", false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	escaped := u.EscapedPath()
	for _, marker := range objectURLMarkers {
		idx := strings.Index(escaped, marker)
		if idx < 0 {
			continue
		}

		bucket, key, found := strings.Cut(escaped[idx+len(marker):], "/")
		if !found || key == "" {
			return "", false
		}
		if b, err := url.PathUnescape(bucket); err != nil || b != s.storage.Bucket() {
			return "", false
		}

		decoded, err := url.PathUnescape(key)
		if err != nil {
			return "", false
		}
		return decoded, true
	}

	return "", false
}

func (s *imageBlobService) newKey(file models.PhotoFile) string {
	return fmt.Sprintf("%s%d-%s.%s", blobKeyPrefix, s.now().UnixMilli(), utils.RandomSuffix(), validators.PhotoExtension(file))
}

func uploadedPaths(photos ...*models.UploadedPhoto) []string {
	paths := make([]string, 0, len(photos))
	for _, p := range photos {
		if p != nil {
			paths = append(paths, p.Path)
		}
	}
	return paths
}
