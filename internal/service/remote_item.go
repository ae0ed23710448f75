// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// RemoteItemService is the remote ItemBackend. Every failure it returns,
// except invalid input, is a *RemoteError.
type RemoteItemService interface {
	ItemBackend
	StatusProber
}

type remoteItemService struct {
	table adapter.TableAdapter
	blobs ImageBlobService
	auth  AuthGateway
	now   func() time.Time

	logger *logger.Logger
}

func NewRemoteItemService(table adapter.TableAdapter, blobs ImageBlobService, auth AuthGateway, logger *logger.Logger) RemoteItemService {
	return &remoteItemService{
		table:  table,
		blobs:  blobs,
		auth:   auth,
		now:    time.Now,
		logger: logger,
	}
}

func (s *remoteItemService) Add(ctx context.Context, draft models.ItemDraft, files models.PhotoFiles) (models.Item, error) {
	user := s.auth.CurrentUser(ctx)
	if user == nil {
		return models.Item{}, remoteErr("add", ErrNotAuthenticated)
	}
	sess := s.auth.Session(ctx)

	objeto, localizacao, err := s.blobs.UploadPair(ctx, sess, files)
	if err != nil {
		return models.Item{}, s.wrap("add", err)
	}

	row := draftToRow(draft, objeto, localizacao, *user, sess.SessionID)
	if err = s.table.InsertItem(ctx, sess, row); err != nil {
		s.logger.Err(err).Str("func", "remoteItemService.Add").Msg("insert failed, releasing uploaded photos")
		s.blobs.Remove(ctx, sess, uploadedPaths(objeto, localizacao))
		return models.Item{}, remoteErr("add", err)
	}

	return rowToItem(row, s.now()), nil
}

// List applies the visibility rule: administrators and anonymous callers
// read every row, other users only the rows of their current session.
func (s *remoteItemService) List(ctx context.Context) ([]models.Item, error) {
	var filter *adapter.ItemFilter

	user := s.auth.CurrentUser(ctx)
	sess := s.auth.Session(ctx)
	if user != nil && !s.auth.CheckAdmin(ctx, *user) {
		filter = &adapter.ItemFilter{OwnerID: user.ID, SessionID: sess.SessionID}
	}

	rows, err := s.table.SelectItems(ctx, sess, filter)
	if err != nil {
		return nil, remoteErr("list", err)
	}

	return rowsToItems(rows, s.now()), nil
}

func (s *remoteItemService) Delete(ctx context.Context, id int64) error {
	sess := s.auth.Session(ctx)

	refs, err := s.table.SelectBlobRefs(ctx, sess, id)
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return remoteErr("delete", err)
	}

	paths := []string{
		s.blobPath(refs.FotoObjetoPath, refs.FotoObjetoURL),
		s.blobPath(refs.FotoLocalizacaoPath, refs.FotoLocalizacaoURL),
	}
	s.blobs.Remove(ctx, sess, paths)

	if err = s.table.DeleteItem(ctx, sess, id); err != nil {
		return remoteErr("delete", err)
	}

	return nil
}

// Update changes only the provided fields. A replaced photo's old blob is
// left in the bucket.
func (s *remoteItemService) Update(ctx context.Context, id int64, update models.ItemUpdate, files models.PhotoFiles) error {
	if s.auth.CurrentUser(ctx) == nil {
		return remoteErr("update", ErrNotAuthenticated)
	}
	sess := s.auth.Session(ctx)

	if update.RemoveFotoObjeto {
		files.FotoObjeto = nil
	}
	if update.RemoveFotoLocalizacao {
		files.FotoLocalizacao = nil
	}

	objeto, localizacao, err := s.blobs.UploadPair(ctx, sess, files)
	if err != nil {
		return s.wrap("update", err)
	}

	patch := updateToPatch(update, objeto, localizacao)
	if len(patch) == 0 {
		return nil
	}

	if err = s.table.PatchItem(ctx, sess, id, patch); err != nil {
		s.blobs.Remove(ctx, sess, uploadedPaths(objeto, localizacao))
		return remoteErr("update", err)
	}

	return nil
}

func (s *remoteItemService) Probe(ctx context.Context) error {
	return s.table.ProbeTable(ctx, s.auth.Session(ctx))
}

// blobPath prefers the stored key and falls back to deriving it from the URL
// for rows written before keys were stored.
func (s *remoteItemService) blobPath(path, url *string) string {
	if path != nil && *path != "" {
		return *path
	}
	if url == nil {
		return ""
	}
	derived, _ := s.blobs.DerivePath(*url)
	return derived
}

// wrap keeps validation failures unwrapped so that callers surface them.
func (s *remoteItemService) wrap(op string, err error) error {
	if errors.Is(err, validators.ErrValidation) {
		return err
	}
	return remoteErr(op, err)
}
