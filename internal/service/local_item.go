// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// LocalItemService is the on-device ItemBackend.
type LocalItemService interface {
	ItemBackend
	LocalCache
}

type localItemService struct {
	repo store.LocalItemRepository
	now  func() time.Time

	logger *logger.Logger
}

func NewLocalItemService(repo store.LocalItemRepository, logger *logger.Logger) LocalItemService {
	return &localItemService{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

func (s *localItemService) Add(ctx context.Context, draft models.ItemDraft, files models.PhotoFiles) (models.Item, error) {
	item := draftToLocalItem(draft, files, s.now())

	id, err := s.repo.Add(ctx, item)
	if err != nil {
		return models.Item{}, fmt.Errorf("error saving item locally: %w", err)
	}

	item.ID = id
	return item, nil
}

func (s *localItemService) List(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading local items: %w", err)
	}

	for i := range items {
		items[i].NumeroPatrimonio = utils.SanitizeDigits(items[i].NumeroPatrimonio)
		items[i].FotoObjeto = utils.SafePhotoURL(items[i].FotoObjeto)
		items[i].FotoLocalizacao = utils.SafePhotoURL(items[i].FotoLocalizacao)
	}

	return items, nil
}

func (s *localItemService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting local item: %w", err)
	}
	return nil
}

func (s *localItemService) Update(context.Context, int64, models.ItemUpdate, models.PhotoFiles) error {
	return ErrLocalUpdateUnsupported
}

// Clear purges the local cache. Failure is logged and reported only.
func (s *localItemService) Clear(ctx context.Context) models.BestEffortResult {
	if err := s.repo.Clear(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "localItemService.Clear").Msg("failed to purge local items")
		return models.BestEffortResult{Err: fmt.Errorf("error clearing local items: %w", err)}
	}
	return models.BestEffortResult{}
}
