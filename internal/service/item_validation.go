// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// ItemValidationService rejects invalid input before it reaches the wrapped
// backend, so no network or storage call is made for it.
type ItemValidationService struct {
	inner     ItemBackend
	validator validators.Validator
}

func NewItemValidationService() ItemBackendWrapper {
	return &ItemValidationService{
		validator: validators.NewItemValidator(),
	}
}

func (v *ItemValidationService) Add(ctx context.Context, draft models.ItemDraft, files models.PhotoFiles) (models.Item, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Item{}, fmt.Errorf("error during item validation before saving: %w", err)
	}
	if err := v.validator.Validate(ctx, files); err != nil {
		return models.Item{}, fmt.Errorf("error during photo validation before saving: %w", err)
	}

	return v.inner.Add(ctx, draft, files)
}

func (v *ItemValidationService) List(ctx context.Context) ([]models.Item, error) {
	return v.inner.List(ctx)
}

func (v *ItemValidationService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidItemID
	}

	return v.inner.Delete(ctx, id)
}

func (v *ItemValidationService) Update(ctx context.Context, id int64, update models.ItemUpdate, files models.PhotoFiles) error {
	if id <= 0 {
		return ErrInvalidItemID
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("error during item validation before update: %w", err)
	}
	if update.IsEmpty() && files.IsEmpty() {
		return validators.ErrNoFieldsToUpdate
	}
	if err := v.validator.Validate(ctx, files); err != nil {
		return fmt.Errorf("error during photo validation before update: %w", err)
	}

	return v.inner.Update(ctx, id, update, files)
}

func (v *ItemValidationService) Wrap(inner ItemBackend) ItemBackend {
	v.inner = inner
	return v
}
