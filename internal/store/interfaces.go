// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalItemRepository is the on-device item store used when the remote
// backend is not configured or not reachable.
type LocalItemRepository interface {
	// Add inserts item and returns the id assigned by the store. Item.ID is
	// ignored.
	Add(ctx context.Context, item models.Item) (int64, error)
	// GetAll returns every stored item. No ordering is guaranteed.
	GetAll(ctx context.Context) ([]models.Item, error)
	// Delete removes the item with the given id. A missing id yields
	// [ErrItemNotFound].
	Delete(ctx context.Context, id int64) error
	// Clear removes every item.
	Clear(ctx context.Context) error
}

// KeyValueRepository is a small durable string map for client state such as
// the session token and the persisted auth session.
type KeyValueRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
