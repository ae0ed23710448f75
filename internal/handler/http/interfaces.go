// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../../mock/handler_mock.go -package=mock

// Inventory is the facade the HTTP API drives. It is implemented by
// service.BackendRouter.
type Inventory interface {
	AddItem(ctx context.Context, draft models.ItemDraft, files models.PhotoFiles) (models.Item, error)
	GetItems(ctx context.Context) ([]models.Item, error)
	SearchItems(ctx context.Context, term string) ([]models.Item, error)
	PatrimonyExists(ctx context.Context, numero string) (bool, error)
	DeleteItem(ctx context.Context, id int64) error
	UpdateItem(ctx context.Context, id int64, update models.ItemUpdate, files models.PhotoFiles) error
	GetBackendStatus(ctx context.Context) models.BackendStatus
	IsAdmin(ctx context.Context) bool
	SignIn(ctx context.Context, creds models.Credentials) (models.User, error)
	SignOut(ctx context.Context) error
	GetAuthUser(ctx context.Context) *models.User
}
