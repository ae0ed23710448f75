// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type Services struct {
	Router          *BackendRouter
	SessionIdentity SessionIdentity
	AppInfoService  AppInfoService

	// AuthGateway and ImageBlobService are nil when no remote backend is
	// configured.
	AuthGateway      AuthGateway
	ImageBlobService ImageBlobService
}

// NewServices wires the item backends behind the router. A nil backend
// leaves the router local only.
func NewServices(storages *store.Storages, backend adapter.BackendAdapter, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	identity := NewSessionIdentity(storages.KeyValue, logger)
	local := NewLocalItemService(storages.Items, logger)
	validatedLocal := NewItemValidationService().Wrap(local)

	if backend == nil {
		return &Services{
			Router:          NewBackendRouter(nil, validatedLocal, nil, nil, logger),
			SessionIdentity: identity,
			AppInfoService:  appInfo,
		}, nil
	}

	auth := NewAuthGateway(backend, storages.KeyValue, identity, local, logger)
	blobs := NewImageBlobService(backend, logger)
	remote := NewRemoteItemService(backend, blobs, auth, logger)

	return &Services{
		Router:           NewBackendRouter(NewItemValidationService().Wrap(remote), validatedLocal, remote, auth, logger),
		SessionIdentity:  identity,
		AppInfoService:   appInfo,
		AuthGateway:      auth,
		ImageBlobService: blobs,
	}, nil
}
