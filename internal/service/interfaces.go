// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ItemBackendWrapper

// ItemBackend is one place items live: the remote table or the local store.
type ItemBackend interface {
	// Add stores a new item. The returned item has ID 0 when the backend
	// does not read the row back.
	Add(ctx context.Context, draft models.ItemDraft, files models.PhotoFiles) (models.Item, error)
	List(ctx context.Context) ([]models.Item, error)
	Delete(ctx context.Context, id int64) error
	Update(ctx context.Context, id int64, update models.ItemUpdate, files models.PhotoFiles) error
}

// ItemBackendWrapper decorates an ItemBackend, e.g. with input validation.
type ItemBackendWrapper interface {
	Wrap(ItemBackend) ItemBackend
}

// LocalCache is the purgeable local item store.
type LocalCache interface {
	Clear(ctx context.Context) models.BestEffortResult
}

// StatusProber issues a minimal read against the remote table.
type StatusProber interface {
	Probe(ctx context.Context) error
}

// SessionIdentity owns the per-login session token that scopes the
// visibility of remote items.
type SessionIdentity interface {
	// Current returns the token loaded in memory, empty when none.
	Current() string
	// Ensure returns the persisted token, minting and persisting one when
	// none exists.
	Ensure(ctx context.Context) (string, error)
	// Renew mints and persists a fresh token, replacing any previous one.
	Renew(ctx context.Context) (string, error)
	// Clear forgets the token in memory and in storage.
	Clear(ctx context.Context) error
}

// ImageBlobService validates photos and manages their blobs.
type ImageBlobService interface {
	// Upload validates and stores file. A nil file yields nil, nil.
	Upload(ctx context.Context, sess adapter.Session, file *models.PhotoFile) (*models.UploadedPhoto, error)
	// UploadPair uploads both photos concurrently.
	UploadPair(ctx context.Context, sess adapter.Session, files models.PhotoFiles) (objeto, localizacao *models.UploadedPhoto, err error)
	// Remove deletes paths. Failure is reported, never raised.
	Remove(ctx context.Context, sess adapter.Session, paths []string) models.BestEffortResult
	// DerivePath recovers the blob key from a public or signed object URL
	// of the configured bucket.
	DerivePath(rawURL string) (string, bool)
}

// AuthGateway signs users in and out and answers who is signed in.
type AuthGateway interface {
	SignIn(ctx context.Context, creds models.Credentials) (models.User, error)
	SignOut(ctx context.Context) error
	// CurrentUser returns the signed-in user, nil when there is none or the
	// auth service cannot confirm it.
	CurrentUser(ctx context.Context) *models.User
	// SignedIn reports whether a usable session is persisted locally,
	// without asking the auth service.
	SignedIn(ctx context.Context) bool
	// IsAdmin reports whether the current user is an administrator.
	IsAdmin(ctx context.Context) bool
	// CheckAdmin reports whether user is an administrator. Fails closed.
	CheckAdmin(ctx context.Context, user models.User) bool
	// Session returns the remote call context for the current state.
	Session(ctx context.Context) adapter.Session
}
