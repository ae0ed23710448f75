// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the hosted inventory backend over its REST
// gateway: the item table (/rest/v1), blob storage (/storage/v1) and the
// auth service (/auth/v1).
//
// Every call receives the caller's [Session] explicitly; the adapter keeps no
// token state of its own. Non-2xx responses are turned into [*APIError]
// values that unwrap to the sentinels in errors.go, so callers can use
// [errors.Is] (e.g. [ErrNotFound] for a missing row, [ErrConflict] for a
// duplicate blob key).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Session is the per-call remote context: the signed-in user's access token
// (empty for anonymous calls) and the client session token sent as
// x-session-id.
type Session struct {
	AccessToken string
	SessionID   string
}

// ItemFilter restricts a table read to one owner's rows created under one
// session token.
type ItemFilter struct {
	OwnerID   string
	SessionID string
}

// TableAdapter reads and writes rows of the item table.
type TableAdapter interface {
	// SelectItems returns rows ordered by id descending. A nil filter reads
	// every row the backend lets the caller see.
	SelectItems(ctx context.Context, sess Session, filter *ItemFilter) ([]models.ItemRow, error)

	// InsertItem inserts row without reading it back.
	InsertItem(ctx context.Context, sess Session, row models.ItemRow) error

	// PatchItem sets the given columns of row id.
	PatchItem(ctx context.Context, sess Session, id int64, fields map[string]any) error

	// DeleteItem deletes row id.
	DeleteItem(ctx context.Context, sess Session, id int64) error

	// SelectBlobRefs reads the photo keys and URLs of row id. A missing row
	// yields [ErrNotFound].
	SelectBlobRefs(ctx context.Context, sess Session, id int64) (models.ItemBlobRefs, error)

	// ProbeTable reads at most one id from the table.
	ProbeTable(ctx context.Context, sess Session) error

	// IsAdmin reports whether email is listed in the administrators table,
	// compared case-insensitively.
	IsAdmin(ctx context.Context, sess Session, email string) (bool, error)
}

// StorageAdapter manages photo blobs in the configured bucket.
type StorageAdapter interface {
	// UploadObject stores data under key. An existing key is not
	// overwritten and yields [ErrConflict].
	UploadObject(ctx context.Context, sess Session, key, contentType string, data []byte) error

	// RemoveObjects deletes keys in one request.
	RemoveObjects(ctx context.Context, sess Session, keys []string) error

	// PublicURL returns the public retrieval URL of key.
	PublicURL(key string) string

	// Bucket returns the bucket name blobs are stored in.
	Bucket() string
}

// AuthAdapter talks to the auth service.
type AuthAdapter interface {
	SignInWithPassword(ctx context.Context, creds models.Credentials) (models.AuthSession, error)
	SignOut(ctx context.Context, sess Session) error
	GetUser(ctx context.Context, sess Session) (models.User, error)
	// RefreshSession exchanges a refresh token for a new session.
	RefreshSession(ctx context.Context, refreshToken string) (models.AuthSession, error)
}

// BackendAdapter is the complete remote backend.
type BackendAdapter interface {
	TableAdapter
	StorageAdapter
	AuthAdapter
}
