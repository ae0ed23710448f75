// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
)

// Storages groups the on-device repositories so they can be handed to the
// service layer as one value.
type Storages struct {
	// Items is the local fallback item store.
	Items LocalItemRepository
	// KeyValue holds the session token and the persisted auth session.
	KeyValue KeyValueRepository

	db *DB
}

// NewStorages opens the SQLite file named by cfg.DB.DSN (creating it when
// absent), applies pending migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Items:    NewLocalItemRepository(db),
		KeyValue: NewKeyValueRepository(db),
		db:       db,
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
