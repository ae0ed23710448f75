// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/migrations"
)

// DB is the on-device SQLite handle shared by the local repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the items and key/value tables to the latest schema.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return fmt.Errorf("error migrating local store: %w", err)
	}
	db.logger.Debug().Str("func", "*DB.Migrate").Msg("local store schema is up to date")
	return nil
}
