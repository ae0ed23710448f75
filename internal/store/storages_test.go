// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

func newTestStorages(t *testing.T) *Storages {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "nested", "inventario.db")
	s, err := NewStorages(testContext(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStorages_ItemsRoundTrip(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()

	id1, err := s.Items.Add(ctx, models.Item{NumeroPatrimonio: "1", NomeObjeto: "Mesa", CriadoEm: 1})
	require.NoError(t, err)
	id2, err := s.Items.Add(ctx, models.Item{NumeroPatrimonio: "2", NomeObjeto: "Cadeira", LocalizacaoTexto: strPtr("Sala"), CriadoEm: 2})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	items, err := s.Items.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	require.NoError(t, s.Items.Delete(ctx, id1))
	assert.ErrorIs(t, s.Items.Delete(ctx, id1), ErrItemNotFound)

	items, err = s.Items.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, id2, items[0].ID)
	require.NotNil(t, items[0].LocalizacaoTexto)
	assert.Equal(t, "Sala", *items[0].LocalizacaoTexto)

	require.NoError(t, s.Items.Clear(ctx))
	items, err = s.Items.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStorages_KeyValueRoundTrip(t *testing.T) {
	s := newTestStorages(t)
	ctx := testContext()

	_, err := s.KeyValue.Get(ctx, "inventario.sessionId")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.KeyValue.Set(ctx, "inventario.sessionId", "first"))
	require.NoError(t, s.KeyValue.Set(ctx, "inventario.sessionId", "second"))

	v, err := s.KeyValue.Get(ctx, "inventario.sessionId")
	require.NoError(t, err)
	assert.Equal(t, "second", v)

	require.NoError(t, s.KeyValue.Delete(ctx, "inventario.sessionId"))
	_, err = s.KeyValue.Get(ctx, "inventario.sessionId")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestStorages_Reopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "inventario.db")
	cfg := config.Storage{DB: config.DB{DSN: dsn}}

	s, err := NewStorages(testContext(), cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.KeyValue.Set(testContext(), "k", "persisted"))
	require.NoError(t, s.Close())

	s, err = NewStorages(testContext(), cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	v, err := s.KeyValue.Get(testContext(), "k")
	require.NoError(t, err)
	assert.Equal(t, "persisted", v)
}

func TestStorages_Close_Nil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}
