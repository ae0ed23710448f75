// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"
)

// ItemRow is the wire representation of an item in the remote table.
// Column names follow the table's snake_case convention.
type ItemRow struct {
	ID                  int64      `json:"id,omitempty"`
	NumeroPatrimonio    string     `json:"numero_patrimonio"`
	NomeObjeto          string     `json:"nome_objeto"`
	LocalizacaoTexto    *string    `json:"localizacao_texto"`
	FotoObjetoURL       *string    `json:"foto_objeto_url"`
	FotoLocalizacaoURL  *string    `json:"foto_localizacao_url"`
	FotoObjetoPath      *string    `json:"foto_objeto_path"`
	FotoLocalizacaoPath *string    `json:"foto_localizacao_path"`
	CriadoEm            *Timestamp `json:"criado_em,omitempty"`
	OwnerID             *string    `json:"owner_id,omitempty"`
	OwnerEmail          *string    `json:"owner_email,omitempty"`
	SessionID           *string    `json:"session_id,omitempty"`
}

// ItemBlobRefs is the projection of a row used to release its blobs.
type ItemBlobRefs struct {
	FotoObjetoPath      *string `json:"foto_objeto_path"`
	FotoLocalizacaoPath *string `json:"foto_localizacao_path"`
	FotoObjetoURL       *string `json:"foto_objeto_url"`
	FotoLocalizacaoURL  *string `json:"foto_localizacao_url"`
}

// Column names of the remote table.
const (
	ColumnID                  = "id"
	ColumnNumeroPatrimonio    = "numero_patrimonio"
	ColumnNomeObjeto          = "nome_objeto"
	ColumnLocalizacaoTexto    = "localizacao_texto"
	ColumnFotoObjetoURL       = "foto_objeto_url"
	ColumnFotoLocalizacaoURL  = "foto_localizacao_url"
	ColumnFotoObjetoPath      = "foto_objeto_path"
	ColumnFotoLocalizacaoPath = "foto_localizacao_path"
	ColumnCriadoEm            = "criado_em"
	ColumnOwnerID             = "owner_id"
	ColumnOwnerEmail          = "owner_email"
	ColumnSessionID           = "session_id"
)

// Timestamp is a row timestamp. It accepts RFC 3339 values with or without a
// zone offset and with a space separator; zone-less values are read as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
}

// NewTimestamp wraps t, normalized to UTC.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t.UTC()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(time.RFC3339Nano) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(string(b), `"`)
	if raw == "" || raw == "null" {
		return nil
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("invalid timestamp %q", raw)
}
