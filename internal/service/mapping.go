// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// rowToItem maps a remote row onto an Item. It never fails: a missing
// creation time becomes now, unsafe photo URLs become nil.
func rowToItem(row models.ItemRow, now time.Time) models.Item {
	criadoEm := now.UnixMilli()
	if row.CriadoEm != nil && !row.CriadoEm.IsZero() {
		criadoEm = row.CriadoEm.UnixMilli()
	}

	return models.Item{
		ID:                  row.ID,
		NumeroPatrimonio:    utils.SanitizeDigits(row.NumeroPatrimonio),
		NomeObjeto:          row.NomeObjeto,
		LocalizacaoTexto:    row.LocalizacaoTexto,
		FotoObjeto:          utils.SafePhotoURL(row.FotoObjetoURL),
		FotoLocalizacao:     utils.SafePhotoURL(row.FotoLocalizacaoURL),
		FotoObjetoPath:      row.FotoObjetoPath,
		FotoLocalizacaoPath: row.FotoLocalizacaoPath,
		OwnerID:             row.OwnerID,
		OwnerEmail:          row.OwnerEmail,
		SessionID:           row.SessionID,
		CriadoEm:            criadoEm,
	}
}

func rowsToItems(rows []models.ItemRow, now time.Time) []models.Item {
	items := make([]models.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToItem(row, now))
	}
	return items
}

// draftToRow builds the insert payload. The creation time is left to the
// table default.
func draftToRow(draft models.ItemDraft, objeto, localizacao *models.UploadedPhoto, user models.User, sessionID string) models.ItemRow {
	row := models.ItemRow{
		NumeroPatrimonio: utils.SanitizeDigits(draft.NumeroPatrimonio),
		NomeObjeto:       draft.NomeObjeto,
		LocalizacaoTexto: draft.LocalizacaoTexto,
		OwnerID:          optional(user.ID),
		OwnerEmail:       optional(user.Email),
		SessionID:        optional(sessionID),
	}
	if objeto != nil {
		row.FotoObjetoURL = &objeto.URL
		row.FotoObjetoPath = &objeto.Path
	}
	if localizacao != nil {
		row.FotoLocalizacaoURL = &localizacao.URL
		row.FotoLocalizacaoPath = &localizacao.Path
	}
	return row
}

// updateToPatch returns the columns an update changes. Removal flags win
// over a new file for the same photo.
func updateToPatch(update models.ItemUpdate, objeto, localizacao *models.UploadedPhoto) map[string]any {
	patch := make(map[string]any)

	if update.NumeroPatrimonio != nil {
		patch[models.ColumnNumeroPatrimonio] = utils.SanitizeDigits(*update.NumeroPatrimonio)
	}
	if update.NomeObjeto != nil {
		patch[models.ColumnNomeObjeto] = *update.NomeObjeto
	}
	if update.LocalizacaoTexto != nil {
		patch[models.ColumnLocalizacaoTexto] = nilIfEmpty(*update.LocalizacaoTexto)
	}

	switch {
	case update.RemoveFotoObjeto:
		patch[models.ColumnFotoObjetoURL] = nil
		patch[models.ColumnFotoObjetoPath] = nil
	case objeto != nil:
		patch[models.ColumnFotoObjetoURL] = objeto.URL
		patch[models.ColumnFotoObjetoPath] = objeto.Path
	}

	switch {
	case update.RemoveFotoLocalizacao:
		patch[models.ColumnFotoLocalizacaoURL] = nil
		patch[models.ColumnFotoLocalizacaoPath] = nil
	case localizacao != nil:
		patch[models.ColumnFotoLocalizacaoURL] = localizacao.URL
		patch[models.ColumnFotoLocalizacaoPath] = localizacao.Path
	}

	return patch
}

// draftToLocalItem is the local store projection of a new item. Photos are
// embedded as data URLs.
func draftToLocalItem(draft models.ItemDraft, files models.PhotoFiles, now time.Time) models.Item {
	item := models.Item{
		NumeroPatrimonio: utils.SanitizeDigits(draft.NumeroPatrimonio),
		NomeObjeto:       draft.NomeObjeto,
		LocalizacaoTexto: draft.LocalizacaoTexto,
		CriadoEm:         now.UnixMilli(),
	}
	if f := files.FotoObjeto; f != nil {
		item.FotoObjeto = optional(utils.DataURL(f.ContentType, f.Data))
	}
	if f := files.FotoLocalizacao; f != nil {
		item.FotoLocalizacao = optional(utils.DataURL(f.ContentType, f.Data))
	}
	return item
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
