// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

const (
	itemsTable        = "items"
	localStorageTable = "local_storage"

	columnKey   = "key"
	columnValue = "value"

	// local photo columns hold data URLs, not blob URLs
	columnFotoObjeto      = "foto_objeto"
	columnFotoLocalizacao = "foto_localizacao"
)

var itemColumns = []string{
	models.ColumnID,
	models.ColumnNumeroPatrimonio,
	models.ColumnNomeObjeto,
	models.ColumnLocalizacaoTexto,
	columnFotoObjeto,
	columnFotoLocalizacao,
	models.ColumnCriadoEm,
}

// sqlite uses ? placeholders, which is squirrel's default format.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertItemQuery(item models.Item) (string, []any, error) {
	return builder.
		Insert(itemsTable).
		Columns(itemColumns[1:]...).
		Values(
			item.NumeroPatrimonio,
			item.NomeObjeto,
			item.LocalizacaoTexto,
			item.FotoObjeto,
			item.FotoLocalizacao,
			item.CriadoEm,
		).
		ToSql()
}

func buildSelectItemsQuery() (string, []any, error) {
	return builder.
		Select(itemColumns...).
		From(itemsTable).
		ToSql()
}

func buildDeleteItemQuery(id int64) (string, []any, error) {
	return builder.
		Delete(itemsTable).
		Where(sq.Eq{models.ColumnID: id}).
		ToSql()
}

func buildClearItemsQuery() (string, []any, error) {
	return builder.Delete(itemsTable).ToSql()
}

func buildGetValueQuery(key string) (string, []any, error) {
	return builder.
		Select(columnValue).
		From(localStorageTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
}

func buildSetValueQuery(key, value string) (string, []any, error) {
	return builder.
		Insert(localStorageTable).
		Columns(columnKey, columnValue).
		Values(key, value).
		Suffix("ON CONFLICT(" + columnKey + ") DO UPDATE SET " + columnValue + " = excluded." + columnValue).
		ToSql()
}

func buildDeleteValueQuery(key string) (string, []any, error) {
	return builder.
		Delete(localStorageTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
}
