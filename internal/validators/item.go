// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldNomeObjeto targets the required display name of an item.
	FieldNomeObjeto = "nome_objeto"

	// FieldNumeroPatrimonio targets the patrimony number, which must keep at
	// least one digit after sanitizing.
	FieldNumeroPatrimonio = "numero_patrimonio"

	// FieldUpdateFields requires an update to change at least one field.
	FieldUpdateFields = "update_fields"

	// FieldPhotoSize targets the 10 MiB upload limit.
	FieldPhotoSize = "photo_size"

	// FieldPhotoContentType targets the declared MIME type of a photo.
	FieldPhotoContentType = "photo_content_type"

	// FieldPhotoExtension targets the file name extension of a photo.
	FieldPhotoExtension = "photo_extension"
)

// MaxPhotoSize is the largest accepted photo in bytes.
const MaxPhotoSize = 10 * 1024 * 1024

var allowedPhotoContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

var allowedPhotoExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}
