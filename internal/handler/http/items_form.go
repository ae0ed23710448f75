// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// Form field names of the item endpoints.
const (
	fieldNumeroPatrimonio      = "numeroPatrimonio"
	fieldNomeObjeto            = "nomeObjeto"
	fieldLocalizacaoTexto      = "localizacaoTexto"
	fieldFotoObjeto            = "fotoObjeto"
	fieldFotoLocalizacao       = "fotoLocalizacao"
	fieldRemoveFotoObjeto      = "removeFotoObjeto"
	fieldRemoveFotoLocalizacao = "removeFotoLocalizacao"
)

const (
	// maxFormSize bounds a whole item request: two photos at the size limit
	// plus the text fields.
	maxFormSize   = 2*validators.MaxPhotoSize + 1<<20
	maxFormMemory = 32 << 20
)

// parseItemForm accepts multipart and url-encoded bodies.
func parseItemForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)

	err := r.ParseMultipartForm(maxFormMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	return nil
}

func formValue(r *http.Request, key string) (string, bool) {
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func formPtr(r *http.Request, key string) *string {
	value, ok := formValue(r, key)
	if !ok {
		return nil
	}
	return &value
}

func formFlag(r *http.Request, key string) (bool, error) {
	value, ok := formValue(r, key)
	if !ok || value == "" {
		return false, nil
	}

	flag, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrInvalidFlag, key)
	}
	return flag, nil
}

// formPhoto reads an optional photo. An absent or empty file part yields nil.
func formPhoto(r *http.Request, key string) (*models.PhotoFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	file, header, err := r.FormFile(key)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	if len(data) == 0 && header.Filename == "" {
		return nil, nil
	}

	return &models.PhotoFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func formPhotos(r *http.Request) (models.PhotoFiles, error) {
	objeto, err := formPhoto(r, fieldFotoObjeto)
	if err != nil {
		return models.PhotoFiles{}, err
	}
	localizacao, err := formPhoto(r, fieldFotoLocalizacao)
	if err != nil {
		return models.PhotoFiles{}, err
	}
	return models.PhotoFiles{FotoObjeto: objeto, FotoLocalizacao: localizacao}, nil
}

func draftFromForm(r *http.Request) models.ItemDraft {
	numero, _ := formValue(r, fieldNumeroPatrimonio)
	nome, _ := formValue(r, fieldNomeObjeto)

	draft := models.ItemDraft{NumeroPatrimonio: numero, NomeObjeto: nome}
	if loc, ok := formValue(r, fieldLocalizacaoTexto); ok && loc != "" {
		draft.LocalizacaoTexto = &loc
	}
	return draft
}

func updateFromForm(r *http.Request) (models.ItemUpdate, error) {
	update := models.ItemUpdate{
		NumeroPatrimonio: formPtr(r, fieldNumeroPatrimonio),
		NomeObjeto:       formPtr(r, fieldNomeObjeto),
		LocalizacaoTexto: formPtr(r, fieldLocalizacaoTexto),
	}

	var err error
	if update.RemoveFotoObjeto, err = formFlag(r, fieldRemoveFotoObjeto); err != nil {
		return models.ItemUpdate{}, err
	}
	if update.RemoveFotoLocalizacao, err = formFlag(r, fieldRemoveFotoLocalizacao); err != nil {
		return models.ItemUpdate{}, err
	}
	return update, nil
}
