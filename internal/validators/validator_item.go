// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// ItemValidator checks item drafts, partial updates and photo files.
// It never performs I/O.
type ItemValidator struct {
}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.ItemDraft:
		return v.validateDraft(ctx, *value, fields...)

	case models.ItemUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.ItemUpdate:
		return v.validateUpdate(ctx, *value, fields...)

	case *models.PhotoFile:
		if value == nil {
			return nil
		}
		return v.validatePhoto(ctx, *value, fields...)
	case models.PhotoFile:
		return v.validatePhoto(ctx, value, fields...)

	case models.PhotoFiles:
		return v.validatePhotoFiles(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateDraft(_ context.Context, draft models.ItemDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNomeObjeto, FieldNumeroPatrimonio}
	}

	for _, f := range fields {
		switch f {
		case FieldNomeObjeto:
			if strings.TrimSpace(draft.NomeObjeto) == "" {
				return ErrEmptyNomeObjeto
			}
		case FieldNumeroPatrimonio:
			if utils.SanitizeDigits(draft.NumeroPatrimonio) == "" {
				return ErrEmptyNumeroPatrimonio
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ItemValidator) validateUpdate(_ context.Context, update models.ItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNomeObjeto, FieldNumeroPatrimonio}
	}

	for _, f := range fields {
		switch f {
		case FieldNomeObjeto:
			if update.NomeObjeto != nil && strings.TrimSpace(*update.NomeObjeto) == "" {
				return ErrEmptyNomeObjeto
			}
		case FieldNumeroPatrimonio:
			if update.NumeroPatrimonio != nil && utils.SanitizeDigits(*update.NumeroPatrimonio) == "" {
				return ErrEmptyNumeroPatrimonio
			}
		case FieldUpdateFields:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePhoto applies the rules in a fixed order: size, content type,
// extension. The first violation wins.
func (v *ItemValidator) validatePhoto(_ context.Context, file models.PhotoFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPhotoSize, FieldPhotoContentType, FieldPhotoExtension}
	}

	for _, f := range fields {
		switch f {
		case FieldPhotoSize:
			if file.Size() > MaxPhotoSize {
				return ErrPhotoTooLarge
			}
		case FieldPhotoContentType:
			if _, ok := allowedPhotoContentTypes[strings.ToLower(file.ContentType)]; !ok {
				return ErrPhotoContentType
			}
		case FieldPhotoExtension:
			if _, ok := allowedPhotoExtensions[PhotoExtension(file)]; !ok {
				return ErrPhotoExtension
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ItemValidator) validatePhotoFiles(ctx context.Context, files models.PhotoFiles, fields ...string) error {
	if files.FotoObjeto != nil {
		if err := v.validatePhoto(ctx, *files.FotoObjeto, fields...); err != nil {
			return fmt.Errorf("object photo: %w", err)
		}
	}
	if files.FotoLocalizacao != nil {
		if err := v.validatePhoto(ctx, *files.FotoLocalizacao, fields...); err != nil {
			return fmt.Errorf("location photo: %w", err)
		}
	}

	return nil
}

// PhotoExtension returns the lower-cased extension used for the blob key.
// An unnamed file is treated as "jpg".
func PhotoExtension(file models.PhotoFile) string {
	if file.Name == "" {
		return "jpg"
	}
	return strings.ToLower(file.Ext())
}
