// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is the parent of every rule violation reported by this
// package. Callers match it with errors.Is to tell bad input apart from
// storage or network failures.
var ErrValidation = errors.New("validation error")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Item rule violations.
var (
	ErrEmptyNomeObjeto       = fmt.Errorf("%w: object name is required", ErrValidation)
	ErrEmptyNumeroPatrimonio = fmt.Errorf("%w: patrimony number must contain digits", ErrValidation)
	ErrNoFieldsToUpdate      = fmt.Errorf("%w: at least one field must be provided for update", ErrValidation)
)

// Photo rule violations. Each rule has its own message.
var (
	ErrPhotoTooLarge    = fmt.Errorf("%w: file exceeds 10MB", ErrValidation)
	ErrPhotoContentType = fmt.Errorf("%w: file type not allowed", ErrValidation)
	ErrPhotoExtension   = fmt.Errorf("%w: file extension not allowed", ErrValidation)
)
