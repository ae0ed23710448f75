// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
)

// errorStatusMap holds disjoint sentinels: no error in this module wraps two
// of them.
var errorStatusMap = map[error]int{
	ErrInvalidItemID: http.StatusBadRequest,
	ErrInvalidJSON:   http.StatusBadRequest,
	ErrInvalidForm:   http.StatusBadRequest,
	ErrInvalidFlag:   http.StatusBadRequest,

	validators.ErrValidation:          http.StatusBadRequest,
	service.ErrNotAuthenticated:       http.StatusUnauthorized,
	service.ErrRemoteNotConfigured:    http.StatusNotImplemented,
	service.ErrLocalUpdateUnsupported: http.StatusNotImplemented,

	adapter.ErrBadRequest:          http.StatusBadRequest,
	adapter.ErrUnauthorized:        http.StatusUnauthorized,
	adapter.ErrForbidden:           http.StatusForbidden,
	adapter.ErrNotFound:            http.StatusNotFound,
	adapter.ErrConflict:            http.StatusConflict,
	adapter.ErrPayloadTooLarge:     http.StatusRequestEntityTooLarge,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrUnavailable:         http.StatusServiceUnavailable,
	adapter.ErrInternalServerError: http.StatusBadGateway,
	adapter.ErrUnexpectedStatus:    http.StatusBadGateway,

	store.ErrItemNotFound: http.StatusNotFound,
	store.ErrItemNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	if service.IsRemoteError(err) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
