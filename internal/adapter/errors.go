// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError is a non-2xx response of the backend.
//
// Code is the backend error code (a PostgREST code such as PGRST116, a
// Postgres SQLSTATE, or an auth/storage error name) and may be empty.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details string
	Hint    string

	// Err is the sentinel the response was classified as.
	Err error
}

// Error renders "code: message", falling back to whichever part is present.
func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return e.Code + ": " + e.Message
	case e.Code != "":
		return e.Code
	case e.Message != "":
		return e.Message
	default:
		return e.Err.Error()
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}
