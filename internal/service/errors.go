// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
)

var (
	// ErrRemoteNotConfigured signals that no remote backend credentials are
	// set. It is a routing signal, not a failure.
	ErrRemoteNotConfigured = errors.New("remote backend is not configured")

	// ErrNotAuthenticated is returned when a remote write is attempted with
	// no signed-in user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrLocalUpdateUnsupported is returned for edits while only the local
	// store is available.
	ErrLocalUpdateUnsupported = errors.New("local store does not support updates")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

var (
	ErrInvalidCredentials = fmt.Errorf("%w: email and password are required", validators.ErrValidation)
	ErrInvalidItemID      = fmt.Errorf("%w: item id must be positive", validators.ErrValidation)
)

// RemoteError wraps any failure of a remote item operation. The router
// recovers from it by running the local equivalent.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return "remote " + e.Op + ": " + e.Err.Error()
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func remoteErr(op string, err error) error {
	return &RemoteError{Op: op, Err: err}
}

// IsRemoteError reports whether err carries a [RemoteError].
func IsRemoteError(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
