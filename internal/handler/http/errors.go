// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors. All map to 400 Bad Request.
var (
	ErrInvalidItemID = errors.New("invalid item id")
	ErrInvalidJSON   = errors.New("invalid JSON was passed")
	ErrInvalidForm   = errors.New("invalid form data")
	ErrInvalidFlag   = errors.New("invalid boolean flag")
)
