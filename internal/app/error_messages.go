// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the fixed response messages of the inventory API.
//
// Errors whose text may carry internal detail (SQL, file paths) are replaced
// by one of these messages before they reach a client.
package app

const (
	// MsgInternalServerError replaces the text of unexpected local failures.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is returned for paths no route serves.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed is returned for known paths hit with an
	// unsupported method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgRequestTooLarge is returned when an item form exceeds the body limit.
	MsgRequestTooLarge = "request body too large"
)
