// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http exposes the inventory facade as a small JSON API.
//
// Items are written with multipart forms so photos travel with the fields.
// Every request gets a trace id, an access log line, request metrics and
// optional gzip compression before it reaches a handler. Handlers talk only
// to the [Inventory] facade and map its errors to status codes through
// errorStatusMap.
package http
