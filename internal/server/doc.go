// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP API together with the background workers and
// shuts both down on SIGINT, SIGTERM or SIGQUIT.
package server
