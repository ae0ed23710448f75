// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// inventory keeper. It aggregates all sub-configurations and is populated by
// merging defaults, a .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version and log level.
	App App `envPrefix:"APP_"`

	// Remote holds the hosted backend credentials and resource names.
	// The remote backend is used only when both URL and AnonKey are set.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the on-device database settings used by the local
	// fallback store and for persisted session state.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Remote describes the hosted backend: a REST table gateway, blob storage
// and an auth service under one base URL.
type Remote struct {
	// URL is the project base URL (e.g. "https://xyz.supabase.co").
	// Env: REMOTE_URL
	URL string `env:"URL"`

	// AnonKey is the public project API key sent as the apikey header.
	// Env: REMOTE_ANON_KEY
	AnonKey string `env:"ANON_KEY"`

	// Table is the name of the items table.
	// Env: REMOTE_TABLE
	Table string `env:"TABLE"`

	// Bucket is the blob storage bucket holding item photos.
	// Env: REMOTE_BUCKET
	Bucket string `env:"BUCKET"`

	// AdminsTable is the allow-list table of administrator e-mails.
	// Env: REMOTE_ADMINS_TABLE
	AdminsTable string `env:"ADMINS_TABLE"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Enabled reports whether remote credentials are configured.
func (r Remote) Enabled() bool {
	return r.URL != "" && r.AnonKey != ""
}

// Storage groups the configuration for local storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path (e.g. "inventario.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP API.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// StatusProbeInterval is how often the backend status probe runs.
	// Env: WORKERS_STATUS_PROBE_INTERVAL
	StatusProbeInterval time.Duration `env:"STATUS_PROBE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (after loading the optional .env file)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
