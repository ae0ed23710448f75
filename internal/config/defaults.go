// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other source.
const (
	DefaultTable               = "inventario"
	DefaultBucket              = "inventario-fotos"
	DefaultAdminsTable         = "admins"
	DefaultRequestTimeout      = 15 * time.Second
	DefaultDSN                 = "inventario.db"
	DefaultHTTPAddress         = "localhost:8080"
	DefaultServerTimeout       = 30 * time.Second
	DefaultStatusProbeInterval = time.Minute
	DefaultEnvFile             = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: "debug"},
		Remote: Remote{
			Table:          DefaultTable,
			Bucket:         DefaultBucket,
			AdminsTable:    DefaultAdminsTable,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerTimeout,
		},
		Workers: Workers{StatusProbeInterval: DefaultStatusProbeInterval},
	}
}
