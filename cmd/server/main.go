// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/handler"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/server"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/workers"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("inventory-keeper").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("inventory-keeper", cfg.App.LogLevel)
	log.Debug().Any("config", redacted(*cfg)).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	var backend adapter.BackendAdapter
	if cfg.Remote.Enabled() {
		backend, err = adapter.NewHTTPBackendAdapter(cfg.Remote, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating remote backend adapter")
		}
	} else {
		log.Warn().Msg("remote backend is not configured, using the local store only")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, backend, cfg.App, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs := workers.NewWorkers()
	if services.Router.RemoteEnabled() {
		jobs = workers.NewWorkers(
			workers.NewStatusProbe(services.Router, cfg.Workers.StatusProbeInterval, log.WithComponent("status-probe")),
		)
	}

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// redacted hides the remote API key from debug output.
func redacted(cfg config.StructuredConfig) config.StructuredConfig {
	if cfg.Remote.AnonKey != "" {
		cfg.Remote.AnonKey = "***"
	}
	return cfg
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
