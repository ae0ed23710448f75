// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the inventory keeper.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers together.
package workers

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// Worker is a background job.
//
// Run must not block: it starts the job and returns. The job ends when ctx
// is cancelled or Stop is called. Stop blocks until the job has exited and
// is a no-op for a job that is not running.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// StatusReporter reports the remote backend health.
type StatusReporter interface {
	GetBackendStatus(ctx context.Context) models.BackendStatus
}
