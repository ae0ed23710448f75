// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the inventory server.
// Collectors are package-level and registered with the default registry in
// init, so any layer can update them.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "inventory"

// Backend labels.
const (
	BackendRemote = "remote"
	BackendLocal  = "local"
)

// Result labels.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	// backendOperations counts item operations per backend and outcome.
	backendOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_operations_total",
			Help:      "Item operations executed per backend and result",
		},
		[]string{"backend", "operation", "result"},
	)

	// fallbacks counts remote failures recovered by the local store.
	fallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallbacks_total",
			Help:      "Remote operations that fell back to the local store",
		},
		[]string{"operation"},
	)

	// remoteReachable is 1 when the last status probe succeeded.
	remoteReachable = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "remote_reachable",
			Help:      "Whether the last remote status probe succeeded (1) or not (0)",
		},
	)

	// blobRemovalFailures counts best-effort blob removals that failed.
	blobRemovalFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blob_removal_failures_total",
			Help:      "Best-effort photo blob removals that failed",
		},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	buildInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "info",
			Help:      "Build information (always 1)",
		},
		[]string{"version"},
	)
)

func init() {
	prometheus.MustRegister(
		backendOperations,
		fallbacks,
		remoteReachable,
		blobRemovalFailures,
		httpRequestsTotal,
		httpRequestDuration,
		buildInfo,
	)
}

// ObserveOperation records one item operation on backend.
func ObserveOperation(backend, operation string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	backendOperations.WithLabelValues(backend, operation, result).Inc()
}

// ObserveFallback records a remote failure recovered locally.
func ObserveFallback(operation string) {
	fallbacks.WithLabelValues(operation).Inc()
}

// SetRemoteReachable publishes the outcome of a status probe.
func SetRemoteReachable(reachable bool) {
	if reachable {
		remoteReachable.Set(1)
		return
	}
	remoteReachable.Set(0)
}

func ObserveBlobRemovalFailure() {
	blobRemovalFailures.Inc()
}

// ObserveHTTPRequest records a served request. path should be a route
// pattern, not the raw URL, to keep cardinality bounded.
func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// SetBuildInfo exposes the running version.
func SetBuildInfo(version string) {
	if version == "" {
		version = "dev"
	}
	buildInfo.WithLabelValues(version).Set(1)
}
