// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type countingReporter struct {
	calls     atomic.Int32
	reachable atomic.Bool
}

func (r *countingReporter) GetBackendStatus(context.Context) models.BackendStatus {
	r.calls.Add(1)
	status := models.BackendStatus{Enabled: true, Reachable: r.reachable.Load()}
	if !status.Reachable {
		msg := "42P01: relation does not exist"
		status.Error = &msg
	}
	return status
}

func TestStatusProbe_ProbesOnStartAndOnTick(t *testing.T) {
	reporter := &countingReporter{}
	probe := NewStatusProbe(reporter, 10*time.Millisecond, logger.Nop())

	probe.Run(context.Background())
	defer probe.Stop()

	assert.Eventually(t, func() bool { return reporter.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestStatusProbe_StopHaltsProbing(t *testing.T) {
	reporter := &countingReporter{}
	probe := NewStatusProbe(reporter, 5*time.Millisecond, logger.Nop())

	probe.Run(context.Background())
	assert.Eventually(t, func() bool { return reporter.calls.Load() >= 1 }, time.Second, time.Millisecond)
	probe.Stop()

	after := reporter.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, reporter.calls.Load())
}

func TestStatusProbe_ContextCancelStops(t *testing.T) {
	reporter := &countingReporter{}
	probe := NewStatusProbe(reporter, 5*time.Millisecond, logger.Nop()).(*statusProbe)

	ctx, cancel := context.WithCancel(context.Background())
	probe.Run(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		probe.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("probe did not exit after context cancel")
	}
}

func TestStatusProbe_StopWithoutRun(t *testing.T) {
	probe := NewStatusProbe(&countingReporter{}, time.Minute, logger.Nop())

	// no-op when not running
	probe.Stop()
}

func TestStatusProbe_TracksTransitions(t *testing.T) {
	reporter := &countingReporter{}
	probe := NewStatusProbe(reporter, time.Hour, logger.Nop()).(*statusProbe)
	ctx := context.Background()

	probe.probe(ctx)
	if assert.NotNil(t, probe.reachable) {
		assert.False(t, *probe.reachable)
	}

	reporter.reachable.Store(true)
	probe.probe(ctx)
	assert.True(t, *probe.reachable)
}

func TestNewStatusProbe_DefaultInterval(t *testing.T) {
	probe := NewStatusProbe(&countingReporter{}, 0, logger.Nop()).(*statusProbe)
	assert.Equal(t, defaultProbeInterval, probe.interval)
}
