// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
)

const defaultProbeInterval = time.Minute

type statusProbe struct {
	reporter StatusReporter
	interval time.Duration

	mu        sync.Mutex
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	reachable *bool

	logger *logger.Logger
}

// NewStatusProbe creates a worker that checks the remote backend once on
// start and then every interval, keeping the reachability gauge current and
// logging every change. A non-positive interval defaults to one minute.
func NewStatusProbe(reporter StatusReporter, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &statusProbe{
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

func (p *statusProbe) Run(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.probe(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.probe(jobCtx)
			}
		}
	}()
}

func (p *statusProbe) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *statusProbe) probe(ctx context.Context) {
	status := p.reporter.GetBackendStatus(ctx)
	if !status.Enabled {
		return
	}

	p.mu.Lock()
	changed := p.reachable == nil || *p.reachable != status.Reachable
	p.reachable = &status.Reachable
	p.mu.Unlock()

	if !changed {
		return
	}

	if status.Reachable {
		p.logger.Info().Str("func", "statusProbe.probe").Msg("remote backend reachable")
		return
	}

	event := p.logger.Warn().Str("func", "statusProbe.probe")
	if status.Error != nil {
		event = event.Str("error", *status.Error)
	}
	event.Msg("remote backend unreachable, items are served from the local store")
}
