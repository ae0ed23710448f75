// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment through the env and envPrefix
// tags of [StructuredConfig].
//
// Remote credentials are trimmed so a whitespace-only value does not count
// as configured.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Remote.URL = strings.TrimSpace(cfg.Remote.URL)
	cfg.Remote.AnonKey = strings.TrimSpace(cfg.Remote.AnonKey)

	return nil
}
