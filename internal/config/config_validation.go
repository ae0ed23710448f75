// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A config without remote credentials is valid: the application then runs on
// the local store only. Setting just one of URL and AnonKey is rejected since
// it is almost certainly a typo.
func (cfg *StructuredConfig) validate() error {
	if (cfg.Remote.URL == "") != (cfg.Remote.AnonKey == "") {
		return fmt.Errorf("%w: both url and anon key must be set", ErrInvalidRemoteConfigs)
	}

	if cfg.Remote.Enabled() {
		u, err := url.Parse(cfg.Remote.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: url must include scheme and host", ErrInvalidRemoteConfigs)
		}
		if cfg.Remote.Table == "" || cfg.Remote.Bucket == "" {
			return fmt.Errorf("%w: table and bucket are required", ErrInvalidRemoteConfigs)
		}
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.StatusProbeInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
