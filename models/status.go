// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BackendStatus reports the remote backend health as seen by the router.
type BackendStatus struct {
	// Enabled is true when remote credentials are configured.
	Enabled bool `json:"enabled"`

	// Reachable is true when the last probe read of the remote table succeeded.
	Reachable bool `json:"reachable"`

	// Error carries a diagnostic of the failed probe, nil otherwise.
	Error *string `json:"error"`
}

// BestEffortResult is returned by operations whose failure must not abort
// the caller: blob removal, local cache purge and remote sign-out.
// Callers may ignore it.
type BestEffortResult struct {
	Err error
}

// OK reports whether the operation completed without error.
func (r BestEffortResult) OK() bool {
	return r.Err == nil
}
