// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

func (h *Handler) backendStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, "*Handler.backendStatus", h.inventory.GetBackendStatus(r.Context()), http.StatusOK)
}
