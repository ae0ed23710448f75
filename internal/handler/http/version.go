// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, "*Handler.getVersion", h.appInfo.GetAppInfo(r.Context()), http.StatusOK)
}
