// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

type userResponse struct {
	User *models.User `json:"user"`
}

type adminResponse struct {
	Admin bool `json:"admin"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.writeError(w, r, "*Handler.login", ErrInvalidJSON)
		return
	}

	user, err := h.inventory.SignIn(r.Context(), creds)
	if err != nil {
		h.writeError(w, r, "*Handler.login", err)
		return
	}

	h.writeJSON(w, r, "*Handler.login", userResponse{User: &user}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.inventory.SignOut(r.Context()); err != nil {
		h.writeError(w, r, "*Handler.logout", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authUser always answers 200; the user is null when nobody is signed in.
func (h *Handler) authUser(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, "*Handler.authUser", userResponse{User: h.inventory.GetAuthUser(r.Context())}, http.StatusOK)
}

func (h *Handler) authAdmin(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, "*Handler.authAdmin", adminResponse{Admin: h.inventory.IsAdmin(r.Context())}, http.StatusOK)
}
