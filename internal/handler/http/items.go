// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type existsResponse struct {
	Exists bool `json:"exists"`
}

// listItems serves GET /api/items. A non-empty q narrows the list.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventory.SearchItems(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, "*Handler.listItems", err)
		return
	}

	h.writeJSON(w, r, "*Handler.listItems", items, http.StatusOK)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	if err := parseItemForm(w, r); err != nil {
		h.writeError(w, r, "*Handler.addItem", err)
		return
	}

	files, err := formPhotos(r)
	if err != nil {
		h.writeError(w, r, "*Handler.addItem", err)
		return
	}

	item, err := h.inventory.AddItem(r.Context(), draftFromForm(r), files)
	if err != nil {
		h.writeError(w, r, "*Handler.addItem", err)
		return
	}

	h.writeJSON(w, r, "*Handler.addItem", item, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		h.writeError(w, r, "*Handler.updateItem", err)
		return
	}

	if err = parseItemForm(w, r); err != nil {
		h.writeError(w, r, "*Handler.updateItem", err)
		return
	}

	update, err := updateFromForm(r)
	if err != nil {
		h.writeError(w, r, "*Handler.updateItem", err)
		return
	}

	files, err := formPhotos(r)
	if err != nil {
		h.writeError(w, r, "*Handler.updateItem", err)
		return
	}

	if err = h.inventory.UpdateItem(r.Context(), id, update, files); err != nil {
		h.writeError(w, r, "*Handler.updateItem", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		h.writeError(w, r, "*Handler.deleteItem", err)
		return
	}

	if err = h.inventory.DeleteItem(r.Context(), id); err != nil {
		h.writeError(w, r, "*Handler.deleteItem", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// patrimonyExists serves GET /api/items/exists?numeroPatrimonio=.
func (h *Handler) patrimonyExists(w http.ResponseWriter, r *http.Request) {
	exists, err := h.inventory.PatrimonyExists(r.Context(), r.URL.Query().Get(fieldNumeroPatrimonio))
	if err != nil {
		h.writeError(w, r, "*Handler.patrimonyExists", err)
		return
	}

	h.writeJSON(w, r, "*Handler.patrimonyExists", existsResponse{Exists: exists}, http.StatusOK)
}

func itemID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidItemID
	}
	return id, nil
}
