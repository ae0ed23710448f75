// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

var blobRefColumns = strings.Join([]string{
	models.ColumnFotoObjetoPath,
	models.ColumnFotoLocalizacaoPath,
	models.ColumnFotoObjetoURL,
	models.ColumnFotoLocalizacaoURL,
}, ",")

func eq(v string) string {
	return "eq." + v
}

// ilikeExact matches v case-insensitively with its pattern characters escaped.
func ilikeExact(v string) string {
	return "ilike." + likeEscaper.Replace(v)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func idEq(id int64) string {
	return eq(strconv.FormatInt(id, 10))
}

// SelectItems implements [TableAdapter].
// GET /rest/v1/<table>?select=*&order=id.desc[&owner_id=eq.X&session_id=eq.Y]
func (h *httpBackendAdapter) SelectItems(ctx context.Context, sess Session, filter *ItemFilter) ([]models.ItemRow, error) {
	req := h.request(ctx, sess).
		SetQueryParam("select", "*").
		SetQueryParam("order", models.ColumnID+".desc")
	if filter != nil {
		req.SetQueryParam(models.ColumnOwnerID, eq(filter.OwnerID)).
			SetQueryParam(models.ColumnSessionID, eq(filter.SessionID))
	}

	resp, err := req.Get(h.tablePath(h.table))
	if err != nil {
		return nil, h.fail("SelectItems", fmt.Errorf("select items request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, h.fail("SelectItems", err)
	}

	rows := make([]models.ItemRow, 0)
	if err = decodeBody(resp, &rows); err != nil {
		return nil, h.fail("SelectItems", err)
	}

	return rows, nil
}

// InsertItem implements [TableAdapter]. The row is not read back.
func (h *httpBackendAdapter) InsertItem(ctx context.Context, sess Session, row models.ItemRow) error {
	resp, err := h.request(ctx, sess).
		SetHeader(headerContentType, mimeJSON).
		SetHeader(headerPrefer, preferMinimal).
		SetBody([]models.ItemRow{row}).
		Post(h.tablePath(h.table))
	if err != nil {
		return h.fail("InsertItem", fmt.Errorf("insert item request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return h.fail("InsertItem", err)
	}

	return nil
}

// PatchItem implements [TableAdapter].
func (h *httpBackendAdapter) PatchItem(ctx context.Context, sess Session, id int64, fields map[string]any) error {
	resp, err := h.request(ctx, sess).
		SetHeader(headerContentType, mimeJSON).
		SetHeader(headerPrefer, preferMinimal).
		SetQueryParam(models.ColumnID, idEq(id)).
		SetBody(fields).
		Patch(h.tablePath(h.table))
	if err != nil {
		return h.fail("PatchItem", fmt.Errorf("patch item request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return h.fail("PatchItem", err)
	}

	return nil
}

// DeleteItem implements [TableAdapter].
func (h *httpBackendAdapter) DeleteItem(ctx context.Context, sess Session, id int64) error {
	resp, err := h.request(ctx, sess).
		SetQueryParam(models.ColumnID, idEq(id)).
		Delete(h.tablePath(h.table))
	if err != nil {
		return h.fail("DeleteItem", fmt.Errorf("delete item request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return h.fail("DeleteItem", err)
	}

	return nil
}

// SelectBlobRefs implements [TableAdapter]. The single-object Accept header
// makes the gateway answer PGRST116 when the row does not exist.
func (h *httpBackendAdapter) SelectBlobRefs(ctx context.Context, sess Session, id int64) (models.ItemBlobRefs, error) {
	resp, err := h.request(ctx, sess).
		SetHeader(headerAccept, mimeSingleObject).
		SetQueryParam("select", blobRefColumns).
		SetQueryParam(models.ColumnID, idEq(id)).
		Get(h.tablePath(h.table))
	if err != nil {
		return models.ItemBlobRefs{}, h.fail("SelectBlobRefs", fmt.Errorf("select blob refs request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ItemBlobRefs{}, h.fail("SelectBlobRefs", err)
	}

	var refs models.ItemBlobRefs
	if err = decodeBody(resp, &refs); err != nil {
		return models.ItemBlobRefs{}, h.fail("SelectBlobRefs", err)
	}

	return refs, nil
}

// ProbeTable implements [TableAdapter].
// GET /rest/v1/<table>?select=id&limit=1
func (h *httpBackendAdapter) ProbeTable(ctx context.Context, sess Session) error {
	resp, err := h.request(ctx, sess).
		SetQueryParam("select", models.ColumnID).
		SetQueryParam("limit", "1").
		Get(h.tablePath(h.table))
	if err != nil {
		return h.fail("ProbeTable", fmt.Errorf("probe request: %w", err))
	}

	if err = mapHTTPError(resp); err != nil {
		return h.fail("ProbeTable", err)
	}

	return nil
}

// IsAdmin implements [TableAdapter].
// GET /rest/v1/<admins>?select=email&email=ilike.<email>&limit=1
func (h *httpBackendAdapter) IsAdmin(ctx context.Context, sess Session, email string) (bool, error) {
	resp, err := h.request(ctx, sess).
		SetQueryParam("select", "email").
		SetQueryParam("email", ilikeExact(email)).
		SetQueryParam("limit", "1").
		Get(h.tablePath(h.adminsTable))
	if err != nil {
		return false, h.fail("IsAdmin", fmt.Errorf("admin lookup request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return false, h.fail("IsAdmin", err)
	}

	var rows []struct {
		Email string `json:"email"`
	}
	if err = decodeBody(resp, &rows); err != nil {
		return false, h.fail("IsAdmin", err)
	}

	return len(rows) > 0, nil
}
