// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/metrics"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// BackendRouter is the single entry point for item and auth operations.
//
// With no remote configured every item call goes to the local backend.
// Otherwise the remote backend is tried first and a *RemoteError makes the
// router run the local equivalent once. Invalid input is returned as is and
// never falls back. Updates have no local equivalent, so their remote
// failures are returned.
type BackendRouter struct {
	remote ItemBackend
	local  ItemBackend
	prober StatusProber
	auth   AuthGateway

	logger *logger.Logger
}

// NewBackendRouter builds a router. A nil remote means the remote backend is
// not configured; prober and auth are then unused and may be nil.
func NewBackendRouter(remote, local ItemBackend, prober StatusProber, auth AuthGateway, logger *logger.Logger) *BackendRouter {
	return &BackendRouter{
		remote: remote,
		local:  local,
		prober: prober,
		auth:   auth,
		logger: logger,
	}
}

// RemoteEnabled reports whether remote credentials are configured.
func (r *BackendRouter) RemoteEnabled() bool {
	return r.remote != nil
}

func (r *BackendRouter) AddItem(ctx context.Context, draft models.ItemDraft, files models.PhotoFiles) (models.Item, error) {
	if !r.RemoteEnabled() {
		return r.addLocal(ctx, draft, files)
	}

	item, err := r.remote.Add(ctx, draft, files)
	metrics.ObserveOperation(metrics.BackendRemote, "add", err)
	if !r.shouldFallBack(ctx, "add", err) {
		return item, err
	}

	return r.addLocal(ctx, draft, files)
}

// GetItems lists the visible items. When the remote read fails the local
// cache is only exposed to a user with a usable persisted session; the auth
// service is not consulted since it is usually down as well.
func (r *BackendRouter) GetItems(ctx context.Context) ([]models.Item, error) {
	if !r.RemoteEnabled() {
		return r.listLocal(ctx)
	}

	items, err := r.remote.List(ctx)
	metrics.ObserveOperation(metrics.BackendRemote, "list", err)
	if !r.shouldFallBack(ctx, "list", err) {
		return items, err
	}

	if !r.auth.SignedIn(ctx) {
		return []models.Item{}, nil
	}
	return r.listLocal(ctx)
}

// SearchItems returns the visible items whose patrimony number, name or
// location contains term, ignoring case. A blank term matches everything.
func (r *BackendRouter) SearchItems(ctx context.Context, term string) ([]models.Item, error) {
	items, err := r.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items, nil
	}

	found := make([]models.Item, 0, len(items))
	for _, item := range items {
		if matchesTerm(item, term) {
			found = append(found, item)
		}
	}
	return found, nil
}

// PatrimonyExists reports whether a visible item already carries numero
// once both are reduced to digits.
func (r *BackendRouter) PatrimonyExists(ctx context.Context, numero string) (bool, error) {
	numero = utils.SanitizeDigits(numero)
	if numero == "" {
		return false, nil
	}

	items, err := r.GetItems(ctx)
	if err != nil {
		return false, err
	}

	for _, item := range items {
		if item.NumeroPatrimonio == numero {
			return true, nil
		}
	}
	return false, nil
}

func (r *BackendRouter) DeleteItem(ctx context.Context, id int64) error {
	if !r.RemoteEnabled() {
		return r.deleteLocal(ctx, id)
	}

	err := r.remote.Delete(ctx, id)
	metrics.ObserveOperation(metrics.BackendRemote, "delete", err)
	if !r.shouldFallBack(ctx, "delete", err) {
		return err
	}

	return r.deleteLocal(ctx, id)
}

func (r *BackendRouter) UpdateItem(ctx context.Context, id int64, update models.ItemUpdate, files models.PhotoFiles) error {
	if !r.RemoteEnabled() {
		err := r.local.Update(ctx, id, update, files)
		metrics.ObserveOperation(metrics.BackendLocal, "update", err)
		return err
	}

	err := r.remote.Update(ctx, id, update, files)
	metrics.ObserveOperation(metrics.BackendRemote, "update", err)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "BackendRouter.UpdateItem").Int64("id", id).Msg("remote update failed")
	}
	return err
}

// GetBackendStatus probes the remote table. It never fails; a failed probe
// is reported in the status.
func (r *BackendRouter) GetBackendStatus(ctx context.Context) models.BackendStatus {
	if !r.RemoteEnabled() {
		return models.BackendStatus{}
	}

	status := models.BackendStatus{Enabled: true, Reachable: true}
	if err := r.prober.Probe(ctx); err != nil {
		status.Reachable = false
		status.Error = probeMessage(err)
	}
	metrics.SetRemoteReachable(status.Reachable)

	return status
}

func (r *BackendRouter) IsAdmin(ctx context.Context) bool {
	if !r.RemoteEnabled() {
		return false
	}
	return r.auth.IsAdmin(ctx)
}

func (r *BackendRouter) SignIn(ctx context.Context, creds models.Credentials) (models.User, error) {
	if !r.RemoteEnabled() {
		return models.User{}, ErrRemoteNotConfigured
	}
	return r.auth.SignIn(ctx, creds)
}

func (r *BackendRouter) SignOut(ctx context.Context) error {
	if !r.RemoteEnabled() {
		return ErrRemoteNotConfigured
	}
	return r.auth.SignOut(ctx)
}

// GetAuthUser returns the signed-in user, nil when there is none.
func (r *BackendRouter) GetAuthUser(ctx context.Context) *models.User {
	if !r.RemoteEnabled() {
		return nil
	}
	return r.auth.CurrentUser(ctx)
}

// shouldFallBack reports whether err is a remote failure the local backend
// can stand in for, recording it when so.
func (r *BackendRouter) shouldFallBack(ctx context.Context, op string, err error) bool {
	if err == nil || !IsRemoteError(err) {
		return false
	}

	logger.FromContext(ctx).Warn().Err(err).Str("func", "BackendRouter."+op).Msg("remote backend failed, using local store")
	metrics.ObserveFallback(op)
	return true
}

func (r *BackendRouter) addLocal(ctx context.Context, draft models.ItemDraft, files models.PhotoFiles) (models.Item, error) {
	item, err := r.local.Add(ctx, draft, files)
	metrics.ObserveOperation(metrics.BackendLocal, "add", err)
	return item, err
}

func (r *BackendRouter) listLocal(ctx context.Context) ([]models.Item, error) {
	items, err := r.local.List(ctx)
	metrics.ObserveOperation(metrics.BackendLocal, "list", err)
	return items, err
}

func (r *BackendRouter) deleteLocal(ctx context.Context, id int64) error {
	err := r.local.Delete(ctx, id)
	metrics.ObserveOperation(metrics.BackendLocal, "delete", err)
	return err
}

func matchesTerm(item models.Item, term string) bool {
	if strings.Contains(item.NumeroPatrimonio, term) ||
		strings.Contains(strings.ToLower(item.NomeObjeto), term) {
		return true
	}
	return item.LocalizacaoTexto != nil && strings.Contains(strings.ToLower(*item.LocalizacaoTexto), term)
}

// probeMessage renders a probe failure as "<code>: <message>" when the
// backend supplied them.
func probeMessage(err error) *string {
	msg := err.Error()

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		msg = apiErr.Error()
	}
	return &msg
}
