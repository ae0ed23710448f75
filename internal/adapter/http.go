// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
)

const (
	restPrefix    = "/rest/v1/"
	storagePrefix = "/storage/v1/object/"
	authPrefix    = "/auth/v1/"

	headerAPIKey        = "apikey"
	headerAuthorization = "Authorization"
	headerSessionID     = "x-session-id"
	headerPrefer        = "Prefer"
	headerContentType   = "Content-Type"
	headerAccept        = "Accept"

	mimeJSON         = "application/json"
	mimeSingleObject = "application/vnd.pgrst.object+json"
	preferMinimal    = "return=minimal"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient

	baseURL     string
	anonKey     string
	table       string
	bucket      string
	adminsTable string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs the REST implementation of [BackendAdapter]
// for the project at cfg.URL. It fails when the URL cannot be normalized or
// the anonymous key is missing.
func NewHTTPBackendAdapter(cfg config.Remote, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote url: %w", err)
	}
	if strings.TrimSpace(cfg.AnonKey) == "" {
		return nil, fmt.Errorf("invalid remote config: empty anon key")
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout).WithAPIKey(cfg.AnonKey)

	return &httpBackendAdapter{
		client:      client,
		baseURL:     baseURL,
		anonKey:     cfg.AnonKey,
		table:       cfg.Table,
		bucket:      cfg.Bucket,
		adminsTable: cfg.AdminsTable,
		logger:      logger.WithComponent("adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request returns a request carrying the session headers. Without an access
// token the anonymous key is sent as the bearer.
func (h *httpBackendAdapter) request(ctx context.Context, sess Session) *resty.Request {
	token := sess.AccessToken
	if token == "" {
		token = h.anonKey
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(headerAuthorization, "Bearer "+token)
	if sess.SessionID != "" {
		req.SetHeader(headerSessionID, sess.SessionID)
	}
	return req
}

func (h *httpBackendAdapter) tablePath(table string) string {
	return restPrefix + url.PathEscape(table)
}

// escapeKey escapes each segment of a blob key, keeping the separators.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func decodeBody(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (h *httpBackendAdapter) fail(fn string, err error) error {
	h.logger.Debug().Err(err).Str("func", fn).Msg("remote call failed")
	return err
}
