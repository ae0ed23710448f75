// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
)

const (
	headerCacheControl = "cache-control"
	headerUpsert       = "x-upsert"

	blobCacheControl = "max-age=3600"
)

func (h *httpBackendAdapter) Bucket() string {
	return h.bucket
}

// UploadObject implements [StorageAdapter].
// POST /storage/v1/object/<bucket>/<key> with x-upsert: false.
func (h *httpBackendAdapter) UploadObject(ctx context.Context, sess Session, key, contentType string, data []byte) error {
	resp, err := h.request(ctx, sess).
		SetHeader(headerContentType, contentType).
		SetHeader(headerCacheControl, blobCacheControl).
		SetHeader(headerUpsert, "false").
		SetBody(data).
		Post(storagePrefix + url.PathEscape(h.bucket) + "/" + escapeKey(key))
	if err != nil {
		return h.fail("UploadObject", fmt.Errorf("upload object request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return h.fail("UploadObject", err)
	}

	return nil
}

// RemoveObjects implements [StorageAdapter].
// DELETE /storage/v1/object/<bucket> {"prefixes": keys}
func (h *httpBackendAdapter) RemoveObjects(ctx context.Context, sess Session, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	resp, err := h.request(ctx, sess).
		SetHeader(headerContentType, mimeJSON).
		SetBody(map[string][]string{"prefixes": keys}).
		Delete(storagePrefix + url.PathEscape(h.bucket))
	if err != nil {
		return h.fail("RemoveObjects", fmt.Errorf("remove objects request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return h.fail("RemoveObjects", err)
	}

	return nil
}

// PublicURL implements [StorageAdapter]. No request is made.
func (h *httpBackendAdapter) PublicURL(key string) string {
	return h.baseURL + storagePrefix + "public/" + url.PathEscape(h.bucket) + "/" + escapeKey(key)
}
