// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"net/url"
	"strings"
)

// allowedPhotoSchemes lists URL schemes accepted for item photos.
var allowedPhotoSchemes = map[string]struct{}{
	"http":  {},
	"https": {},
	"blob":  {},
	"data":  {},
}

// SafePhotoURL returns raw when it is a well-formed URL with an allowed
// scheme (http, https, blob or data). Any other value yields nil.
func SafePhotoURL(raw *string) *string {
	if raw == nil {
		return nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil
	}

	u, err := url.Parse(value)
	if err != nil {
		return nil
	}
	if _, ok := allowedPhotoSchemes[strings.ToLower(u.Scheme)]; !ok {
		return nil
	}

	return &value
}

// DataURL encodes data as a base64 data URL of the given content type.
func DataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
