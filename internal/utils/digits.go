// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strings"

// SanitizeDigits returns s with every character outside 0-9 removed.
//
// Patrimony numbers are compared and stored in this form, so the function is
// applied on every read and write. It is idempotent:
//
//	SanitizeDigits(SanitizeDigits(s)) == SanitizeDigits(s)
func SanitizeDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
