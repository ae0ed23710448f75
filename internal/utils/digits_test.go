// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDigits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"digits only", "0012345", "0012345"},
		{"separators", "12.345-6/7", "1234567"},
		{"letters and spaces", " PAT 98 a7 ", "987"},
		{"unicode digits dropped", "١٢3", "3"},
		{"no digits", "abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeDigits(tt.in))
		})
	}
}

func TestSanitizeDigits_Idempotent(t *testing.T) {
	inputs := []string{"", "1-2-3", "abc 42 def", "  7 ", "١٢٣-9"}

	for _, in := range inputs {
		once := SanitizeDigits(in)
		assert.Equal(t, once, SanitizeDigits(once), "input %q", in)
	}
}
