// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// TokenGenerator mints random session tokens.
type TokenGenerator struct {
	now func() time.Time
}

// NewTokenGenerator returns a generator backed by the system clock.
func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{now: time.Now}
}

// Generate returns a random version 4 UUID. If the random source fails it
// falls back to "<unix millis>-<base36 random>", which is unique enough for a
// visibility label but not collision-proof.
func (g *TokenGenerator) Generate() string {
	v4, err := uuid.NewRandom()
	if err != nil {
		return g.fallback()
	}

	return v4.String()
}

func (g *TokenGenerator) fallback() string {
	return strconv.FormatInt(g.now().UnixMilli(), 10) + "-" + RandomSuffix()
}

// RandomSuffix returns a short base36 random string used in blob keys and
// fallback tokens.
func RandomSuffix() string {
	return strconv.FormatUint(rand.Uint64(), 36)
}
