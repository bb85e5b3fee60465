// Package random provides entropy acquisition for seeding deterministic
// generators.
//
// It uses crypto/rand to produce high-entropy seed material; everything
// downstream of the seed is deterministic.
package random

import (
	crand "crypto/rand"
	"fmt"
)

// NewSeedBytes returns n bytes of seed material from crypto/rand.
func NewSeedBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := crand.Read(b); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return b, nil
}
