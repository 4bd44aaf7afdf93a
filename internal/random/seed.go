// Package random provides seed helpers for the game's random source.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a high-entropy seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Resolve returns the given seed if set, otherwise a fresh entropy seed.
func Resolve(seed *int64) (int64, error) {
	if seed != nil {
		return *seed, nil
	}
	return NewSeed()
}

// New returns a math/rand source seeded with seed. Every draw of a game
// (rule shuffles and dice) must come from the one source this returns.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
