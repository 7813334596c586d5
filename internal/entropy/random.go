// Package entropy isolates the simulation's randomness behind a small
// interface so runs can be reproduced from a seed in tests and headless
// simulations, while live games draw from crypto/rand.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
)

// Source supplies the random draws the simulation core consumes.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n). Panics if n <= 0.
	Intn(n int) int
}

type seeded struct {
	rng *mathrand.Rand
}

// NewSeeded returns a deterministic Source. Identical seeds produce
// identical draw sequences.
func NewSeeded(seed int64) Source {
	return &seeded{rng: mathrand.New(mathrand.NewSource(seed))}
}

func (s *seeded) Float64() float64 { return s.rng.Float64() }
func (s *seeded) Intn(n int) int   { return s.rng.Intn(n) }

type cryptoSource struct{}

// NewCrypto returns a Source backed by crypto/rand. Not reproducible;
// used for live games where no seed is configured.
func NewCrypto() Source { return cryptoSource{} }

func (cryptoSource) Float64() float64 { return cryptoFloat() }

func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("entropy: Intn with non-positive n")
	}
	return int(cryptoFloat() * float64(n))
}

// cryptoFloat generates a random float64 in [0, 1) using crypto/rand.
func cryptoFloat() float64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		// This should never happen but return 0.5 as a safe default.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}
