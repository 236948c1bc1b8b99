// Package sampling implements a seedable source of pseudo-random bytes and integers.
//
// The [Source] is deterministic for a given seed and is NOT cryptographically secure
// in the sense required by a production library: it is meant to make key generation
// and encryption reproducible in tests and examples.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/zeebo/blake3"
)

// SeedSize is the size in bytes of the seed of a [Source].
const SeedSize = 32

// Source is a deterministic stream of pseudo-random bytes, obtained from
// the extendable output of blake3 keyed with the seed.
// It implements [io.Reader] and [math/rand/v2.Source].
//
// A Source must not be used concurrently: interleaved reads make
// the generated sequence non-deterministic.
type Source struct {
	seed   [SeedSize]byte
	hasher *blake3.Hasher
	xof    *blake3.Digest
	buff   [8]byte
}

// NewSeed returns a new seed sampled from [crypto/rand].
func NewSeed() (seed [SeedSize]byte) {
	if _, err := rand.Read(seed[:]); err != nil {
		panic(fmt.Errorf("rand.Read: %w", err))
	}
	return
}

// NewSource instantiates a new [Source] from the given seed.
func NewSource(seed [SeedSize]byte) *Source {
	hasher, err := blake3.NewKeyed(seed[:])
	if err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("blake3.NewKeyed: %w", err))
	}
	return &Source{
		seed:   seed,
		hasher: hasher,
		xof:    hasher.Digest(),
	}
}

// Seed returns the seed of the source.
func (s *Source) Seed() [SeedSize]byte {
	return s.seed
}

// Read populates p with pseudo-random bytes.
// It never returns an error.
func (s *Source) Read(p []byte) (n int, err error) {
	return s.xof.Read(p)
}

// Uint64 returns a pseudo-random uint64.
func (s *Source) Uint64() uint64 {
	if _, err := s.xof.Read(s.buff[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return binary.LittleEndian.Uint64(s.buff[:])
}

// Reset rewinds the source to its initial state.
func (s *Source) Reset() {
	s.xof = s.hasher.Digest()
}

// NewSource returns a new [Source] whose seed is read from the receiver.
// The returned source can be used concurrently with the receiver.
func (s *Source) NewSource() *Source {
	var seed [SeedSize]byte
	if _, err := s.Read(seed[:]); err != nil {
		panic(err)
	}
	return NewSource(seed)
}
