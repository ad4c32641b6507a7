package deck

import (
	"encoding/binary"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"
)

// SeedSize is the number of bytes drawn when a Source derives a seed.
const SeedSize = 32

var suite suites.Suite = suites.MustFind("Ed25519")

// Source is a stream of random numbers backed by a kyber XOF. A Source
// built from the same seed always yields the same numbers; a Source with
// no seed is keyed from the suite's cryptographic random stream.
//
// Source implements rand.Source and is not safe for concurrent use.
type Source struct {
	xof kyber.XOF
	buf [8]byte
}

// NewSource creates a Source keyed by seed. An empty seed picks a fresh
// random key.
func NewSource(seed []byte) *Source {
	if len(seed) == 0 {
		seed = make([]byte, SeedSize)
		suite.RandomStream().XORKeyStream(seed, seed)
	}
	return &Source{xof: suite.XOF(seed)}
}

// NewRand wraps NewSource(seed) into a math/rand/v2 generator.
func NewRand(seed []byte) *rand.Rand {
	return rand.New(NewSource(seed))
}

// Uint64 returns the next 8 bytes of the stream.
func (s *Source) Uint64() uint64 {
	clear(s.buf[:])
	s.xof.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Seed draws SeedSize bytes from the stream, to key a child Source. Child
// seeds drawn in the same order from equally seeded sources are equal.
func (s *Source) Seed() []byte {
	seed := make([]byte, SeedSize)
	s.xof.XORKeyStream(seed, seed)
	return seed
}
