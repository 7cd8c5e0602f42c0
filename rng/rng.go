package rng

import (
	crand "crypto/rand"
	"encoding/binary"

	"golang.org/x/exp/rand"
)

// Rng is a pluggable pseudo-random source.
//
// It produces uniform uint64 values and derives everything else (bounded
// draws, shuffles) from that stream. Rng is not safe for concurrent use;
// each goroutine should own its instance.
type Rng struct {
	src *rand.Rand
}

// New returns an Rng seeded from system entropy.
func New() *Rng {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// Entropy exhaustion is not a recoverable library condition.
		panic("rng: reading system entropy: " + err.Error())
	}

	return NewSeeded(binary.LittleEndian.Uint64(buf[:]))
}

// NewSeeded returns an Rng with a fully deterministic stream derived from seed.
func NewSeeded(seed uint64) *Rng {
	return &Rng{src: rand.New(rand.NewSource(seed))}
}

// Uint64 returns the next uniform 64-bit value.
func (r *Rng) Uint64() uint64 { return r.src.Uint64() }

// Uint64n returns a uniform value in [0, n). n must be positive.
func (r *Rng) Uint64n(n uint64) uint64 { return r.src.Uint64n(n) }

// Intn returns a uniform int in [0, n). n must be positive.
func (r *Rng) Intn(n int) int { return r.src.Intn(n) }

// Float64 returns a uniform float64 in [0, 1).
func (r *Rng) Float64() float64 { return r.src.Float64() }

// Shuffle performs a Fisher–Yates shuffle of n elements via swap.
// Complexity: O(n).
func (r *Rng) Shuffle(n int, swap func(i, j int)) { r.src.Shuffle(n, swap) }
