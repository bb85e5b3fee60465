// Package msws implements Widynski's Middle Square Weyl Sequence
// generator: a squared state with a Weyl sequence folded in to break the
// short cycles of the plain middle-square method.
//
// Period: 2^64. State: 192 bits. Word size: 64 bits. Seed size: 16 bytes.
package msws

import (
	"encoding/binary"
	"errors"
	"math/bits"

	"github.com/dhardy/small-rngs-1/internal/core/rng"
)

// SeedSize is the required seed length in bytes: two little-endian 64-bit
// words, the stream constant followed by the initial state.
const SeedSize = 16

// ErrDegenerateSeed indicates a seed whose stream constant has all-zero
// high bits after the low bit is forced to one. Such a constant collapses
// the Weyl sequence into a short, low-quality cycle.
var ErrDegenerateSeed = errors.New("msws: stream constant has zero high bits")

// Rng is a Middle Square Weyl Sequence generator.
type Rng struct {
	x uint64 // squared state
	w uint64 // Weyl sequence
	s uint64 // stream constant, odd with non-zero high 32 bits
}

// New constructs a generator from a 16-byte seed. The first seed word
// becomes the stream constant with its low bit forced to one; construction
// fails with ErrDegenerateSeed if the constant's high 32 bits are zero
// after that adjustment.
func New(seed []byte) (*Rng, error) {
	if err := rng.CheckSeedSize("msws", SeedSize, len(seed)); err != nil {
		return nil, err
	}
	s := binary.LittleEndian.Uint64(seed[:8]) | 1
	if s&0xffffffff_00000000 == 0 {
		return nil, ErrDegenerateSeed
	}
	return &Rng{x: binary.LittleEndian.Uint64(seed[8:]), s: s}, nil
}

// NewFromSource constructs a generator by drawing words from src. The
// stream constant is rejection-sampled until its high 32 bits are
// non-zero; the loop is unbounded but needs more than one draw with
// probability 2^-32 per iteration.
func NewFromSource(src rng.Source) *Rng {
	var s uint64
	for {
		s = src.Uint64() | 1
		if s&0xffffffff_00000000 != 0 {
			break
		}
	}
	return &Rng{x: src.Uint64(), s: s}
}

// Uint64 advances the generator and returns the next 64-bit word.
func (g *Rng) Uint64() uint64 {
	g.x *= g.x
	g.w += g.s
	g.x += g.w
	// x keeps the pre-rotation value for the next squaring.
	return bits.RotateLeft64(g.x, 32)
}

// Uint32 returns the low 32 bits of the next 64-bit word.
func (g *Rng) Uint32() uint32 {
	return uint32(g.Uint64())
}

// Fill fills p with the generator's byte stream.
func (g *Rng) Fill(p []byte) {
	rng.FillBytes(g.Uint64, p)
}
