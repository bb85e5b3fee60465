package pcg

import (
	"encoding/binary"
	"math/bits"

	"github.com/dhardy/small-rngs-1/internal/core/rng"
)

// XSH64 is the PCG XSH-RR 64/32 variant: a 64-bit LCG core with an
// "xorshift high, random rotation" output permutation producing 32-bit
// words.
type XSH64 struct {
	state uint64
	inc   uint64 // always odd
}

// NewXSH64 constructs a generator from a 16-byte seed: the first word
// seeds the state, the second becomes the increment with its low bit
// forced to one. One advance is performed before the first output.
func NewXSH64(seed []byte) (*XSH64, error) {
	if err := rng.CheckSeedSize("pcg_xsh_64_lcg", SeedSize, len(seed)); err != nil {
		return nil, err
	}
	g := &XSH64{
		state: binary.LittleEndian.Uint64(seed[:8]),
		inc:   binary.LittleEndian.Uint64(seed[8:]) | 1,
	}
	g.state = g.state*mul + g.inc
	return g, nil
}

// Uint32 advances the LCG and permutes the pre-advance state:
// xorshift by 18 folded down 27 bits, then rotated right by the top five
// bits of the state.
func (g *XSH64) Uint32() uint32 {
	old := g.state
	g.state = old*mul + g.inc

	xsh := uint32(((old >> 18) ^ old) >> 27)
	return bits.RotateLeft32(xsh, -int(old>>59))
}

// Uint64 packs two successive 32-bit outputs, low word first.
func (g *XSH64) Uint64() uint64 {
	lo := uint64(g.Uint32())
	hi := uint64(g.Uint32())
	return hi<<32 | lo
}

// Fill fills p with the generator's byte stream.
func (g *XSH64) Fill(p []byte) {
	rng.FillBytes(g.Uint64, p)
}
