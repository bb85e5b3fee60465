package pcg

import (
	"encoding/binary"
	"math/bits"

	"github.com/dhardy/small-rngs-1/internal/core/rng"
)

// weyl is the additive constant of MWP's Weyl sequence.
const weyl = 1442695040888963407

// MWP combines a multiplicative congruential core with a Weyl sequence;
// the XOR of the two feeds a PCG-style output permutation.
//
// The 32-bit and 64-bit outputs share the same state advance but apply
// different permutations: XSH-RR for Uint32 and RXS-M-XS for Uint64. One
// Uint64 call is NOT equivalent to two Uint32 calls, and neither output
// is derived from the other.
type MWP struct {
	m uint64 // multiplicative core, always odd
	w uint64 // Weyl sequence
}

// NewMWP constructs a generator from a 16-byte seed: the first word seeds
// the multiplicative core with its low bit forced to one, the second
// seeds the Weyl sequence.
func NewMWP(seed []byte) (*MWP, error) {
	if err := rng.CheckSeedSize("mwp", SeedSize, len(seed)); err != nil {
		return nil, err
	}
	return &MWP{
		m: binary.LittleEndian.Uint64(seed[:8]) | 1,
		w: binary.LittleEndian.Uint64(seed[8:]),
	}, nil
}

// advance steps the MCG and the Weyl sequence and returns their XOR.
func (g *MWP) advance() uint64 {
	g.m *= mul
	g.w += weyl
	return g.m ^ g.w
}

// Uint32 advances the state and applies the XSH-RR permutation to the
// combined value.
func (g *MWP) Uint32() uint32 {
	state := g.advance()
	xsh := uint32(((state >> 18) ^ state) >> 27)
	return bits.RotateLeft32(xsh, -int(state>>59))
}

// Uint64 advances the state and applies the RXS-M-XS permutation: a
// data-dependent xorshift, an MCG multiply, then a fixed xorshift.
func (g *MWP) Uint64() uint64 {
	state := g.advance()
	rshift := state >> 59
	state ^= state >> (5 + rshift)
	state *= mul
	return state ^ (state >> 42)
}

// Fill fills p with the generator's 64-bit byte stream.
func (g *MWP) Fill(p []byte) {
	rng.FillBytes(g.Uint64, p)
}
