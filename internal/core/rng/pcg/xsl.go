package pcg

import (
	"encoding/binary"
	"math/bits"

	"github.com/dhardy/small-rngs-1/internal/core/rng"
)

// XSL64 is the PCG XSL-RR 64/32 variant. It shares XSH64's LCG core and
// seeding; only the output permutation differs, folding the high half of
// the state onto the low half before the random rotation.
type XSL64 struct {
	state uint64
	inc   uint64 // always odd
}

// NewXSL64 constructs a generator from a 16-byte seed, with the same
// seeding and warm-up advance as NewXSH64.
func NewXSL64(seed []byte) (*XSL64, error) {
	if err := rng.CheckSeedSize("pcg_xsl_64_lcg", SeedSize, len(seed)); err != nil {
		return nil, err
	}
	g := &XSL64{
		state: binary.LittleEndian.Uint64(seed[:8]),
		inc:   binary.LittleEndian.Uint64(seed[8:]) | 1,
	}
	g.state = g.state*mul + g.inc
	return g, nil
}

// Uint32 advances the LCG and returns the two state halves XORed
// together, rotated right by the top five bits of the pre-advance state.
func (g *XSL64) Uint32() uint32 {
	old := g.state
	g.state = old*mul + g.inc

	xsl := uint32(old>>32) ^ uint32(old)
	return bits.RotateLeft32(xsl, -int(old>>59))
}

// Uint64 packs two successive 32-bit outputs, low word first.
func (g *XSL64) Uint64() uint64 {
	lo := uint64(g.Uint32())
	hi := uint64(g.Uint32())
	return hi<<32 | lo
}

// Fill fills p with the generator's byte stream.
func (g *XSL64) Fill(p []byte) {
	rng.FillBytes(g.Uint64, p)
}
