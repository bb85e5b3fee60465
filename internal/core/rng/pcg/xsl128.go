package pcg

import (
	"encoding/binary"
	"math/bits"

	"github.com/dhardy/small-rngs-1/internal/core/rng"
)

// 128-bit MCG multiplier, split into two 64-bit limbs.
const (
	mul128Hi = 2549297995355413924
	mul128Lo = 4865540595714422341
)

// XSL128 is the PCG XSL-RR 128/64 variant: a purely multiplicative
// 128-bit core, held as two 64-bit limbs, with a 64-bit XSL-RR output
// permutation. There is no separate increment.
type XSL128 struct {
	hi, lo uint64
}

// NewXSL128 constructs a generator from a 16-byte seed: the first word
// becomes the high limb of the 128-bit state, the second the low limb.
// One multiply is performed before the first output.
func NewXSL128(seed []byte) (*XSL128, error) {
	if err := rng.CheckSeedSize("pcg_xsl_128_mcg", SeedSize, len(seed)); err != nil {
		return nil, err
	}
	g := &XSL128{
		hi: binary.LittleEndian.Uint64(seed[:8]),
		lo: binary.LittleEndian.Uint64(seed[8:]),
	}
	g.advance()
	return g, nil
}

// advance multiplies the two-limb state by the 128-bit constant, wrapping
// modulo 2^128. Only the low 128 bits of the product survive, so the
// cross terms fold into the high limb.
func (g *XSL128) advance() {
	carry, lo := bits.Mul64(g.lo, mul128Lo)
	g.hi = carry + g.lo*mul128Hi + g.hi*mul128Lo
	g.lo = lo
}

// Uint64 advances the MCG and returns the two state limbs XORed together,
// rotated right by the top six bits of the pre-advance state.
func (g *XSL128) Uint64() uint64 {
	oldHi, oldLo := g.hi, g.lo
	g.advance()

	xsl := oldHi ^ oldLo
	return bits.RotateLeft64(xsl, -int(oldHi>>58))
}

// Uint32 returns the low 32 bits of the next 64-bit word.
func (g *XSL128) Uint32() uint32 {
	return uint32(g.Uint64())
}

// Fill fills p with the generator's byte stream.
func (g *XSL128) Fill(p []byte) {
	rng.FillBytes(g.Uint64, p)
}
