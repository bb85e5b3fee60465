package xsm

import (
	"encoding/binary"
	"math/bits"

	"github.com/dhardy/small-rngs-1/internal/core/rng"
)

// SeedSize64 is Rng64's required seed length in bytes: three little-endian
// 64-bit words (LCG low, LCG high, LCG adder).
const SeedSize64 = 24

const k64 = 0xa3ec647659359acd

// Rng64 is the 64-bit XSM generator.
//
// Period: 2^128. State: 191 bits. Word size: 64 bits. Seed size: 24 bytes.
type Rng64 struct {
	lcgLow   uint64
	lcgHigh  uint64
	lcgAdder uint64 // always odd
	history  uint64
}

// New64 constructs a generator from a 24-byte seed. The adder's low bit is
// forced to one, and one generation step is run and discarded to mix the
// history word before any output is observable.
func New64(seed []byte) (*Rng64, error) {
	if err := rng.CheckSeedSize("xsm64", SeedSize64, len(seed)); err != nil {
		return nil, err
	}
	g := &Rng64{
		lcgLow:   binary.LittleEndian.Uint64(seed[:8]),
		lcgHigh:  binary.LittleEndian.Uint64(seed[8:16]),
		lcgAdder: binary.LittleEndian.Uint64(seed[16:]) | 1,
	}
	g.Uint64()
	return g, nil
}

// Uint64 advances the generator and returns the next 64-bit word. The
// step is not a mechanical widening of Rng32: the output mixes the
// premultiplied previous history rather than the current one, and only
// the high LCG limb absorbs the advance.
func (g *Rng64) Uint64() uint64 {
	g.history *= k64
	tmp := (g.lcgHigh + bits.RotateLeft64(g.lcgHigh^g.lcgLow, 19)) * k64

	var carry uint64
	if g.lcgLow < g.lcgAdder {
		carry = 1
	}
	g.lcgHigh += g.lcgLow + carry

	old := g.history ^ g.history>>32
	g.history = tmp ^ tmp>>32
	return tmp + old
}

// Uint32 returns the low 32 bits of the next 64-bit word.
func (g *Rng64) Uint32() uint32 {
	return uint32(g.Uint64())
}

// Fill fills p with the generator's byte stream.
func (g *Rng64) Fill(p []byte) {
	rng.FillBytes(g.Uint64, p)
}
