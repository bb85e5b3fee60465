// Package xsm implements Doty-Humphrey's XSM generators from PractRand,
// in 32-bit and 64-bit variants. Both run a double-width LCG with an
// explicit carry and mix the previous step's state ("history") into the
// output.
package xsm

import (
	"encoding/binary"
	"math/bits"

	"github.com/dhardy/small-rngs-1/internal/core/rng"
)

// SeedSize32 is Rng32's required seed length in bytes: three little-endian
// 32-bit words (LCG low, LCG high, LCG adder).
const SeedSize32 = 12

const k32 = 0x6595a395

// Rng32 is the 32-bit XSM generator.
//
// Period: 2^64. State: 95 bits. Word size: 32 bits. Seed size: 12 bytes.
type Rng32 struct {
	lcgLow   uint32
	lcgHigh  uint32
	lcgAdder uint32 // always odd
	history  uint32
}

// New32 constructs a generator from a 12-byte seed. The adder's low bit is
// forced to one, and one generation step is run and discarded to mix the
// history word before any output is observable.
func New32(seed []byte) (*Rng32, error) {
	if err := rng.CheckSeedSize("xsm32", SeedSize32, len(seed)); err != nil {
		return nil, err
	}
	g := &Rng32{
		lcgLow:   binary.LittleEndian.Uint32(seed[:4]),
		lcgHigh:  binary.LittleEndian.Uint32(seed[4:8]),
		lcgAdder: binary.LittleEndian.Uint32(seed[8:]) | 1,
	}
	g.Uint32()
	return g, nil
}

// Uint32 advances the generator and returns the next 32-bit word.
func (g *Rng32) Uint32() uint32 {
	rv := g.history * k32
	tmp := (g.lcgHigh + bits.RotateLeft32(g.lcgHigh^g.lcgLow, 11)) * k32

	// 64-bit LCG over two 32-bit limbs: add into the low limb and carry
	// into the high limb.
	old := g.lcgLow
	g.lcgLow += g.lcgAdder
	if g.lcgLow < g.lcgAdder {
		old++
	}
	g.lcgHigh += old

	rv ^= rv >> 16
	g.history = tmp ^ tmp>>16
	return rv + g.history
}

// Uint64 packs two successive 32-bit outputs, low word first.
func (g *Rng32) Uint64() uint64 {
	lo := uint64(g.Uint32())
	hi := uint64(g.Uint32())
	return hi<<32 | lo
}

// Fill fills p with the generator's byte stream.
func (g *Rng32) Fill(p []byte) {
	rng.FillBytes(g.Uint64, p)
}
