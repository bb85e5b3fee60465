// Package rng defines the contract shared by every generator engine and the
// byte-serialization helper their buffer-fill operations are built on.
//
// # Determinism
//
// Every engine in the subpackages is a pure, synchronous state machine: the
// output stream depends only on the seed and the sequence of calls. Two
// instances constructed from byte-identical seeds produce byte-identical
// output when driven with the same call pattern.
//
// # Concurrency
//
// An engine instance is designed for exclusive, single-owner use. It is not
// safe for concurrent mutation without external synchronization, and no
// state is shared between instances.
package rng

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Source is a deterministic pseudo-random bit generator. Uint32 and Uint64
// advance the generator state and return one word; Fill streams the
// generator into an arbitrary-length byte buffer.
type Source interface {
	Uint32() uint32
	Uint64() uint64
	Fill(p []byte)
}

// ErrSeedSize indicates a seed whose byte length does not match the
// engine's fixed seed size.
var ErrSeedSize = errors.New("seed has wrong byte length")

// CheckSeedSize validates a seed length against an engine's fixed seed
// size. The returned error wraps ErrSeedSize.
func CheckSeedSize(engine string, want, got int) error {
	if got != want {
		return fmt.Errorf("%s: seed must be %d bytes, got %d: %w", engine, want, got, ErrSeedSize)
	}
	return nil
}

// FillBytes fills p by drawing successive 64-bit words from next and
// writing each word's little-endian byte representation into the buffer.
// If len(p) is not a multiple of eight, only the leading bytes of the
// final generated word are written; the remaining bytes of that word are
// discarded, not carried over to a later call.
func FillBytes(next func() uint64, p []byte) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, next())
		p = p[8:]
	}
	if len(p) > 0 {
		var last [8]byte
		binary.LittleEndian.PutUint64(last[:], next())
		copy(p, last[:])
	}
}
