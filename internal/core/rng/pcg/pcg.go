// Package pcg implements three Permuted Congruential Generator variants —
// XSH-RR 64/32, XSL-RR 64/32 and XSL-RR 128/64 — plus the related MWP
// generator, which replaces the LCG core with a multiplicative core
// combined with a Weyl sequence.
//
// Each variant advances a linear or multiplicative congruential state and
// derives its output by permuting the pre-advance state, extracting fewer
// bits than the state holds.
package pcg

// mul is the 64-bit LCG/MCG multiplier shared by the 64-bit-state
// variants and by MWP's output permutation.
const mul = 6364136223846793005

// SeedSize is the required seed length in bytes for every variant in this
// package: two little-endian 64-bit words.
const SeedSize = 16
