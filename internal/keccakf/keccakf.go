// Package keccakf implements the Keccak-f[1600] permutation: 24 rounds of
// theta, rho, pi, chi, and iota over a 5x5 array of 64-bit lanes.
//
// The state is lane-major: lane (x, y) is a[x+5*y], and bit z of a lane is
// the z-th least-significant bit of the word. Round bodies are statically
// unrolled; the only loops have constant bounds, so the permutation performs
// an identical sequence of word operations for every input.
package keccakf

import "math/bits"

// RC holds the iota round constants, one per round, per FIPS 202 §3.2.5:
// the output of a degree-8 LFSR gathered onto bit positions 2^j-1. The
// derivation is checked against this table in the tests.
var RC = [24]uint64{ //nolint:gochecknoglobals // these are constants
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// Rotc and Piln describe the combined rho+pi step as a single 24-lane cycle
// starting at lane 1: step t rotates the value moving through the cycle by
// Rotc[t] and deposits it in lane Piln[t]. The unrolled round body below
// inlines this cycle; bit-domain evaluators walk the tables directly. Both
// renderings are cross-checked in the tests.
var Rotc = [24]int{ //nolint:gochecknoglobals // these are constants
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var Piln = [24]int{ //nolint:gochecknoglobals // these are constants
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// Permute applies the full 24-round Keccak-f[1600] permutation to a.
func Permute(a *[25]uint64) {
	for _, rc := range RC {
		round(a, rc)
	}
}

func round(a *[25]uint64, rc uint64) {
	// Theta
	bc0 := a[0] ^ a[5] ^ a[10] ^ a[15] ^ a[20]
	bc1 := a[1] ^ a[6] ^ a[11] ^ a[16] ^ a[21]
	bc2 := a[2] ^ a[7] ^ a[12] ^ a[17] ^ a[22]
	bc3 := a[3] ^ a[8] ^ a[13] ^ a[18] ^ a[23]
	bc4 := a[4] ^ a[9] ^ a[14] ^ a[19] ^ a[24]

	d0 := bc4 ^ bits.RotateLeft64(bc1, 1)
	d1 := bc0 ^ bits.RotateLeft64(bc2, 1)
	d2 := bc1 ^ bits.RotateLeft64(bc3, 1)
	d3 := bc2 ^ bits.RotateLeft64(bc4, 1)
	d4 := bc3 ^ bits.RotateLeft64(bc0, 1)

	a[0] ^= d0
	a[5] ^= d0
	a[10] ^= d0
	a[15] ^= d0
	a[20] ^= d0
	a[1] ^= d1
	a[6] ^= d1
	a[11] ^= d1
	a[16] ^= d1
	a[21] ^= d1
	a[2] ^= d2
	a[7] ^= d2
	a[12] ^= d2
	a[17] ^= d2
	a[22] ^= d2
	a[3] ^= d3
	a[8] ^= d3
	a[13] ^= d3
	a[18] ^= d3
	a[23] ^= d3
	a[4] ^= d4
	a[9] ^= d4
	a[14] ^= d4
	a[19] ^= d4
	a[24] ^= d4

	// Rho-pi
	t := a[1]
	t, a[10] = a[10], bits.RotateLeft64(t, 1)
	t, a[7] = a[7], bits.RotateLeft64(t, 3)
	t, a[11] = a[11], bits.RotateLeft64(t, 6)
	t, a[17] = a[17], bits.RotateLeft64(t, 10)
	t, a[18] = a[18], bits.RotateLeft64(t, 15)
	t, a[3] = a[3], bits.RotateLeft64(t, 21)
	t, a[5] = a[5], bits.RotateLeft64(t, 28)
	t, a[16] = a[16], bits.RotateLeft64(t, 36)
	t, a[8] = a[8], bits.RotateLeft64(t, 45)
	t, a[21] = a[21], bits.RotateLeft64(t, 55)
	t, a[24] = a[24], bits.RotateLeft64(t, 2)
	t, a[4] = a[4], bits.RotateLeft64(t, 14)
	t, a[15] = a[15], bits.RotateLeft64(t, 27)
	t, a[23] = a[23], bits.RotateLeft64(t, 41)
	t, a[19] = a[19], bits.RotateLeft64(t, 56)
	t, a[13] = a[13], bits.RotateLeft64(t, 8)
	t, a[12] = a[12], bits.RotateLeft64(t, 25)
	t, a[2] = a[2], bits.RotateLeft64(t, 43)
	t, a[20] = a[20], bits.RotateLeft64(t, 62)
	t, a[14] = a[14], bits.RotateLeft64(t, 18)
	t, a[22] = a[22], bits.RotateLeft64(t, 39)
	t, a[9] = a[9], bits.RotateLeft64(t, 61)
	t, a[6] = a[6], bits.RotateLeft64(t, 20)
	a[1] = bits.RotateLeft64(t, 44)

	// Chi
	for y := 0; y < 25; y += 5 {
		b0, b1, b2, b3, b4 := a[y], a[y+1], a[y+2], a[y+3], a[y+4]
		a[y] ^= b2 &^ b1
		a[y+1] ^= b3 &^ b2
		a[y+2] ^= b4 &^ b3
		a[y+3] ^= b0 &^ b4
		a[y+4] ^= b1 &^ b0
	}

	// Iota
	a[0] ^= rc
}
