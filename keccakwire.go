// Package keccakwire computes Keccak-256 over messages measured in bits rather than bytes, in the manner
// of fixed-topology evaluators: a [Plan] fixes every size-derived quantity of the computation (padded
// length, block count, operation tally) before any message data is seen, and evaluation then performs an
// identical sequence of operations for every message of that length, with no data-dependent control flow.
//
// The function is the original [Keccak] with multi-rate padding at rate 1088 and a 256-bit digest, as
// submitted to the SHA-3 competition and as used by Ethereum. It is not SHA3-256: [FIPS 202] appends two
// extra domain bits before the padding and so produces different digests.
//
// Message bits absorb in order: bit i of the message is bit i mod 64 of rate lane i/64. For messages that
// are whole bytes, bit 8i+j is bit j of byte i (see [Bits]), which matches the byte-oriented
// implementation in the digest subpackage bit for bit. The circuit subpackage renders the same
// computation as an arithmetic-circuit gadget in which each boolean operation is paid for individually.
//
// [Keccak]: https://keccak.team/keccak.html
// [FIPS 202]: https://nvlpubs.nist.gov/nistpubs/FIPS/NIST.FIPS.202.pdf
package keccakwire

import (
	"encoding/hex"
	"fmt"
)

const (
	// Width is the width of the Keccak-f[1600] permutation in bits.
	Width = 1600

	// Rate is the number of message bits absorbed per permutation call.
	Rate = 1088

	// Capacity is the number of state bits never touched by message data, with collision resistance
	// being capacity/2.
	Capacity = Width - Rate

	// DigestBits is the number of bits squeezed from the final state.
	DigestBits = 256

	rateLanes   = Rate / 64
	digestLanes = DigestBits / 64
)

// A Bit is a single message or digest bit with value 0 or 1. It is an alias for byte, so bit sequences
// are ordinary byte slices holding 0s and 1s.
type Bit = byte

// A Digest is a Keccak-256 digest in bit order: element i is bit i of the digest, and bit 8i+j of the
// digest is bit j of byte i of its conventional 32-byte encoding.
type Digest [DigestBits]Bit

// Bytes packs the digest into its conventional 32-byte encoding.
func (d Digest) Bytes() [32]byte {
	var out [32]byte
	for i, b := range d {
		out[i/8] |= b << (i % 8)
	}
	return out
}

// String returns the hex encoding of the packed digest.
func (d Digest) String() string {
	b := d.Bytes()
	return hex.EncodeToString(b[:])
}

// Bits expands p into message bit order: bit j of byte i becomes element 8i+j of the result, which has
// 8*len(p) elements.
func Bits(p []byte) []Bit {
	out := make([]Bit, 0, 8*len(p))
	for _, b := range p {
		for j := range 8 {
			out = append(out, (b>>j)&1)
		}
	}
	return out
}

// Sum256 computes the Keccak-256 digest of msg, planning for len(msg) on the fly. It panics if msg is
// empty. Callers hashing many messages of one length should build a [Plan] once and reuse it.
func Sum256(msg []Bit) Digest {
	if len(msg) == 0 {
		panic("keccakwire: empty message")
	}
	return MustPlan(len(msg)).Sum(msg)
}

var _ fmt.Stringer = Digest{}
