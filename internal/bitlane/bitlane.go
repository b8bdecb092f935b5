// Package bitlane provides the primitives shared by the two lane
// representations of the sponge core: boolean operations over 0/1-valued
// byte slices, rotation as re-indexing, and packing between a 64-element
// bit sequence and a uint64 word.
//
// Bit i of a lane is element i of the sequence and the i-th
// least-significant bit of the word. Callers are responsible for keeping
// slice elements in {0, 1}; values outside that range produce garbage, not
// errors.
package bitlane

// Lane is the number of bits in a Keccak lane.
const Lane = 64

// Xor XORs the bit sequences a and b into dst. All three must have the same
// length.
func Xor(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// And ANDs the bit sequences a and b into dst. All three must have the same
// length.
func And(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

// Not complements the bit sequence a into dst. Both must have the same
// length.
func Not(dst, a []byte) {
	for i := range dst {
		dst[i] = 1 - a[i]
	}
}

// RotL rotates a lane-sized bit sequence left by n positions, writing
// dst[(i+n) mod 64] = a[i]. In this representation rotation moves no data
// through an ALU; it is pure re-indexing. dst must not alias a.
func RotL(dst, a []byte, n int) {
	for i := range Lane {
		dst[(i+n)%Lane] = a[i]
	}
}

// PackLane packs a 64-element bit sequence into a word, bit i of the
// sequence becoming bit i of the word.
func PackLane(bits []byte) uint64 {
	var x uint64
	for i, b := range bits[:Lane] {
		x |= uint64(b) << i
	}
	return x
}

// UnpackLane unpacks a word into a 64-element bit sequence, the inverse of
// PackLane.
func UnpackLane(dst []byte, x uint64) {
	for i := range dst[:Lane] {
		dst[i] = byte(x>>i) & 1
	}
}
