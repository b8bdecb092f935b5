// Package digest provides byte-oriented Keccak-256 as a streaming hash.Hash, for the common case of
// messages that are whole bytes. It computes the same function as the bit-level core: hashing p yields
// the conventional encoding of the digest of keccakwire.Bits(p). Unlike the bit-level core, whose plans
// require at least one bit, it accepts the empty message.
package digest

import (
	"encoding/binary"
	"hash"

	"github.com/codahale/keccakwire/internal/keccakf"
)

const (
	// Size is the size of a Keccak-256 digest in bytes.
	Size = 32

	// BlockSize is the sponge rate in bytes.
	BlockSize = 136
)

// New returns a new hash.Hash computing the Keccak-256 digest.
func New() hash.Hash {
	return new(digest)
}

// Sum256 computes the Keccak-256 digest of data in one shot.
func Sum256(data []byte) [Size]byte {
	var state [25]uint64
	for len(data) >= BlockSize {
		xorIn(&state, data[:BlockSize])
		keccakf.Permute(&state)
		data = data[BlockSize:]
	}

	var block [BlockSize]byte
	copy(block[:], data)
	block[len(data)] = 0x01
	block[BlockSize-1] ^= 0x80
	xorIn(&state, block[:])
	keccakf.Permute(&state)

	return extract(&state)
}

type digest struct {
	state [25]uint64
	buf   [BlockSize]byte
	n     int
}

func (d *digest) Write(p []byte) (n int, err error) {
	n = len(p)
	for len(p) > 0 {
		k := copy(d.buf[d.n:], p)
		d.n += k
		p = p[k:]
		if d.n == BlockSize {
			xorIn(&d.state, d.buf[:])
			keccakf.Permute(&d.state)
			d.n = 0
		}
	}
	return n, nil
}

// Sum appends the digest of all bytes written so far to b. It clones the state, so writing may continue
// afterwards.
func (d *digest) Sum(b []byte) []byte {
	clone := *d

	// The partial block always has room for padding: a full buffer is
	// absorbed by Write before Sum can see it. 0x01 after the message and
	// 0x80 on the last rate byte is the byte rendering of the 10*1 rule;
	// they share a byte when the message fills the block to its last byte.
	var block [BlockSize]byte
	copy(block[:], clone.buf[:clone.n])
	block[clone.n] = 0x01
	block[BlockSize-1] ^= 0x80
	xorIn(&clone.state, block[:])
	keccakf.Permute(&clone.state)

	out := extract(&clone.state)
	return append(b, out[:]...)
}

func (d *digest) Reset() {
	*d = digest{}
}

func (d *digest) Size() int {
	return Size
}

func (d *digest) BlockSize() int {
	return BlockSize
}

func xorIn(state *[25]uint64, block []byte) {
	for i := range state[:BlockSize/8] {
		state[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
}

func extract(state *[25]uint64) (out [Size]byte) {
	for i := range Size / 8 {
		binary.LittleEndian.PutUint64(out[i*8:], state[i])
	}
	return out
}

var _ hash.Hash = (*digest)(nil)
