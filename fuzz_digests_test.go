package keccakwire_test

import (
	"bytes"
	"crypto/sha3"
	"testing"

	"github.com/codahale/keccakwire"
	fuzz "github.com/trailofbits/go-fuzz-utils"
	xsha3 "golang.org/x/crypto/sha3"
)

// FuzzSum256 checks the bit-level path against the ecosystem's byte-level legacy Keccak-256 for every
// whole-byte message.
func FuzzSum256(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("keccakwire digests"))

	for range 10 {
		seed := make([]byte, 256)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) == 0 {
			t.Skip()
		}

		ref := xsha3.NewLegacyKeccak256()
		_, _ = ref.Write(data)
		want := ref.Sum(nil)

		digest := keccakwire.Sum256(keccakwire.Bits(data))
		if got := digest.Bytes(); !bytes.Equal(got[:], want) {
			t.Errorf("Sum256(%d bytes) = %x, want %x", len(data), got, want)
		}
	})
}

// FuzzPlanTranscript drives plans of arbitrary bit lengths, checking that evaluation is deterministic,
// that plan reuse matches one-shot hashing, and that every message bit influences the digest.
func FuzzPlanTranscript(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("keccakwire plans"))

	for range 10 {
		seed := make([]byte, 512)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		nRaw, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}
		msgBits := int(nRaw)%2175 + 1

		raw, err := tp.GetBytes()
		if err != nil || len(raw) == 0 {
			t.Skip(err)
		}

		flipRaw, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		msg := make([]keccakwire.Bit, msgBits)
		for i := range msg {
			msg[i] = keccakwire.Bit(raw[i%len(raw)]>>(i%8)) & 1
		}

		plan := keccakwire.MustPlan(msgBits)
		first := plan.Sum(msg)
		if got := plan.Sum(msg); got != first {
			t.Errorf("repeated Sum = %v, want %v", got, first)
		}
		if got := keccakwire.Sum256(msg); got != first {
			t.Errorf("Sum256 = %v, want %v", got, first)
		}

		flip := int(flipRaw) % msgBits
		msg[flip] ^= 1
		if got := plan.Sum(msg); got == first {
			t.Errorf("flipping bit %d left the digest %v unchanged", flip, first)
		}
	})
}
