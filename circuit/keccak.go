package circuit

import (
	"github.com/codahale/keccakwire"
	"github.com/codahale/keccakwire/internal/keccakf"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
)

const rateLanes = keccakwire.Rate / 64

// Sum256 computes the Keccak-256 digest of msg, one wire per message bit, least significant bit
// first. The message bits must already be constrained to {0, 1}; Sum256 adds no booleanity
// constraints of its own. The digest comes back in the same order, bit 0 at index 0.
//
// The message length fixes the circuit. Padding is wired as constants, and every gate is laid
// down whether or not the compiler later folds it away.
func Sum256(api frontend.API, msg []frontend.Variable) [256]frontend.Variable {
	if len(msg) == 0 {
		panic("circuit: empty message")
	}

	g := gates{api: api}
	padded := pad(msg)

	var st [25]lane
	for i := range st {
		st[i] = constLane(0)
	}

	for b := 0; b < len(padded); b += keccakwire.Rate {
		for i := range rateLanes {
			var in lane
			copy(in[:], padded[b+i*64:b+(i+1)*64])

			if b == 0 {
				// The state is known-zero before the first block, so absorbing it
				// is wiring rather than gates.
				st[i] = in
			} else {
				st[i] = g.xor(st[i], in)
			}
		}

		st = permute(g, st)
	}

	var digest [256]frontend.Variable
	for i := range digest {
		digest[i] = st[i/64][i%64]
	}

	return digest
}

// PermuteLanes applies Keccak-f[1600] to a word-packed state, converting each lane to wires and
// back. Use it when the surrounding circuit carries the state as 25 field elements; Sum256 stays
// in the bit domain throughout and never pays for conversions.
func PermuteLanes(api frontend.API, a [25]frontend.Variable) [25]frontend.Variable {
	g := gates{api: api}

	var st [25]lane
	for i := range st {
		copy(st[i][:], bits.ToBinary(api, a[i], bits.WithNbDigits(64)))
	}

	st = permute(g, st)

	var out [25]frontend.Variable
	for i := range out {
		out[i] = bits.FromBinary(api, st[i][:], bits.WithUnconstrainedInputs())
	}

	return out
}

// PackDigest packs a digest into two field elements of 128 bits each, low half first, for
// circuits that hand the digest onward as public inputs. None of the gnark curves can hold 256
// bits in one element. The digest wires are taken as already boolean, as Sum256 produces them.
func PackDigest(api frontend.API, digest [256]frontend.Variable) [2]frontend.Variable {
	return [2]frontend.Variable{
		bits.FromBinary(api, digest[:128], bits.WithUnconstrainedInputs()),
		bits.FromBinary(api, digest[128:], bits.WithUnconstrainedInputs()),
	}
}

// pad appends the pad10*1 bits as constant wires, growing msg to a whole number of blocks.
func pad(msg []frontend.Variable) []frontend.Variable {
	padded := (len(msg) + 2 + keccakwire.Rate - 1) / keccakwire.Rate * keccakwire.Rate

	out := make([]frontend.Variable, padded)
	copy(out, msg)
	for i := len(msg); i < padded; i++ {
		out[i] = 0
	}
	out[len(msg)] = 1
	out[padded-1] = 1

	return out
}

// permute is Keccak-f[1600] over bit wires, following the same round structure as the word
// implementation in internal/keccakf.
func permute(g gates, a [25]lane) [25]lane {
	var bc [5]lane

	for _, rc := range keccakf.RC {
		// Theta.
		for x := range bc {
			bc[x] = g.xor(g.xor(g.xor(g.xor(a[x], a[x+5]), a[x+10]), a[x+15]), a[x+20])
		}

		for x := range bc {
			d := g.xor(bc[(x+4)%5], rotl(bc[(x+1)%5], 1))
			for y := 0; y < 25; y += 5 {
				a[y+x] = g.xor(a[y+x], d)
			}
		}

		// Rho and pi.
		t := a[1]
		for i, p := range keccakf.Piln {
			t, a[p] = a[p], rotl(t, keccakf.Rotc[i])
		}

		// Chi.
		for y := 0; y < 25; y += 5 {
			for x := range bc {
				bc[x] = a[y+x]
			}
			for x := range bc {
				a[y+x] = g.xor(bc[x], g.and(g.not(bc[(x+1)%5]), bc[(x+2)%5]))
			}
		}

		// Iota.
		a[0] = g.xorConst(a[0], rc)
	}

	return a
}
