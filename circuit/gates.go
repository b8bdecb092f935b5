package circuit

import (
	"github.com/consensys/gnark/frontend"
)

// A lane is one 64-bit Keccak lane as individual wires, bit z at index z.
type lane [64]frontend.Variable

// constLane returns a lane wired to the bits of x.
func constLane(x uint64) (l lane) {
	for i := range l {
		l[i] = (x >> i) & 1
	}

	return l
}

// rotl relabels a's wires left by n. No constraints.
func rotl(a lane, n int) (out lane) {
	for i := range a {
		out[(i+n)%64] = a[i]
	}

	return out
}

// gates emits bit operations as constraints.
type gates struct {
	api frontend.API
}

func (g gates) xor(a, b lane) (out lane) {
	for i := range a {
		out[i] = g.api.Xor(a[i], b[i])
	}

	return out
}

func (g gates) and(a, b lane) (out lane) {
	for i := range a {
		out[i] = g.api.And(a[i], b[i])
	}

	return out
}

// not complements a lane as 1-x per bit, which stays linear.
func (g gates) not(a lane) (out lane) {
	for i := range a {
		out[i] = g.api.Sub(1, a[i])
	}

	return out
}

// xorConst folds a constant into a lane, touching only the set bits.
func (g gates) xorConst(a lane, x uint64) (out lane) {
	out = a
	for i := 0; x != 0; i, x = i+1, x>>1 {
		if x&1 == 1 {
			out[i] = g.api.Sub(1, out[i])
		}
	}

	return out
}
