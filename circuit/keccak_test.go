package circuit_test

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"
	"time"

	"github.com/codahale/keccakwire"
	"github.com/codahale/keccakwire/circuit"
	"github.com/codahale/keccakwire/internal/keccakf"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/test"
)

type sumCircuit struct {
	Msg    []frontend.Variable
	Digest [256]frontend.Variable `gnark:",public"`
}

func (c *sumCircuit) Define(api frontend.API) error {
	digest := circuit.Sum256(api, c.Msg)
	for i := range digest {
		api.AssertIsEqual(digest[i], c.Digest[i])
	}

	return nil
}

type permuteCircuit struct {
	In  [25]frontend.Variable
	Out [25]frontend.Variable `gnark:",public"`
}

func (c *permuteCircuit) Define(api frontend.API) error {
	out := circuit.PermuteLanes(api, c.In)
	for i := range out {
		api.AssertIsEqual(out[i], c.Out[i])
	}

	return nil
}

type packCircuit struct {
	Digest [256]frontend.Variable
	Packed [2]frontend.Variable `gnark:",public"`
}

func (c *packCircuit) Define(api frontend.API) error {
	packed := circuit.PackDigest(api, c.Digest)
	api.AssertIsEqual(packed[0], c.Packed[0])
	api.AssertIsEqual(packed[1], c.Packed[1])

	return nil
}

func TestSum256MatchesCore(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, msgBits := range []int{1, 5, 64, 256, 1086, 1087, 1360} {
		t.Run(fmt.Sprintf("%d bits", msgBits), func(t *testing.T) {
			msg := make([]keccakwire.Bit, msgBits)
			for i := range msg {
				msg[i] = keccakwire.Bit(rng.Intn(2))
			}

			want := keccakwire.MustPlan(msgBits).Sum(msg)

			blank := &sumCircuit{Msg: make([]frontend.Variable, msgBits)}
			assignment := &sumCircuit{Msg: bitVars(msg), Digest: digestVars(want)}
			if err := test.IsSolved(blank, assignment, ecc.BN254.ScalarField()); err != nil {
				t.Errorf("solving failed: %v", err)
			}
		})
	}
}

func TestSum256RejectsWrongDigest(t *testing.T) {
	msg := []keccakwire.Bit{1, 0, 1, 1, 0}
	want := keccakwire.MustPlan(len(msg)).Sum(msg)
	want[0] ^= 1

	blank := &sumCircuit{Msg: make([]frontend.Variable, len(msg))}
	assignment := &sumCircuit{Msg: bitVars(msg), Digest: digestVars(want)}
	if err := test.IsSolved(blank, assignment, ecc.BN254.ScalarField()); err == nil {
		t.Error("solving succeeded with a corrupted digest")
	}
}

func TestPermuteLanesMatchesWordPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var in [25]uint64
	for i := range in {
		in[i] = rng.Uint64()
	}

	out := in
	keccakf.Permute(&out)

	assignment := &permuteCircuit{}
	for i := range in {
		assignment.In[i] = in[i]
		assignment.Out[i] = out[i]
	}

	if err := test.IsSolved(&permuteCircuit{}, assignment, ecc.BN254.ScalarField()); err != nil {
		t.Errorf("solving failed: %v", err)
	}
}

func TestPackDigest(t *testing.T) {
	msg := keccakwire.Bits([]byte("abc"))
	digest := keccakwire.MustPlan(len(msg)).Sum(msg)

	low, high := new(big.Int), new(big.Int)
	for i := range 128 {
		low.SetBit(low, i, uint(digest[i]))
		high.SetBit(high, i, uint(digest[128+i]))
	}

	assignment := &packCircuit{Digest: digestVars(digest), Packed: [2]frontend.Variable{low, high}}
	if err := test.IsSolved(&packCircuit{}, assignment, ecc.BN254.ScalarField()); err != nil {
		t.Errorf("solving failed: %v", err)
	}
}

func TestSum256ConstraintGrowth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping circuit compilation in short mode")
	}

	compile := func(msgBits int) int {
		t.Helper()

		ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder,
			&sumCircuit{Msg: make([]frontend.Variable, msgBits)})
		if err != nil {
			t.Fatalf("compile(%d) failed: %v", msgBits, err)
		}

		return ccs.GetNbConstraints()
	}

	// Within one block, a longer message only swaps pad constants for message wires, so the
	// constraint count can only grow as the compiler finds fewer constants to fold.
	one, mid, full := compile(1), compile(543), compile(1086)
	if one > mid || mid > full {
		t.Errorf("one-block constraint counts = %d, %d, %d, want non-decreasing", one, mid, full)
	}

	// A second block costs another permutation.
	two := compile(1087)
	if two <= full {
		t.Errorf("constraints(1087) = %d, want more than constraints(1086) = %d", two, full)
	}
}

func bitVars(msg []keccakwire.Bit) []frontend.Variable {
	out := make([]frontend.Variable, len(msg))
	for i, b := range msg {
		out[i] = int(b)
	}

	return out
}

func digestVars(d keccakwire.Digest) (out [256]frontend.Variable) {
	for i, b := range d {
		out[i] = int(b)
	}

	return out
}
