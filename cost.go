package keccakwire

// A Cost is a static tally of the elementary operations one Sum evaluation performs, counted per 64-bit
// lane: XORs, ANDs, and complements of whole lanes, lane rotations, and conversions between the
// bit-sequence and word representations at the absorb and squeeze boundaries. It depends only on the
// block count, so every message length that pads to the same number of blocks has an identical cost.
type Cost struct {
	Xor  int // lane XORs: theta, chi, iota, and absorbing
	And  int // lane ANDs: chi
	Not  int // lane complements: chi
	Rot  int // lane rotations: theta and rho
	Conv int // lane packs and unpacks at block boundaries
}

// Per-round tallies for the step mappings. Theta XORs five columns into parities (20), derives the five D
// lanes (5 XOR, 5 ROT), and folds them into all 25 lanes; rho rotates the 24 non-origin lanes and pi is
// free re-indexing; chi spends one complement, one AND, and one XOR per lane; iota is a single XOR.
const (
	roundXor = 20 + 5 + 25 + 25 + 1
	roundAnd = 25
	roundNot = 25
	roundRot = 5 + 24
)

func planCost(blocks int) Cost {
	return Cost{
		Xor:  blocks * (rateLanes + 24*roundXor),
		And:  blocks * 24 * roundAnd,
		Not:  blocks * 24 * roundNot,
		Rot:  blocks * 24 * roundRot,
		Conv: blocks*rateLanes + digestLanes,
	}
}

// Total returns the sum of all operation counts.
func (c Cost) Total() int {
	return c.Xor + c.And + c.Not + c.Rot + c.Conv
}
