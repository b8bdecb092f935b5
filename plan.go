package keccakwire

import (
	"errors"
	"fmt"

	"github.com/codahale/keccakwire/internal/bitlane"
	"github.com/codahale/keccakwire/internal/keccakf"
)

// ErrMessageBits is returned by NewPlan when the message length is not a positive number of bits.
var ErrMessageBits = errors.New("keccakwire: message length must be at least one bit")

// A Plan is the fixed evaluation plan for Keccak-256 over messages of one exact bit length. Construction
// derives the padded length, the block count, and the operation tally from the length alone; Sum then
// runs the same sequence of operations for every message of that length.
//
// Plans are stateless and safe for concurrent use.
type Plan struct {
	msgBits    int
	paddedBits int
	blocks     int
	cost       Cost
}

// NewPlan builds the evaluation plan for messages of exactly msgBits bits. It returns ErrMessageBits if
// msgBits is less than one.
func NewPlan(msgBits int) (*Plan, error) {
	if msgBits < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrMessageBits, msgBits)
	}

	paddedBits := paddedBits(msgBits)
	blocks := paddedBits / Rate
	return &Plan{
		msgBits:    msgBits,
		paddedBits: paddedBits,
		blocks:     blocks,
		cost:       planCost(blocks),
	}, nil
}

// MustPlan is like NewPlan but panics if msgBits is invalid.
func MustPlan(msgBits int) *Plan {
	plan, err := NewPlan(msgBits)
	if err != nil {
		panic(err)
	}
	return plan
}

// MessageBits returns the exact message length the plan was built for.
func (p *Plan) MessageBits() int { return p.msgBits }

// PaddedBits returns the padded message length: the smallest positive multiple of Rate with room for the
// message and at least two padding bits.
func (p *Plan) PaddedBits() int { return p.paddedBits }

// Blocks returns the number of rate-sized blocks the padded message occupies, which is also the number of
// permutation calls one Sum evaluation performs.
func (p *Plan) Blocks() int { return p.blocks }

// Cost returns the static operation tally of one Sum evaluation.
func (p *Plan) Cost() Cost { return p.cost }

// Sum computes the Keccak-256 digest of msg. It panics if len(msg) differs from the planned length or if
// any element is not 0 or 1.
func (p *Plan) Sum(msg []Bit) Digest {
	if len(msg) != p.msgBits {
		panic("keccakwire: message length does not match plan")
	}
	for _, b := range msg {
		if b > 1 {
			panic("keccakwire: message element is not a bit")
		}
	}

	padded := Pad(msg)

	var state [25]uint64
	for block := range p.blocks {
		bits := padded[block*Rate:]
		for lane := range rateLanes {
			state[lane] ^= bitlane.PackLane(bits[lane*bitlane.Lane:])
		}
		keccakf.Permute(&state)
	}

	var digest Digest
	for lane := range digestLanes {
		bitlane.UnpackLane(digest[lane*bitlane.Lane:], state[lane])
	}
	return digest
}

// Pad appends multi-rate padding to msg, returning a fresh slice whose length is the smallest positive
// multiple of Rate that can hold the message plus a leading and a trailing 1 bit. Between 2 and Rate+1
// bits are appended; the zero run between the two 1 bits is empty exactly when the message fills its
// final block to Rate-2 bits.
func Pad(msg []Bit) []Bit {
	padded := paddedBits(len(msg))
	out := make([]Bit, padded)
	copy(out, msg)
	out[len(msg)] = 1
	out[padded-1] = 1
	return out
}

func paddedBits(msgBits int) int {
	return (msgBits + 2 + Rate - 1) / Rate * Rate
}
