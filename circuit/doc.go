// Package circuit renders Keccak-256 as a gnark gadget over individual bit wires, the pay-per-gate
// rendering of the bit-level core.
//
// Messages arrive as []frontend.Variable with one wire per bit, already constrained to {0, 1} by the
// caller; the message length fixes the circuit shape at compile time exactly as a Plan fixes the native
// evaluation. Wire re-labeling is free, so rho, pi, and the squeeze cost nothing. Theta and chi pay one
// constraint per bit operation, the complement inside chi stays a linear term rather than spending a
// constraint, absorbing the first block into the known-zero state is wiring rather than gates, and iota
// flips only the set bits of each round constant.
//
// A one-block digest costs roughly 154k R1CS constraints: 24 rounds of 4,800 XOR and 1,600 AND gates,
// less whatever the compiler folds away around the padding constants.
package circuit
