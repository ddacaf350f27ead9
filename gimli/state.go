// Package gimli implements the Gimli 384-bit cryptographic permutation, as
// standardised by the NIST Lightweight Cryptography submission gimli24v1.
//
// The permutation is the single primitive consumed by the sponge-based AEAD
// and hash packages in this module (aead/gimli24v1 and hash/gimli24v1). It
// has no failure modes: Permute is deterministic and total over every
// possible 48-byte state.
package gimli

import (
	"encoding/binary"

	"gimli24v1/internal/zeroize"
)

// StateSize is the size of the Gimli state in bytes (12 32-bit words).
const StateSize = 48

// Rate is the sponge rate in bytes: the portion of the state touched by
// absorption and squeezing. The remaining 32 bytes are the capacity.
const Rate = 16

// LastByte is the index of the final byte of the state, used by both
// sponge constructions to inject a capacity-side domain-separation bit.
const LastByte = StateSize - 1

// State is the 384-bit Gimli state, viewed as 48 bytes. Word access for the
// permutation itself is done through little-endian loads/stores so that the
// byte and word views agree on every host, including big-endian ones.
//
// A State is always exactly 48 bytes; callers never reallocate it.
type State [StateSize]byte

// Bytes returns the state's rate+capacity bytes for in-place XOR and copy
// operations. It aliases the State's own storage.
func (s *State) Bytes() []byte {
	return s[:]
}

// word returns the 32-bit little-endian word at word index i (0..12).
func (s *State) word(i int) uint32 {
	return binary.LittleEndian.Uint32(s[4*i : 4*i+4])
}

// setWord stores v as the 32-bit little-endian word at word index i.
func (s *State) setWord(i int, v uint32) {
	binary.LittleEndian.PutUint32(s[4*i:4*i+4], v)
}

// Zero resets the state to all zeros, the initial state for the hash sponge.
func (s *State) Zero() {
	zeroize.Bytes(s[:])
}

// Clone returns an independent copy of the state.
func (s *State) Clone() State {
	var out State
	copy(out[:], s[:])
	return out
}
