// Package gimli24v1 implements the aead/gimli24v1 authenticated encryption
// with associated data (AEAD) scheme: a duplex sponge construction over the
// Gimli permutation.
//
// Encrypt can never fail. Decrypt returns ErrAuthenticationFailed, an opaque
// sentinel carrying no detail, if and only if the supplied tag does not
// match; on that path the buffer's contents must be treated as garbage by
// the caller.
package gimli24v1

import (
	"errors"

	"gimli24v1/gimli"
	"gimli24v1/internal/constanttime"
)

// NonceSize is the size of the AEAD nonce in bytes.
const NonceSize = 16

// KeySize is the size of the AEAD key in bytes.
const KeySize = 32

// TagSize is the size of the authentication tag in bytes.
const TagSize = 16

// rate mirrors gimli.Rate; duplicated here as the name the spec and the
// package's tests refer to within this package.
const rate = gimli.Rate

// ErrAuthenticationFailed is returned by Decrypt when the supplied tag does
// not authenticate the ciphertext, associated data, key, and nonce. It is
// the only error this package returns, and it carries no further detail by
// design: any additional information (a reason code, a position hint) would
// weaken the authenticator.
var ErrAuthenticationFailed = errors.New("gimli24v1: authentication failed")

// initialize builds the initial sponge state from key and nonce: the nonce
// occupies the rate (bytes 0..16), the key occupies the capacity
// (bytes 16..48), then one permutation is applied.
func initialize(key *[KeySize]byte, nonce *[NonceSize]byte) gimli.State {
	var state gimli.State
	copy(state[:NonceSize], nonce[:])
	copy(state[NonceSize:], key[:])
	gimli.Permute(&state)
	return state
}

// absorbAssociatedData XORs ad into the rate in RATE-sized blocks, permuting
// after each full block, then folds in the final (possibly empty) partial
// block with the two domain-separation bits before the last permutation.
// This absorption always runs, even for empty ad.
func absorbAssociatedData(state *gimli.State, ad []byte) {
	for len(ad) >= rate {
		block := state.Bytes()
		for i := 0; i < rate; i++ {
			block[i] ^= ad[i]
		}
		gimli.Permute(state)
		ad = ad[rate:]
	}

	block := state.Bytes()
	for i := range ad {
		block[i] ^= ad[i]
	}

	block[len(ad)] ^= 0x01
	block[gimli.LastByte] ^= 0x01

	gimli.Permute(state)
}

// Encrypt encrypts buf in place using key, nonce, and associated data ad,
// and returns the 16-byte authentication tag. It cannot fail.
func Encrypt(key *[KeySize]byte, nonce *[NonceSize]byte, ad []byte, buf []byte) [TagSize]byte {
	state := initialize(key, nonce)
	defer state.Zero()
	absorbAssociatedData(&state, ad)

	remaining := buf
	for len(remaining) >= rate {
		block := state.Bytes()
		chunk := remaining[:rate]
		for i := 0; i < rate; i++ {
			block[i] ^= chunk[i]
		}
		copy(chunk, block[:rate])
		gimli.Permute(&state)
		remaining = remaining[rate:]
	}

	block := state.Bytes()
	for i := range remaining {
		block[i] ^= remaining[i]
	}
	copy(remaining, block[:len(remaining)])

	block[len(remaining)] ^= 0x01
	block[gimli.LastByte] ^= 0x01

	gimli.Permute(&state)

	var tag [TagSize]byte
	copy(tag[:], state.Bytes()[:TagSize])
	return tag
}

// Decrypt decrypts buf in place using key, nonce, and associated data ad,
// then verifies tag. On success it returns nil and buf holds the plaintext. On failure it returns ErrAuthenticationFailed and buf's
// contents are unspecified garbage that must not be trusted or exposed.
func Decrypt(key *[KeySize]byte, nonce *[NonceSize]byte, ad []byte, buf []byte, tag [TagSize]byte) error {
	state := initialize(key, nonce)
	defer state.Zero()
	absorbAssociatedData(&state, ad)

	remaining := buf
	for len(remaining) >= rate {
		block := state.Bytes()
		chunk := remaining[:rate]
		for i := 0; i < rate; i++ {
			c := chunk[i]
			chunk[i] = block[i] ^ c
			block[i] = c
		}
		gimli.Permute(&state)
		remaining = remaining[rate:]
	}

	block := state.Bytes()
	for i := range remaining {
		c := remaining[i]
		remaining[i] = block[i] ^ c
		block[i] = c
	}

	block[len(remaining)] ^= 0x01
	block[gimli.LastByte] ^= 0x01

	gimli.Permute(&state)

	computed := state.Bytes()[:TagSize]
	if !constanttime.Equal(computed, tag[:]) {
		return ErrAuthenticationFailed
	}
	return nil
}
