// Package constanttime provides constant-time comparison helpers for the
// Gimli sponge primitives. Tag verification must not branch on the content
// of the compared bytes, only on their length, which is always fixed and
// known at compile time for every caller in this module.
package constanttime

import "crypto/subtle"

// Equal reports whether a and b hold identical bytes, in time independent of
// where (or whether) they first differ. Both slices must be the same length;
// callers in this module always pass fixed-size tag arrays sliced to their
// full length, so a length mismatch here would indicate a programming error
// rather than attacker-controlled input.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
