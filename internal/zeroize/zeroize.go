// Package zeroize provides best-effort memory scrubbing for key and state
// material. It does not guarantee the compiler cannot elide the stores in
// every circumstance, but it is written so that a standard Go compiler will
// not optimize the writes away as dead code.
package zeroize

// Bytes overwrites b with zeros. Callers hold the last reference to the
// underlying array at the point they call this, typically from a Drop-style
// cleanup or a defer right before the owning object goes out of scope.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
