//go:build arm64

package gimli

// Permute applies the 24-round Gimli permutation to state in place. On
// arm64 this dispatches to the NEON-shaped back-end, selected at compile
// time; there is no runtime CPU feature detection.
func Permute(state *State) {
	permuteNEON(state)
}
