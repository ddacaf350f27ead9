//go:build amd64

package gimli

// Permute applies the 24-round Gimli permutation to state in place. On
// amd64 this dispatches to the SSE2-shaped back-end, selected at compile
// time; there is no runtime CPU feature detection.
func Permute(state *State) {
	permuteSSE2(state)
}
