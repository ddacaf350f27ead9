//go:build !amd64 && !arm64

package gimli

// Permute applies the 24-round Gimli permutation to state in place. On
// architectures without a hand-written port, the portable scalar
// implementation is used; Go's compiler auto-vectorizes it reasonably well
// on most targets.
func Permute(state *State) {
	permutePortable(state)
}
