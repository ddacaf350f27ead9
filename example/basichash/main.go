// Command basichash walks through both the one-shot and incremental
// hash/gimli24v1 APIs and confirms they agree, mirroring the equivalence
// invariant from the specification.
package main

import (
	"fmt"

	hash "gimli24v1/hash/gimli24v1"
)

func main() {
	message := []byte("Hello, Gimli!")

	oneShot := hash.Hash(message)
	fmt.Printf("one-shot digest:     %x\n", oneShot)

	h := hash.New()
	h.Update(message[:7])
	h.Update(message[7:])
	incremental := h.Finalize()
	fmt.Printf("incremental digest:  %x\n", incremental)

	if oneShot != incremental {
		panic("one-shot and incremental digests diverged")
	}
	fmt.Println("one-shot and incremental digests match")

	clone := hash.New()
	clone.Update([]byte("Hello, "))
	branch := clone.Clone()

	clone.Update([]byte("World!"))
	branch.Update([]byte("Gimli!"))

	fmt.Printf("branch 'World!': %x\n", clone.Finalize())
	fmt.Printf("branch 'Gimli!': %x\n", branch.Finalize())
}
