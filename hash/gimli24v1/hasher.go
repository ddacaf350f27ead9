package gimli24v1

import (
	"gimli24v1/gimli"
	"gimli24v1/internal/zeroize"
)

// Hasher is an incremental hash/gimli24v1 hasher. The zero value is ready to
// use; New returns a pointer to one.
type Hasher struct {
	state     gimli.State
	buffer    [rate]byte
	bufferLen int
	finalized bool
}

// New returns a Hasher ready to accept Update calls.
func New() *Hasher {
	return &Hasher{}
}

// Update absorbs more data into the hasher. It may be called any number of
// times with any lengths, including zero. Update panics if the hasher has
// already been finalized.
func (h *Hasher) Update(data []byte) {
	if h.finalized {
		panic("gimli24v1: Update called on a finalized Hasher")
	}
	pos := 0
	for pos < len(data) {
		available := len(data) - pos
		if room := rate - h.bufferLen; available > room {
			available = room
		}
		copy(h.buffer[h.bufferLen:h.bufferLen+available], data[pos:pos+available])
		h.bufferLen += available
		pos += available

		if h.bufferLen == rate {
			block := h.state.Bytes()
			for i := 0; i < rate; i++ {
				block[i] ^= h.buffer[i]
			}
			gimli.Permute(&h.state)
			h.bufferLen = 0
		}
	}
}

// Finalize absorbs the final partial block with domain separation, squeezes
// the 32-byte digest, and consumes the hasher: it must not be used again
// afterwards. Calling Finalize a second time panics.
func (h *Hasher) Finalize() [Size]byte {
	if h.finalized {
		panic("gimli24v1: Finalize called twice on the same Hasher")
	}
	h.finalized = true

	block := h.state.Bytes()
	for i := 0; i < h.bufferLen; i++ {
		block[i] ^= h.buffer[i]
	}
	block[h.bufferLen] ^= domainXOF
	block[rate-1] ^= paddingMarker

	gimli.Permute(&h.state)

	var out [Size]byte
	copy(out[:rate], h.state.Bytes()[:rate])
	gimli.Permute(&h.state)
	copy(out[rate:], h.state.Bytes()[:rate])

	h.state.Zero()
	zeroize.Bytes(h.buffer[:])

	return out
}

// Clone returns an independent copy of the hasher that can be continued
// separately from this point.
func (h *Hasher) Clone() *Hasher {
	clone := *h
	return &clone
}

// Reset returns the hasher to its initial, just-constructed state. It is
// equivalent to replacing the hasher with a new one: any previously absorbed
// or finalized state is zeroised and discarded, and the hasher is usable
// again.
func (h *Hasher) Reset() {
	h.state.Zero()
	zeroize.Bytes(h.buffer[:])
	h.bufferLen = 0
	h.finalized = false
}
