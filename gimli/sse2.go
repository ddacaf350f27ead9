package gimli

// vec4 models a 128-bit SIMD register holding four packed 32-bit lanes, the
// same layout the SSE2 port loads each state row into (row0 = words 0..3,
// row1 = words 4..7, row2 = words 8..11, one lane per column). permuteSSE2 runs the identical
// arithmetic as permutePortable, only restructured so each operation acts on
// all four columns of a row at once the way _mm_xor_si128/_mm_slli_epi32
// would on real SSE2 hardware; the result is bit-identical to the portable
// back-end on every input, which gimli_test.go verifies directly.
type vec4 [4]uint32

func (a vec4) xor(b vec4) vec4 {
	return vec4{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

func (a vec4) and(b vec4) vec4 {
	return vec4{a[0] & b[0], a[1] & b[1], a[2] & b[2], a[3] & b[3]}
}

func (a vec4) or(b vec4) vec4 {
	return vec4{a[0] | b[0], a[1] | b[1], a[2] | b[2], a[3] | b[3]}
}

func (a vec4) shl(n uint) vec4 {
	return vec4{a[0] << n, a[1] << n, a[2] << n, a[3] << n}
}

func (a vec4) rotl(n uint) vec4 {
	return vec4{rotl32(a[0], n), rotl32(a[1], n), rotl32(a[2], n), rotl32(a[3], n)}
}

// shuffleSmallSwap implements the SSE2 port's 0xB1 shuffle: [0,1,2,3] -> [1,0,3,2].
func (a vec4) shuffleSmallSwap() vec4 {
	return vec4{a[1], a[0], a[3], a[2]}
}

// shuffleBigSwap implements the SSE2 port's 0x4E shuffle: [0,1,2,3] -> [2,3,0,1].
func (a vec4) shuffleBigSwap() vec4 {
	return vec4{a[2], a[3], a[0], a[1]}
}

// permuteSSE2 is the SSE2-shaped Gimli permutation used on amd64.
func permuteSSE2(state *State) {
	row0 := vec4{state.word(0), state.word(1), state.word(2), state.word(3)}
	row1 := vec4{state.word(4), state.word(5), state.word(6), state.word(7)}
	row2 := vec4{state.word(8), state.word(9), state.word(10), state.word(11)}

	for round := uint32(Rounds); round >= 1; round-- {
		x := row0.rotl(24)
		y := row1.rotl(9)
		z := row2

		row2 = x.xor(z.shl(1)).xor(y.and(z).shl(2))
		row1 = y.xor(x).xor(x.or(z).shl(1))
		row0 = z.xor(y).xor(x.and(y).shl(3))

		switch round & 3 {
		case 0:
			row0 = row0.shuffleSmallSwap()
			row0[0] ^= roundConstant | round
		case 2:
			row0 = row0.shuffleBigSwap()
		}
	}

	for i, v := range row0 {
		state.setWord(i, v)
	}
	for i, v := range row1 {
		state.setWord(4+i, v)
	}
	for i, v := range row2 {
		state.setWord(8+i, v)
	}
}
