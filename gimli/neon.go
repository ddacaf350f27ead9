package gimli

// permuteNEON is the NEON-shaped Gimli permutation used on arm64. NEON's
// vzip/vext-backed lane shuffles correspond to the same two row-0
// permutations the SSE2 port expresses as PSHUFD immediates, so this reuses
// the vec4 helper type and must stay bit-identical to both permutePortable
// and permuteSSE2 for every input.
func permuteNEON(state *State) {
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
