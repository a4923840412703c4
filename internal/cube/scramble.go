package cube

import "math/rand"

// RandomScramble returns a random sequence of n moves drawn from the full
// 18-move set, never turning the same face twice in a row. Grounded on the
// Thistlethwaite prototype's get_random_scramble: reject-and-retry against
// the last move's face rather than excluding it from the draw.
func RandomScramble(n int) []Move {
	moves := allMoves()
	scramble := make([]Move, 0, n)
	lastFace := -1
	for i := 0; i < n; i++ {
		for {
			m := moves[rand.Intn(len(moves))]
			if int(m.Face) != lastFace {
				scramble = append(scramble, m)
				lastFace = int(m.Face)
				break
			}
		}
	}
	return scramble
}
