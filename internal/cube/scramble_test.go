package cube

import "testing"

func TestRandomScrambleLength(t *testing.T) {
	moves := RandomScramble(20)
	if len(moves) != 20 {
		t.Fatalf("expected 20 moves, got %d", len(moves))
	}
}

func TestRandomScrambleNoRepeatedFace(t *testing.T) {
	moves := RandomScramble(200)
	for i := 1; i < len(moves); i++ {
		if moves[i].Face == moves[i-1].Face {
			t.Fatalf("move %d repeats face %s from move %d", i, moves[i].Face, i-1)
		}
	}
}

func TestRandomScrambleZeroLength(t *testing.T) {
	moves := RandomScramble(0)
	if len(moves) != 0 {
		t.Fatalf("expected no moves, got %d", len(moves))
	}
}
