package cube

import "testing"

func TestSolvedIsSolved(t *testing.T) {
	if !Solved().IsSolved() {
		t.Fatal("Solved() must report IsSolved")
	}
}

func TestEveryQuarterTurnIsAPermutation(t *testing.T) {
	for _, face := range allFaces {
		t.Run(face.String(), func(t *testing.T) {
			s := Apply(Solved(), Move{Face: face, Quarters: QuarterCW})
			seenC := map[uint8]bool{}
			for _, c := range s.Corners {
				if seenC[c.ID] {
					t.Fatalf("duplicate corner id %d after %s", c.ID, face)
				}
				seenC[c.ID] = true
			}
			seenE := map[uint8]bool{}
			for _, e := range s.Edges {
				if seenE[e.ID] {
					t.Fatalf("duplicate edge id %d after %s", e.ID, face)
				}
				seenE[e.ID] = true
			}
		})
	}
}

func TestFourQuarterTurnsReturnToSolved(t *testing.T) {
	for _, face := range allFaces {
		t.Run(face.String(), func(t *testing.T) {
			s := Solved()
			for i := 0; i < 4; i++ {
				s = Apply(s, Move{Face: face, Quarters: QuarterCW})
			}
			if !s.IsSolved() {
				t.Fatalf("four %s quarter turns did not return to solved", face)
			}
		})
	}
}

func TestHalfTurnEqualsTwoQuarters(t *testing.T) {
	for _, face := range allFaces {
		t.Run(face.String(), func(t *testing.T) {
			viaHalf := Apply(Solved(), Move{Face: face, Quarters: Half})
			viaTwoQuarters := Apply(Apply(Solved(), Move{Face: face, Quarters: QuarterCW}), Move{Face: face, Quarters: QuarterCW})
			if viaHalf != viaTwoQuarters {
				t.Fatalf("%s2 != %s %s", face, face, face)
			}
		})
	}
}

func TestCCWIsInverseOfCW(t *testing.T) {
	for _, face := range allFaces {
		t.Run(face.String(), func(t *testing.T) {
			s := Apply(Solved(), Move{Face: face, Quarters: QuarterCW})
			s = Apply(s, Move{Face: face, Quarters: QuarterCCW})
			if !s.IsSolved() {
				t.Fatalf("%s followed by %s' did not return to solved", face, face)
			}
		})
	}
}

func TestMoveInverseUndoesSequence(t *testing.T) {
	moves, err := ParseSequence("R U R' U' F2 D L2")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	s := ApplySequence(Solved(), moves)
	for i := len(moves) - 1; i >= 0; i-- {
		s = Apply(s, moves[i].Inverse())
	}
	if !s.IsSolved() {
		t.Fatal("applying a sequence then its reverse-inverse did not return to solved")
	}
}

func TestOrientationParityInvariant(t *testing.T) {
	moves, err := ParseSequence("R U2 D' L F B' R2 U L' F2")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	s := ApplySequence(Solved(), moves)
	if s.cornerOrientSum() != 0 {
		t.Errorf("corner orientation sum must stay 0 mod 3, got %d", s.cornerOrientSum())
	}
	if s.edgeFlipSum() != 0 {
		t.Errorf("edge flip sum must stay 0 mod 2, got %d", s.edgeFlipSum())
	}
}

func TestG2AndG3MovesPreserveOrientationAndFlip(t *testing.T) {
	for _, m := range g2Moves {
		s := Apply(Solved(), m)
		if cornerOrientVector(s) != 0 || !IsG0Solved(s) {
			t.Errorf("move %s in the G2 moveset must not twist corners or flip edges", m)
		}
	}
}
