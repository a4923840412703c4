package cube

import "testing"

func TestSolveAlreadySolvedCubeReturnsNoMoves(t *testing.T) {
	moves, _, err := Solve(Solved(), DefaultDepthLimits())
	if err != nil {
		t.Fatalf("Solve(solved): %v", err)
	}
	if len(moves) != 0 {
		t.Fatalf("expected no moves for an already-solved cube, got %v", moves)
	}
}

func TestSolveUndoesASingleMove(t *testing.T) {
	for _, tok := range []string{"U", "D2", "L'", "R", "F2", "B'"} {
		t.Run(tok, func(t *testing.T) {
			m := mustParse(t, tok)[0]
			scrambled := Apply(Solved(), m)
			moves, phases, err := Solve(scrambled, DefaultDepthLimits())
			if err != nil {
				t.Fatalf("Solve(%s): %v", tok, err)
			}
			result := ApplySequence(scrambled, moves)
			if !result.IsSolved() {
				t.Fatalf("solution %v did not solve a cube scrambled by %s", moves, tok)
			}
			if len(phases) != 4 {
				t.Fatalf("expected 4 phase results, got %d", len(phases))
			}
		})
	}
}

func TestSolveShortScramble(t *testing.T) {
	scramble := mustParse(t, "R U2 D' L F B' R2 U L' F2")
	scrambled := ApplySequence(Solved(), scramble)
	if scrambled.IsSolved() {
		t.Fatal("scramble must not already be solved")
	}
	moves, _, err := Solve(scrambled, DefaultDepthLimits())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	result := ApplySequence(scrambled, moves)
	if !result.IsSolved() {
		t.Fatalf("solution %v did not solve scramble %v", moves, scramble)
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	scramble := mustParse(t, "F R U' L2 B D2")
	scrambled := ApplySequence(Solved(), scramble)
	m1, _, err1 := Solve(scrambled, DefaultDepthLimits())
	m2, _, err2 := Solve(scrambled, DefaultDepthLimits())
	if err1 != nil || err2 != nil {
		t.Fatalf("Solve errors: %v, %v", err1, err2)
	}
	if len(m1) != len(m2) {
		t.Fatalf("two solves of the same state produced different-length solutions: %v vs %v", m1, m2)
	}
	for i := range m1 {
		if m1[i] != m2[i] {
			t.Fatalf("two solves of the same state diverged at move %d: %v vs %v", i, m1, m2)
		}
	}
}

func TestSolveRespectsPerPhaseDepthLimits(t *testing.T) {
	scramble := mustParse(t, "R U2 D' L F B' R2 U L' F2")
	scrambled := ApplySequence(Solved(), scramble)
	tight := DepthLimits{G0: 0, G1: 0, G2: 0, G3: 0}
	if _, _, err := Solve(scrambled, tight); err == nil {
		t.Fatal("expected a depth-limit error for a scrambled cube solved with zero-depth limits")
	}
}
