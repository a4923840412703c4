package cube

import "testing"

func TestSolvedSatisfiesEveryPhaseGoal(t *testing.T) {
	s := Solved()
	if !IsG0Solved(s) {
		t.Error("solved cube must satisfy G0")
	}
	if !IsG1Solved(s) {
		t.Error("solved cube must satisfy G1")
	}
	if !IsG3Solved(s) {
		t.Error("solved cube must satisfy G3")
	}
	if !IsG2Solved(s) {
		t.Error("solved cube must satisfy G2")
	}
}

func TestProjectG2IdentityCosetIsZero(t *testing.T) {
	if ProjectG2(Solved()) != 0 {
		t.Fatalf("solved cube's G2 key must be the identity coset, got %d", ProjectG2(Solved()))
	}
}

func TestProjectG2StableUnderHalfTurnsOnly(t *testing.T) {
	for _, m := range g3Moves {
		s := Apply(Solved(), m)
		if !IsG2Solved(s) {
			t.Fatalf("a single half turn %s must stay in G3's identity coset", m)
		}
	}
}

func TestProjectG2ChangesAfterQuarterTurn(t *testing.T) {
	s := Apply(Solved(), Move{Face: U, Quarters: QuarterCW})
	if IsG2Solved(s) {
		t.Fatal("a quarter U turn must leave the identity coset")
	}
}

func TestCongruentStatesProjectEqualAfterSameMove(t *testing.T) {
	a := Solved()
	b := ApplySequence(Solved(), mustParse(t, "F2"))
	if ProjectG0(a) != ProjectG0(b) {
		t.Fatal("F2 must not change the G0 projection of the solved cube")
	}
	for _, m := range g0Moves {
		if ProjectG0(Apply(a, m)) != ProjectG0(Apply(b, m)) {
			t.Fatalf("G0 projection not congruent under move %s", m)
		}
	}
}

func TestLehmerCodeRoundTripsIdentity(t *testing.T) {
	ids := cornerPermIDs(Solved())
	if lehmerCode(ids) != 0 {
		t.Fatalf("identity permutation must have Lehmer code 0, got %d", lehmerCode(ids))
	}
	back := unrankPermutation(len(ids), lehmerCode(ids))
	for i := range ids {
		if back[i] != ids[i] {
			t.Fatalf("unrankPermutation(lehmerCode(identity)) = %v, want %v", back, ids)
		}
	}
}

func mustParse(t *testing.T, s string) []Move {
	t.Helper()
	moves, err := ParseSequence(s)
	if err != nil {
		t.Fatalf("ParseSequence(%q): %v", s, err)
	}
	return moves
}
