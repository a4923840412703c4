package cube

import "testing"

func TestParseMoveVariants(t *testing.T) {
	cases := []struct {
		tok      string
		face     Face
		quarters int
	}{
		{"U", U, QuarterCW},
		{"U2", U, Half},
		{"U'", U, QuarterCCW},
		{"B2", B, Half},
	}
	for _, c := range cases {
		m, err := ParseMove(c.tok)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", c.tok, err)
		}
		if m.Face != c.face || m.Quarters != c.quarters {
			t.Errorf("ParseMove(%q) = %+v, want face %v quarters %d", c.tok, m, c.face, c.quarters)
		}
	}
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "X", "U3", "Uu"} {
		if _, err := ParseMove(tok); err == nil {
			t.Errorf("ParseMove(%q) should have failed", tok)
		}
	}
}

func TestFormatSequenceRoundTrips(t *testing.T) {
	const src = "R U R' U' F2 D L2"
	moves, err := ParseSequence(src)
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	if got := FormatSequence(moves); got != src {
		t.Errorf("FormatSequence round-trip = %q, want %q", got, src)
	}
}
