package cfen

import (
	"testing"

	"github.com/behrlich/thistlecube/internal/cube"
)

func TestRoundTripSolvedCube(t *testing.T) {
	want := cube.Solved()
	text := GenerateCFEN(want)
	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	got, err := parsed.ToState()
	if err != nil {
		t.Fatalf("ToState: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestParseRejectsWrongFaceCount(t *testing.T) {
	if _, err := Parse("UF|U9/R9/F9/D9/L9"); err == nil {
		t.Fatal("expected an error for a CFEN string missing a face")
	}
}

func TestParseRejectsWrongStickerCount(t *testing.T) {
	if _, err := Parse("UF|U8/R9/F9/D9/L9/B9"); err == nil {
		t.Fatal("expected an error for a face with the wrong sticker count")
	}
}

func TestMatchesIgnoresWildcards(t *testing.T) {
	scrambled := cube.Apply(cube.Solved(), cube.Move{Face: cube.R, Quarters: cube.QuarterCW})
	pattern, err := Parse("UF|?9/?9/?9/?9/?9/?9")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ok, err := pattern.Matches(scrambled)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if !ok {
		t.Fatal("an all-wildcard pattern must match any cube")
	}
}

func TestMatchesRejectsWrongState(t *testing.T) {
	solvedCFEN := GenerateCFEN(cube.Solved())
	pattern, err := Parse(solvedCFEN)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	scrambled := cube.Apply(cube.Solved(), cube.Move{Face: cube.R, Quarters: cube.QuarterCW})
	ok, err := pattern.Matches(scrambled)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if ok {
		t.Fatal("solved-cube pattern must not match a scrambled cube")
	}
}
