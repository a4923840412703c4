package cfen

import (
	"fmt"

	"github.com/behrlich/thistlecube/internal/cube"
	"github.com/behrlich/thistlecube/internal/facelet"
)

// faceletOffset gives the starting index of each CFEN-ordered face within
// internal/facelet's 54-sticker U/L/F/R/B/D board.
var faceletOffset = [6]int{0, 27, 18, 45, 9, 36} // U, R, F, D, L, B

// ToFacelets converts a parsed CFEN state to a facelet board. Returns an
// error if the orientation isn't the supported identity (U up, F front) —
// this engine has no need to reorient a whole cube, only to read the state
// the caller described.
func (s *State) ToFacelets() (facelet.Facelets, error) {
	f, err := s.toFaceletsAllowingWild()
	if err != nil {
		return f, err
	}
	for _, c := range f {
		if c == facelet.Wild {
			return f, fmt.Errorf("cfen: cannot build a concrete facelet board from a wildcard sticker")
		}
	}
	return f, nil
}

// ToState builds a concrete cube.State from the CFEN text. Fails if any
// sticker is a wildcard — a wildcard pattern can be matched against a cube,
// but it doesn't describe one.
func (s *State) ToState() (cube.State, error) {
	f, err := s.ToFacelets()
	if err != nil {
		return cube.State{}, err
	}
	return facelet.ToState(f)
}

// FromState renders a cube.State as a CFEN State in the identity orientation.
func FromState(cs cube.State) *State {
	f := facelet.FromState(cs)
	var s State
	s.Orientation = identityOrientation
	for i := range s.Faces {
		offset := faceletOffset[i]
		for j := 0; j < 9; j++ {
			s.Faces[i].Stickers[j] = f[offset+j]
		}
	}
	return &s
}

// GenerateCFEN renders a cube.State directly to CFEN text.
func GenerateCFEN(cs cube.State) string {
	return FromState(cs).String()
}

// Matches reports whether a (possibly wildcarded) CFEN pattern matches a
// cube state, comparing sticker by sticker and skipping Wild positions.
func (s *State) Matches(cs cube.State) (bool, error) {
	pattern, err := s.toFaceletsAllowingWild()
	if err != nil {
		return false, err
	}
	actual := facelet.FromState(cs)
	for i := range pattern {
		if pattern[i] == facelet.Wild {
			continue
		}
		if pattern[i] != actual[i] {
			return false, nil
		}
	}
	return true, nil
}

// toFaceletsAllowingWild is like ToFacelets but permits Wild stickers,
// for use by Matches.
func (s *State) toFaceletsAllowingWild() (facelet.Facelets, error) {
	var f facelet.Facelets
	if s.Orientation != identityOrientation {
		return f, fmt.Errorf("cfen: orientation %c%c is not supported, only U up / F front", s.Orientation.Up, s.Orientation.Front)
	}
	for i, face := range s.Faces {
		offset := faceletOffset[i]
		for j, c := range face.Stickers {
			f[offset+j] = c
		}
	}
	return f, nil
}

// Validate parses a CFEN string and reports an error if it is malformed.
func Validate(cfenStr string) error {
	_, err := Parse(cfenStr)
	return err
}
