// Package cfen implements the custom facelet notation used to describe a
// 3x3x3 cube state on the command line: an orientation pair followed by six
// run-length-encoded faces, e.g. "UF|U9/R9/F9/D9/L9/B9". Adapted from the
// teacher's CFEN package; rewired to go through internal/facelet's cubie
// representation instead of a generic [6][][]Color grid, since this repo's
// canonical cube representation is cubie-based.
package cfen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/behrlich/thistlecube/internal/facelet"
)

// faceOrder is CFEN's own face order, distinct from internal/facelet's
// U/L/F/R/B/D layout order.
var faceOrder = [6]facelet.Color{facelet.ColorU, facelet.ColorR, facelet.ColorF, facelet.ColorD, facelet.ColorL, facelet.ColorB}

// Orientation names which sticker color currently faces up and which faces
// front. Only the identity orientation (U up, F front) is supported: this
// engine never needs to reorient a whole cube to solve it, only to read and
// render the state the caller handed it.
type Orientation struct {
	Up    facelet.Color
	Front facelet.Color
}

var identityOrientation = Orientation{Up: facelet.ColorU, Front: facelet.ColorF}

// Face is one face's 9 stickers in row-major order, any of which may be the
// Wild ('?') don't-care color.
type Face struct {
	Stickers [9]facelet.Color
}

// State is a full parsed CFEN cube description.
type State struct {
	Orientation Orientation
	Faces       [6]Face // CFEN order: U, R, F, D, L, B
}

// String renders the state back to CFEN text.
func (s *State) String() string {
	var sb strings.Builder
	sb.WriteByte(byte(s.Orientation.Up))
	sb.WriteByte(byte(s.Orientation.Front))
	sb.WriteByte('|')
	for i, face := range s.Faces {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(face.compactString())
	}
	return sb.String()
}

func (f *Face) compactString() string {
	var sb strings.Builder
	current := f.Stickers[0]
	count := 1
	flush := func() {
		sb.WriteByte(byte(current))
		if count > 1 {
			sb.WriteString(strconv.Itoa(count))
		}
	}
	for i := 1; i < len(f.Stickers); i++ {
		if f.Stickers[i] == current {
			count++
			continue
		}
		flush()
		current = f.Stickers[i]
		count = 1
	}
	flush()
	return sb.String()
}

var tokenPattern = regexp.MustCompile(`([ULFRBD?])(\d*)`)

// Parse parses a CFEN string into a State.
func Parse(s string) (*State, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 2 {
		return nil, fmt.Errorf("cfen: expected 'orientation|faces', got %q", s)
	}
	orientation, err := parseOrientation(parts[0])
	if err != nil {
		return nil, fmt.Errorf("cfen: invalid orientation %q: %w", parts[0], err)
	}
	faces, err := parseFaces(parts[1])
	if err != nil {
		return nil, fmt.Errorf("cfen: invalid faces %q: %w", parts[1], err)
	}
	return &State{Orientation: *orientation, Faces: faces}, nil
}

func parseOrientation(s string) (*Orientation, error) {
	if len(s) != 2 {
		return nil, fmt.Errorf("orientation must be exactly 2 characters, got %d", len(s))
	}
	up := facelet.Color(s[0])
	front := facelet.Color(s[1])
	if !up.Valid() || up == facelet.Wild || !front.Valid() || front == facelet.Wild {
		return nil, fmt.Errorf("orientation colors must be concrete face letters, got %q", s)
	}
	return &Orientation{Up: up, Front: front}, nil
}

func parseFaces(s string) ([6]Face, error) {
	var faces [6]Face
	tokens := strings.Split(s, "/")
	if len(tokens) != 6 {
		return faces, fmt.Errorf("expected 6 faces separated by '/', got %d", len(tokens))
	}
	for i, tok := range tokens {
		face, err := parseFace(tok)
		if err != nil {
			return faces, fmt.Errorf("face %d: %w", i, err)
		}
		faces[i] = *face
	}
	return faces, nil
}

func parseFace(s string) (*Face, error) {
	matches := tokenPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no valid sticker tokens in %q", s)
	}
	var face Face
	pos := 0
	for _, m := range matches {
		color := facelet.Color(m[1][0])
		count := 1
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, fmt.Errorf("invalid run length %q: %w", m[2], err)
			}
			count = n
		}
		for i := 0; i < count; i++ {
			if pos >= 9 {
				return nil, fmt.Errorf("face has more than 9 stickers")
			}
			face.Stickers[pos] = color
			pos++
		}
	}
	if pos != 9 {
		return nil, fmt.Errorf("face has %d stickers, expected 9", pos)
	}
	return &face, nil
}
