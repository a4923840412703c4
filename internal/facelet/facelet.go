// Package facelet converts between the cubie-level internal/cube.State and
// the 54-sticker facelet representation used for display and CFEN
// interchange. The conversion tables are transcribed from the
// Thistlethwaite prototype's rubiks_cube_cubie.py display_cube routine.
package facelet

import (
	"fmt"

	"github.com/behrlich/thistlecube/internal/cube"
)

// Color is a sticker color, named after the face it belongs to on a solved
// cube (this engine's cubie colors are U/L/F/R/B/D, not the WYROGB paint
// names some cube literature uses). Wild marks an unknown/don't-care
// sticker, used by CFEN patterns.
type Color byte

const (
	ColorU Color = 'U'
	ColorL Color = 'L'
	ColorF Color = 'F'
	ColorR Color = 'R'
	ColorB Color = 'B'
	ColorD Color = 'D'
	Wild   Color = '?'
)

func (c Color) Valid() bool {
	switch c {
	case ColorU, ColorL, ColorF, ColorR, ColorB, ColorD, Wild:
		return true
	default:
		return false
	}
}

// NumFacelets is the sticker count of a 3x3x3 cube (9 per face, 6 faces).
// Facelet indices are laid out face-major in U, L, F, R, B, D order, each
// face row-major top-left to bottom-right as seen facing that face.
const NumFacelets = 54

// cornerFaceletPos[i] holds the three facelet indices touched by corner
// slot i, in the same order as cornerColors[i]'s reference colors.
var cornerFaceletPos = [8][3]int{
	{8, 27, 20},  // URF
	{6, 18, 11},  // UFL
	{0, 9, 38},   // ULB
	{2, 36, 29},  // UBR
	{47, 26, 33}, // DFR
	{45, 17, 24}, // DLF
	{51, 44, 15}, // DBL
	{53, 35, 42}, // DRB
}

var cornerColors = [8][3]Color{
	{ColorU, ColorR, ColorF},
	{ColorU, ColorF, ColorL},
	{ColorU, ColorL, ColorB},
	{ColorU, ColorB, ColorR},
	{ColorD, ColorF, ColorR},
	{ColorD, ColorL, ColorF},
	{ColorD, ColorB, ColorL},
	{ColorD, ColorR, ColorB},
}

// edgeFaceletPos[i] holds the two facelet indices touched by edge slot i.
var edgeFaceletPos = [12][2]int{
	{5, 28},  // UR
	{7, 19},  // UF
	{3, 10},  // UL
	{1, 37},  // UB
	{50, 34}, // DR
	{46, 25}, // DF
	{48, 16}, // DL
	{52, 43}, // DB
	{23, 30}, // FR
	{21, 14}, // FL
	{41, 12}, // BL
	{39, 32}, // BR
}

var edgeColors = [12][2]Color{
	{ColorU, ColorR},
	{ColorU, ColorF},
	{ColorU, ColorL},
	{ColorU, ColorB},
	{ColorD, ColorR},
	{ColorD, ColorF},
	{ColorD, ColorL},
	{ColorD, ColorB},
	{ColorF, ColorR},
	{ColorF, ColorL},
	{ColorB, ColorL},
	{ColorB, ColorR},
}

var centerIndices = [6]int{4, 13, 22, 31, 40, 49}
var centerColors = [6]Color{ColorU, ColorL, ColorF, ColorR, ColorB, ColorD}

// Facelets is a fixed-size 54-sticker board.
type Facelets [NumFacelets]Color

// FromState renders a cube state to its 54-sticker facelet board.
func FromState(s cube.State) Facelets {
	var f Facelets
	for i := 0; i < 8; i++ {
		c := s.Corners[i]
		for j := 0; j < 3; j++ {
			idx := cornerFaceletPos[i][j]
			f[idx] = cornerColors[c.ID][(j-int(c.Orient)+3)%3]
		}
	}
	for i := 0; i < 12; i++ {
		e := s.Edges[i]
		for j := 0; j < 2; j++ {
			idx := edgeFaceletPos[i][j]
			f[idx] = edgeColors[e.ID][(j-int(e.Flip)+2)%2]
		}
	}
	for i, idx := range centerIndices {
		f[idx] = centerColors[i]
	}
	return f
}

// String renders the board as a 54-character string.
func (f Facelets) String() string {
	b := make([]byte, NumFacelets)
	for i, c := range f {
		b[i] = byte(c)
	}
	return string(b)
}

// ParseFacelets reads a 54-character facelet string.
func ParseFacelets(s string) (Facelets, error) {
	var f Facelets
	if len(s) != NumFacelets {
		return f, fmt.Errorf("facelet: expected %d stickers, got %d", NumFacelets, len(s))
	}
	for i := 0; i < NumFacelets; i++ {
		c := Color(s[i])
		if !c.Valid() {
			return f, fmt.Errorf("facelet: invalid sticker color %q at position %d", s[i], i)
		}
		f[i] = c
	}
	return f, nil
}

// ToState reconstructs a cube.State from a fully-specified facelet board
// (no wildcards). It identifies, for each corner and edge slot, which
// physical cubie occupies it and at what orientation by matching the
// observed sticker colors against the reference color triples/pairs.
func ToState(f Facelets) (cube.State, error) {
	var s cube.State
	for slot := 0; slot < 8; slot++ {
		var observed [3]Color
		for j := 0; j < 3; j++ {
			observed[j] = f[cornerFaceletPos[slot][j]]
			if observed[j] == Wild {
				return cube.State{}, fmt.Errorf("facelet: cannot build a concrete cube state from a wildcard sticker")
			}
		}
		id, orient, err := identifyCorner(observed)
		if err != nil {
			return cube.State{}, fmt.Errorf("facelet: corner slot %d: %w", slot, err)
		}
		s.Corners[slot] = cube.Corner{ID: uint8(id), Orient: uint8(orient)}
	}
	for slot := 0; slot < 12; slot++ {
		var observed [2]Color
		for j := 0; j < 2; j++ {
			observed[j] = f[edgeFaceletPos[slot][j]]
			if observed[j] == Wild {
				return cube.State{}, fmt.Errorf("facelet: cannot build a concrete cube state from a wildcard sticker")
			}
		}
		id, flip, err := identifyEdge(observed)
		if err != nil {
			return cube.State{}, fmt.Errorf("facelet: edge slot %d: %w", slot, err)
		}
		s.Edges[slot] = cube.Edge{ID: uint8(id), Flip: uint8(flip)}
	}
	return s, nil
}

func identifyCorner(observed [3]Color) (id, orient int, err error) {
	for id, ref := range cornerColors {
		for orient := 0; orient < 3; orient++ {
			match := true
			for j := 0; j < 3; j++ {
				if ref[(j-orient+3)%3] != observed[j] {
					match = false
					break
				}
			}
			if match {
				return id, orient, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("no corner cubie matches colors %c%c%c", observed[0], observed[1], observed[2])
}

func identifyEdge(observed [2]Color) (id, flip int, err error) {
	for id, ref := range edgeColors {
		for flip := 0; flip < 2; flip++ {
			match := true
			for j := 0; j < 2; j++ {
				if ref[(j-flip+2)%2] != observed[j] {
					match = false
					break
				}
			}
			if match {
				return id, flip, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("no edge cubie matches colors %c%c", observed[0], observed[1])
}
