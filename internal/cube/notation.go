package cube

import (
	"fmt"
	"strings"
)

var faceByLetter = map[byte]Face{
	'U': U, 'D': D, 'L': L, 'R': R, 'F': F, 'B': B,
}

// ParseMove parses a single move token such as "R", "R'" or "R2".
func ParseMove(tok string) (Move, error) {
	if len(tok) == 0 {
		return Move{}, fmt.Errorf("cube: empty move token")
	}
	face, ok := faceByLetter[tok[0]]
	if !ok {
		return Move{}, fmt.Errorf("cube: unknown face letter %q in move %q", tok[0], tok)
	}
	switch suffix := tok[1:]; suffix {
	case "":
		return Move{Face: face, Quarters: QuarterCW}, nil
	case "2":
		return Move{Face: face, Quarters: Half}, nil
	case "'":
		return Move{Face: face, Quarters: QuarterCCW}, nil
	default:
		return Move{}, fmt.Errorf("cube: unknown move suffix %q in move %q", suffix, tok)
	}
}

// ParseSequence parses a whitespace-separated move sequence, e.g. "R U R' U'".
func ParseSequence(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, tok := range fields {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatSequence renders a move sequence back to its space-separated notation.
func FormatSequence(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
