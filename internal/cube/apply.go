package cube

// Move is a single face turn: Face to turn, Quarters clockwise quarter
// turns to apply (QuarterCW, Half, or QuarterCCW).
type Move struct {
	Face     Face
	Quarters int
}

func (m Move) String() string {
	switch m.Quarters {
	case QuarterCW:
		return m.Face.String()
	case Half:
		return m.Face.String() + "2"
	case QuarterCCW:
		return m.Face.String() + "'"
	default:
		return m.Face.String() + "?"
	}
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m.Quarters {
	case QuarterCW:
		return Move{Face: m.Face, Quarters: QuarterCCW}
	case QuarterCCW:
		return Move{Face: m.Face, Quarters: QuarterCW}
	default:
		return m
	}
}

// Apply returns the state that results from turning s by m. s is left
// unmodified — State is a plain value type, so every search branch clones
// implicitly by taking a new State on the stack.
func Apply(s State, m Move) State {
	d := descriptorFor(m)
	var out State
	for dst := 0; dst < 8; dst++ {
		src := s.Corners[d.cornerSrc[dst]]
		out.Corners[dst] = Corner{
			ID:     src.ID,
			Orient: uint8((int(src.Orient) + d.cornerTwist[dst]) % 3),
		}
	}
	for dst := 0; dst < 12; dst++ {
		src := s.Edges[d.edgeSrc[dst]]
		out.Edges[dst] = Edge{
			ID:   src.ID,
			Flip: uint8((int(src.Flip) + d.edgeFlip[dst]) % 2),
		}
	}
	return out
}

// ApplySequence applies moves in order and returns the resulting state.
func ApplySequence(s State, moves []Move) State {
	for _, m := range moves {
		s = Apply(s, m)
	}
	return s
}
