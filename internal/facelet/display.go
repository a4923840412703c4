package facelet

import (
	"fmt"
	"strings"
)

var glyphs = map[Color]string{
	ColorU: "⬜",
	ColorL: "🟧",
	ColorF: "🟩",
	ColorR: "🟥",
	ColorB: "🟦",
	ColorD: "🟨",
	Wild:   "⬛",
}

// faceRows groups the 54 facelet indices into the six 3x3 faces in
// U, L, F, R, B, D layout order.
var faceRows = [6][3][3]int{
	{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}},
	{{9, 10, 11}, {12, 13, 14}, {15, 16, 17}},
	{{18, 19, 20}, {21, 22, 23}, {24, 25, 26}},
	{{27, 28, 29}, {30, 31, 32}, {33, 34, 35}},
	{{36, 37, 38}, {39, 40, 41}, {42, 43, 44}},
	{{45, 46, 47}, {48, 49, 50}, {51, 52, 53}},
}

// UnfoldedString renders the facelet board as a cross-shaped net, matching
// the teacher's terminal cube display layout but driven by this package's
// color set instead of the generic NxN Cube/Color grid.
func (f Facelets) UnfoldedString(colored bool) string {
	glyph := func(c Color) string {
		if colored {
			if g, ok := glyphs[c]; ok {
				return g
			}
			return "⬛"
		}
		return string(c)
	}
	faceLines := func(faceIdx int) [3]string {
		var lines [3]string
		for r := 0; r < 3; r++ {
			var sb strings.Builder
			for _, idx := range faceRows[faceIdx][r] {
				sb.WriteString(glyph(f[idx]))
			}
			lines[r] = sb.String()
		}
		return lines
	}
	const U, L, Fc, R, Bc, D = 0, 1, 2, 3, 4, 5
	uLines := faceLines(U)
	lLines := faceLines(L)
	fLines := faceLines(Fc)
	rLines := faceLines(R)
	bLines := faceLines(Bc)
	dLines := faceLines(D)

	pad := strings.Repeat("  ", 3)
	var sb strings.Builder
	for _, line := range uLines {
		fmt.Fprintf(&sb, "%s%s\n", pad, line)
	}
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&sb, "%s%s%s%s\n", lLines[i], fLines[i], rLines[i], bLines[i])
	}
	for _, line := range dLines {
		fmt.Fprintf(&sb, "%s%s\n", pad, line)
	}
	return sb.String()
}
