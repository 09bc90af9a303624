package art

import (
	"strings"

	"github.com/drunken-bishop/randomart/internal/bishop"
)

// Render lays out a board as a bordered text block: a +--+ frame around
// one glyph per cell, rows top to bottom. An empty label leaves the bottom
// border plain; otherwise "[label]" is centered there with '-' fill. A
// label wider than the room overflows the border rather than being
// truncated. The result has height+2 lines and no trailing newline.
func Render(b *bishop.Board, label string) string {
	w, h := b.Width(), b.Height()

	border := "+" + strings.Repeat("-", w) + "+"

	var sb strings.Builder
	sb.Grow((w + 3) * (h + 2))

	sb.WriteString(border)
	sb.WriteByte('\n')

	for y := 0; y < h; y++ {
		sb.WriteByte('|')
		for x := 0; x < w; x++ {
			sb.WriteByte(Symbol(b.Count(bishop.Position{X: x, Y: y})))
		}
		sb.WriteString("|\n")
	}

	if label == "" {
		sb.WriteString(border)
	} else {
		sb.WriteString("+")
		sb.WriteString(center("["+label+"]", w, "-"))
		sb.WriteString("+")
	}

	return sb.String()
}

// center pads s on both sides with fill up to width columns, the odd
// column going to the right. Strings already wider than width come back
// unchanged.
func center(s string, width int, fill string) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, pad-left)
}
