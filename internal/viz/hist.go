package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/drunken-bishop/randomart/internal/bishop"
)

// Histogram plots how many cells hold each visit count, sentinels
// included, one x position per count 0..16.
func Histogram(b *bishop.Board) string {
	cells := make([]float64, bishop.EndCount+1)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			c := b.Count(bishop.Position{X: x, Y: y})
			if c >= 0 && c < len(cells) {
				cells[c]++
			}
		}
	}

	return asciigraph.Plot(cells,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("cells per visit count (0..%d)", bishop.EndCount)),
	)
}
