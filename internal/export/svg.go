// Package export renders an art block into an SVG document.
package export

import (
	"fmt"
	"strings"
)

// DefaultFontSize is the monospace size the layout was tuned for; wildly
// different values can misalign the character grid.
const DefaultFontSize = 40.0

// ArtToSVG converts a rendered art block to an SVG document: a white
// background with one monospace text row per art line, white fill and
// black stroke so the glyphs come out as outlines.
func ArtToSVG(art string, fontSize float64) string {
	if art == "" {
		return ""
	}
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}

	lines := strings.Split(art, "\n")
	cols := 0
	for _, line := range lines {
		if len(line) > cols {
			cols = len(line)
		}
	}

	width := fontSize*float64(cols) + 10
	height := fontSize*float64(len(lines)) + 10

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect x="0" y="%.0f" width="100%%" height="100%%" fill="white"/>
<g font-size="%.0f" font-family="monospace">
`, width, height, width, height, fontSize, fontSize))

	for i, line := range lines {
		sb.WriteString(fmt.Sprintf(`<text x="0" y="%.0f" fill="white" stroke="black" style="white-space: pre;">%s</text>
`, float64(i+1)*fontSize, escape(line)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// escape covers the only markup-significant bytes the glyph alphabet and
// labels can carry into a text node.
func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}
