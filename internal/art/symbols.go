// Package art turns a sealed bishop board into bordered ASCII art.
package art

// symbols maps a visit count to its glyph, indexed by count. Counts 15 and
// 16 are the reserved start and end markers.
var symbols = [17]byte{
	' ', '.', 'o', '+', '=', '*', 'B', 'O', 'X', '@', '%', '&', '#', '/', '^', 'S', 'E',
}

// Fallback is the glyph for counts outside the table. Normal walks never
// produce such counts.
const Fallback = '!'

// Symbol returns the display glyph for a visit count.
func Symbol(count int) byte {
	if count < 0 || count >= len(symbols) {
		return Fallback
	}
	return symbols[count]
}
