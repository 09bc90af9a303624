package bishop

// Position is a cell coordinate on the board, x growing right and y
// growing down from the top-left corner.
type Position struct {
	X, Y int
}

// Move is one of the four diagonal steps the bishop can take. The numeric
// value of each move is the 2-bit code that selects it in a fingerprint.
type Move uint8

const (
	NW Move = 0b00
	NE Move = 0b01
	SW Move = 0b10
	SE Move = 0b11
)

// Vector returns the (dx, dy) displacement of the move.
func (m Move) Vector() (dx, dy int) {
	switch m {
	case NW:
		return -1, -1
	case NE:
		return 1, -1
	case SW:
		return -1, 1
	default:
		return 1, 1
	}
}

func (m Move) String() string {
	switch m {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SW:
		return "SW"
	default:
		return "SE"
	}
}
