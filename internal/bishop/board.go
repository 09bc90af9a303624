package bishop

import "fmt"

// Sentinel counts written over the start and end cells after a walk.
const (
	StartCount = 15
	EndCount   = 16
)

// Board is the bounded room the bishop walks in. Cells hold visit counts,
// stored densely in row-major order. A walk never leaves the room: a step
// that would cross a wall is clipped on that axis only.
type Board struct {
	width, height int
	start         Position
	pos           Position
	end           Position
	counts        []int
}

// NewBoard creates a board with the bishop starting at the room center.
func NewBoard(width, height int) (*Board, error) {
	return NewBoardAt(width, height, Position{X: width / 2, Y: height / 2})
}

// NewBoardAt creates a board with an explicit start position. The start
// must lie inside the room.
func NewBoardAt(width, height int, start Position) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: room %dx%d", ErrInvalidConfiguration, width, height)
	}
	if start.X < 0 || start.X >= width || start.Y < 0 || start.Y >= height {
		return nil, fmt.Errorf("%w: start (%d,%d) outside %dx%d room",
			ErrInvalidConfiguration, start.X, start.Y, width, height)
	}
	return &Board{
		width:  width,
		height: height,
		start:  start,
		pos:    start,
		end:    start,
		counts: make([]int, width*height),
	}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Start is the cell the walk began on.
func (b *Board) Start() Position { return b.start }

// End is the cell the last step landed on, or the start before any step.
func (b *Board) End() Position { return b.end }

// Count returns the visit count at p, zero for cells the walk never
// reached or positions outside the room.
func (b *Board) Count(p Position) int {
	if p.X < 0 || p.X >= b.width || p.Y < 0 || p.Y >= b.height {
		return 0
	}
	return b.counts[p.Y*b.width+p.X]
}

// Step advances the bishop by one move. Each axis clamps at the walls
// independently; the clipped cell still counts a visit and becomes the
// origin of the next step.
func (b *Board) Step(m Move) Position {
	dx, dy := m.Vector()
	x := clamp(b.pos.X+dx, b.width-1)
	y := clamp(b.pos.Y+dy, b.height-1)
	b.pos = Position{X: x, Y: y}
	b.end = b.pos
	b.counts[y*b.width+x]++
	return b.pos
}

// Walk replays the whole move sequence and returns the end position.
func (b *Board) Walk(moves []Move) Position {
	for _, m := range moves {
		b.Step(m)
	}
	return b.end
}

// Seal stamps the start and end sentinels over whatever counts those
// cells accumulated. End is written second so it wins when the walk
// returns home.
func (b *Board) Seal() {
	b.counts[b.start.Y*b.width+b.start.X] = StartCount
	b.counts[b.end.Y*b.width+b.end.X] = EndCount
}

func clamp(v, max int) int {
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Draw decodes a fingerprint, walks it on a fresh board with a centered
// start and seals the endpoints.
func Draw(fingerprint string, width, height int) (*Board, error) {
	return DrawAt(fingerprint, width, height, Position{X: width / 2, Y: height / 2})
}

// DrawAt is Draw with an explicit start position. Configuration is
// validated before any of the fingerprint is read.
func DrawAt(fingerprint string, width, height int, start Position) (*Board, error) {
	b, err := NewBoardAt(width, height, start)
	if err != nil {
		return nil, err
	}
	moves, err := Decode(fingerprint)
	if err != nil {
		return nil, err
	}
	b.Walk(moves)
	b.Seal()
	return b, nil
}
