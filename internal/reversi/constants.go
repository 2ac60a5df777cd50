package reversi

// Disc is the content of a single cell.
type Disc int8

const (
	Empty Disc = iota
	Black
	White
)

const BoardSize = 8

// Directions walked when looking for flanked runs.
var directions = []struct{ x, y int }{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Opposite returns the other player's disc. Empty stays Empty.
func (d Disc) Opposite() Disc {
	switch d {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (d Disc) String() string {
	switch d {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}
