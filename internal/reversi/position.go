package reversi

import "fmt"

// Position is a cell address: X is the column (a-h), Y the row (1-8).
// It is not validated on construction; use InBounds.
type Position struct {
	X, Y int
}

// InBounds reports whether p addresses a cell on the board.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Step returns the neighbour of p in direction (dx, dy).
func (p Position) Step(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String formats p as a move token, e.g. "c4".
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}

	return string([]byte{byte('a' + p.X), byte('1' + p.Y)})
}

// ParsePosition reads a two character move token: a column letter
// 'a'-'h' followed by a row digit '1'-'8'. Upper case letters are accepted.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, NewInvalidInputError(s, "expected a column letter and a row digit")
	}

	col, row := s[0], s[1]
	if col >= 'A' && col <= 'Z' {
		col += 'a' - 'A'
	}

	if col < 'a' || col >= 'a'+BoardSize {
		return Position{}, NewInvalidInputError(s, "column out of range")
	}

	if row < '1' || row >= '1'+BoardSize {
		return Position{}, NewInvalidInputError(s, "row out of range")
	}

	return Position{X: int(col - 'a'), Y: int(row - '1')}, nil
}
