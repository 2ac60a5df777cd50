package reversi

// Board is the 8x8 grid, indexed [x][y].
type Board [BoardSize][BoardSize]Disc

// NewBoard initializes the board with starting positions
func NewBoard() *Board {
	b := &Board{}
	mid := BoardSize / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black

	return b
}

// Copy creates a deep copy of the board (used by the AI to simulate moves)
func (b *Board) Copy() *Board {
	newBoard := *b

	return &newBoard
}

// At returns the disc at p. p must be in bounds.
func (b *Board) At(p Position) Disc {
	return b[p.X][p.Y]
}

// Set writes d at p. p must be in bounds.
func (b *Board) Set(p Position, d Disc) {
	b[p.X][p.Y] = d
}

// Count returns the number of black, white and empty cells.
func (b *Board) Count() (black, white, empty int) {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			switch b[x][y] {
			case Black:
				black++
			case White:
				white++
			default:
				empty++
			}
		}
	}

	return black, white, empty
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b[x][y] == Empty {
				return false
			}
		}
	}

	return true
}
