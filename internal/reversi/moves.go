package reversi

// LegalMoves returns the legal moves of side in row-major order
// (a1, b1, ... h1, a2, ...). It returns nil when side has to pass.
func LegalMoves(b *Board, side Disc) []Position {
	var moves []Position
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			p := Position{X: x, Y: y}
			if b.At(p) == Empty && IsLegal(b, side, p) {
				moves = append(moves, p)
			}
		}
	}

	return moves
}
