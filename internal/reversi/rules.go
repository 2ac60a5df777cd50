package reversi

// IsLegal reports whether side may place a disc at p: the cell must be
// empty and at least one direction must hold a run of opponent discs
// closed by one of side's discs.
func IsLegal(b *Board, side Disc, p Position) bool {
	if !p.InBounds() || b.At(p) != Empty {
		return false
	}

	for _, dir := range directions {
		if len(run(b, side, p, dir.x, dir.y)) > 0 {
			return true
		}
	}

	return false
}

// Flips returns the list of discs that would be flipped if side placed at p
func Flips(b *Board, side Disc, p Position) []Position {
	if !p.InBounds() || b.At(p) != Empty {
		return nil
	}

	var totalFlips []Position
	for _, dir := range directions {
		totalFlips = append(totalFlips, run(b, side, p, dir.x, dir.y)...)
	}

	return totalFlips
}

// Place puts side's disc at p and flips every bounded opponent run.
// The move must be legal; an illegal move only sets the target cell.
func Place(b *Board, side Disc, p Position) {
	b.Set(p, side)

	for _, dir := range directions {
		for _, flip := range run(b, side, p, dir.x, dir.y) {
			b.Set(flip, side)
		}
	}
}

// run walks from p in direction (dx, dy) and returns the contiguous
// opponent discs when they are closed by one of side's discs. A run
// that reaches the edge or an empty cell yields nil.
func run(b *Board, side Disc, p Position, dx, dy int) []Position {
	opponent := side.Opposite()

	var flips []Position
	next := p.Step(dx, dy)

	for next.InBounds() && b.At(next) == opponent {
		flips = append(flips, next)
		next = next.Step(dx, dy)
	}

	if next.InBounds() && b.At(next) == side && len(flips) > 0 {
		return flips
	}

	return nil
}
