package reversi

// Weights of the static evaluation.
const (
	weightMine       = 0.8
	weightTheirs     = -1.2
	weightPercentage = 100
)

// CountResult is the disc tally used by Evaluate.
type CountResult struct {
	Mine   int
	Theirs int
	// Percentage is the opponent's share of all discs on the board,
	// 1/(Mine/Theirs+1). It is 0 when either side has no disc.
	Percentage float32
}

// CountDiscs tallies side's discs against the opponent's.
func CountDiscs(b *Board, side Disc) CountResult {
	var res CountResult
	opponent := side.Opposite()

	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			switch b[x][y] {
			case Empty:
			case side:
				res.Mine++
			case opponent:
				res.Theirs++
			}
		}
	}

	if res.Mine != 0 && res.Theirs != 0 {
		res.Percentage = 1 / (float32(res.Mine)/float32(res.Theirs) + 1)
	}

	return res
}

// Evaluate scores the board for side. Higher is better for side.
func Evaluate(b *Board, side Disc) float64 {
	c := CountDiscs(b, side)
	mine := float32(c.Mine) * weightMine
	theirs := float32(c.Theirs) * weightTheirs
	percentage := c.Percentage * weightPercentage

	return float64(mine + theirs + percentage)
}
