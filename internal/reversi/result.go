package reversi

import (
	"fmt"
	"strings"
)

// ScoringRule decides who is credited with the empty cells left when
// a game ends early.
type ScoringRule int

const (
	// ScoreEmptiesToFewer credits every empty cell to the side holding
	// strictly fewer discs. Nobody gets them on a tie.
	ScoreEmptiesToFewer ScoringRule = iota
	// ScoreEmptiesToWinner credits empty cells to the winner.
	ScoreEmptiesToWinner
	// ScoreDiscsOnly ignores empty cells.
	ScoreDiscsOnly
)

func ParseScoringRule(s string) (ScoringRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fewer":
		return ScoreEmptiesToFewer, nil
	case "winner":
		return ScoreEmptiesToWinner, nil
	case "discs":
		return ScoreDiscsOnly, nil
	default:
		return 0, fmt.Errorf("unknown scoring rule %q", s)
	}
}

func (r ScoringRule) String() string {
	switch r {
	case ScoreEmptiesToWinner:
		return "winner"
	case ScoreDiscsOnly:
		return "discs"
	default:
		return "fewer"
	}
}

// Result is the final score of a game.
type Result struct {
	// Winner is Empty on a tie. It is decided on discs alone.
	Winner Disc
	Black  int
	White  int
}

// Tally scores b under rule.
func Tally(b *Board, rule ScoringRule) Result {
	black, white, empty := b.Count()
	res := Result{Black: black, White: white}

	switch {
	case black > white:
		res.Winner = Black
	case white > black:
		res.Winner = White
	default:
		return res
	}

	switch rule {
	case ScoreEmptiesToFewer:
		if res.Winner == Black {
			res.White += empty
		} else {
			res.Black += empty
		}
	case ScoreEmptiesToWinner:
		if res.Winner == Black {
			res.Black += empty
		} else {
			res.White += empty
		}
	}

	return res
}

// String renders the result with White's score first, e.g.
// "Black wins (20:44)".
func (r Result) String() string {
	switch r.Winner {
	case Black:
		return fmt.Sprintf("Black wins (%d:%d)", r.White, r.Black)
	case White:
		return fmt.Sprintf("White wins (%d:%d)", r.White, r.Black)
	default:
		return fmt.Sprintf("Tie (%d:%d)", r.White, r.Black)
	}
}
