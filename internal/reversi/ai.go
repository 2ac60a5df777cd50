package reversi

import (
	"fmt"
	"strings"
)

// Strategy selects what board a candidate move is scored on.
type Strategy int

const (
	// StrategyClassic scores the board as it stood before the candidate
	// move, for every candidate. All candidates tie and the first legal
	// move in generator order is chosen.
	StrategyClassic Strategy = iota
	// StrategyGreedy scores the board after the candidate move.
	StrategyGreedy
)

// Score every candidate must beat to be selected.
const scoreSentinel = -50000

func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classic":
		return StrategyClassic, nil
	case "greedy":
		return StrategyGreedy, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", s)
	}
}

func (s Strategy) String() string {
	switch s {
	case StrategyGreedy:
		return "greedy"
	default:
		return "classic"
	}
}

// Selector is the one-ply computer player.
type Selector struct {
	Strategy Strategy
}

// Choice is a selected move together with its score.
type Choice struct {
	Move       Position
	Score      float64
	Candidates int
}

// BestMove returns the move side should play on b. ok is false when side
// has no legal move. b is not modified.
func (s Selector) BestMove(b *Board, side Disc) (c Choice, ok bool) {
	moves := LegalMoves(b, side)
	if len(moves) == 0 {
		return Choice{}, false
	}

	c = Choice{Move: moves[0], Score: scoreSentinel, Candidates: len(moves)}
	for _, move := range moves {
		next := b.Copy()
		Place(next, side, move)

		scored := next
		if s.Strategy == StrategyClassic {
			scored = b
		}

		if score := Evaluate(scored, side); score > c.Score {
			c.Score = score
			c.Move = move
		}
	}

	return c, true
}
