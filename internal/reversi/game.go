package reversi

import "fmt"

// EndReason tells why a game finished.
type EndReason int

const (
	NotOver EndReason = iota
	EndBoardFull
	EndDoublePass
)

func (r EndReason) String() string {
	switch r {
	case EndBoardFull:
		return "board full"
	case EndDoublePass:
		return "both sides passed"
	default:
		return "not over"
	}
}

// Game represents the game state
type Game struct {
	board     *Board
	current   Disc
	passed    bool
	ended     bool
	moveCount int
	lastMove  *Position
}

// NewGame initializes a new game with the starting position
func NewGame() *Game {
	return NewGameFrom(NewBoard(), Black)
}

// NewGameFrom starts a game on a copy of b with side to move.
func NewGameFrom(b *Board, side Disc) *Game {
	black, white, _ := b.Count()

	return &Game{
		board:     b.Copy(),
		current:   side,
		moveCount: black + white,
	}
}

// Turn returns the side to move.
func (g *Game) Turn() Disc {
	return g.current
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	return g.board.Copy()
}

// MoveCount returns the number of discs placed, including the four
// starting discs.
func (g *Game) MoveCount() int {
	return g.moveCount
}

// LastMove returns the most recent placement, if any.
func (g *Game) LastMove() (Position, bool) {
	if g.lastMove == nil {
		return Position{}, false
	}

	return *g.lastMove, true
}

// LegalMoves returns the legal moves of the side to move.
func (g *Game) LegalMoves() []Position {
	return LegalMoves(g.board, g.current)
}

// CanMove reports whether the side to move has a legal move.
func (g *Game) CanMove() bool {
	return len(g.LegalMoves()) > 0
}

// Play places a disc for the side to move. On error the turn does not
// advance.
func (g *Game) Play(p Position) error {
	if over, _ := g.Over(); over {
		return ErrGameOver
	}

	if !IsLegal(g.board, g.current, p) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, p)
	}

	Place(g.board, g.current, p)
	g.moveCount++
	g.passed = false
	g.lastMove = &p
	g.SwitchTurn()

	return nil
}

// Pass skips the turn of a side that has no legal move. A second
// consecutive pass ends the game.
func (g *Game) Pass() error {
	if over, _ := g.Over(); over {
		return ErrGameOver
	}

	if g.CanMove() {
		return ErrCannotPass
	}

	if g.passed {
		g.ended = true
	}
	g.passed = true
	g.SwitchTurn()

	return nil
}

// Advance passes for the side to move when it has no legal move and
// reports whether it did.
func (g *Game) Advance() bool {
	if over, _ := g.Over(); over || g.CanMove() {
		return false
	}

	return g.Pass() == nil
}

// Over reports whether the game has finished and why.
func (g *Game) Over() (bool, EndReason) {
	switch {
	case g.board.IsFull():
		return true, EndBoardFull
	case g.ended:
		return true, EndDoublePass
	default:
		return false, NotOver
	}
}

// SwitchTurn switches the current player
func (g *Game) SwitchTurn() {
	g.current = g.current.Opposite()
}

// Result tallies the board with rule.
func (g *Game) Result(rule ScoringRule) Result {
	return Tally(g.board, rule)
}
