package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"

	"github.com/the-web800/Reversi-AI/internal/reversi"
)

// Console plays one game over a line based terminal.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	rng      *rand.Rand
	selector reversi.Selector
	scoring  reversi.ScoringRule
	logger   *log.Logger
}

func NewConsole(in io.Reader, out io.Writer, rng *rand.Rand, cfg *Config, logger *log.Logger) *Console {
	return &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		rng:      rng,
		selector: reversi.Selector{Strategy: cfg.Strategy},
		scoring:  cfg.Scoring,
		logger:   logger,
	}
}

// readToken returns the next whitespace separated token. ok is false at
// the end of input.
func (c *Console) readToken() (tok string, ok bool, err error) {
	for c.in.Scan() {
		if fields := strings.Fields(c.in.Text()); len(fields) > 0 {
			return fields[0], true, nil
		}
	}

	return "", false, c.in.Err()
}

// ChooseSide resolves the human's color. preset is used when not empty,
// otherwise the user is asked.
func (c *Console) ChooseSide(preset string) (reversi.Disc, bool, error) {
	choice := preset
	if choice == "" {
		fmt.Fprintln(c.out, "Select your color [b=black, w=white, r=random]: ")

		tok, ok, err := c.readToken()
		if !ok {
			return reversi.Empty, false, err
		}
		choice = tok
	}

	switch strings.ToLower(choice)[0] {
	case 'w':
		return reversi.White, true, nil
	case 'r':
		side := reversi.Black
		if c.rng.Intn(2) == 1 {
			side = reversi.White
		}
		fmt.Fprintf(c.out, "Your side is %s.\n", side)

		return side, true, nil
	default:
		return reversi.Black, true, nil
	}
}

// Run plays a full game. It returns nil when the game ends or the input
// is exhausted.
func (c *Console) Run(preset string) error {
	player, ok, err := c.ChooseSide(preset)
	if !ok {
		return err
	}
	c.logger.Printf("human plays %s, computer strategy %s", player, c.selector.Strategy)

	game := reversi.NewGame()
	fmt.Fprint(c.out, RenderBoard(game.Board()))

	for {
		if over, reason := game.Over(); over {
			c.logger.Printf("game over: %s", reason)
			break
		}

		if game.Advance() {
			c.logger.Printf("%s passes", game.Turn().Opposite())
			fmt.Fprintln(c.out, "pass")
			continue
		}

		if game.Turn() == player {
			tok, ok, err := c.readToken()
			if !ok {
				return err
			}

			pos, err := reversi.ParsePosition(tok)
			if err == nil {
				err = game.Play(pos)
			}
			if err != nil {
				c.logger.Printf("rejected %q: %v", tok, err)
				fmt.Fprintln(c.out, "error: invalid move.")
				continue
			}
		} else {
			choice, _ := c.selector.BestMove(game.Board(), game.Turn())
			c.logger.Printf("computer plays %s (score %.2f, %d candidates)", choice.Move, choice.Score, choice.Candidates)
			fmt.Fprintln(c.out, choice.Move)

			if err := game.Play(choice.Move); err != nil {
				return err
			}
		}

		fmt.Fprint(c.out, RenderBoard(game.Board()))
	}

	fmt.Fprintf(c.out, "Result: %s\n", game.Result(c.scoring))

	return nil
}
