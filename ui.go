package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/the-web800/Reversi-AI/internal/reversi"
)

// TUI is the full-screen front-end.
type TUI struct {
	cfg    *Config
	rng    *rand.Rand
	logger *log.Logger

	game     *reversi.Game
	player   reversi.Disc
	selector reversi.Selector
}

func NewTUI(cfg *Config, rng *rand.Rand, logger *log.Logger) *TUI {
	return &TUI{
		cfg:      cfg,
		rng:      rng,
		logger:   logger,
		selector: reversi.Selector{Strategy: cfg.Strategy},
	}
}

// colorOptions are the start form choices, in the order of the preset letters.
var colorOptions = []string{"Black", "White", "Random"}

func presetIndex(preset string) int {
	if preset == "" {
		return 0
	}

	switch preset[0] {
	case 'w':
		return 1
	case 'r':
		return 2
	default:
		return 0
	}
}

// sideFor turns a start form option into the human's side.
func (t *TUI) sideFor(option string) reversi.Disc {
	switch option {
	case "White":
		return reversi.White
	case "Random":
		if t.rng.Intn(2) == 1 {
			return reversi.White
		}
		return reversi.Black
	default:
		return reversi.Black
	}
}

func (t *TUI) Run() error {
	app := tview.NewApplication()

	// Variables to store selected options
	colorOption := colorOptions[presetIndex(t.cfg.Color)]
	strategy := t.cfg.Strategy
	showValidMoves := true

	var showStartScreen func()
	var startGame func()

	showStartScreen = func() {
		form := tview.NewForm()
		form.
			AddDropDown("Choose your color", colorOptions, presetIndex(t.cfg.Color), func(option string, index int) {
				colorOption = option
			}).
			AddDropDown("Opponent", []string{"Classic", "Greedy"}, int(strategy), func(option string, index int) {
				strategy = reversi.Strategy(index)
			}).
			AddCheckbox("Show valid moves", true, func(checked bool) {
				showValidMoves = checked
			}).
			AddButton("Start Game", func() {
				t.player = t.sideFor(colorOption)
				t.selector = reversi.Selector{Strategy: strategy}
				t.logger.Printf("human plays %s, computer strategy %s", t.player, strategy)

				startGame()
			}).
			AddButton("Quit", func() {
				app.Stop()
			})
		form.SetBorder(true).SetTitle("Reversi").SetTitleAlign(tview.AlignCenter)

		app.SetRoot(form, true).SetFocus(form)
	}

	startGame = func() {
		t.game = reversi.NewGame()

		boardTable := tview.NewTable()
		boardTable.SetSelectable(true, true)
		boardTable.SetBorder(true)
		boardTable.SetTitleAlign(tview.AlignLeft)
		boardTable.SetTitleColor(tcell.ColorGreen)
		boardTable.SetBorderColor(tcell.ColorGreen)
		boardTable.SetBorders(true)

		scoreBox := tview.NewTextView()
		scoreBox.SetBorder(true)
		scoreBox.SetTitle("Score")

		flex := tview.NewFlex().
			AddItem(boardTable, 0, 1, true).
			AddItem(scoreBox, 30, 1, false)

		updateBoard := func() {
			board := t.game.Board()
			for y := 0; y < reversi.BoardSize; y++ {
				for x := 0; x < reversi.BoardSize; x++ {
					p := reversi.Position{X: x, Y: y}
					cell := tview.NewTableCell(getPieceSymbol(board.At(p)))
					cell.SetAlign(tview.AlignCenter)
					cell.SetBackgroundColor(tcell.ColorDarkGreen)

					if t.game.Turn() == t.player && showValidMoves && reversi.IsLegal(board, t.player, p) {
						cell.SetText("· ")
						cell.SetTextColor(tcell.ColorYellow)
					}

					boardTable.SetCell(y, x, cell)
				}
			}

			boardTable.SetTitle(fmt.Sprintf(" Reversi - %s's turn ", t.game.Turn()))

			black, white, _ := board.Count()
			scoreText := fmt.Sprintf("Black: %d\nWhite: %d", black, white)
			if last, ok := t.game.LastMove(); ok {
				scoreText += fmt.Sprintf("\nLast move: %s", last)
			}
			scoreBox.SetText(scoreText)
		}

		// processNextTurn plays passes and computer moves until the human
		// has to act or the game is over.
		var processNextTurn func()

		processNextTurn = func() {
			for {
				if over, reason := t.game.Over(); over {
					res := t.game.Result(t.cfg.Scoring)
					t.logger.Printf("game over: %s, %s", reason, res)

					modal := tview.NewModal().
						SetText(fmt.Sprintf("Game Over!\n%s\n%s", reason, res)).
						AddButtons([]string{"New Game", "Quit"}).
						SetDoneFunc(func(buttonIndex int, buttonLabel string) {
							if buttonLabel == "New Game" {
								showStartScreen()
							} else {
								app.Stop()
							}
						})

					app.SetRoot(modal, false).SetFocus(modal)

					return
				}

				if t.game.Advance() {
					t.logger.Printf("%s passes", t.game.Turn().Opposite())
					continue
				}

				if t.game.Turn() == t.player {
					updateBoard()

					return
				}

				choice, _ := t.selector.BestMove(t.game.Board(), t.game.Turn())
				t.logger.Printf("computer plays %s (score %.2f)", choice.Move, choice.Score)
				if err := t.game.Play(choice.Move); err != nil {
					t.logger.Printf("computer move rejected: %v", err)

					return
				}
				updateBoard()
			}
		}

		boardTable.SetSelectedFunc(func(row, column int) {
			if t.game.Turn() != t.player {
				return
			}

			if err := t.game.Play(reversi.Position{X: column, Y: row}); err != nil {
				// Invalid move
				return
			}

			updateBoard()
			processNextTurn()
		})

		boardTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			if event.Key() == tcell.KeyEscape {
				showStartScreen()

				return nil
			}

			return event
		})

		app.SetRoot(flex, true).SetFocus(boardTable)
		updateBoard()
		processNextTurn()
	}

	showStartScreen()

	return app.Run()
}
