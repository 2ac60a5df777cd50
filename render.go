package main

import (
	"strings"

	"github.com/the-web800/Reversi-AI/internal/reversi"
)

// Background colors of the console board.
const (
	ansiEmpty = "\x1b[42m \x1b[0m"
	ansiWhite = "\x1b[47mW\x1b[0m"
	ansiBlack = "\x1b[40mB\x1b[0m"
)

// RenderBoard draws b with ANSI background colors, one line per row,
// top row (row 1) first.
func RenderBoard(b *reversi.Board) string {
	var builder strings.Builder
	builder.Grow(reversi.BoardSize * (reversi.BoardSize*len(ansiEmpty) + 1))

	for y := 0; y < reversi.BoardSize; y++ {
		for x := 0; x < reversi.BoardSize; x++ {
			switch b.At(reversi.Position{X: x, Y: y}) {
			case reversi.Black:
				builder.WriteString(ansiBlack)
			case reversi.White:
				builder.WriteString(ansiWhite)
			default:
				builder.WriteString(ansiEmpty)
			}
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}

func getPieceSymbol(piece reversi.Disc) string {
	switch piece {
	case reversi.Black:
		return " ⚫ "
	case reversi.White:
		return " ⚪ "
	default:
		return "    "
	}
}
