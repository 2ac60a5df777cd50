package reversi

import "testing"

func TestClassicPicksFirstLegalMove(t *testing.T) {
	b := parseBoard(t,
		"........",
		"........",
		"........",
		"...WB...",
		"...BW...",
		"....W...",
		"........",
		"........",
	)
	moves := LegalMoves(b, Black)
	if len(moves) < 2 {
		t.Fatalf("expected several candidates, got %v", moves)
	}

	c, ok := Selector{Strategy: StrategyClassic}.BestMove(b, Black)
	if !ok {
		t.Fatalf("expected a move")
	}
	if c.Move != moves[0] {
		t.Fatalf("expected first candidate %v, got %v", moves[0], c.Move)
	}
	if !almostEqual(c.Score, Evaluate(b, Black)) {
		t.Fatalf("expected pre-move score %v, got %v", Evaluate(b, Black), c.Score)
	}
	if c.Candidates != len(moves) {
		t.Fatalf("expected %d candidates, got %d", len(moves), c.Candidates)
	}
}

func TestGreedyScoresResultingBoard(t *testing.T) {
	b := parseBoard(t,
		"........",
		"W.......",
		"B.......",
		"........",
		"..B.....",
		"...WW...",
		"....W...",
		"........",
	)
	moves := LegalMoves(b, Black)
	if len(moves) == 0 {
		t.Fatalf("expected legal moves")
	}

	c, ok := Selector{Strategy: StrategyGreedy}.BestMove(b, Black)
	if !ok {
		t.Fatalf("expected a move")
	}

	best := -1e9
	var want Position
	for _, m := range moves {
		next := b.Copy()
		Place(next, Black, m)
		if s := Evaluate(next, Black); s > best {
			best, want = s, m
		}
	}
	if c.Move != want || !almostEqual(c.Score, best) {
		t.Fatalf("expected %v (%v), got %v (%v)", want, best, c.Move, c.Score)
	}
}

func TestBestMoveDoesNotModifyBoard(t *testing.T) {
	b := NewBoard()
	before := *b

	for _, s := range []Strategy{StrategyClassic, StrategyGreedy} {
		if _, ok := (Selector{Strategy: s}).BestMove(b, Black); !ok {
			t.Fatalf("%v: expected a move", s)
		}
		if *b != before {
			t.Fatalf("%v: board was modified", s)
		}
	}
}

func TestBestMoveNoCandidates(t *testing.T) {
	b := &Board{}
	b[0][0] = Black

	if _, ok := (Selector{}).BestMove(b, White); ok {
		t.Fatalf("expected no move")
	}
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]Strategy{"": StrategyClassic, "classic": StrategyClassic, "Greedy": StrategyGreedy} {
		got, err := ParseStrategy(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("ParseStrategy(%q): expected %v, got %v", in, want, got)
		}
	}

	if _, err := ParseStrategy("minimax"); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}
