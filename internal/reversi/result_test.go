package reversi

import "testing"

func TestTallyScoringRules(t *testing.T) {
	// 10 black, 4 white, 50 empty.
	b := &Board{}
	for i := 0; i < 10; i++ {
		b[i%BoardSize][i/BoardSize] = Black
	}
	for i := 0; i < 4; i++ {
		b[i][7] = White
	}

	tests := []struct {
		rule  ScoringRule
		black int
		white int
		text  string
	}{
		{ScoreEmptiesToFewer, 10, 54, "Black wins (54:10)"},
		{ScoreEmptiesToWinner, 60, 4, "Black wins (4:60)"},
		{ScoreDiscsOnly, 10, 4, "Black wins (4:10)"},
	}
	for _, tt := range tests {
		res := Tally(b, tt.rule)
		if res.Winner != Black {
			t.Errorf("%v: expected Black to win, got %v", tt.rule, res.Winner)
		}
		if res.Black != tt.black || res.White != tt.white {
			t.Errorf("%v: expected %d:%d, got %d:%d", tt.rule, tt.black, tt.white, res.Black, res.White)
		}
		if res.String() != tt.text {
			t.Errorf("%v: expected %q, got %q", tt.rule, tt.text, res.String())
		}
	}
}

func TestTallyWhiteWinsAndTie(t *testing.T) {
	res := Tally(NewBoard(), ScoreEmptiesToFewer)
	if res.Winner != Empty || res.String() != "Tie (2:2)" {
		t.Fatalf("expected tie without empties, got %+v %q", res, res.String())
	}

	b := &Board{}
	b[0][0] = White
	b[1][0] = White
	b[2][0] = Black
	res = Tally(b, ScoreEmptiesToFewer)
	if res.Winner != White || res.String() != "White wins (2:62)" {
		t.Fatalf("unexpected result %+v %q", res, res.String())
	}
}

func TestParseScoringRule(t *testing.T) {
	for in, want := range map[string]ScoringRule{"": ScoreEmptiesToFewer, "fewer": ScoreEmptiesToFewer, "winner": ScoreEmptiesToWinner, "DISCS": ScoreDiscsOnly} {
		got, err := ParseScoringRule(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("ParseScoringRule(%q): expected %v, got %v", in, want, got)
		}
	}

	if _, err := ParseScoringRule("split"); err == nil {
		t.Fatalf("expected error for unknown rule")
	}
}
