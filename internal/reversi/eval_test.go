package reversi

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

func TestCountDiscsOpening(t *testing.T) {
	c := CountDiscs(NewBoard(), Black)
	if c.Mine != 2 || c.Theirs != 2 {
		t.Fatalf("expected 2/2, got %d/%d", c.Mine, c.Theirs)
	}
	if c.Percentage != 0.5 {
		t.Fatalf("expected percentage 0.5, got %v", c.Percentage)
	}
	if got := Evaluate(NewBoard(), Black); !almostEqual(got, 49.2) {
		t.Fatalf("expected 49.2, got %v", got)
	}
}

func TestPercentageIsOpponentShare(t *testing.T) {
	b := NewBoard()
	Place(b, Black, Position{X: 2, Y: 3})

	c := CountDiscs(b, Black)
	if c.Mine != 4 || c.Theirs != 1 {
		t.Fatalf("expected 4/1, got %d/%d", c.Mine, c.Theirs)
	}
	if !almostEqual(float64(c.Percentage), 0.2) {
		t.Fatalf("expected 0.2, got %v", c.Percentage)
	}
	// 0.8*4 - 1.2*1 + 100*0.2
	if got := Evaluate(b, Black); !almostEqual(got, 22) {
		t.Fatalf("expected 22, got %v", got)
	}

	if c := CountDiscs(b, White); !almostEqual(float64(c.Percentage), 0.8) {
		t.Fatalf("expected 0.8 for White, got %v", c.Percentage)
	}
}

func TestPercentageZeroWhenOneSideHasNoDiscs(t *testing.T) {
	b := &Board{}
	b[0][0], b[1][0], b[2][0] = White, White, White

	c := CountDiscs(b, Black)
	if c.Mine != 0 || c.Theirs != 3 || c.Percentage != 0 {
		t.Fatalf("unexpected count %+v", c)
	}
	if got := Evaluate(b, Black); !almostEqual(got, -3.6) {
		t.Fatalf("expected -3.6, got %v", got)
	}

	c = CountDiscs(b, White)
	if c.Mine != 3 || c.Theirs != 0 || c.Percentage != 0 {
		t.Fatalf("unexpected count %+v", c)
	}
	if got := Evaluate(b, White); !almostEqual(got, 2.4) {
		t.Fatalf("expected 2.4, got %v", got)
	}
}
