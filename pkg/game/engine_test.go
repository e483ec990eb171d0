package game

import (
	"errors"
	"testing"
)

// drawSequence fills all 42 cells without either color ever lining up four.
var drawSequence = []int{
	5, 3, 2, 3, 1, 5, 3, 1, 0, 1, 4, 1, 2, 5, 0, 5, 6, 6, 2, 0, 6,
	0, 4, 2, 3, 0, 3, 4, 2, 3, 2, 6, 0, 4, 1, 1, 5, 4, 4, 5, 6, 6,
}

func play(t *testing.T, e *Engine, columns []int) {
	t.Helper()

	for i, c := range columns {
		res, err := e.AttemptDrop(c)
		if err != nil {
			t.Fatalf("failed to drop move %d into column %d: %s", i, c, err)
		}
		if res.Status != Placed {
			t.Fatalf("move %d into column %d was %s", i, c, res.Status)
		}
		if i < len(columns)-1 && e.CheckOutcome().Terminal() {
			t.Fatalf("game ended early at move %d: %s", i, e.CheckOutcome())
		}
	}
}

func TestNewEngine(t *testing.T) {
	e := New()

	if p := e.CurrentPlayer(); p != Red {
		t.Errorf("wanted Red to move first got %s", p)
	}
	if o := e.CheckOutcome(); o.State != InProgress {
		t.Errorf("wanted InProgress got %s", o)
	}
	if _, ok := e.LastDrop(); ok {
		t.Error("fresh engine reported a last drop")
	}
}

func TestTurnAlternation(t *testing.T) {
	e := New()

	for k := 1; k <= len(drawSequence); k++ {
		want := Red
		if k%2 == 0 {
			want = Yellow
		}
		if got := e.CurrentPlayer(); got != want {
			t.Fatalf("before drop %d wanted %s got %s", k, want, got)
		}
		res, err := e.AttemptDrop(drawSequence[k-1])
		if err != nil {
			t.Fatal(err)
		}
		if res.Player != want {
			t.Errorf("drop %d placed %s, wanted %s", k, res.Player, want)
		}
	}
	if e.Moves() != Rows*Columns {
		t.Errorf("wanted %d moves got %d", Rows*Columns, e.Moves())
	}
}

func TestColumnFullKeepsTurn(t *testing.T) {
	e := New()
	// Six tokens alternate colors in one column, so nobody gets four.
	play(t, e, []int{4, 4, 4, 4, 4, 4})

	before := e.CurrentPlayer()
	res, err := e.AttemptDrop(4)
	if err != nil {
		t.Fatalf("full column returned an error: %s", err)
	}
	if res.Status != ColumnFull {
		t.Errorf("wanted ColumnFull got %s", res.Status)
	}
	if after := e.CurrentPlayer(); after != before {
		t.Errorf("turn changed on rejected drop: %s -> %s", before, after)
	}
	if e.Moves() != Rows {
		t.Errorf("rejected drop was counted, moves %d", e.Moves())
	}
}

func TestGravityInvariant(t *testing.T) {
	e := New()
	play(t, e, drawSequence[:30])

	for c := 0; c < Columns; c++ {
		seenToken := false
		for r := 0; r < Rows; r++ {
			cell, err := e.CellAt(c, r)
			if err != nil {
				t.Fatal(err)
			}
			if cell != Empty {
				seenToken = true
			} else if seenToken {
				t.Errorf("empty cell under a token at column %d row %d", c, r)
			}
		}
	}
}

func TestWins(t *testing.T) {
	tests := []struct {
		name  string
		moves []int
		want  Cell
	}{
		{name: "horizontal bottom row", moves: []int{0, 6, 1, 6, 2, 6, 3}, want: Red},
		{name: "vertical", moves: []int{0, 1, 0, 1, 0, 1, 0}, want: Red},
		{name: "up-right diagonal", moves: []int{0, 1, 1, 2, 2, 3, 2, 3, 3, 6, 3}, want: Red},
		{name: "down-right diagonal", moves: []int{3, 2, 2, 1, 1, 0, 1, 0, 0, 6, 0}, want: Red},
		{name: "yellow horizontal", moves: []int{6, 0, 6, 1, 5, 2, 5, 3}, want: Yellow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := New()
			play(t, e, tc.moves)

			o := e.CheckOutcome()
			if o.State != Won || o.Winner != tc.want {
				t.Errorf("wanted %s to win got %s", tc.want, o)
			}
		})
	}
}

func TestUpRightDiagonalCells(t *testing.T) {
	e := New()
	play(t, e, []int{0, 1, 1, 2, 2, 3, 2, 3, 3, 6, 3})

	for _, rc := range [][2]int{{5, 0}, {4, 1}, {3, 2}, {2, 3}} {
		cell, err := e.CellAt(rc[1], rc[0])
		if err != nil {
			t.Fatal(err)
		}
		if cell != Red {
			t.Errorf("wanted Red at row %d column %d got %s", rc[0], rc[1], cell)
		}
	}
}

func TestDraw(t *testing.T) {
	e := New()
	play(t, e, drawSequence)

	if o := e.CheckOutcome(); o.State != Draw {
		t.Fatalf("wanted Draw got %s", o)
	}
	if _, err := e.AttemptDrop(0); !errors.Is(err, ErrGameOver) {
		t.Errorf("wanted %v after draw got %v", ErrGameOver, err)
	}
}

func TestNoDropsAfterWin(t *testing.T) {
	e := New()
	play(t, e, []int{0, 1, 0, 1, 0, 1, 0})

	turn := e.CurrentPlayer()
	if _, err := e.AttemptDrop(2); !errors.Is(err, ErrGameOver) {
		t.Errorf("wanted %v got %v", ErrGameOver, err)
	}
	if e.CurrentPlayer() != turn || e.Moves() != 7 {
		t.Error("drop after win mutated the engine")
	}
}

func TestAttemptDropOutOfRange(t *testing.T) {
	e := New()

	if _, err := e.AttemptDrop(Columns); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("wanted %v got %v", ErrOutOfRange, err)
	}
	if e.CurrentPlayer() != Red {
		t.Error("turn changed on out of range drop")
	}
}

func TestReadsAreIdempotent(t *testing.T) {
	e := New()
	play(t, e, []int{3, 3, 2, 4})

	o1, p1 := e.CheckOutcome(), e.CurrentPlayer()
	c1, _ := e.CellAt(3, Rows-2)
	for i := 0; i < 5; i++ {
		o2, p2 := e.CheckOutcome(), e.CurrentPlayer()
		c2, _ := e.CellAt(3, Rows-2)
		if o1 != o2 || p1 != p2 || c1 != c2 {
			t.Fatalf("reads changed on iteration %d", i)
		}
	}
}

func TestEnginesAreIndependent(t *testing.T) {
	a, b := New(), New()
	play(t, a, []int{0})

	if b.CurrentPlayer() != Red || b.Moves() != 0 {
		t.Error("second engine shares state with the first")
	}
	if cell, _ := b.CellAt(0, Rows-1); cell != Empty {
		t.Errorf("second engine sees %s at bottom of column 0", cell)
	}
}

func TestLastDrop(t *testing.T) {
	e := New()
	play(t, e, []int{2, 2})

	last, ok := e.LastDrop()
	if !ok {
		t.Fatal("missing last drop")
	}
	if last.Column != 2 || last.Row != Rows-2 || last.Player != Yellow {
		t.Errorf("unexpected last drop %s", last)
	}
}
