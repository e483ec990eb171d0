package game

import "fmt"

type DropStatus int

const (
	Placed DropStatus = iota
	ColumnFull
)

func (s DropStatus) String() string {
	switch s {
	case Placed:
		return "Placed"
	case ColumnFull:
		return "ColumnFull"
	default:
		return "Unknown"
	}
}

// DropResult describes what happened to a drop request. Row and Player are
// only meaningful when Status is Placed.
type DropResult struct {
	Status DropStatus
	Column int
	Row    int
	Player Cell
}

func (r DropResult) String() string {
	if r.Status == ColumnFull {
		return fmt.Sprintf("column %d full", r.Column)
	}
	return fmt.Sprintf("%s at column %d row %d", r.Player, r.Column, r.Row)
}

type OutcomeState int

const (
	InProgress OutcomeState = iota
	Won
	Draw
)

type Outcome struct {
	State  OutcomeState
	Winner Cell
}

func (o Outcome) Terminal() bool {
	return o.State != InProgress
}

func (o Outcome) String() string {
	switch o.State {
	case Won:
		return fmt.Sprintf("%s won", o.Winner)
	case Draw:
		return "Draw"
	default:
		return "In progress"
	}
}

// Engine owns the turn order of a single game. Create one per game with New.
type Engine struct {
	board *Board
	turn  Cell
	moves int
	last  *DropResult
}

func New() *Engine {
	return &Engine{
		board: NewBoard(),
		turn:  Red,
	}
}

func (e *Engine) CurrentPlayer() Cell {
	return e.turn
}

func (e *Engine) CellAt(column, row int) (Cell, error) {
	return e.board.CellAt(column, row)
}

// Moves is the number of tokens placed so far.
func (e *Engine) Moves() int {
	return e.moves
}

// LastDrop returns the most recent successful drop, if any.
func (e *Engine) LastDrop() (DropResult, bool) {
	if e.last == nil {
		return DropResult{}, false
	}
	return *e.last, true
}

// AttemptDrop drops the current player's token into column. A full column is
// reported through the result and does not pass the turn.
func (e *Engine) AttemptDrop(column int) (DropResult, error) {
	if e.CheckOutcome().Terminal() {
		return DropResult{}, ErrGameOver
	}

	player := e.turn
	row, ok, err := e.board.DropToken(column, player)
	if err != nil {
		return DropResult{}, err
	}
	if !ok {
		return DropResult{Status: ColumnFull, Column: column, Row: -1}, nil
	}

	e.turn = player.Opponent()
	e.moves++
	res := DropResult{Status: Placed, Column: column, Row: row, Player: player}
	e.last = &res
	return res, nil
}

// CheckOutcome rescans the whole board.
func (e *Engine) CheckOutcome() Outcome {
	for _, p := range []Cell{Red, Yellow} {
		if hasFour(e.board, p) {
			return Outcome{State: Won, Winner: p}
		}
	}
	if e.board.IsFull() {
		return Outcome{State: Draw}
	}
	return Outcome{State: InProgress}
}

func hasFour(b *Board, p Cell) bool {
	// horizontal
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if b.at(r, c) == p && b.at(r, c+1) == p && b.at(r, c+2) == p && b.at(r, c+3) == p {
				return true
			}
		}
	}
	// vertical
	for c := 0; c < Columns; c++ {
		for r := 0; r <= Rows-ToWin; r++ {
			if b.at(r, c) == p && b.at(r+1, c) == p && b.at(r+2, c) == p && b.at(r+3, c) == p {
				return true
			}
		}
	}
	// down-right
	for c := 0; c <= Columns-ToWin; c++ {
		for r := 0; r <= Rows-ToWin; r++ {
			if b.at(r, c) == p && b.at(r+1, c+1) == p && b.at(r+2, c+2) == p && b.at(r+3, c+3) == p {
				return true
			}
		}
	}
	// up-right
	for c := 0; c <= Columns-ToWin; c++ {
		for r := ToWin - 1; r < Rows; r++ {
			if b.at(r, c) == p && b.at(r-1, c+1) == p && b.at(r-2, c+2) == p && b.at(r-3, c+3) == p {
				return true
			}
		}
	}
	return false
}
