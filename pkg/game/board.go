package game

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

type Cell int

const (
	Empty Cell = iota
	Red
	Yellow
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	default:
		return "Unknown"
	}
}

// Opponent returns the other player's color. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return Empty
	}
}

type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfRange   Error = "cell out of range"
	ErrInvalidToken Error = "invalid token"
	ErrGameOver     Error = "game is over"
)

// Board is the 6x7 grid. Row 0 is the top row, so tokens fall towards
// higher row indexes.
type Board struct {
	grid [Rows][Columns]Cell
}

func NewBoard() *Board {
	return &Board{}
}

func inRange(column, row int) bool {
	return column >= 0 && column < Columns && row >= 0 && row < Rows
}

func (b *Board) CellAt(column, row int) (Cell, error) {
	if !inRange(column, row) {
		return Empty, ErrOutOfRange
	}
	return b.grid[row][column], nil
}

// DropToken places token on the lowest free cell of column and returns the
// row it landed on. ok is false when the column is already full; the board
// is left untouched in that case.
func (b *Board) DropToken(column int, token Cell) (row int, ok bool, err error) {
	if column < 0 || column >= Columns {
		return -1, false, ErrOutOfRange
	}
	if token != Red && token != Yellow {
		return -1, false, ErrInvalidToken
	}

	row, ok = b.landingRow(column)
	if !ok {
		return -1, false, nil
	}
	b.grid[row][column] = token
	return row, true, nil
}

func (b *Board) landingRow(column int) (int, bool) {
	if b.columnFull(column) {
		return -1, false
	}
	for r := 1; r < Rows; r++ {
		if b.grid[r][column] != Empty {
			return r - 1, true
		}
	}
	return Rows - 1, true
}

func (b *Board) columnFull(column int) bool {
	return b.grid[0][column] != Empty
}

// IsFull reports whether every column has its top cell occupied.
func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if !b.columnFull(c) {
			return false
		}
	}
	return true
}

// Height returns the number of tokens stacked in column.
func (b *Board) Height(column int) int {
	if column < 0 || column >= Columns {
		return 0
	}
	h := 0
	for r := Rows - 1; r >= 0 && b.grid[r][column] != Empty; r-- {
		h++
	}
	return h
}

func (b *Board) at(row, column int) Cell {
	return b.grid[row][column]
}
