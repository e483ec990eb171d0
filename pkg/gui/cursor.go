package gui

import "github.com/qnkhuat/fourterm/pkg/game"

// Cursor is the column a drop will target. It never leaves the board.
type Cursor struct {
	column int
}

func clampColumn(c int) int {
	if c < 0 {
		return 0
	}
	if c > game.Columns-1 {
		return game.Columns - 1
	}
	return c
}

func (c *Cursor) Column() int {
	return c.column
}

func (c *Cursor) Move(delta int) {
	c.column = clampColumn(c.column + delta)
}

func (c *Cursor) Set(column int) {
	c.column = clampColumn(column)
}
