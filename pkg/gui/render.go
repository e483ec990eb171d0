package gui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/fourterm/pkg/game"
	"github.com/rivo/tview"
)

const (
	tokenRune  = '●'
	cursorRune = '▼'

	// Board rows are shifted down by one to make room for the cursor row
	boardTop  = 1
	labelsRow = boardTop + game.Rows
)

// colorTag formats c as a tview color tag value
func colorTag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "-"
	}
	return fmt.Sprintf("#%06x", c.Hex())
}

// tokenColor returns the theme's color for a token
func tokenColor(c game.Cell, t Theme) tcell.Color {
	switch c {
	case game.Red:
		return t.Red
	case game.Yellow:
		return t.Yellow
	default:
		return t.Hole
	}
}

// tokenCell builds the table cell for one board position
func tokenCell(c game.Cell, last bool, t Theme) *tview.TableCell {
	text := fmt.Sprintf(" %c ", tokenRune)
	if c == game.Empty {
		text = "   "
	}
	cell := tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(tokenColor(c, t)).
		SetSelectable(false)
	if last {
		cell.SetBackgroundColor(t.LastDrop)
	}
	return cell
}

// renderBoard redraws every cell of the table from the engine state
func renderBoard(table *tview.Table, e *game.Engine, cursor int, t Theme) {
	last, hasLast := e.LastDrop()
	cursorColor := t.Cursor
	if !e.CheckOutcome().Terminal() {
		cursorColor = tokenColor(e.CurrentPlayer(), t)
	}

	for c := 0; c < game.Columns; c++ {
		marker := "   "
		if c == cursor {
			marker = fmt.Sprintf(" %c ", cursorRune)
		}
		table.SetCell(0, c, tview.NewTableCell(marker).
			SetAlign(tview.AlignCenter).
			SetTextColor(cursorColor).
			SetSelectable(false))

		for r := 0; r < game.Rows; r++ {
			cell, err := e.CellAt(c, r)
			if err != nil {
				// Loop bounds come from the same constants as the board
				panic(err)
			}
			isLast := hasLast && last.Column == c && last.Row == r
			table.SetCell(boardTop+r, c, tokenCell(cell, isLast, t))
		}

		table.SetCell(labelsRow, c, tview.NewTableCell(strconv.Itoa(c+1)).
			SetAlign(tview.AlignCenter).
			SetTextColor(t.Label).
			SetSelectable(false))
	}
}

// statusText is the line shown above the board while the game runs
func statusText(e *game.Engine, names Names, t Theme) string {
	p := e.CurrentPlayer()
	return fmt.Sprintf("[%s]%s to move[-]  [%s]move %d[-]",
		colorTag(tokenColor(p, t)), names.For(p), colorTag(t.Label), e.Moves()+1)
}

// outcomeText is the message of the result dialog
func outcomeText(o game.Outcome, names Names) string {
	switch o.State {
	case game.Won:
		return fmt.Sprintf("%s won!", names.For(o.Winner))
	case game.Draw:
		return "Game over! (field is full)"
	default:
		return ""
	}
}

func columnFullText(column int, t Theme) string {
	return fmt.Sprintf("[%s]Column %d is full[-]", colorTag(t.Msg), column+1)
}

func footerText(session string) string {
	if session == "" {
		return "Press 'q' to exit"
	}
	return fmt.Sprintf("Press 'q' to exit  (%s)", session)
}
