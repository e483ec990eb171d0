package gui

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/fourterm/pkg/game"
	"github.com/rivo/tview"
)

const (
	pageBoard  = "board"
	pageResult = "result"
)

// Names holds the display name of each player
type Names struct {
	Red    string
	Yellow string
}

func (n Names) For(c game.Cell) string {
	switch c {
	case game.Red:
		if n.Red != "" {
			return n.Red
		}
	case game.Yellow:
		if n.Yellow != "" {
			return n.Yellow
		}
	}
	return c.String()
}

type Options struct {
	Theme   Theme
	Names   Names
	Session string
}

// Client is a hot-seat game on one terminal: both players share the
// keyboard and the cursor.
type Client struct {
	App    *tview.Application
	Board  *tview.Table
	Status *tview.TextView
	Footer *tview.TextView
	Result *tview.Modal
	Pages  *tview.Pages
	Layout *tview.Grid

	Game   *game.Engine
	Cursor Cursor

	theme   Theme
	names   Names
	session string
}

func NewClient(opts Options) *Client {
	if opts.Theme.Name == "" {
		opts.Theme = ThemeBasic
	}

	board := tview.NewTable().
		SetBorders(true).
		SetBordersColor(opts.Theme.Frame)

	status := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	footer := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetTextColor(opts.Theme.Footer)

	// Board width: one 3 wide cell per column plus borders
	boardWidth := game.Columns*4 + 1
	layout := tview.NewGrid().
		SetRows(1, 1, -1, 1).
		SetColumns(-1, boardWidth, -1).
		AddItem(status, 0, 0, 1, 3, 0, 0, false).
		AddItem(board, 2, 1, 1, 1, 0, 0, true).
		AddItem(footer, 3, 0, 1, 3, 0, 0, false)

	result := tview.NewModal()

	pages := tview.NewPages().
		AddPage(pageBoard, layout, true, true)

	cl := &Client{
		App:     tview.NewApplication(),
		Board:   board,
		Status:  status,
		Footer:  footer,
		Result:  result,
		Pages:   pages,
		Layout:  layout,
		theme:   opts.Theme,
		names:   opts.Names,
		session: opts.Session,
	}

	result.AddButtons([]string{ButtonNewGame, ButtonExit}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			switch buttonLabel {
			case ButtonNewGame:
				cl.NewGame()
			case ButtonExit:
				cl.App.Stop()
			}
		})

	cl.App.SetRoot(pages, true).SetInputCapture(cl.handleKey)
	cl.NewGame()
	return cl
}

// NewGame discards the current game and starts a fresh one with Red to move
func (cl *Client) NewGame() {
	cl.Game = game.New()
	cl.Cursor.Set(game.Columns / 2)
	if cl.Pages.HasPage(pageResult) {
		cl.Pages.RemovePage(pageResult)
	}
	cl.App.SetFocus(cl.Board)
	log.Printf("New game %s", cl.session)
	cl.Render()
}

func (cl *Client) Run() error {
	return cl.App.Run()
}

func (cl *Client) Render() {
	renderBoard(cl.Board, cl.Game, cl.Cursor.Column(), cl.theme)
	cl.Footer.SetText(footerText(cl.session))
	if o := cl.Game.CheckOutcome(); o.Terminal() {
		cl.Status.SetText(outcomeText(o, cl.names))
		return
	}
	cl.Status.SetText(statusText(cl.Game, cl.names, cl.theme))
}

func (cl *Client) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	// The result dialog handles its own keys
	if cl.Game.CheckOutcome().Terminal() {
		if actionFor(ev) == ActionExit {
			cl.App.Stop()
			return nil
		}
		return ev
	}

	if col, ok := columnFor(ev); ok {
		cl.Cursor.Set(col)
		cl.Render()
		return nil
	}

	switch actionFor(ev) {
	case ActionMoveLeft:
		cl.Cursor.Move(-1)
	case ActionMoveRight:
		cl.Cursor.Move(1)
	case ActionDrop:
		cl.Drop()
		return nil
	case ActionExit:
		cl.App.Stop()
		return nil
	default:
		return ev
	}
	cl.Render()
	return nil
}

// Drop commits a move in the cursor's column
func (cl *Client) Drop() {
	col := cl.Cursor.Column()
	res, err := cl.Game.AttemptDrop(col)
	if err != nil {
		// The cursor is clamped and the result dialog blocks input after
		// the game ends, so this is a bug
		log.Printf("Drop into column %d failed: %v", col, err)
		return
	}

	if res.Status == game.ColumnFull {
		log.Printf("Rejected: %s", res)
		cl.Status.SetText(columnFullText(col, cl.theme))
		return
	}

	log.Printf("Move %d: %s", cl.Game.Moves(), res)
	cl.Render()

	if o := cl.Game.CheckOutcome(); o.Terminal() {
		log.Printf("Game over: %s after %d moves", o, cl.Game.Moves())
		cl.showResult(o)
	}
}

func (cl *Client) showResult(o game.Outcome) {
	cl.Result.SetText(outcomeText(o, cl.names))
	cl.Pages.AddPage(pageResult, cl.Result, false, true)
	cl.App.SetFocus(cl.Result)
}
