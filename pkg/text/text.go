// Package text plays a game over plain line based input and output, for
// terminals where the full screen ui can not run.
package text

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/qnkhuat/fourterm/pkg/game"
	"golang.org/x/term"
)

const (
	redGlyph    = '*'
	yellowGlyph = '0'
)

type Options struct {
	RedName    string
	YellowName string
	// Color forces colored output on or off
	Color bool
	// Prompt prints "> " before reading each move
	Prompt bool
}

type Runtime struct {
	in  *bufio.Scanner
	out io.Writer

	Game *game.Engine

	names  map[game.Cell]string
	red    *color.Color
	yellow *color.Color
	notice *color.Color
	prompt bool
}

// StdinIsTerminal reports whether moves are typed by a person
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func New(in io.Reader, out io.Writer, opts Options) *Runtime {
	rt := &Runtime{
		in:     bufio.NewScanner(in),
		out:    out,
		Game:   game.New(),
		red:    color.New(color.FgRed, color.Bold),
		yellow: color.New(color.FgYellow, color.Bold),
		notice: color.New(color.FgBlack, color.BgWhite),
		prompt: opts.Prompt,
		names: map[game.Cell]string{
			game.Red:    "Red",
			game.Yellow: "Yellow",
		},
	}
	if opts.RedName != "" {
		rt.names[game.Red] = opts.RedName
	}
	if opts.YellowName != "" {
		rt.names[game.Yellow] = opts.YellowName
	}
	for _, c := range []*color.Color{rt.red, rt.yellow, rt.notice} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return rt
}

func (rt *Runtime) colorFor(c game.Cell) *color.Color {
	if c == game.Red {
		return rt.red
	}
	return rt.yellow
}

func (rt *Runtime) glyph(c game.Cell) string {
	switch c {
	case game.Red:
		return rt.red.Sprint(string(redGlyph))
	case game.Yellow:
		return rt.yellow.Sprint(string(yellowGlyph))
	default:
		return " "
	}
}

// DrawBoard writes the grid, top row first, followed by the column numbers
func (rt *Runtime) DrawBoard() {
	var sb strings.Builder
	for r := 0; r < game.Rows; r++ {
		sb.WriteByte('|')
		for c := 0; c < game.Columns; c++ {
			cell, err := rt.Game.CellAt(c, r)
			if err != nil {
				panic(err)
			}
			sb.WriteString(rt.glyph(cell))
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	for c := 0; c < game.Columns; c++ {
		fmt.Fprintf(&sb, " %d", c+1)
	}
	sb.WriteByte('\n')
	io.WriteString(rt.out, sb.String())
}

func (rt *Runtime) drawMoveMessage() {
	p := rt.Game.CurrentPlayer()
	rt.colorFor(p).Fprintf(rt.out, "It's %s move\n", strings.ToLower(rt.names[p]))
}

func (rt *Runtime) drawOutcome(o game.Outcome) {
	switch o.State {
	case game.Won:
		rt.notice.Fprintf(rt.out, "%s won!", rt.names[o.Winner])
	case game.Draw:
		rt.notice.Fprint(rt.out, "Game over! (field is full)")
	}
	fmt.Fprintln(rt.out)
}

// Run reads one move per line until the game ends, the input ends or a
// line reads "q"
func (rt *Runtime) Run() error {
	for {
		rt.DrawBoard()
		if o := rt.Game.CheckOutcome(); o.Terminal() {
			log.Printf("Game over: %s after %d moves", o, rt.Game.Moves())
			rt.drawOutcome(o)
			return nil
		}
		rt.drawMoveMessage()

		if rt.prompt {
			io.WriteString(rt.out, "> ")
		}
		if !rt.in.Scan() {
			return rt.in.Err()
		}
		line := strings.TrimSpace(rt.in.Text())
		if line == "q" || line == "quit" {
			log.Printf("Quit after %d moves", rt.Game.Moves())
			return nil
		}

		col, err := strconv.Atoi(line)
		if err != nil || col < 1 || col > game.Columns {
			fmt.Fprintf(rt.out, "Pick a column between 1 and %d, or q to exit\n", game.Columns)
			continue
		}

		res, err := rt.Game.AttemptDrop(col - 1)
		if err != nil {
			return fmt.Errorf("text: drop into column %d: %w", col, err)
		}
		if res.Status == game.ColumnFull {
			log.Printf("Rejected: %s", res)
			fmt.Fprintf(rt.out, "Column %d is full\n", col)
			continue
		}
		log.Printf("Move %d: %s", rt.Game.Moves(), res)
	}
}
