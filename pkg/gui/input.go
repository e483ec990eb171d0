package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/fourterm/pkg/game"
)

type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionDrop
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionDrop:
		return "Drop"
	case ActionExit:
		return "Exit"
	default:
		return "None"
	}
}

// Labels of the result dialog buttons
const (
	ButtonNewGame = "New Game"
	ButtonExit    = "Exit"
)

type Keybinding struct {
	k tcell.Key
	r rune

	a Action
}

var keybindings = []*Keybinding{
	{k: tcell.KeyLeft, a: ActionMoveLeft},
	{r: 'h', a: ActionMoveLeft},
	{r: 'a', a: ActionMoveLeft},
	{k: tcell.KeyRight, a: ActionMoveRight},
	{r: 'l', a: ActionMoveRight},
	{r: 'd', a: ActionMoveRight},
	{k: tcell.KeyDown, a: ActionDrop},
	{k: tcell.KeyEnter, a: ActionDrop},
	{r: 'j', a: ActionDrop},
	{r: 's', a: ActionDrop},
	{r: ' ', a: ActionDrop},
	{k: tcell.KeyEscape, a: ActionExit},
	{r: 'q', a: ActionExit},
	{r: 'Q', a: ActionExit},
}

// actionFor maps a key event to an action. Rune bindings only match
// KeyRune events.
func actionFor(ev *tcell.EventKey) Action {
	k := ev.Key()
	r := ev.Rune()
	for _, bind := range keybindings {
		if bind.k != 0 && bind.k == k {
			return bind.a
		}
		if bind.r != 0 && k == tcell.KeyRune && bind.r == r {
			return bind.a
		}
	}
	return ActionNone
}

// columnFor returns the zero based column selected by a digit key.
func columnFor(ev *tcell.EventKey) (int, bool) {
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	r := ev.Rune()
	if r < '1' || r >= '1'+game.Columns {
		return 0, false
	}
	return int(r - '1'), true
}
