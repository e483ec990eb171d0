package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Themes should stay within the xterm 256 color palette so they render the
// same on every terminal:
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name     string      `json:"name"`
	Red      tcell.Color `json:"red"`
	Yellow   tcell.Color `json:"yellow"`
	Hole     tcell.Color `json:"hole"`
	Frame    tcell.Color `json:"frame"`
	Cursor   tcell.Color `json:"cursor"`
	LastDrop tcell.Color `json:"lastDrop"`
	Label    tcell.Color `json:"label"`
	Msg      tcell.Color `json:"msg"`
	Footer   tcell.Color `json:"footer"`
}

// ThemeHex is the form themes take in a themes file
type ThemeHex struct {
	Name     string `json:"name"`
	Red      string `json:"red"`
	Yellow   string `json:"yellow"`
	Hole     string `json:"hole"`
	Frame    string `json:"frame"`
	Cursor   string `json:"cursor"`
	LastDrop string `json:"lastDrop"`
	Label    string `json:"label"`
	Msg      string `json:"msg"`
	Footer   string `json:"footer"`
}

// fmtHex returns "#0" for ColorDefault so the value survives a round trip
// through a themes file instead of turning black
func fmtHex(c tcell.Color) string {
	v := c.Hex()
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// parseHex converts a hex string to a tcell color. "#0" and "" map to the
// terminal default.
func parseHex(s string) (tcell.Color, error) {
	if s == "" || s == "#0" {
		return tcell.ColorDefault, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("theme: bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		Name:     t.Name,
		Red:      fmtHex(t.Red),
		Yellow:   fmtHex(t.Yellow),
		Hole:     fmtHex(t.Hole),
		Frame:    fmtHex(t.Frame),
		Cursor:   fmtHex(t.Cursor),
		LastDrop: fmtHex(t.LastDrop),
		Label:    fmtHex(t.Label),
		Msg:      fmtHex(t.Msg),
		Footer:   fmtHex(t.Footer),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() (Theme, error) {
	th := Theme{Name: t.Name}
	fields := []struct {
		hex string
		dst *tcell.Color
	}{
		{t.Red, &th.Red},
		{t.Yellow, &th.Yellow},
		{t.Hole, &th.Hole},
		{t.Frame, &th.Frame},
		{t.Cursor, &th.Cursor},
		{t.LastDrop, &th.LastDrop},
		{t.Label, &th.Label},
		{t.Msg, &th.Msg},
		{t.Footer, &th.Footer},
	}
	for _, f := range fields {
		c, err := parseHex(f.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", t.Name, err)
		}
		*f.dst = c
	}
	return th, nil
}

var ErrNoTheme = errors.New("theme: no theme found")

// ImportThemes returns the theme named want. Themes from the provided list
// override the built-in ones.
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme()
		}
	}
	for _, t := range BuiltinThemes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, ErrNoTheme
}

// LoadThemes reads a json array of ThemeHex from path
func LoadThemes(path string) ([]ThemeHex, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	var themes []ThemeHex
	if err := json.Unmarshal(b, &themes); err != nil {
		return nil, fmt.Errorf("theme: decode %s: %w", path, err)
	}
	return themes, nil
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:     "basic",
	Red:      tcell.Color160,
	Yellow:   tcell.Color220,
	Hole:     tcell.Color240,
	Frame:    tcell.Color27,
	Cursor:   tcell.Color231,
	LastDrop: tcell.Color45,
	Label:    tcell.Color247,
	Msg:      tcell.Color160,
	Footer:   tcell.Color247,
}

// ThemeClassic sticks to the eight standard colors
var ThemeClassic = Theme{
	Name:     "classic",
	Red:      tcell.ColorRed,
	Yellow:   tcell.ColorYellow,
	Hole:     tcell.ColorDefault,
	Frame:    tcell.ColorWhite,
	Cursor:   tcell.ColorWhite,
	LastDrop: tcell.ColorGreen,
	Label:    tcell.ColorWhite,
	Msg:      tcell.ColorRed,
	Footer:   tcell.ColorWhite,
}

var BuiltinThemes = []Theme{ThemeBasic, ThemeClassic}
