package gui

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestThemeHexKeepsDefault(t *testing.T) {
	th, err := ThemeClassic.Hex().Theme()
	if err != nil {
		t.Fatal(err)
	}
	if th.Hole != tcell.ColorDefault {
		t.Errorf("default color did not survive, got %v", th.Hole)
	}
	if th.Red.Hex() != ThemeClassic.Red.Hex() {
		t.Errorf("wanted %06x got %06x", ThemeClassic.Red.Hex(), th.Red.Hex())
	}
}

func TestThemeBadHex(t *testing.T) {
	h := ThemeBasic.Hex()
	h.Yellow = "#zzzzzz"
	if _, err := h.Theme(); err == nil {
		t.Error("failed to reject bad color")
	}
}

func TestImportThemes(t *testing.T) {
	if th, err := ImportThemes("classic", nil); err != nil || th.Name != "classic" {
		t.Errorf("failed to find builtin theme: %v", err)
	}

	custom := ThemeBasic.Hex()
	custom.Red = "#ff0000"
	th, err := ImportThemes("basic", []ThemeHex{custom})
	if err != nil {
		t.Fatal(err)
	}
	if th.Red.Hex() != 0xff0000 {
		t.Errorf("override not applied, got %06x", th.Red.Hex())
	}

	if _, err := ImportThemes("missing", nil); !errors.Is(err, ErrNoTheme) {
		t.Errorf("wanted %v got %v", ErrNoTheme, err)
	}
}

func TestLoadThemes(t *testing.T) {
	dir, err := ioutil.TempDir("", "fourterm")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "themes.json")
	data := `[{"name":"night","red":"#af0000","yellow":"#ffd700","hole":"#0"}]`
	if err := ioutil.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	themes, err := LoadThemes(path)
	if err != nil {
		t.Fatal(err)
	}
	th, err := ImportThemes("night", themes)
	if err != nil {
		t.Fatal(err)
	}
	if th.Yellow.Hex() != 0xffd700 {
		t.Errorf("wanted ffd700 got %06x", th.Yellow.Hex())
	}
}
