package theme

import (
	"os"
	"path/filepath"
	"testing"

	tint "github.com/lrstanley/bubbletint/v2"
)

func writeThemeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

// feltTable is a fully specified theme: green felt board, warm card accents.
const feltTable = `
id = "felt-table"
display_name = "Felt Table"
dark = true

fg = "#e8e3d3"
bg = "#0f3325"
cursor = "#f2c14e"

black = "#1c2321"
red = "#c94f4f"
green = "#3e8e5a"
yellow = "#f2c14e"
blue = "#4a7ba6"
purple = "#8f6aae"
cyan = "#5aa7a7"
white = "#d8d3c3"

bright_black = "#3a443f"
bright_red = "#e06c6c"
bright_green = "#5bb47e"
bright_yellow = "#f7d57a"
bright_blue = "#6f9cc4"
bright_purple = "#ab8ac6"
bright_cyan = "#7fc1c1"
bright_white = "#f4f1e6"
`

func TestLoadThemeFileComplete(t *testing.T) {
	dir := t.TempDir()
	path := writeThemeFile(t, dir, "felt-table.toml", feltTable)

	th, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatalf("LoadCustomThemeFile: %v", err)
	}

	if th.ID != "felt-table" {
		t.Errorf("ID = %q, want felt-table", th.ID)
	}
	if th.DisplayName != "Felt Table" {
		t.Errorf("DisplayName = %q, want Felt Table", th.DisplayName)
	}
	if !th.Dark {
		t.Error("Dark should be true")
	}

	colors := map[string]*tint.Color{
		"fg": th.Fg, "bg": th.Bg, "cursor": th.Cursor,
		"black": th.Black, "red": th.Red, "green": th.Green,
		"yellow": th.Yellow, "blue": th.Blue, "purple": th.Purple,
		"cyan": th.Cyan, "white": th.White,
		"bright_black": th.BrightBlack, "bright_red": th.BrightRed,
		"bright_green": th.BrightGreen, "bright_yellow": th.BrightYellow,
		"bright_blue": th.BrightBlue, "bright_purple": th.BrightPurple,
		"bright_cyan": th.BrightCyan, "bright_white": th.BrightWhite,
	}
	for name, c := range colors {
		if c == nil {
			t.Errorf("color %s not parsed", name)
		}
	}
}

func TestLoadThemeFileFillsGaps(t *testing.T) {
	dir := t.TempDir()
	path := writeThemeFile(t, dir, "Plain-Board.toml",
		"fg = \"#c8c8c8\"\nbg = \"#101418\"\n")

	th, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatalf("LoadCustomThemeFile: %v", err)
	}

	// ID derived from the file name, lowercased
	if th.ID != "plain-board" {
		t.Errorf("ID = %q, want plain-board", th.ID)
	}
	if th.DisplayName != "plain-board" {
		t.Errorf("DisplayName = %q, want plain-board", th.DisplayName)
	}

	for name, c := range map[string]*tint.Color{
		"cursor": th.Cursor,
		"black":  th.Black, "red": th.Red, "green": th.Green,
		"yellow": th.Yellow, "blue": th.Blue, "purple": th.Purple,
		"cyan": th.Cyan, "white": th.White,
		"bright_black": th.BrightBlack, "bright_white": th.BrightWhite,
	} {
		if c == nil {
			t.Errorf("gap for %s was not filled", name)
		}
	}

	// The cursor follows the foreground when unset
	if th.Cursor.R != th.Fg.R || th.Cursor.G != th.Fg.G || th.Cursor.B != th.Fg.B {
		t.Error("cursor should default to fg")
	}

	// Bright variants follow their normal counterparts when unset
	if th.BrightRed.R != th.Red.R || th.BrightRed.G != th.Red.G || th.BrightRed.B != th.Red.B {
		t.Error("bright_red should default to red")
	}
	if th.BrightRed == th.Red {
		t.Error("bright_red must be an independent copy, not the same pointer")
	}
}

func TestLoadThemeFileBadSyntax(t *testing.T) {
	dir := t.TempDir()
	path := writeThemeFile(t, dir, "broken.toml", "fg = [unclosed")

	if _, err := LoadCustomThemeFile(path); err == nil {
		t.Error("expected an error for malformed TOML")
	}
}

func TestLoadCustomThemesEmptyDir(t *testing.T) {
	loaded, err := LoadCustomThemes(t.TempDir())
	if err != nil {
		t.Fatalf("LoadCustomThemes on empty dir: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("loaded %d themes from an empty dir", len(loaded))
	}
}

func TestLoadCustomThemesSkipsNonThemeFiles(t *testing.T) {
	dir := t.TempDir()
	writeThemeFile(t, dir, "notes.txt", "not a theme")
	writeThemeFile(t, dir, "board.json", `{"fg": "#ffffff"}`)
	writeThemeFile(t, dir, ".hidden", "also not a theme")
	writeThemeFile(t, dir, "felt-table.toml", feltTable)

	tint.NewDefaultRegistry()
	loaded, err := LoadCustomThemes(dir)
	if err != nil {
		t.Fatalf("LoadCustomThemes: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != "felt-table" {
		t.Errorf("loaded = %v, want [felt-table]", loaded)
	}
}

func TestLoadCustomThemesRegisters(t *testing.T) {
	dir := t.TempDir()
	writeThemeFile(t, dir, "slot-neon.toml",
		"id = \"slot-neon\"\nfg = \"#f0f0f0\"\nbg = \"#0a0a14\"\n")

	tint.NewDefaultRegistry()
	loaded, err := LoadCustomThemes(dir)
	if err != nil {
		t.Fatalf("LoadCustomThemes: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("loaded %d themes, want 1", len(loaded))
	}

	found := false
	for _, id := range tint.TintIDs() {
		if id == "slot-neon" {
			found = true
			break
		}
	}
	if !found {
		t.Error("slot-neon missing from the tint registry after loading")
	}
}

func TestHexColorEmpty(t *testing.T) {
	if hexColor("") != nil {
		t.Error("hexColor(\"\") should return nil so defaults can fill it")
	}
	if hexColor("#102030") == nil {
		t.Error("hexColor should parse a hex value")
	}
}
