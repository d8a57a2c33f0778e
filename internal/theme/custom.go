package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"charm.land/log/v2"
	"github.com/adrg/xdg"
	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/pelletier/go-toml/v2"
)

// customTheme is the on-disk shape of a user theme file. Every color is a
// hex string; an omitted color falls back to an xterm default, and an
// omitted bright variant falls back to its normal counterpart.
type customTheme struct {
	ID          string `toml:"id"`
	DisplayName string `toml:"display_name"`
	Dark        bool   `toml:"dark"`

	Fg     string `toml:"fg"`
	Bg     string `toml:"bg"`
	Cursor string `toml:"cursor"`

	Black  string `toml:"black"`
	Red    string `toml:"red"`
	Green  string `toml:"green"`
	Yellow string `toml:"yellow"`
	Blue   string `toml:"blue"`
	Purple string `toml:"purple"`
	Cyan   string `toml:"cyan"`
	White  string `toml:"white"`

	BrightBlack  string `toml:"bright_black"`
	BrightRed    string `toml:"bright_red"`
	BrightGreen  string `toml:"bright_green"`
	BrightYellow string `toml:"bright_yellow"`
	BrightBlue   string `toml:"bright_blue"`
	BrightPurple string `toml:"bright_purple"`
	BrightCyan   string `toml:"bright_cyan"`
	BrightWhite  string `toml:"bright_white"`
}

// GetThemesDir returns the custom themes directory
// (~/.config/dropzone/themes/), creating it if needed.
func GetThemesDir() (string, error) {
	keepFile, err := xdg.ConfigFile("dropzone/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to get themes directory: %w", err)
	}
	return filepath.Dir(keepFile), nil
}

// LoadCustomThemes loads every *.toml file in themesDir as a theme and
// registers it with bubbletint. Bad files are logged and skipped so one
// broken theme cannot take the board down at startup. Returns the
// registered theme IDs.
func LoadCustomThemes(themesDir string) ([]string, error) {
	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".toml") {
			continue
		}

		path := filepath.Join(themesDir, entry.Name())
		t, err := LoadCustomThemeFile(path)
		if err != nil {
			log.Warn("skipping custom theme", "file", entry.Name(), "err", err)
			continue
		}

		tint.Register(t)
		loaded = append(loaded, t.ID)
	}

	return loaded, nil
}

// LoadCustomThemeFile parses one theme file into a registrable tint. The ID
// falls back to the file name, the display name to the ID.
func LoadCustomThemeFile(path string) (*tint.Tint, error) {
	// #nosec G304 - the path comes from the user's own config directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var ct customTheme
	if err := toml.Unmarshal(data, &ct); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	if ct.ID == "" {
		base := filepath.Base(path)
		ct.ID = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if ct.ID == "" {
		return nil, fmt.Errorf("theme has no id")
	}
	if ct.DisplayName == "" {
		ct.DisplayName = ct.ID
	}

	return ct.toTint(), nil
}

// toTint converts the parsed file into a tint, filling every gap so the
// board's semantic colors always resolve: fg/bg/normal colors get xterm
// defaults, the cursor follows fg, bright variants follow their normal
// counterparts.
func (c customTheme) toTint() *tint.Tint {
	t := &tint.Tint{
		ID:          c.ID,
		DisplayName: c.DisplayName,
		Dark:        c.Dark,

		Fg:     hexColor(c.Fg),
		Bg:     hexColor(c.Bg),
		Cursor: hexColor(c.Cursor),

		Black:  hexColor(c.Black),
		Red:    hexColor(c.Red),
		Green:  hexColor(c.Green),
		Yellow: hexColor(c.Yellow),
		Blue:   hexColor(c.Blue),
		Purple: hexColor(c.Purple),
		Cyan:   hexColor(c.Cyan),
		White:  hexColor(c.White),

		BrightBlack:  hexColor(c.BrightBlack),
		BrightRed:    hexColor(c.BrightRed),
		BrightGreen:  hexColor(c.BrightGreen),
		BrightYellow: hexColor(c.BrightYellow),
		BrightBlue:   hexColor(c.BrightBlue),
		BrightPurple: hexColor(c.BrightPurple),
		BrightCyan:   hexColor(c.BrightCyan),
		BrightWhite:  hexColor(c.BrightWhite),
	}

	def := func(c **tint.Color, hex string) {
		if *c == nil {
			*c = tint.FromHex(hex)
		}
	}
	def(&t.Fg, "#e5e5e5")
	def(&t.Bg, "#000000")
	if t.Cursor == nil {
		t.Cursor = copyColor(t.Fg)
	}

	def(&t.Black, "#000000")
	def(&t.Red, "#cd0000")
	def(&t.Green, "#00cd00")
	def(&t.Yellow, "#cdcd00")
	def(&t.Blue, "#0000ee")
	def(&t.Purple, "#cd00cd")
	def(&t.Cyan, "#00cdcd")
	def(&t.White, "#e5e5e5")

	brighten := func(bright **tint.Color, normal *tint.Color) {
		if *bright == nil {
			*bright = copyColor(normal)
		}
	}
	brighten(&t.BrightBlack, t.Black)
	brighten(&t.BrightRed, t.Red)
	brighten(&t.BrightGreen, t.Green)
	brighten(&t.BrightYellow, t.Yellow)
	brighten(&t.BrightBlue, t.Blue)
	brighten(&t.BrightPurple, t.Purple)
	brighten(&t.BrightCyan, t.Cyan)
	brighten(&t.BrightWhite, t.White)

	return t
}

// hexColor parses a hex string, returning nil for an empty value so the
// fallback chain in toTint can fill it.
func hexColor(s string) *tint.Color {
	if s == "" {
		return nil
	}
	return tint.FromHex(s)
}

// copyColor creates an independent copy of a tint.Color.
func copyColor(c *tint.Color) *tint.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
