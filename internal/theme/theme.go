// Package theme provides color themes and styling for the dropzone board.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
func Initialize(themeName string) error {
	// If no theme specified, disable theming
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Load custom themes from user's themes directory
	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Warn("error loading custom themes", "err", err)
		}
	}

	// Try to set the theme by ID
	ok := tint.SetTintID(themeName)
	if !ok {
		// Theme not found, set to default
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// CycleTint switches to the next registered theme and returns its ID.
// A no-op returning "" when theming is disabled.
func CycleTint() string {
	t := Current()
	if t == nil {
		return ""
	}
	ids := tint.TintIDs()
	if len(ids) == 0 {
		return ""
	}
	for i, id := range ids {
		if id == t.ID {
			next := ids[(i+1)%len(ids)]
			tint.SetTintID(next)
			return next
		}
	}
	tint.SetTintID(ids[0])
	return ids[0]
}

// BoardBg returns the background color for the board area.
func BoardBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

// BoardFg returns the default foreground color for board text.
func BoardFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// CardBorder returns the border color for idle cards.
func CardBorder() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#FAAAAA")
	}
	return t.Red
}

// CardBorderDragging returns the border color for the card being dragged.
func CardBorderDragging() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

// CardBorderLocked returns the border color for locked cards.
func CardBorderLocked() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#808090")
	}
	return t.BrightBlack
}

// SlotBorder returns the border color for idle slots.
func SlotBorder() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5c5cff")
	}
	return t.Blue
}

// SlotBorderEligible returns the border color for slots whose groups match
// the dragged card.
func SlotBorderEligible() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}

// SlotBorderActive returns the border color for the slot the drag is
// currently over.
func SlotBorderActive() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AAFFAA")
	}
	return t.BrightGreen
}

// SlotBorderOccupied returns the border color for slots holding a card.
func SlotBorderOccupied() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd00cd")
	}
	return t.Purple
}

// SlotFill returns the fill color used to shade a slot's interior while it
// is the active drop target.
func SlotFill() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#103010")
	}
	return t.Black
}

// GhostBorder returns the border color for the drag ghost left at the
// card's home position.
func GhostBorder() color.Color {
	return lipgloss.Color("#404050")
}

// DockColorPoint returns the dock indicator color for point mode.
func DockColorPoint() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5c5cff")
	}
	return t.BrightBlue
}

// DockColorIntersect returns the dock indicator color for intersect mode.
func DockColorIntersect() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

// DockColorStrict returns the dock indicator color for strict mode.
func DockColorStrict() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffff00")
	}
	return t.Yellow
}

// TimeOverlayBg returns the background color for the time overlay.
func TimeOverlayBg() color.Color {
	return lipgloss.Color("#1a1a2e")
}

// TimeOverlayFg returns the foreground color for the time overlay.
func TimeOverlayFg() color.Color {
	return lipgloss.Color("#a0a0b0")
}

// LogViewerTitle returns the color for event log titles.
func LogViewerTitle() color.Color {
	return lipgloss.Color("14")
}

// LogViewerError returns the color for error messages in the event log.
func LogViewerError() color.Color {
	return lipgloss.Color("9")
}

// LogViewerWarn returns the color for warning messages in the event log.
func LogViewerWarn() color.Color {
	return lipgloss.Color("11")
}

// LogViewerInfo returns the color for info messages in the event log.
func LogViewerInfo() color.Color {
	return lipgloss.Color("10")
}

// LogViewerDebug returns the color for debug messages in the event log.
func LogViewerDebug() color.Color {
	return lipgloss.Color("12")
}

// LogViewerBg returns the background color for the event log.
func LogViewerBg() color.Color {
	return lipgloss.Color("#1a1a2a")
}

// NotificationError returns the color for error notifications.
func NotificationError() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd0000")
	}
	return t.Red
}

// NotificationWarning returns the color for warning notifications.
func NotificationWarning() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}

// NotificationSuccess returns the color for success notifications.
func NotificationSuccess() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cd00")
	}
	return t.Green
}

// NotificationInfo returns the color for info notifications.
func NotificationInfo() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#0000ee")
	}
	return t.Blue
}

// NotificationBg returns the background color for notifications.
func NotificationBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

// NotificationFg returns the foreground color for notifications.
func NotificationFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// DockBg returns the background color for the dock.
func DockBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// DockFg returns the foreground color for the dock.
func DockFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

// DockHighlight returns the highlight color for the dock.
func DockHighlight() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

// DockDimmed returns the dimmed color for the dock.
func DockDimmed() color.Color {
	return lipgloss.Color("#808090")
}

// DockAccent returns the accent color for the dock.
func DockAccent() color.Color {
	return lipgloss.Color("#a0a0b0")
}

// HelpKeyBadge returns the color for key badges in the help menu.
func HelpKeyBadge() color.Color {
	return lipgloss.Color("5") // Purple/magenta
}

// HelpKeyBadgeBg returns the background color for key badges in the help menu.
func HelpKeyBadgeBg() color.Color {
	return lipgloss.Color("0") // Black
}

// HelpGray returns the gray color for help menu elements.
func HelpGray() color.Color {
	return lipgloss.Color("8")
}

// HelpBorder returns the border color for the help menu.
func HelpBorder() color.Color {
	return lipgloss.Color("14")
}

// ColorToString converts a color.Color to a hex string
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns values in range 0-65535, convert to 0-255
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
	return fmt.Sprintf("#%02x%02x%02x", r8, g8, b8)
}
