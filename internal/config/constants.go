// Package config provides configuration constants, keybinding management, and user settings.
package config

import (
	"time"

	"charm.land/lipgloss/v2"
)

// =============================================================================
// Card and Slot Defaults
// =============================================================================

const (
	// DefaultCardWidth is the default width for new cards on the board
	DefaultCardWidth = 16

	// DefaultCardHeight is the default height for new cards on the board
	DefaultCardHeight = 5

	// GridTickX is the horizontal snap interval for the grid card
	GridTickX = 4

	// GridTickY is the vertical snap interval for the grid card
	GridTickY = 2

	// DefaultSlotWidth is the default width for drop slots
	DefaultSlotWidth = 20

	// DefaultSlotHeight is the default height for drop slots
	DefaultSlotHeight = 7

	// MinCardWidth is the minimum width a card can be resized to
	MinCardWidth = 8

	// MinCardHeight is the minimum height a card can be resized to
	MinCardHeight = 3
)

// =============================================================================
// Drag Behavior
// =============================================================================

const (
	// ClickPixelThreshold is the per-axis pointer travel, in cells, that a
	// press must exceed before it counts as a drag rather than a click
	ClickPixelThreshold = 3

	// ClickTimeThreshold is how long a press may be held before it counts
	// as a drag even without pointer travel
	ClickTimeThreshold = time.Second
)

// =============================================================================
// Animation Durations
// =============================================================================

const (
	// DefaultAnimationDuration is the standard animation duration for snap-back
	DefaultAnimationDuration = 300 * time.Millisecond

	// FastAnimationDuration is the duration for slot-settle animations
	FastAnimationDuration = 200 * time.Millisecond

	// NotificationFadeOutDuration is the fade out duration for notifications
	NotificationFadeOutDuration = 500 * time.Millisecond

	// NotificationDuration is the default duration notifications remain visible
	NotificationDuration = 1500 * time.Millisecond
)

// =============================================================================
// Timeouts and Intervals
// =============================================================================

const (
	// CPUUpdateInterval is the interval between CPU usage updates in the dock
	CPUUpdateInterval = 500 * time.Millisecond

	// RAMUpdateInterval is the interval between RAM usage updates in the dock
	RAMUpdateInterval = 2 * time.Second
)

// =============================================================================
// FPS and Refresh Rates
// =============================================================================

const (
	// NormalFPS is the normal refresh rate during regular operation
	NormalFPS = 60

	// InteractionFPS is the refresh rate during an active drag session.
	// Lower FPS during interactions improves mouse responsiveness
	InteractionFPS = 30

	// IdleFPS is the refresh rate when nothing is animating or dragging.
	// Reduces CPU usage to near-zero on an idle board.
	IdleFPS = 10

	// IdleThresholdFrames is the number of consecutive idle frames at NormalFPS
	// before switching to IdleFPS (~500ms at 60 FPS).
	IdleThresholdFrames = 30
)

// =============================================================================
// UI Layout Dimensions
// =============================================================================

const (
	// DockHeight is the height of the dock area at the bottom
	DockHeight = 2

	// LogViewerWidth is the width of the event log overlay
	LogViewerWidth = 80

	// CPUGraphBars is the number of bars in the CPU graph
	CPUGraphBars = 10

	// CPUGraphScale is the scale factor for CPU graph bars (100/8 blocks)
	CPUGraphScale = 12.5

	// MaxNotificationWidth is the maximum width of notification messages
	MaxNotificationWidth = 60

	// MinNotificationWidth is the minimum width of notification messages
	MinNotificationWidth = 20

	// NotificationMargin is the margin from screen edge for notifications
	NotificationMargin = 8

	// NotificationSpacing is the vertical spacing between notifications
	NotificationSpacing = 4

	// MaxVisibleNotifications is the maximum number of notifications shown at once
	MaxVisibleNotifications = 3

	// SlotGap is the horizontal gap between laid-out slots
	SlotGap = 4

	// BoardMargin is the margin between the board edge and the outermost slots
	BoardMargin = 2
)

// =============================================================================
// Dock Visual Characters - Nerd Font Icons (Default)
// =============================================================================

const (
	// DockPillLeftChar is the left character for pill-style indicators
	// Set to "" to disable, or use custom characters
	DockPillLeftChar = string(rune(0xe0b6)) // Powerline left semicircle

	// DockPillRightChar is the right character for pill-style indicators
	// Set to "" to disable, or use custom characters
	DockPillRightChar = string(rune(0xe0b4)) // Powerline right semicircle

	// DockModeIconPoint is the icon for point hit-test mode (Nerd Font: nf-fa-mouse_pointer)
	DockModeIconPoint = " " + string(rune(0xf245)) + " "

	// DockModeIconIntersect is the icon for intersect hit-test mode (Nerd Font: nf-fa-object_group)
	DockModeIconIntersect = " " + string(rune(0xf247)) + " "

	// DockModeIconStrict is the icon for strict hit-test mode (Nerd Font: nf-fa-square)
	DockModeIconStrict = " " + string(rune(0xf0c8)) + " "

	// DockIconCardCount is the icon for the card count (Nerd Font: nf-fa-clone)
	DockIconCardCount = string(rune(0xf24d))

	// DockIconSlotCount is the icon for the slot count (Nerd Font: nf-fa-th_large)
	DockIconSlotCount = string(rune(0xf009))

	// DockSeparator is the separator between dock sections
	DockSeparator = "  " // Two spaces for breathing room
)

// =============================================================================
// Dock Visual Characters - ASCII Fallback
// =============================================================================

const (
	// ASCII fallback characters (used when --ascii-only flag is set)

	// DockPillLeftCharASCII is the ASCII fallback for pill left
	DockPillLeftCharASCII = "["

	// DockPillRightCharASCII is the ASCII fallback for pill right
	DockPillRightCharASCII = "]"

	// DockModeIconPointASCII is the ASCII fallback for point mode
	DockModeIconPointASCII = " P "

	// DockModeIconIntersectASCII is the ASCII fallback for intersect mode
	DockModeIconIntersectASCII = " I "

	// DockModeIconStrictASCII is the ASCII fallback for strict mode
	DockModeIconStrictASCII = " S "

	// DockIconCardCountASCII is the ASCII fallback for the card count
	DockIconCardCountASCII = "cards"

	// DockIconSlotCountASCII is the ASCII fallback for the slot count
	DockIconSlotCountASCII = "slots"

	// DockSeparatorASCII is the ASCII fallback separator
	DockSeparatorASCII = " | "
)

// =============================================================================
// Notification Icons (ASCII-safe)
// =============================================================================

const (
	// NotificationIconError is the error notification icon
	NotificationIconError = "[X]"

	// NotificationIconWarning is the warning notification icon
	NotificationIconWarning = "[!]"

	// NotificationIconSuccess is the success notification icon
	NotificationIconSuccess = "[OK]"

	// NotificationIconInfo is the info notification icon
	NotificationIconInfo = "[i]"
)

// =============================================================================
// Runtime Configuration
// =============================================================================

// UseASCIIOnly controls whether to use ASCII fallback characters instead of Nerd Fonts
// Set via --ascii-only command-line flag
var UseASCIIOnly = false

// AnimationsEnabled controls whether snap-back animations are enabled
// Set via --no-animations flag or appearance.animations_enabled config
var AnimationsEnabled = true

// GetAnimationDuration returns the animation duration for standard operations.
// Returns 0 if animations are disabled, causing instant transitions.
func GetAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return DefaultAnimationDuration
}

// GetFastAnimationDuration returns the animation duration for fast operations.
// Returns 0 if animations are disabled, causing instant transitions.
func GetFastAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return FastAnimationDuration
}

// BorderStyle controls which border style to use for cards and slots
// Set via --border-style flag or appearance.border_style config
var BorderStyle = "rounded"

// DockbarPosition controls the position of the dockbar
// Set via --dockbar-position flag or appearance.dockbar_position config
var DockbarPosition = "bottom"

// HideClock controls whether the clock overlay is hidden
// Set via --hide-clock flag or appearance.hide_clock config
var HideClock = false

// GetDockPillLeftChar returns the appropriate pill left character based on UseASCIIOnly
func GetDockPillLeftChar() string {
	if UseASCIIOnly {
		return DockPillLeftCharASCII
	}
	return DockPillLeftChar
}

// GetDockPillRightChar returns the appropriate pill right character based on UseASCIIOnly
func GetDockPillRightChar() string {
	if UseASCIIOnly {
		return DockPillRightCharASCII
	}
	return DockPillRightChar
}

// GetDockModeIconPoint returns the appropriate point mode icon based on UseASCIIOnly
func GetDockModeIconPoint() string {
	if UseASCIIOnly {
		return DockModeIconPointASCII
	}
	return DockModeIconPoint
}

// GetDockModeIconIntersect returns the appropriate intersect mode icon based on UseASCIIOnly
func GetDockModeIconIntersect() string {
	if UseASCIIOnly {
		return DockModeIconIntersectASCII
	}
	return DockModeIconIntersect
}

// GetDockModeIconStrict returns the appropriate strict mode icon based on UseASCIIOnly
func GetDockModeIconStrict() string {
	if UseASCIIOnly {
		return DockModeIconStrictASCII
	}
	return DockModeIconStrict
}

// GetDockIconCardCount returns the appropriate card count icon based on UseASCIIOnly
func GetDockIconCardCount() string {
	if UseASCIIOnly {
		return DockIconCardCountASCII
	}
	return DockIconCardCount
}

// GetDockIconSlotCount returns the appropriate slot count icon based on UseASCIIOnly
func GetDockIconSlotCount() string {
	if UseASCIIOnly {
		return DockIconSlotCountASCII
	}
	return DockIconSlotCount
}

// GetDockSeparator returns the appropriate separator based on UseASCIIOnly
func GetDockSeparator() string {
	if UseASCIIOnly {
		return DockSeparatorASCII
	}
	return DockSeparator
}

// GetBorderForStyle returns the lipgloss Border for the current style
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "outer-half-block":
		return lipgloss.OuterHalfBlockBorder()
	case "inner-half-block":
		return lipgloss.InnerHalfBlockBorder()
	case "rounded":
		fallthrough
	default:
		return lipgloss.RoundedBorder()
	}
}

// =============================================================================
// Limits
// =============================================================================

const (
	// MaxLogMessages is the maximum number of event log messages to keep in memory
	MaxLogMessages = 100

	// CPUHistorySize is the number of CPU usage samples to keep
	CPUHistorySize = 10
)

// =============================================================================
// Z-Index Layers
// =============================================================================

const (
	// ZIndexBase is the base z-index for slots
	ZIndexBase = 0

	// ZIndexCards is the base z-index for cards above the slots
	ZIndexCards = 100

	// ZIndexDragging is the z-index for the card currently being dragged
	ZIndexDragging = 999

	// ZIndexHelp is the z-index for the help overlay
	ZIndexHelp = 1000

	// ZIndexDock is the z-index for the dock
	ZIndexDock = 1000

	// ZIndexTime is the z-index for the time display
	ZIndexTime = 1001

	// ZIndexLogs is the z-index for the event log overlay
	ZIndexLogs = 1001

	// ZIndexNotifications is the z-index for notifications
	ZIndexNotifications = 2000
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSSHPort is the default SSH server port
	DefaultSSHPort = "2222"

	// DefaultSSHHost is the default SSH server host
	DefaultSSHHost = "localhost"

	// DefaultTerminalWidth is the fallback terminal width when screen size unknown
	DefaultTerminalWidth = 80

	// DefaultTerminalHeight is the fallback terminal height when screen size unknown
	DefaultTerminalHeight = 24
)

// =============================================================================
// Helper Offsets and Counts
// =============================================================================

const (
	// IDPrefixLength is the length of ID prefix used in display (8 chars from UUID)
	IDPrefixLength = 8

	// MaxNameTruncateLength is the max length before truncating with ellipsis
	MaxNameTruncateLength = 12

	// EllipsisLength is the length of the ellipsis string
	EllipsisLength = 3

	// MaxNameLengthBeforeEllipsis is max length before needing ellipsis
	MaxNameLengthBeforeEllipsis = MaxNameTruncateLength - EllipsisLength
)
