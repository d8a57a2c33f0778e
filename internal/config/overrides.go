package config

import (
	"charm.land/log/v2"

	"github.com/Gaurav-Gosain/dropzone/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of Nerd Font icons
	ASCIIOnly bool

	// BorderStyle overrides the card and slot border style
	BorderStyle string

	// DockbarPosition overrides the dockbar position
	DockbarPosition string

	// HideClock overrides hiding the clock
	HideClock bool

	// NoAnimations disables snap-back animations
	NoAnimations bool

	// HitMode overrides the drag-and-drop hit-test mode
	HitMode string

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	// ASCII Only - simple flag override
	if overrides.ASCIIOnly {
		UseASCIIOnly = true
	}

	// Border Style - CLI flag takes precedence, otherwise use user config
	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
	} else if userConfig != nil && userConfig.Appearance.BorderStyle != "" {
		BorderStyle = userConfig.Appearance.BorderStyle
	}

	// Dockbar Position - CLI flag takes precedence, otherwise use user config
	if overrides.DockbarPosition != "" {
		DockbarPosition = overrides.DockbarPosition
	} else if userConfig != nil && userConfig.Appearance.DockbarPosition != "" {
		DockbarPosition = userConfig.Appearance.DockbarPosition
	}

	// Hide Clock - OR of CLI flag and user config
	if userConfig != nil {
		HideClock = overrides.HideClock || userConfig.Appearance.HideClock
	} else {
		HideClock = overrides.HideClock
	}

	// Hit Mode - CLI flag takes precedence over the config file
	if overrides.HitMode != "" && userConfig != nil {
		userConfig.DragDrop.HitMode = overrides.HitMode
	}

	// Animations - disabled by flag
	if overrides.NoAnimations {
		AnimationsEnabled = false
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil && userConfig.Appearance.Theme != "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		if err := theme.Initialize(themeName); err != nil {
			log.Warn("Failed to load theme", "theme", themeName, "err", err)
		}
	}
}
