package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance  AppearanceConfig  `toml:"appearance"`
	DragDrop    DragDropConfig    `toml:"dragdrop"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	BorderStyle       string `toml:"border_style"`       // Border style: rounded, normal, thick, double, hidden, block, ascii, outer-half-block, inner-half-block
	DockbarPosition   string `toml:"dockbar_position"`   // Dockbar position: bottom, top, hidden
	AnimationsEnabled *bool  `toml:"animations_enabled"` // Enable snap-back animations (default: true). Set to false for instant transitions.
	HideClock         bool   `toml:"hide_clock"`         // Hide the clock overlay (default: false)
	Theme             string `toml:"theme"`              // Color theme name (e.g., dracula, nord, my-custom-theme)
}

// DragDropConfig holds drag-and-drop behavior settings
type DragDropConfig struct {
	HitMode            string `toml:"hit_mode"`             // Hit-test mode: point, intersect, strict (default: intersect)
	ClickPixelThresh   int    `toml:"click_pixel_thresh"`   // Per-axis pointer travel in cells before a press becomes a drag (default: 3)
	ClickTimeThreshMS  int    `toml:"click_time_thresh_ms"` // Hold duration in milliseconds before a press becomes a drag (default: 1000)
	SnapBack           *bool  `toml:"snap_back"`            // Animate missed cards back to their home position (default: true)
	ConstrainToBoard   *bool  `toml:"constrain_to_board"`   // Keep dragged cards inside the board area (default: true)
	ShowEligibleSlots  *bool  `toml:"show_eligible_slots"`  // Highlight slots whose groups match the dragged card (default: true)
	GuardPointerEvents *bool  `toml:"guard_pointer_events"` // Suppress card hover handling while a drag is active (default: true)
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	Board map[string][]string `toml:"board"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	cfg := &UserConfig{
		Appearance: AppearanceConfig{
			BorderStyle:     "rounded",
			DockbarPosition: "bottom",
		},
		DragDrop: DragDropConfig{
			HitMode:           "intersect",
			ClickPixelThresh:  ClickPixelThreshold,
			ClickTimeThreshMS: int(ClickTimeThreshold.Milliseconds()),
		},
		Keybindings: KeybindingsConfig{
			Board: map[string][]string{
				"quit":         {"q", "ctrl+c"},
				"toggle_help":  {"?"},
				"toggle_logs":  {"L"},
				"cycle_mode":   {"m"},
				"reset_board":  {"r"},
				"shuffle":      {"s"},
				"add_card":     {"n"},
				"cancel_drag":  {"esc"},
				"cycle_theme":  {"t"},
				"toggle_ascii": {"a"},
			},
		},
	}
	return cfg
}

// LoadUserConfig loads the user configuration from the XDG config directory
func LoadUserConfig() (*UserConfig, error) {
	// Try to find existing config file
	configPath, err := xdg.SearchConfigFile("dropzone/config.toml")
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}

	// Read and parse config file
	// #nosec G304 - configPath is from XDG search, reading user config is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingDragDrop(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile("dropzone/config.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	// Build config file with header comments and marshaled data
	var sb strings.Builder
	sb.WriteString("# Dropzone Configuration File\n")
	sb.WriteString("# This file allows you to customize appearance, drag behavior, and keybindings\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("# Documentation: https://github.com/Gaurav-Gosain/dropzone\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# border_style: Card and slot border style\n")
	sb.WriteString("#   Options: rounded, normal, thick, double, hidden, block, ascii,\n")
	sb.WriteString("#            outer-half-block, inner-half-block\n")
	sb.WriteString("#   Default: rounded\n")
	sb.WriteString("#\n")
	sb.WriteString("# dockbar_position: Position of the dockbar\n")
	sb.WriteString("#   Options: bottom, top, hidden\n")
	sb.WriteString("#   Default: bottom\n")
	sb.WriteString("#\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord, my-custom-theme)\n")
	sb.WriteString("#   Leave empty to use standard terminal colors.\n")
	sb.WriteString("#   CLI flag --theme overrides this. Custom themes: ~/.config/dropzone/themes/*.toml\n")
	sb.WriteString("#   Default: (empty - no theme)\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# DRAG AND DROP SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# hit_mode: How a dragged card is matched against slots\n")
	sb.WriteString("#   point     - the pointer cell must be inside the slot\n")
	sb.WriteString("#   intersect - the card must overlap the slot; largest overlap wins\n")
	sb.WriteString("#   strict    - the whole card must fit inside the slot\n")
	sb.WriteString("#   Default: intersect\n")
	sb.WriteString("#\n")
	sb.WriteString("# click_pixel_thresh: Pointer travel in cells before a press becomes a drag\n")
	sb.WriteString("#   Default: 3\n")
	sb.WriteString("#\n")
	sb.WriteString("# click_time_thresh_ms: Hold duration before a press becomes a drag\n")
	sb.WriteString("#   Default: 1000\n")
	sb.WriteString("# ============================================================================\n\n")

	if _, err := sb.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write config data: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
	if cfg.Appearance.DockbarPosition == "" {
		cfg.Appearance.DockbarPosition = defaultCfg.Appearance.DockbarPosition
	}

	// AnimationsEnabled defaults to true (nil means use default).
	// Only set the global if explicitly configured.
	if cfg.Appearance.AnimationsEnabled != nil {
		AnimationsEnabled = *cfg.Appearance.AnimationsEnabled
	}

	// HideClock defaults to false
	// Only apply from config if not already set via flag (run.go sets this first)
	if !HideClock {
		HideClock = cfg.Appearance.HideClock
	}
}

// fillMissingDragDrop fills in any missing drag-and-drop settings with defaults
func fillMissingDragDrop(cfg, defaultCfg *UserConfig) {
	if cfg.DragDrop.HitMode == "" {
		cfg.DragDrop.HitMode = defaultCfg.DragDrop.HitMode
	}
	if cfg.DragDrop.ClickPixelThresh <= 0 {
		cfg.DragDrop.ClickPixelThresh = defaultCfg.DragDrop.ClickPixelThresh
	}
	if cfg.DragDrop.ClickTimeThreshMS <= 0 {
		cfg.DragDrop.ClickTimeThreshMS = defaultCfg.DragDrop.ClickTimeThreshMS
	}
}

// fillMissingKeybinds fills in any missing keybindings with defaults
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings.Board == nil {
		cfg.Keybindings.Board = make(map[string][]string)
	}
	fillMapDefaults(cfg.Keybindings.Board, defaultCfg.Keybindings.Board)
}

func fillMapDefaults(target, defaults map[string][]string) {
	for k, v := range defaults {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
}

// validateConfig rejects settings that have no sane fallback.
func validateConfig(cfg *UserConfig) error {
	switch cfg.DragDrop.HitMode {
	case "point", "intersect", "strict":
	default:
		return fmt.Errorf("config: dragdrop.hit_mode %q is not one of point, intersect, strict", cfg.DragDrop.HitMode)
	}

	switch cfg.Appearance.DockbarPosition {
	case "bottom", "top", "hidden":
	default:
		return fmt.Errorf("config: appearance.dockbar_position %q is not one of bottom, top, hidden", cfg.Appearance.DockbarPosition)
	}
	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile("dropzone/config.toml")
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile("dropzone/config.toml")
	}
	return path, nil
}
