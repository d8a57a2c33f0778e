// Package dropzone provides a reusable drag-and-drop card board that can be
// embedded in other Bubble Tea applications or used as a standalone TUI.
//
// # Basic Usage
//
// Create a new board with default options:
//
//	model := dropzone.New()
//	p := tea.NewProgram(model, dropzone.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
// Use options to customize board behavior:
//
//	model := dropzone.New(
//		dropzone.WithTheme("dracula"),
//		dropzone.WithHitMode("strict"),
//		dropzone.WithAnimations(false),
//	)
package dropzone

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/dropzone/internal/app"
	"github.com/Gaurav-Gosain/dropzone/internal/config"
	"github.com/Gaurav-Gosain/dropzone/internal/dragdrop"
	"github.com/Gaurav-Gosain/dropzone/internal/input"
	"github.com/Gaurav-Gosain/dropzone/internal/theme"
)

// Model is the main board model that implements tea.Model.
type Model = app.Board

// Mode represents a drag-and-drop hit-testing mode.
type Mode = dragdrop.Mode

// Hit-testing mode constants
const (
	// ModePoint resolves drops by pointer position.
	ModePoint = dragdrop.ModePoint
	// ModeIntersect resolves drops by largest overlap.
	ModeIntersect = dragdrop.ModeIntersect
	// ModeStrict requires the card to fit entirely inside the slot.
	ModeStrict = dragdrop.ModeStrict
)

// Options configures a board instance.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord", "tokyonight").
	// Leave empty to use standard terminal colors.
	Theme string

	// HitMode is the starting hit-testing mode: "point", "intersect", "strict".
	HitMode string

	// Animations enables/disables snap-back animations.
	Animations bool

	// ASCIIOnly uses ASCII characters instead of Nerd Font icons.
	ASCIIOnly bool

	// BorderStyle sets the card and slot border style.
	// Valid values: "rounded", "normal", "thick", "double", "hidden", "block", "ascii"
	BorderStyle string

	// DockbarPosition sets where the dockbar appears.
	// Valid values: "bottom", "top", "hidden"
	DockbarPosition string

	// Width is the initial width (set automatically if 0).
	Width int

	// Height is the initial height (set automatically if 0).
	Height int

	// UserConfig is a custom user configuration. If nil, the user's config
	// file is loaded, falling back to defaults.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring the board.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithHitMode sets the starting hit-testing mode.
func WithHitMode(mode string) Option {
	return func(o *Options) {
		o.HitMode = mode
	}
}

// WithAnimations enables or disables snap-back animations.
func WithAnimations(enabled bool) Option {
	return func(o *Options) {
		o.Animations = enabled
	}
}

// WithASCIIOnly enables ASCII-only mode (no Nerd Font icons).
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithBorderStyle sets the card and slot border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithDockbarPosition sets the dockbar position.
func WithDockbarPosition(position string) Option {
	return func(o *Options) {
		o.DockbarPosition = position
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Animations: true,
	}
}

// New creates a new board model with the given options.
// This is the main entry point for using dropzone as a library.
func New(opts ...Option) *Model {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return newModel(options)
}

// PTY describes a pseudo-terminal with a known size.
type PTY interface {
	Width() int
	Height() int
}

// NewForPTY creates a board sized for a PTY session. This is useful when
// embedding dropzone in web terminals or SSH servers.
func NewForPTY(pty PTY, opts ...Option) *Model {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	options.Width = pty.Width()
	options.Height = pty.Height()
	return newModel(options)
}

// newModel creates the internal model with applied options.
func newModel(options Options) *Model {
	app.SetInputHandler(input.HandleInput)

	if options.ASCIIOnly {
		config.UseASCIIOnly = true
	}
	if options.BorderStyle != "" {
		config.BorderStyle = options.BorderStyle
	}
	if options.DockbarPosition != "" {
		config.DockbarPosition = options.DockbarPosition
	}
	if !options.Animations {
		config.AnimationsEnabled = false
	}

	if options.Theme != "" {
		_ = theme.Initialize(options.Theme)
	}

	var userConfig *config.UserConfig
	if options.UserConfig != nil {
		userConfig = options.UserConfig
	} else {
		var err error
		userConfig, err = config.LoadUserConfig()
		if err != nil {
			userConfig = config.DefaultConfig()
		}
	}
	if options.HitMode != "" {
		userConfig.DragDrop.HitMode = options.HitMode
	}

	board := app.NewBoard(userConfig)
	if options.Width > 0 && options.Height > 0 {
		board.Resize(options.Width, options.Height)
	}
	return board
}

// ProgramOptions returns recommended tea.ProgramOption values for running
// the board:
//
//	model := dropzone.New()
//	p := tea.NewProgram(model, dropzone.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(FilterMouseMotion),
	}
}

// FilterMouseMotion is a tea.WithFilter function that reduces CPU usage by
// dropping mouse motion events outside drag sessions.
//
//	p := tea.NewProgram(model, tea.WithFilter(dropzone.FilterMouseMotion))
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	board, ok := model.(*Model)
	if !ok {
		return msg
	}
	if board.Manager.ActiveDrag() != nil {
		return msg
	}
	return nil
}

// Config re-exports config helpers so embedding applications do not need to
// import internal packages.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func() (*config.UserConfig, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}
