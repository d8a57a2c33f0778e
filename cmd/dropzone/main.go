// Package main implements dropzone - a drag-and-drop card board for the
// terminal. Cards are grabbed with the mouse and dropped onto slots, with
// point, intersect, and strict hit-testing modes.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/dropzone/internal/config"
	"github.com/Gaurav-Gosain/dropzone/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags
var (
	asciiOnly       bool
	themeName       string
	listThemes      bool
	previewTheme    string
	borderStyle     string
	dockbarPosition string
	hideClock       bool
	noAnimations    bool
	hitMode         string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dropzone",
		Short: "Drag-and-drop card board for the terminal",
		Long: `dropzone - a drag-and-drop playground for the terminal

Grab cards with the mouse and drop them onto matching slots. Three
hit-testing modes decide which slot wins a drop: point (pointer cell),
intersect (largest overlap), and strict (full containment).`,
		Example: `  # Run dropzone
  dropzone

  # Run with ASCII-only mode (no Nerd Font icons)
  dropzone --ascii-only

  # Start in point hit-testing mode
  dropzone --mode point

  # Run with a specific theme
  dropzone --theme dracula

  # List all available themes
  dropzone --list-themes

  # Run as SSH server
  dropzone ssh --port 2222

  # Edit configuration
  dropzone config edit`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if previewTheme != "" {
				return previewThemeColors(previewTheme)
			}

			if listThemes {
				if err := theme.Initialize("default"); err != nil {
					return fmt.Errorf("failed to initialize themes: %w", err)
				}
				for _, t := range tint.TintIDs() {
					fmt.Println(t)
				}
				return nil
			}
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of Nerd Font icons")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors without theming")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().StringVar(&previewTheme, "preview-theme", "", "Preview a theme's 16 ANSI colors")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Card and slot border style: rounded, normal, thick, double, hidden, block, ascii, outer-half-block, inner-half-block (default: from config or rounded)")
	rootCmd.PersistentFlags().StringVar(&dockbarPosition, "dockbar-position", "", "Dockbar position: bottom, top, hidden (default: from config or bottom)")
	rootCmd.PersistentFlags().BoolVar(&hideClock, "hide-clock", false, "Hide the clock overlay")
	rootCmd.PersistentFlags().BoolVar(&noAnimations, "no-animations", false, "Disable snap-back animations for instant transitions")
	rootCmd.PersistentFlags().StringVar(&hitMode, "mode", "", "Hit-testing mode: point, intersect, strict (default: from config or intersect)")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run dropzone as SSH server",
		Long: `Run dropzone as an SSH server

Allows remote connections to the board via SSH. The server will generate
a host key automatically if not specified. Every connection gets its own
board.`,
		Example: `  # Start SSH server on default port
  dropzone ssh

  # Start on custom port
  dropzone ssh --port 2345

  # Specify custom host key
  dropzone ssh --key-path /path/to/host_key`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", config.DefaultSSHPort, "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", config.DefaultSSHHost, "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dropzone configuration",
		Long:  `Manage dropzone configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the dropzone configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, and nano in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	rootCmd.AddCommand(sshCmd, configCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s", version, commit, date)),
	); err != nil {
		os.Exit(1)
	}
}
