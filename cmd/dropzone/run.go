package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"

	"github.com/Gaurav-Gosain/dropzone/internal/app"
	"github.com/Gaurav-Gosain/dropzone/internal/config"
	"github.com/Gaurav-Gosain/dropzone/internal/input"
	"github.com/Gaurav-Gosain/dropzone/internal/server"
	"github.com/Gaurav-Gosain/dropzone/internal/theme"
)

// filterMouseMotion drops mouse motion events while no session is pending or
// running. Motion floods the update loop at terminal frame rates; the board
// only cares about it between mouse down and mouse up.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	b, ok := model.(*app.Board)
	if !ok {
		return msg
	}
	if b.Manager.ActiveDrag() != nil {
		return msg
	}
	return nil
}

func applyFlags(userConfig *config.UserConfig) {
	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:       asciiOnly,
		BorderStyle:     borderStyle,
		DockbarPosition: dockbarPosition,
		HideClock:       hideClock,
		NoAnimations:    noAnimations,
		HitMode:         hitMode,
		ThemeName:       themeName,
	}, userConfig)
}

func runLocal() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	applyFlags(userConfig)
	app.SetInputHandler(input.HandleInput)

	board := app.NewBoard(userConfig)

	p := tea.NewProgram(
		board,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	finalModel, err := p.Run()
	if finalBoard, ok := finalModel.(*app.Board); ok {
		finalBoard.Shutdown()
	}
	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	config.ApplyOverrides(config.Overrides{
		ASCIIOnly: asciiOnly,
		ThemeName: themeName,
	}, nil)

	app.SetInputHandler(input.HandleInput)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	cfg := &server.SSHServerConfig{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
		Version: version,
	}
	if err := server.StartSSHServer(ctx, cfg); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

// previewThemeColors prints a theme's 16 ANSI colors as swatches.
func previewThemeColors(name string) error {
	if err := theme.Initialize(name); err != nil {
		return fmt.Errorf("failed to initialize themes: %w", err)
	}
	if !tint.SetTintID(name) {
		return fmt.Errorf("unknown theme %q", name)
	}
	t := tint.Current()

	fmt.Printf("%s (%s)\n\n", t.DisplayName, t.ID)
	rows := []struct {
		label string
		c     *tint.Color
	}{
		{"black", t.Black}, {"red", t.Red}, {"green", t.Green},
		{"yellow", t.Yellow}, {"blue", t.Blue}, {"purple", t.Purple},
		{"cyan", t.Cyan}, {"white", t.White},
		{"bright black", t.BrightBlack}, {"bright red", t.BrightRed},
		{"bright green", t.BrightGreen}, {"bright yellow", t.BrightYellow},
		{"bright blue", t.BrightBlue}, {"bright purple", t.BrightPurple},
		{"bright cyan", t.BrightCyan}, {"bright white", t.BrightWhite},
	}
	for _, row := range rows {
		if row.c == nil {
			continue
		}
		swatch := lipgloss.NewStyle().Background(row.c).Render("      ")
		fmt.Printf("  %s %-14s %s\n", swatch, row.label, theme.ColorToString(row.c))
	}
	return nil
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config in the user's editor, creating the
// default file first if needed.
func editConfigFile() error {
	if _, err := config.LoadUserConfig(); err != nil {
		return fmt.Errorf("failed to load or create config: %w", err)
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, candidate := range []string{"vim", "vi", "nano"} {
			if _, lookErr := exec.LookPath(candidate); lookErr == nil {
				editor = candidate
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found: set $EDITOR or $VISUAL")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// listKeybindings prints every keybinding section as a plain table.
func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		userConfig = config.DefaultConfig()
	}
	registry := config.NewKeybindRegistry(userConfig.Keybindings.Board)

	for _, section := range config.GetKeybindings(registry) {
		fmt.Println(section.Title)
		for _, binding := range section.Bindings {
			fmt.Printf("  %-20s %s\n", binding.Key, binding.Description)
		}
		fmt.Println(strings.Repeat("-", 40))
	}
	return nil
}
