// Package server implements the SSH server that serves the dropzone board
// to remote clients.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	bm "charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/ssh"

	"github.com/Gaurav-Gosain/dropzone/internal/app"
	"github.com/Gaurav-Gosain/dropzone/internal/config"
)

// shutdownTimeout bounds how long open sessions may linger once the server
// is asked to stop.
const shutdownTimeout = 30 * time.Second

// SSHServerConfig holds the SSH server settings.
type SSHServerConfig struct {
	Host    string
	Port    string
	KeyPath string // Auto-generated under the XDG data dir when empty
	Version string
}

// StartSSHServer runs the SSH server until the context is canceled.
// Every connection gets its own board.
func StartSSHServer(ctx context.Context, cfg *SSHServerConfig) error {
	keyPath := cfg.KeyPath
	if keyPath == "" {
		dataDir := filepath.Join(xdg.DataHome, "dropzone")
		keyPath = filepath.Join(dataDir, "ssh_host_key")
	}

	s, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(keyPath),
		wish.WithMiddleware(
			bm.Middleware(teaHandler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- s.ListenAndServe()
	}()

	log.Info("SSH server listening", "host", cfg.Host, "port", cfg.Port, "version", cfg.Version)

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("SSH server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server shutdown error: %w", err)
		}
	}
	return nil
}

// teaHandler builds a fresh board for an incoming SSH session.
func teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := s.Pty()

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config for SSH session, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	b := app.NewBoard(userConfig)
	b.Resize(pty.Window.Width, pty.Window.Height)

	return b, []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}
