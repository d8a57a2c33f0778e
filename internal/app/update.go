package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/dropzone/internal/config"
)

// TickerMsg represents a periodic tick event for updating the UI.
// This is exported so it can be used by the input package.
type TickerMsg time.Time

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without
// creating a circular dependency.
type InputHandler func(msg tea.Msg, b *Board) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
// This will be set by the main package to break the circular dependency.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts the tick timer that drives animations and the dock.
func (b *Board) Init() tea.Cmd {
	return TickCmd()
}

// TickCmd creates a command that generates tick messages at 60 FPS.
// This drives the main update loop for animations and stats refresh.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// SlowTickCmd creates a command that generates tick messages at 30 FPS.
// Used during drag sessions to improve mouse responsiveness.
func SlowTickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.InteractionFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// IdleTickCmd creates a command that generates tick messages at 10 FPS.
// Used when the board has been idle for a sustained period to reduce CPU.
func IdleTickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.IdleFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// Update handles all incoming messages and updates the board state.
func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Any non-tick message invalidates the render cache
	if _, isTick := msg.(TickerMsg); !isTick {
		b.renderSkipped = false
	}

	switch msg := msg.(type) {
	case TickerMsg:
		now := time.Time(msg)
		dt := time.Second / config.NormalFPS
		if !b.lastTick.IsZero() {
			dt = now.Sub(b.lastTick)
		}
		b.lastTick = now

		// A press held in place past the hold threshold still promotes.
		b.Manager.HandleTick()

		hasAnimations := b.UpdateTweens(dt)
		b.CleanupNotifications()

		// Update system info (only needed when dockbar is visible)
		if config.DockbarPosition != "hidden" {
			b.UpdateCPUHistory()
			b.UpdateRAMUsage()
		}

		// Adaptive polling - faster during drags, slower once nothing moves
		nextTick := TickCmd()
		if b.InteractionMode {
			nextTick = SlowTickCmd()
			b.idleFrames = 0
		} else if hasAnimations || len(b.Notifications) > 0 {
			b.idleFrames = 0
		} else {
			b.idleFrames++
			if b.idleFrames >= config.IdleThresholdFrames {
				nextTick = IdleTickCmd()
			}
		}

		// Frame skipping: reuse the cached view when nothing changed
		if !hasAnimations && !b.InteractionMode && len(b.Notifications) == 0 &&
			b.cachedViewContent != "" {
			b.renderSkipped = true
			return b, nextTick
		}
		b.renderSkipped = false
		return b, nextTick

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg:
		// Reset idle counter on any user input to restore full tick rate
		b.idleFrames = 0
		// Delegate to the registered input handler
		if inputHandler != nil {
			return inputHandler(msg, b)
		}
		return b, nil

	case tea.WindowSizeMsg:
		b.Resize(msg.Width, msg.Height)
		return b, nil

	case tea.MouseMsg:
		// Catch-all for any other mouse events to prevent them from leaking
		return b, nil

	case tea.FocusMsg, tea.BlurMsg:
		return b, nil
	}

	return b, nil
}
