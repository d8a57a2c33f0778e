// Package input implements dropzone input handling: keyboard actions and the
// mouse events that drive the drag-and-drop engine.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/dropzone/internal/app"
)

// HandleInput is the main input coordinator that routes messages to
// appropriate handlers. It is registered with app.SetInputHandler at startup.
func HandleInput(msg tea.Msg, b *app.Board) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, b)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, b)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, b)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, b)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, b)
	}
	return b, nil
}
