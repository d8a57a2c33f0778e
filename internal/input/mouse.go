package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/dropzone/internal/app"
	"github.com/Gaurav-Gosain/dropzone/internal/config"
	"github.com/Gaurav-Gosain/dropzone/internal/dragdrop"
)

// inDockArea reports whether the cell lies in the reserved dock rows.
func inDockArea(y int, b *app.Board) bool {
	switch config.DockbarPosition {
	case "bottom":
		return y >= b.Height-config.DockHeight
	case "top":
		return y < config.DockHeight
	}
	return false
}

// handleMouseClick starts a drag session on the topmost card under the
// pointer. Overlays swallow clicks; a click on the dock cycles the hit-test
// mode.
func handleMouseClick(msg tea.MouseClickMsg, b *app.Board) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	x, y := mouse.X, mouse.Y

	if mouse.Button != tea.MouseLeft {
		return b, nil
	}

	// Overlays take the click and close
	if b.ShowHelp {
		b.ShowHelp = false
		return b, nil
	}
	if b.ShowLogs {
		b.ShowLogs = false
		return b, nil
	}

	// While the guard is up every press belongs to the running session;
	// nothing else on the board may react to it.
	if b.Manager.GuardActive() {
		return b, nil
	}

	if inDockArea(y, b) {
		b.CycleMode()
		return b, nil
	}

	card := b.TopCardAt(x, y)
	if card == nil {
		return b, nil
	}
	if !card.Drag.ValidClick(x, y) {
		return b, nil
	}
	card.Drag.MouseDown(x, y)
	return b, nil
}

// handleMouseMotion feeds pointer movement to the engine. The engine decides
// whether the motion promotes a pending press or advances a running drag.
func handleMouseMotion(msg tea.MouseMotionMsg, b *app.Board) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	b.Manager.HandleMove(mouse.X, mouse.Y)
	return b, nil
}

// handleMouseRelease finishes the session. A press that never promoted past
// the click threshold flips the card instead of dropping it.
func handleMouseRelease(msg tea.MouseReleaseMsg, b *app.Board) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()

	var clicked *app.Card
	if d := b.Manager.ActiveDrag(); d != nil && d.State() == dragdrop.StatePending {
		clicked = b.CardForDrag(d)
	}

	b.Manager.HandleUp(mouse.X, mouse.Y)

	if clicked != nil {
		b.FlipCard(clicked)
	}
	return b, nil
}

// handleMouseWheel scrolls the event log when it is open.
func handleMouseWheel(msg tea.MouseWheelMsg, b *app.Board) (tea.Model, tea.Cmd) {
	if !b.ShowLogs {
		return b, nil
	}
	mouse := msg.Mouse()
	switch mouse.Button {
	case tea.MouseWheelUp:
		b.LogScrollOffset = max(b.LogScrollOffset-3, 0)
	case tea.MouseWheelDown:
		b.LogScrollOffset += 3 // Clamped during render
	}
	return b, nil
}
