package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/dropzone/internal/app"
)

// HandleKeyPress handles keyboard input. Open overlays get the key first;
// anything else resolves through the keybind registry.
func HandleKeyPress(msg tea.KeyPressMsg, b *app.Board) (tea.Model, tea.Cmd) {
	key := msg.String()

	if b.ShowHelp {
		switch key {
		case "?", "esc", "q":
			b.ShowHelp = false
		}
		return b, nil
	}

	if b.ShowLogs {
		switch key {
		case "L", "esc", "q":
			b.ShowLogs = false
		case "up", "k":
			b.LogScrollOffset = max(b.LogScrollOffset-1, 0)
		case "down", "j":
			b.LogScrollOffset++ // Clamped during render
		case "g", "home":
			b.LogScrollOffset = 0
		case "G", "end":
			b.LogScrollOffset = len(b.LogMessages) // Clamped during render
		}
		return b, nil
	}

	action := b.KeybindRegistry.Lookup(key)
	if action == "" {
		return b, nil
	}
	return executeAction(action, b)
}
