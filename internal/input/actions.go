package input

import (
	"math/rand"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/dropzone/internal/app"
	"github.com/Gaurav-Gosain/dropzone/internal/config"
	"github.com/Gaurav-Gosain/dropzone/internal/theme"
)

// cardKindPool mirrors the kinds the board deals from so added cards always
// have at least one matching slot.
var cardKindPool = []string{"alpha", "beta", "gamma"}

// executeAction runs a board action resolved from the keybind registry.
func executeAction(action string, b *app.Board) (tea.Model, tea.Cmd) {
	switch action {
	case "quit":
		b.Shutdown()
		return b, tea.Quit

	case "toggle_help":
		b.ShowHelp = !b.ShowHelp

	case "toggle_logs":
		b.ShowLogs = !b.ShowLogs

	case "cycle_mode":
		b.CycleMode()

	case "cycle_theme":
		if id := theme.CycleTint(); id != "" {
			b.ShowNotification("theme: "+id, "info", config.NotificationDuration)
			invalidateAll(b)
		}

	case "toggle_ascii":
		config.UseASCIIOnly = !config.UseASCIIOnly
		invalidateAll(b)

	case "reset_board":
		b.ResetBoard()

	case "shuffle":
		b.Shuffle()

	case "add_card":
		kind := cardKindPool[rand.Intn(len(cardKindPool))]
		if err := b.AddCard(kind); err != nil {
			b.LogError("add card: %v", err)
		} else {
			b.ShowNotification("added a "+kind+" card", "info", config.NotificationDuration)
		}

	case "cancel_drag":
		b.Manager.StopDrag()
	}

	return b, nil
}

// invalidateAll forces every card and slot to re-render, for actions that
// change global appearance.
func invalidateAll(b *app.Board) {
	for _, c := range b.Cards {
		c.Node.InvalidateCache()
	}
	for _, s := range b.Slots {
		s.Node.InvalidateCache()
	}
}
