package input

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/dropzone/internal/app"
	"github.com/Gaurav-Gosain/dropzone/internal/config"
	"github.com/Gaurav-Gosain/dropzone/internal/dragdrop"
)

// newTestBoard builds a board sized like a typical terminal. The first
// resize deals four cards across the top and lays four slots along the
// bottom of the usable area.
func newTestBoard(t *testing.T) *app.Board {
	t.Helper()
	b := app.NewBoard(config.DefaultConfig())
	b.Resize(100, 40)
	if len(b.Cards) == 0 || len(b.Slots) == 0 {
		t.Fatalf("expected dealt board, got %d cards / %d slots", len(b.Cards), len(b.Slots))
	}
	return b
}

func click(b *app.Board, x, y int) {
	HandleInput(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}, b)
}

func move(b *app.Board, x, y int) {
	HandleInput(tea.MouseMotionMsg{X: x, Y: y}, b)
}

func release(b *app.Board, x, y int) {
	HandleInput(tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}, b)
}

func TestClickOnCardStartsPendingSession(t *testing.T) {
	b := newTestBoard(t)
	card := b.Cards[0]

	click(b, card.Node.X+1, card.Node.Y+1)

	d := b.Manager.ActiveDrag()
	if d == nil {
		t.Fatal("expected a session after pressing a card")
	}
	if d.State() != dragdrop.StatePending {
		t.Errorf("State() = %v, want StatePending", d.State())
	}
	release(b, card.Node.X+1, card.Node.Y+1)
}

func TestClickOnEmptyAreaDoesNothing(t *testing.T) {
	b := newTestBoard(t)

	click(b, 99, 15)

	if d := b.Manager.ActiveDrag(); d != nil {
		t.Errorf("expected no session, got drag %v", d.ID)
	}
}

func TestClickFlipsCardOnRelease(t *testing.T) {
	b := newTestBoard(t)
	card := b.Cards[0]

	click(b, card.Node.X+1, card.Node.Y+1)
	release(b, card.Node.X+1, card.Node.Y+1)

	if !card.FaceUp {
		t.Error("sub-threshold press should flip the card face up")
	}
	if b.Manager.ActiveDrag() != nil {
		t.Error("session should be over after release")
	}

	click(b, card.Node.X+1, card.Node.Y+1)
	release(b, card.Node.X+1, card.Node.Y+1)
	if card.FaceUp {
		t.Error("second click should flip the card back")
	}
}

func TestDragIntoMatchingSlot(t *testing.T) {
	b := newTestBoard(t)
	card := b.Cards[0]
	slot := b.Slots[0]
	if !slot.Drop.InGroup(card.Kind) {
		t.Fatalf("slot %q does not accept %q", slot.Label, card.Kind)
	}

	grabX, grabY := card.Node.X+1, card.Node.Y+1
	click(b, grabX, grabY)
	move(b, grabX+config.ClickPixelThreshold+2, grabY)

	d := b.Manager.ActiveDrag()
	if d == nil || d.State() != dragdrop.StateDragging {
		t.Fatal("expected a promoted drag session")
	}

	// Land the card on the slot: pointer offset within the card is (1, 1).
	dropX, dropY := slot.Node.X+1, slot.Node.Y+1
	move(b, dropX, dropY)
	release(b, dropX, dropY)

	if card.Slot != slot {
		t.Fatalf("card not placed: card.Slot = %v", card.Slot)
	}
	if slot.Card != card {
		t.Error("slot does not hold the dropped card")
	}
	wantX := slot.Node.X + (slot.Node.Width-card.Node.Width)/2
	wantY := slot.Node.Y + (slot.Node.Height-card.Node.Height)/2
	if card.Node.X != wantX || card.Node.Y != wantY {
		t.Errorf("placed at (%d, %d), want centered (%d, %d)",
			card.Node.X, card.Node.Y, wantX, wantY)
	}
}

func TestMissedDropReturnsHome(t *testing.T) {
	// Without animations the snap-back is instant, so the final position is
	// observable right after release.
	config.AnimationsEnabled = false
	defer func() { config.AnimationsEnabled = true }()

	b := newTestBoard(t)
	card := b.Cards[0]

	grabX, grabY := card.Node.X+1, card.Node.Y+1
	click(b, grabX, grabY)
	move(b, grabX+10, grabY+8)
	release(b, grabX+10, grabY+8)

	if card.Slot != nil {
		t.Fatal("card should not have found a slot mid-board")
	}
	if card.Node.X != card.HomeX || card.Node.Y != card.HomeY {
		t.Errorf("card at (%d, %d), want home (%d, %d)",
			card.Node.X, card.Node.Y, card.HomeX, card.HomeY)
	}
}

func TestDockClickCyclesMode(t *testing.T) {
	b := newTestBoard(t)
	before := b.Mode

	click(b, 5, b.Height-1)

	if b.Mode == before {
		t.Errorf("dock click should cycle mode, still %v", b.Mode)
	}
}

func TestOverlaySwallowsClick(t *testing.T) {
	b := newTestBoard(t)
	card := b.Cards[0]
	b.ShowHelp = true

	click(b, card.Node.X+1, card.Node.Y+1)

	if b.ShowHelp {
		t.Error("click should close the help overlay")
	}
	if b.Manager.ActiveDrag() != nil {
		t.Error("click under the overlay must not start a session")
	}
}

func TestWheelScrollsLogViewer(t *testing.T) {
	b := newTestBoard(t)
	b.ShowLogs = true
	b.LogScrollOffset = 6

	HandleInput(tea.MouseWheelMsg{X: 1, Y: 1, Button: tea.MouseWheelUp}, b)
	if b.LogScrollOffset != 3 {
		t.Errorf("LogScrollOffset = %d, want 3", b.LogScrollOffset)
	}

	HandleInput(tea.MouseWheelMsg{X: 1, Y: 1, Button: tea.MouseWheelDown}, b)
	if b.LogScrollOffset != 6 {
		t.Errorf("LogScrollOffset = %d, want 6", b.LogScrollOffset)
	}
}
