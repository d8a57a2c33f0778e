package app

import (
	"image/color"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/dropzone/internal/config"
	"github.com/Gaurav-Gosain/dropzone/internal/dragdrop"
	"github.com/Gaurav-Gosain/dropzone/internal/pool"
	"github.com/Gaurav-Gosain/dropzone/internal/theme"
)

// GetCanvas composes the board into a canvas: slots at the bottom of the
// z-order, cards above them, then overlays and the dock when render is set.
func (b *Board) GetCanvas(render bool) *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas()

	layersPtr := pool.GetLayerSlice()
	layers := (*layersPtr)[:0]
	defer pool.PutLayerSlice(layersPtr)

	for _, s := range b.Slots {
		layers = append(layers, b.slotLayer(s))
	}

	active := b.Manager.ActiveDrag()
	for _, c := range b.Cards {
		if c.Node.Hidden {
			continue
		}
		layers = append(layers, b.cardLayer(c, active))
	}

	if render {
		layers = append(layers, b.renderOverlays()...)
		if config.DockbarPosition != "hidden" {
			layers = append(layers, b.renderDock())
		}
	}

	for _, layer := range layers {
		canvas.AddLayers(layer)
	}
	return canvas
}

// slotLayer renders one slot. While a drag runs the border tracks the hover
// state every frame; outside a session the cached layer is reused until the
// slot is invalidated.
func (b *Board) slotLayer(s *Slot) *lipgloss.Layer {
	n := s.Node

	if !b.InteractionMode && s.Drop != nil && !s.Drop.Over() &&
		n.CachedLayer != nil && !n.ContentDirty && !n.PositionDirty {
		return n.CachedLayer
	}

	borderCol := theme.SlotBorder()
	fill := ""
	switch {
	case s.Drop != nil && s.Drop.Over():
		borderCol = theme.SlotBorderActive()
		fill = " "
	case b.InteractionMode && b.slotEligible(s):
		borderCol = theme.SlotBorderEligible()
	case s.Occupied():
		borderCol = theme.SlotBorderOccupied()
	}

	content := renderSlotContent(s, fill)
	box := renderTitledBox(content, s.Label, n.Width, n.Height, borderCol)

	n.CachedLayer = lipgloss.NewLayer(box).X(n.X).Y(n.Y).Z(n.Z).ID(n.ID)
	n.ClearDirtyFlags()
	return n.CachedLayer
}

// slotEligible reports whether the slot should light up as a candidate for
// the running drag session.
func (b *Board) slotEligible(s *Slot) bool {
	if s.Drop == nil || s.Occupied() {
		return false
	}
	if !boolOr(b.UserConfig.DragDrop.ShowEligibleSlots, true) {
		return false
	}
	return b.Manager.Eligible(s.Drop)
}

// cardLayer renders one card, reusing the cached layer when nothing about
// the card changed since the last frame.
func (b *Board) cardLayer(c *Card, active *dragdrop.Drag) *lipgloss.Layer {
	n := c.Node
	dragging := active == c.Drag && c.Drag.State() == dragdrop.StateDragging

	if !dragging && n.CachedLayer != nil &&
		!n.ContentDirty && !n.PositionDirty {
		return n.CachedLayer
	}

	var borderCol color.Color
	switch {
	case dragging:
		borderCol = theme.CardBorderDragging()
	case c.Drag.Locked():
		borderCol = theme.CardBorderLocked()
	default:
		borderCol = theme.CardBorder()
	}

	content := renderCardContent(c)
	box := renderTitledBox(content, c.Kind, n.Width, n.Height, borderCol)

	n.CachedLayer = lipgloss.NewLayer(box).X(n.X).Y(n.Y).Z(n.Z).ID(n.ID)
	n.ClearDirtyFlags()
	return n.CachedLayer
}

// View renders the complete board view.
func (b *Board) View() tea.View {
	var view tea.View

	// Fast path: return cached content when frame-skip determined nothing
	// changed. This avoids the canvas render pipeline on idle ticks.
	if b.renderSkipped && b.cachedViewContent != "" {
		view.SetContent(b.cachedViewContent)
	} else {
		content := lipgloss.Sprint(b.GetCanvas(true).Render())
		b.cachedViewContent = content
		view.SetContent(content)
	}

	view.AltScreen = true

	// AllMotion so the engine sees motion between press and release; plain
	// cell motion would stall promotion until the next click event.
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true

	return view
}
