// Package app implements the dropzone board: the bubbletea model that owns
// the cards, the slots, and the drag-and-drop engine wiring between them.
package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Gaurav-Gosain/dropzone/internal/config"
	"github.com/Gaurav-Gosain/dropzone/internal/dragdrop"
	"github.com/Gaurav-Gosain/dropzone/internal/geom"
	"github.com/Gaurav-Gosain/dropzone/internal/node"
)

// Card kinds used by the demo board. Each card belongs to one kind; a slot
// accepts the kinds it lists as groups.
var cardKinds = []string{"alpha", "beta", "gamma"}

// Card is a draggable element on the board.
type Card struct {
	Node  *node.Node
	Drag  *dragdrop.Drag
	Kind  string
	HomeX int
	HomeY int
	// Slot holds the slot this card currently sits in, nil when homed.
	Slot   *Slot
	FaceUp bool
	// Gridded cards snap to a fixed cell grid while dragged.
	Gridded bool
	tween   *moveTween
}

// Slot is a drop target on the board.
type Slot struct {
	Node     *node.Node
	Drop     *dragdrop.Drop
	Label    string
	Wildcard bool
	// Card holds the card currently occupying the slot.
	Card *Card
}

// Occupied reports whether a card sits in the slot.
func (s *Slot) Occupied() bool { return s.Card != nil }

// Notification represents a temporary notification message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// Board is the top-level bubbletea model.
type Board struct {
	Width  int
	Height int

	Manager    *dragdrop.Manager
	Cards      []*Card
	Slots      []*Slot
	constraint *dragdrop.Constrain
	gridSnap   *dragdrop.Constrain

	Mode dragdrop.Mode

	ShowHelp        bool
	ShowLogs        bool
	InteractionMode bool // True while a drag session runs
	LogMessages     []LogMessage
	LogScrollOffset int
	Notifications   []Notification

	// Keybind registry for user-configurable keybindings
	KeybindRegistry *config.KeybindRegistry
	UserConfig      *config.UserConfig

	CPUHistory    []float64
	LastCPUUpdate time.Time
	RAMUsage      float64
	LastRAMUpdate time.Time

	nextZ             int
	idleFrames        int
	lastTick          time.Time
	cachedViewContent string
	renderSkipped     bool

	clickPixelThresh int
	clickTimeThresh  time.Duration
	snapBack         bool
}

// NewBoard builds a board from the user configuration. The board starts
// empty; the first WindowSizeMsg lays out the slots and deals the cards.
func NewBoard(cfg *config.UserConfig) *Board {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	b := &Board{
		Manager:         dragdrop.NewManager(),
		Mode:            parseMode(cfg.DragDrop.HitMode),
		KeybindRegistry: config.NewKeybindRegistry(cfg.Keybindings.Board),
		UserConfig:      cfg,
		nextZ:           config.ZIndexCards,

		clickPixelThresh: cfg.DragDrop.ClickPixelThresh,
		clickTimeThresh:  time.Duration(cfg.DragDrop.ClickTimeThreshMS) * time.Millisecond,
		snapBack:         boolOr(cfg.DragDrop.SnapBack, true),
	}
	if boolOr(cfg.DragDrop.ConstrainToBoard, true) {
		b.constraint = dragdrop.NewConstrain(dragdrop.ConstrainConfig{Viewport: true})
	}
	b.gridSnap = dragdrop.NewConstrain(dragdrop.ConstrainConfig{
		Viewport: boolOr(cfg.DragDrop.ConstrainToBoard, true),
		TickX:    config.GridTickX,
		TickY:    config.GridTickY,
	})
	return b
}

func parseMode(s string) dragdrop.Mode {
	switch s {
	case "point":
		return dragdrop.ModePoint
	case "strict":
		return dragdrop.ModeStrict
	default:
		return dragdrop.ModeIntersect
	}
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func createID() string {
	return uuid.New().String()
}

// Log adds a new log message to the log buffer.
func (b *Board) Log(level, format string, args ...any) {
	b.LogMessages = append(b.LogMessages, LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
	if len(b.LogMessages) > config.MaxLogMessages {
		b.LogMessages = b.LogMessages[len(b.LogMessages)-config.MaxLogMessages:]
	}
	// Sticky scroll: keep the log view pinned to the newest entry.
	if b.ShowLogs {
		b.LogScrollOffset = maxLogScroll(len(b.LogMessages), b.Height)
	}
}

// LogInfo logs an informational message.
func (b *Board) LogInfo(format string, args ...any) {
	b.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (b *Board) LogWarn(format string, args ...any) {
	b.Log("WARN", format, args...)
}

// LogError logs an error message.
func (b *Board) LogError(format string, args ...any) {
	b.Log("ERROR", format, args...)
}

// ShowNotification displays a temporary notification.
func (b *Board) ShowNotification(message, notifType string, duration time.Duration) {
	b.Notifications = append(b.Notifications, Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})

	// Also log the notification
	switch notifType {
	case "error":
		b.LogError("%s", message)
	case "warning":
		b.LogWarn("%s", message)
	default:
		b.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired notifications.
func (b *Board) CleanupNotifications() {
	now := time.Now()
	var active []Notification
	for _, notif := range b.Notifications {
		if now.Sub(notif.StartTime) < notif.Duration {
			active = append(active, notif)
		}
	}
	b.Notifications = active
}

// GetTopMargin returns the first board row below a top dockbar.
func (b *Board) GetTopMargin() int {
	if config.DockbarPosition == "top" {
		return config.DockHeight
	}
	return 0
}

// GetUsableHeight returns the board height excluding the dock area.
func (b *Board) GetUsableHeight() int {
	if config.DockbarPosition == "hidden" {
		return b.Height
	}
	return b.Height - config.DockHeight
}

// boardRegion returns the area cards may occupy, in screen coordinates.
func (b *Board) boardRegion() geom.Region {
	top := b.GetTopMargin()
	return geom.Region{
		Top:    top,
		Left:   0,
		Right:  b.Width,
		Bottom: top + b.GetUsableHeight(),
	}
}

// Resize lays the board out for a new terminal size: the manager viewport
// follows the usable area, slots are re-spread along the bottom of it, and
// homed cards are re-dealt across the top.
func (b *Board) Resize(width, height int) {
	b.Width = width
	b.Height = height
	b.Manager.SetViewport(b.boardRegion())

	if len(b.Slots) == 0 && width > 0 && height > 0 {
		b.dealInitial()
	}
	b.layoutSlots()
	b.layoutHomes()
}

// dealInitial creates the starting slots and cards.
func (b *Board) dealInitial() {
	for _, kind := range cardKinds {
		b.addSlot(fmt.Sprintf("%s slot", kind), []string{kind}, false)
	}
	b.addSlot("any slot", cardKinds, true)

	for i := range 4 {
		kind := cardKinds[i%len(cardKinds)]
		if err := b.AddCard(kind); err != nil {
			b.LogError("deal: %v", err)
		}
	}

	// The last card of the deal demos grid snapping: its drags quantize to
	// a fixed cell grid instead of moving freely.
	if n := len(b.Cards); n > 0 {
		last := b.Cards[n-1]
		last.Gridded = true
		last.Drag.AttachConstraint(b.gridSnap)
	}
}

// addSlot creates a slot node and its drop, wiring the hover and hit hooks.
func (b *Board) addSlot(label string, groups []string, wildcard bool) {
	n := node.New(label, 0, 0, config.DefaultSlotWidth, config.DefaultSlotHeight)
	n.Z = config.ZIndexBase

	s := &Slot{Node: n, Label: label, Wildcard: wildcard}
	drop, err := dragdrop.NewDrop(b.Manager, dragdrop.DropConfig{
		Node:    n,
		Groups:  groups,
		Padding: "1",
	})
	if err != nil {
		b.LogError("slot %s: %v", label, err)
		return
	}
	s.Drop = drop

	drop.OnEnter.After(func(e dragdrop.Event) {
		n.InvalidateCache()
		b.LogInfo("enter %s", label)
	})
	drop.OnExit.After(func(e dragdrop.Event) {
		n.InvalidateCache()
		b.LogInfo("exit %s", label)
	})
	drop.OnHit.After(func(e dragdrop.Event) {
		b.placeCard(b.CardForDrag(e.Drag), s)
	})

	b.Slots = append(b.Slots, s)
}

// AddCard creates a card of the given kind at the next free home position.
func (b *Board) AddCard(kind string) error {
	n := node.New(kind, 0, 0, config.DefaultCardWidth, config.DefaultCardHeight)
	b.nextZ++
	n.Z = b.nextZ

	c := &Card{Node: n, Kind: kind}

	drag, err := dragdrop.NewDrag(b.Manager, dragdrop.DragConfig{
		Node:             n,
		Groups:           []string{kind},
		Mode:             b.Mode,
		ClickPixelThresh: b.clickPixelThresh,
		ClickTimeThresh:  b.clickTimeThresh,
	})
	if err != nil {
		return fmt.Errorf("card %s: %w", kind, err)
	}
	c.Drag = drag
	if b.constraint != nil {
		drag.AttachConstraint(b.constraint)
	}

	drag.OnStart.After(func(e dragdrop.Event) {
		b.InteractionMode = true
		b.liftCard(c)
	})
	drag.OnDrag.After(func(e dragdrop.Event) {
		n.PositionDirty = true
	})
	drag.OnEnd.After(func(e dragdrop.Event) {
		b.InteractionMode = false
		// Hover and eligibility highlights die with the session.
		for _, s := range b.Slots {
			s.Node.InvalidateCache()
		}
	})
	drag.OnDropMiss.After(func(e dragdrop.Event) {
		b.returnHome(c)
	})

	b.Cards = append(b.Cards, c)
	b.layoutHomes()
	return nil
}

// CardForDrag maps an engine drag back to its board card.
func (b *Board) CardForDrag(d *dragdrop.Drag) *Card {
	for _, c := range b.Cards {
		if c.Drag == d {
			return c
		}
	}
	return nil
}

// liftCard pulls a card out of its slot (if any) and raises it above every
// other card for the duration of the drag.
func (b *Board) liftCard(c *Card) {
	if c.Slot != nil {
		c.Slot.Card = nil
		c.Slot.Node.InvalidateCache()
		c.Slot = nil
	}
	c.Node.Z = config.ZIndexDragging
	c.Node.PositionDirty = true
	b.LogInfo("drag %s from (%d, %d)", c.Kind, c.Node.X, c.Node.Y)
}

// placeCard settles a card into a slot, centering it in the slot box.
func (b *Board) placeCard(c *Card, s *Slot) {
	if c == nil {
		return
	}
	if s.Card != nil && s.Card != c {
		// Occupied: bounce the incoming card back instead of stacking.
		b.ShowNotification(fmt.Sprintf("%s is taken", s.Label), "warning", config.NotificationDuration)
		b.returnHome(c)
		return
	}

	x := s.Node.X + (s.Node.Width-c.Node.Width)/2
	y := s.Node.Y + (s.Node.Height-c.Node.Height)/2
	b.settleCard(c, x, y)
	s.Card = c
	c.Slot = s
	s.Node.InvalidateCache()
	b.ShowNotification(fmt.Sprintf("%s dropped on %s", c.Kind, s.Label), "success", config.NotificationDuration)
}

// returnHome sends a card back to its home position, animated when enabled.
func (b *Board) returnHome(c *Card) {
	b.LogInfo("miss: %s returns home", c.Kind)
	b.settleCard(c, c.HomeX, c.HomeY)
}

// settleCard moves a card to a resting position and drops it out of the
// dragging z-band.
func (b *Board) settleCard(c *Card, x, y int) {
	b.nextZ++
	c.Node.Z = b.nextZ

	d := config.GetFastAnimationDuration()
	if b.snapBack && d > 0 && (c.Node.X != x || c.Node.Y != y) {
		c.tween = newMoveTween(c.Node, x, y, d)
		return
	}
	c.Node.MoveTo(x, y)
}

// raiseCard brings a card to the top of the card stack on click.
func (b *Board) raiseCard(c *Card) {
	b.nextZ++
	c.Node.Z = b.nextZ
	c.Node.PositionDirty = true
}

// FlipCard toggles a card face over and raises it. Called by the input layer
// for a press that released under the click threshold.
func (b *Board) FlipCard(c *Card) {
	c.FaceUp = !c.FaceUp
	c.Node.InvalidateCache()
	b.raiseCard(c)
	b.LogInfo("flip %s (face up: %v)", c.Kind, c.FaceUp)
}

// TopCardAt returns the topmost visible card containing the cell, or nil.
func (b *Board) TopCardAt(x, y int) *Card {
	var best *Card
	for _, c := range b.Cards {
		if c.Node.Hidden || !c.Node.Contains(x, y) {
			continue
		}
		if best == nil || c.Node.Z > best.Node.Z {
			best = c
		}
	}
	return best
}

// CycleMode switches every drag to the next hit-test mode.
func (b *Board) CycleMode() dragdrop.Mode {
	b.Mode = (b.Mode + 1) % 3
	for _, c := range b.Cards {
		c.Drag.SetMode(b.Mode)
	}
	b.ShowNotification(fmt.Sprintf("hit-test mode: %s", b.Mode), "info", config.NotificationDuration)
	return b.Mode
}

// ResetBoard returns every card to its home position and empties the slots.
func (b *Board) ResetBoard() {
	b.Manager.StopDrag()
	for _, s := range b.Slots {
		s.Card = nil
		s.Node.InvalidateCache()
	}
	for _, c := range b.Cards {
		c.Slot = nil
		c.tween = nil
		c.FaceUp = false
		c.Node.MoveTo(c.HomeX, c.HomeY)
		c.Node.InvalidateCache()
	}
	b.ShowNotification("board reset", "info", config.NotificationDuration)
}

// Shuffle scatters the homed cards to random positions inside the board.
func (b *Board) Shuffle() {
	r := b.boardRegion()
	for _, c := range b.Cards {
		if c.Slot != nil {
			continue
		}
		maxX := max(r.Right-c.Node.Width, r.Left)
		maxY := max(r.Bottom-c.Node.Height, r.Top)
		x := r.Left + rand.Intn(max(maxX-r.Left, 1))
		y := r.Top + rand.Intn(max(maxY-r.Top, 1))
		b.settleCard(c, x, y)
	}
	b.LogInfo("shuffled %d cards", len(b.Cards))
}

// layoutSlots spreads the slots along the bottom of the usable area.
func (b *Board) layoutSlots() {
	if len(b.Slots) == 0 || b.Width == 0 {
		return
	}
	top := b.GetTopMargin()
	y := top + b.GetUsableHeight() - config.DefaultSlotHeight - config.BoardMargin
	y = max(y, top)

	step := config.DefaultSlotWidth + config.SlotGap
	x := config.BoardMargin
	for _, s := range b.Slots {
		if x+config.DefaultSlotWidth > b.Width-config.BoardMargin && x > config.BoardMargin {
			// Out of room: stack the remaining slots on the same spot
			// rather than pushing them off-screen.
			x = config.BoardMargin
			y = max(y-config.DefaultSlotHeight-1, top)
		}
		s.Node.MoveTo(x, y)
		if occupant := s.Card; occupant != nil {
			cx := s.Node.X + (s.Node.Width-occupant.Node.Width)/2
			cy := s.Node.Y + (s.Node.Height-occupant.Node.Height)/2
			occupant.Node.MoveTo(cx, cy)
		}
		x += step
	}
}

// layoutHomes assigns home positions across the top of the board and moves
// homed cards to them.
func (b *Board) layoutHomes() {
	if b.Width == 0 {
		return
	}
	top := b.GetTopMargin()
	x := config.BoardMargin
	y := top + 1
	step := config.DefaultCardWidth + 2
	for _, c := range b.Cards {
		if x+config.DefaultCardWidth > b.Width-config.BoardMargin && x > config.BoardMargin {
			x = config.BoardMargin
			y += config.DefaultCardHeight + 1
		}
		c.HomeX, c.HomeY = x, y
		if c.Slot == nil && c.tween == nil {
			c.Node.MoveTo(x, y)
		}
		x += step
	}
}

// UpdateTweens advances the snap-back animations. Reports whether any tween
// is still running.
func (b *Board) UpdateTweens(dt time.Duration) bool {
	active := false
	for _, c := range b.Cards {
		if c.tween == nil {
			continue
		}
		if c.tween.Advance(dt) {
			c.tween = nil
			continue
		}
		active = true
	}
	return active
}

// Shutdown detaches the drag-and-drop engine.
func (b *Board) Shutdown() {
	b.Manager.Shutdown()
}
