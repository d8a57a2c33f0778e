package dragdrop

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Gaurav-Gosain/dropzone/internal/geom"
	"github.com/Gaurav-Gosain/dropzone/internal/node"
)

// State is a drag's position in its lifecycle.
type State int

const (
	// StateIdle means no pointer session is in progress.
	StateIdle State = iota
	// StatePending means the pointer is down but neither the pixel nor the
	// time threshold has been exceeded yet.
	StatePending
	// StateDragging means the drag promoted past the click threshold and the
	// node follows the pointer.
	StateDragging
)

// Default click-vs-drag disambiguation thresholds.
const (
	// DefaultClickPixelThresh is the movement (in cells, per axis) below
	// which a pointer session is still considered a click.
	DefaultClickPixelThresh = 3

	// DefaultClickTimeThresh is the hold duration past which a pointer
	// session promotes to a drag even without movement.
	DefaultClickTimeThresh = time.Second
)

// DragConfig configures a new Drag. Node is required; everything else has a
// usable zero value.
type DragConfig struct {
	// Node is the element the drag controls. Required.
	Node *node.Node

	// DragNode is the element that visually follows the pointer. Defaults to
	// Node; set it to a separate proxy node to drag a ghost instead.
	DragNode *node.Node

	// ClickPixelThresh overrides DefaultClickPixelThresh when positive.
	ClickPixelThresh int

	// ClickTimeThresh overrides DefaultClickTimeThresh when positive.
	ClickTimeThresh time.Duration

	// Lock creates the drag in the locked state: it ignores start and move
	// until unlocked.
	Lock bool

	// DisableMove keeps the node in place during the drag. Position tracking
	// still happens so event payloads carry the deltas.
	DisableMove bool

	// Groups are the tags matched against drop groups. Defaults to
	// {"default"}.
	Groups []string

	// Mode selects the hit-testing semantics. Defaults to ModePoint.
	Mode Mode

	// Target auto-creates a Drop on the same node, registered and destroyed
	// with the drag.
	Target bool

	// TargetPadding is the padding shorthand for the auto-created target.
	TargetPadding string

	// Handle restricts valid clicks to a node-relative region (for example a
	// title bar). Nil means the whole node is a handle.
	Handle *geom.Region

	// Invalid lists node-relative regions that never accept a drag click,
	// so interactive children are not accidentally dragged.
	Invalid []geom.Region
}

// Drag is one draggable node's state machine: it tracks the pointer offset,
// disambiguates clicks from drags, and fires the lifecycle hooks.
type Drag struct {
	ID string

	// Lifecycle hooks, invoked synchronously from the update loop.
	OnMouseDown Hook
	OnStart     Hook
	OnDrag      Hook
	OnEnd       Hook
	OnDropHit   Hook
	OnDropMiss  Hook
	OnOver      Hook
	OnEnter     Hook
	OnExit      Hook

	node     *node.Node
	dragNode *node.Node
	mode     Mode
	groups   map[string]bool
	lock     bool
	noMove   bool

	clickPixelThresh int
	clickTimeThresh  time.Duration
	handle           *geom.Region
	invalid          []geom.Region

	state       State
	startXY     [2]int // pointer position at mouse down
	deltaXY     [2]int // pointer-to-node-origin offset
	lastXY      [2]int // last moved-to node origin
	startNodeXY [2]int // node origin at mouse down
	downTime    time.Time

	con    *Constrain
	target *Drop
	mgr    *Manager
}

// NewDrag creates a drag for cfg.Node and registers it with the manager.
// Construction fails fast on a missing manager or node and does not proceed
// to registration.
func NewDrag(m *Manager, cfg DragConfig) (*Drag, error) {
	if m == nil {
		return nil, fmt.Errorf("dragdrop: drag requires a manager")
	}
	if cfg.Node == nil {
		return nil, fmt.Errorf("dragdrop: drag requires a node")
	}

	d := &Drag{
		ID:               uuid.New().String(),
		node:             cfg.Node,
		dragNode:         cfg.DragNode,
		mode:             cfg.Mode,
		lock:             cfg.Lock,
		noMove:           cfg.DisableMove,
		clickPixelThresh: cfg.ClickPixelThresh,
		clickTimeThresh:  cfg.ClickTimeThresh,
		handle:           cfg.Handle,
		invalid:          cfg.Invalid,
		groups:           make(map[string]bool),
		mgr:              m,
	}
	if d.dragNode == nil {
		d.dragNode = d.node
	}
	if d.clickPixelThresh <= 0 {
		d.clickPixelThresh = DefaultClickPixelThresh
	}
	if d.clickTimeThresh <= 0 {
		d.clickTimeThresh = DefaultClickTimeThresh
	}
	if len(cfg.Groups) == 0 {
		d.groups["default"] = true
	}
	for _, g := range cfg.Groups {
		d.groups[g] = true
	}

	m.regDrag(d)

	if cfg.Target {
		target, err := NewDrop(m, DropConfig{
			Node:    cfg.Node,
			Groups:  cfg.Groups,
			Padding: cfg.TargetPadding,
		})
		if err != nil {
			m.unregDrag(d)
			return nil, fmt.Errorf("dragdrop: drag target: %w", err)
		}
		d.target = target
	}

	return d, nil
}

// Node returns the controlled node.
func (d *Drag) Node() *node.Node { return d.node }

// DragNode returns the node that follows the pointer (the proxy if one was
// configured, the controlled node otherwise).
func (d *Drag) DragNode() *node.Node { return d.dragNode }

// Mode returns the drag's hit-testing mode.
func (d *Drag) Mode() Mode { return d.mode }

// SetMode changes the hit-testing mode. Takes effect on the next session.
func (d *Drag) SetMode(m Mode) { d.mode = m }

// State returns the drag's current lifecycle state.
func (d *Drag) State() State { return d.state }

// Target returns the auto-created drop target, or nil.
func (d *Drag) Target() *Drop { return d.target }

// Constraint returns the attached constraint component, or nil.
func (d *Drag) Constraint() *Constrain { return d.con }

// AttachConstraint composes a constraint onto the drag. Passing nil removes
// the current one.
func (d *Drag) AttachConstraint(c *Constrain) { d.con = c }

// Locked reports whether the drag is locked.
func (d *Drag) Locked() bool { return d.lock }

// SetLock locks or unlocks the drag. A locked drag silently ignores mouse
// down and move.
func (d *Drag) SetLock(locked bool) { d.lock = locked }

// Groups returns the drag's group names.
func (d *Drag) Groups() []string {
	out := make([]string, 0, len(d.groups))
	for g := range d.groups {
		out = append(out, g)
	}
	return out
}

// InGroup reports whether the drag carries the given group name.
func (d *Drag) InGroup(g string) bool { return d.groups[g] }

// AddToGroup adds a group name to the drag.
func (d *Drag) AddToGroup(g string) { d.groups[g] = true }

// RemoveFromGroup removes a group name from the drag.
func (d *Drag) RemoveFromGroup(g string) { delete(d.groups, g) }

// ValidClick reports whether a pointer down at (x, y) may begin a session:
// the point must be inside the node (or its handle region, if configured)
// and outside every invalid region.
func (d *Drag) ValidClick(x, y int) bool {
	if !d.node.Contains(x, y) && !d.dragNode.Contains(x, y) {
		return false
	}
	relX, relY := x-d.node.X, y-d.node.Y
	if d.handle != nil && !d.handle.ContainsPoint(relX, relY) {
		return false
	}
	for _, r := range d.invalid {
		if r.ContainsPoint(relX, relY) {
			return false
		}
	}
	return true
}

// MouseDown begins a pointer session if the click is valid, the drag is not
// locked, and no other session is active. Reports whether the event was
// consumed.
func (d *Drag) MouseDown(x, y int) bool {
	if d.lock || d.mgr == nil || d.mgr.active != nil {
		return false
	}
	if !d.ValidClick(x, y) {
		return false
	}

	d.state = StatePending
	d.startXY = [2]int{x, y}
	d.deltaXY = [2]int{x - d.node.X, y - d.node.Y}
	d.startNodeXY = [2]int{d.node.X, d.node.Y}
	d.lastXY = d.startNodeXY
	d.downTime = time.Now()
	d.mgr.setSession(d)

	d.OnMouseDown.notify(Event{Drag: d, X: x, Y: y})
	return true
}

// StartPosition returns the node origin recorded at mouse down. Constraint
// components use it as the anchor for axis locks and tick snapping.
func (d *Drag) StartPosition() (int, int) {
	return d.startNodeXY[0], d.startNodeXY[1]
}

// handleMove advances the state machine for a pointer move. A pending
// session promotes to dragging once the pointer moved further than the pixel
// threshold on either axis, or once the hold outlasted the time threshold.
// Promotion fires the start transition exactly once.
func (d *Drag) handleMove(x, y int) {
	if d.lock {
		return
	}
	switch d.state {
	case StatePending:
		exceeded := abs(x-d.startXY[0]) > d.clickPixelThresh ||
			abs(y-d.startXY[1]) > d.clickPixelThresh ||
			time.Since(d.downTime) >= d.clickTimeThresh
		if !exceeded {
			return
		}
		d.promote(x, y)
		if d.state == StateDragging {
			d.moveNode(x, y)
		}
	case StateDragging:
		d.moveNode(x, y)
	}
}

// promote fires the start transition. A veto from a before listener cancels
// the whole session.
func (d *Drag) promote(x, y int) {
	ok := d.OnStart.fire(Event{Drag: d, X: x, Y: y}, func() {
		d.state = StateDragging
		d.mgr.start(d)
	})
	if !ok {
		d.state = StateIdle
		d.mgr.clearSession(d)
	}
}

// moveNode repositions the drag node for a pointer at (x, y): the new origin
// is the pointer minus the offset captured at mouse down, run through the
// attached constraint. With movement disabled the node stays put but the
// position is still tracked for the event payload.
func (d *Drag) moveNode(x, y int) {
	nx, ny := x-d.deltaXY[0], y-d.deltaXY[1]
	if d.con != nil {
		nx, ny = d.con.Align(d, nx, ny)
	}

	ev := Event{
		Drag:   d,
		X:      x,
		Y:      y,
		DeltaX: nx - d.lastXY[0],
		DeltaY: ny - d.lastXY[1],
		TotalX: nx - d.startNodeXY[0],
		TotalY: ny - d.startNodeXY[1],
	}
	d.OnDrag.fire(ev, func() {
		if !d.noMove {
			d.dragNode.MoveTo(nx, ny)
		}
		d.lastXY = [2]int{nx, ny}
	})
}

// end resets the session-scoped state. It always runs on pointer up, whether
// or not the session promoted past the click threshold.
func (d *Drag) end() {
	d.state = StateIdle
	d.deltaXY = [2]int{}
	d.downTime = time.Time{}
}

// Destroy aborts any session owned by this drag, unregisters it, and
// destroys its auto-created target.
func (d *Drag) Destroy() {
	if d.mgr != nil {
		if d.mgr.active == d {
			d.mgr.StopDrag()
		}
		d.mgr.unregDrag(d)
	}
	if d.target != nil {
		d.target.Destroy()
		d.target = nil
	}
	d.mgr = nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
