package dragdrop

import (
	"time"

	"github.com/Gaurav-Gosain/dropzone/internal/geom"
)

// Mode selects the hit-testing semantics for a drag session.
type Mode int

const (
	// ModePoint resolves targets by pointer position: a drop is hit when the
	// pointer lies inside its shim.
	ModePoint Mode = iota
	// ModeIntersect resolves targets by area overlap: among all drops the
	// drag node overlaps, the one with the largest intersection area wins.
	ModeIntersect
	// ModeStrict requires the drag node to be entirely contained within the
	// drop's region.
	ModeStrict
)

// String returns the mode's configuration name.
func (m Mode) String() string {
	switch m {
	case ModeIntersect:
		return "intersect"
	case ModeStrict:
		return "strict"
	default:
		return "point"
	}
}

// Manager coordinates all drag and drop objects and owns the single active
// drag session. The embedding application creates one manager, passes it to
// every Drag and Drop constructor, forwards pointer events to it, and shuts
// it down when done.
//
// All methods must be called from the application's update loop; the manager
// does no locking.
type Manager struct {
	drags []*Drag
	drops []*Drop

	active     *Drag
	activeDrop *Drop
	validDrops []*Drop

	viewport geom.Region
	pointerX int
	pointerY int
	guardUp  bool
	closed   bool
}

// NewManager creates an empty manager. The viewport starts unset, which
// disables off-screen target culling until SetViewport is called.
func NewManager() *Manager {
	return &Manager{}
}

// SetViewport records the visible board region. Drops whose shim falls
// entirely outside it are skipped during hit testing.
func (m *Manager) SetViewport(r geom.Region) {
	m.viewport = r
}

// Viewport returns the currently configured viewport region.
func (m *Manager) Viewport() geom.Region {
	return m.viewport
}

// ActiveDrag returns the drag owning the current pointer session, or nil.
// The session begins at mouse down; whether it has promoted past the click
// threshold is visible via the drag's State.
func (m *Manager) ActiveDrag() *Drag {
	return m.active
}

// ActiveDrop returns the best-matching drop the active drag is currently
// over, or nil.
func (m *Manager) ActiveDrop() *Drop {
	return m.activeDrop
}

// GuardActive reports whether the full-board transparent guard overlay is up.
// The guard is raised for the duration of a promoted drag so pointer events
// are captured no matter what they pass over.
func (m *Manager) GuardActive() bool {
	return m.guardUp
}

// Pointer returns the last pointer position the manager saw.
func (m *Manager) Pointer() (int, int) {
	return m.pointerX, m.pointerY
}

// Eligible reports whether the drop participates in the current drag session,
// i.e. it shares a group with the active drag. Always false outside a
// session. Ineligible drops stay registered but are excluded from hit
// testing and are rendered as invalid targets by the application.
func (m *Manager) Eligible(p *Drop) bool {
	if m.active == nil || p == nil {
		return false
	}
	for _, v := range m.validDrops {
		if v == p {
			return true
		}
	}
	return false
}

// Shutdown aborts any active drag and detaches every registered object.
// The manager must not be used afterwards.
func (m *Manager) Shutdown() {
	m.StopDrag()
	for _, d := range m.drags {
		d.mgr = nil
	}
	for _, p := range m.drops {
		p.mgr = nil
	}
	m.drags = nil
	m.drops = nil
	m.closed = true
}

// regDrag adds a drag to the registry. Re-registering is harmless.
func (m *Manager) regDrag(d *Drag) {
	if m.closed {
		return
	}
	for _, v := range m.drags {
		if v == d {
			return
		}
	}
	m.drags = append(m.drags, d)
}

// unregDrag removes a drag from the registry; a no-op if absent.
func (m *Manager) unregDrag(d *Drag) {
	for i, v := range m.drags {
		if v == d {
			m.drags = append(m.drags[:i], m.drags[i+1:]...)
			return
		}
	}
}

func (m *Manager) regDrop(p *Drop) {
	if m.closed {
		return
	}
	for _, v := range m.drops {
		if v == p {
			return
		}
	}
	m.drops = append(m.drops, p)
}

func (m *Manager) unregDrop(p *Drop) {
	for i, v := range m.drops {
		if v == p {
			m.drops = append(m.drops[:i], m.drops[i+1:]...)
			return
		}
	}
}

// setSession records the drag that owns the pointer from mouse down onward.
func (m *Manager) setSession(d *Drag) {
	m.active = d
	m.pointerX = d.startXY[0]
	m.pointerY = d.startXY[1]
}

// clearSession drops the pointer session without firing any end semantics.
// Used when a start transition is vetoed.
func (m *Manager) clearSession(d *Drag) {
	if m.active == d {
		m.finish()
	}
}

// start is invoked by the active drag once the click threshold is exceeded.
// It raises the page guard and activates the shims of every group-compatible
// drop.
func (m *Manager) start(d *Drag) {
	m.active = d
	m.guardUp = true
	m.validDrops = m.validDrops[:0]
	for _, p := range m.drops {
		if p.lock || p.node.Hidden {
			continue
		}
		if d.target == p {
			// A drag never drops onto its own auto-created target.
			continue
		}
		if groupsIntersect(d.groups, p.groups) {
			p.activate()
			m.validDrops = append(m.validDrops, p)
		}
	}
}

// HandleMove dispatches a pointer move. Without an active session this is a
// no-op. The active drag's position is fully updated before drop overlap is
// re-evaluated for the same event.
func (m *Manager) HandleMove(x, y int) {
	if m.active == nil {
		return
	}
	m.pointerX, m.pointerY = x, y
	m.active.handleMove(x, y)
	if m.active != nil && m.active.state == StateDragging {
		m.evaluateTargets()
	}
}

// HandleTick promotes a pending press that has outlasted the hold threshold
// without any pointer motion arriving. The embedding application calls this
// from its periodic tick; a no-op unless a sub-threshold session is waiting.
func (m *Manager) HandleTick() {
	d := m.active
	if d == nil || d.state != StatePending || d.lock {
		return
	}
	if time.Since(d.downTime) < d.clickTimeThresh {
		return
	}
	d.promote(m.pointerX, m.pointerY)
	if m.active != nil && d.state == StateDragging {
		d.moveNode(m.pointerX, m.pointerY)
		m.evaluateTargets()
	}
}

// HandleUp dispatches a pointer release. If the session promoted to a drag
// it fires the end transition, resolves the winning drop and fires hit or
// miss accordingly; a sub-threshold session is treated as a click and fires
// no drag transitions.
func (m *Manager) HandleUp(x, y int) {
	d := m.active
	if d == nil {
		return
	}
	m.pointerX, m.pointerY = x, y

	if d.state == StateDragging {
		m.evaluateTargets()
		winner, losers := m.deactivateTargets()

		endEv := Event{Drag: d, X: x, Y: y}
		// End is not veto-able: the pointer is up, so the session-state
		// reset must run whatever the before listeners return.
		if !d.OnEnd.fire(endEv, d.end) {
			d.end()
		}

		if winner != nil {
			hitEv := Event{Drag: d, Drop: winner, X: x, Y: y}
			winner.OnHit.notify(hitEv)
			d.OnDropHit.notify(hitEv)
		} else {
			d.OnDropMiss.notify(endEv)
		}
		for _, p := range losers {
			p.OnExit.notify(Event{Drag: d, Drop: p, X: x, Y: y})
		}
	} else {
		// Never promoted past the click threshold: a click, not a drag.
		d.end()
	}

	m.finish()
}

// StopDrag aborts the active drag, running the same end-of-drag path as a
// pointer release at the last known position. A no-op without a session.
func (m *Manager) StopDrag() {
	if m.active != nil {
		m.HandleUp(m.pointerX, m.pointerY)
	}
}

// finish clears all per-session state.
func (m *Manager) finish() {
	for _, p := range m.validDrops {
		p.deactivate()
	}
	m.validDrops = m.validDrops[:0]
	m.active = nil
	m.activeDrop = nil
	m.guardUp = false
}

// IsOverTarget reports whether the active drag is over the given drop under
// the drag's mode. False when there is no active drag or no drop.
func (m *Manager) IsOverTarget(p *Drop) bool {
	if m.active == nil || p == nil || m.active.state != StateDragging {
		return false
	}
	switch m.active.mode {
	case ModeStrict:
		return p.Region().Contains(m.active.dragNode.Region())
	case ModeIntersect:
		return m.active.dragNode.Region().Overlaps(p.Region())
	default:
		return p.shim.ContainsPoint(m.pointerX, m.pointerY)
	}
}

// BestMatch returns the candidate with the largest positive intersection
// area against the active drag's node region, plus the remaining candidates.
// Candidates with zero overlap never win. Equal maximal areas resolve to the
// first maximal candidate in iteration order; callers must not rely on any
// stronger tie-break.
func (m *Manager) BestMatch(candidates []*Drop) (*Drop, []*Drop) {
	if m.active == nil {
		return nil, nil
	}
	dragRegion := m.active.dragNode.Region()

	var best *Drop
	bestArea := 0
	for _, p := range candidates {
		inter, ok := dragRegion.Intersect(p.Region())
		if !ok {
			continue
		}
		if a := inter.Area(); a > bestArea {
			bestArea = a
			best = p
		}
	}
	if best == nil {
		return nil, nil
	}

	var losers []*Drop
	for _, p := range candidates {
		if p != best {
			losers = append(losers, p)
		}
	}
	return best, losers
}

// lookup narrows the valid drops to those whose freshly sized shim intersects
// the viewport, skipping off-screen targets.
func (m *Manager) lookup() []*Drop {
	out := make([]*Drop, 0, len(m.validDrops))
	for _, p := range m.validDrops {
		if p.lock || p.node.Hidden {
			continue
		}
		p.SizeShim()
		if m.viewport.Area() > 0 && !p.shim.Overlaps(m.viewport) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// evaluateTargets recomputes which drops the active drag is over and fires
// the edge-triggered enter/exit and continuous over hooks.
func (m *Manager) evaluateTargets() {
	d := m.active
	candidates := m.lookup()

	var over []*Drop
	switch d.mode {
	case ModeStrict:
		nodeRegion := d.dragNode.Region()
		for _, p := range candidates {
			if p.Region().Contains(nodeRegion) {
				over = append(over, p)
			}
		}
	case ModeIntersect:
		// The inflated shim turns area overlap into a point test on the drag
		// node's origin; the exact area math below settles the winner.
		nodeRegion := d.dragNode.Region()
		for _, p := range candidates {
			if !p.shim.ContainsPoint(d.dragNode.X, d.dragNode.Y) {
				continue
			}
			if nodeRegion.Overlaps(p.Region()) {
				over = append(over, p)
			}
		}
	default: // ModePoint
		for _, p := range candidates {
			if p.shim.ContainsPoint(m.pointerX, m.pointerY) {
				over = append(over, p)
			}
		}
	}

	var best *Drop
	if d.mode == ModeIntersect {
		best, _ = m.BestMatch(over)
	} else if len(over) > 0 {
		best = over[0]
	}

	for _, p := range m.validDrops {
		isOver := false
		for _, o := range over {
			if o == p {
				isOver = true
				break
			}
		}
		ev := Event{Drag: d, Drop: p, X: m.pointerX, Y: m.pointerY}
		switch {
		case isOver && !p.overTarget:
			p.overTarget = true
			p.OnEnter.notify(ev)
			d.OnEnter.notify(ev)
			p.OnOver.notify(ev)
			d.OnOver.notify(ev)
		case isOver:
			p.OnOver.notify(ev)
			d.OnOver.notify(ev)
		case p.overTarget:
			p.overTarget = false
			p.OnExit.notify(ev)
			d.OnExit.notify(ev)
		}
	}

	m.activeDrop = best
}

// deactivateTargets resolves the winning drop at the end of a drag and
// returns it along with the still-hovered losers.
func (m *Manager) deactivateTargets() (*Drop, []*Drop) {
	winner := m.activeDrop
	var losers []*Drop
	for _, p := range m.validDrops {
		if p.overTarget && p != winner {
			losers = append(losers, p)
		}
	}
	return winner, losers
}

// groupsIntersect reports whether the two group sets share a name.
func groupsIntersect(a, b map[string]bool) bool {
	for g := range a {
		if b[g] {
			return true
		}
	}
	return false
}
