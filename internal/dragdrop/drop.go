package dragdrop

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Gaurav-Gosain/dropzone/internal/geom"
	"github.com/Gaurav-Gosain/dropzone/internal/node"
)

// DropConfig configures a new Drop. Node is required.
type DropConfig struct {
	// Node is the target element. Required.
	Node *node.Node

	// Groups are the tags matched against drag groups. Defaults to
	// {"default"}.
	Groups []string

	// Padding grows the target's interactive region beyond the node box.
	// CSS shorthand: "T", "T R", "T R B", or "T R B L".
	Padding string

	// Lock creates the drop in the locked state: it is skipped during hit
	// testing until unlocked.
	Lock bool
}

// Drop is one hit-test target. It maintains a shim region used for cheap
// pointer tests and tracks whether the active drag is currently over it.
type Drop struct {
	ID string

	// Lifecycle hooks, invoked synchronously from the update loop.
	OnOver  Hook
	OnEnter Hook
	OnExit  Hook
	OnHit   Hook

	node    *node.Node
	groups  map[string]bool
	padding [4]int // top, right, bottom, left
	lock    bool

	shim       geom.Region
	shimActive bool
	overTarget bool

	mgr *Manager
}

// NewDrop creates a drop for cfg.Node and registers it with the manager.
// Construction fails fast on a missing manager or node, or an unparsable
// padding shorthand, and does not proceed to registration.
func NewDrop(m *Manager, cfg DropConfig) (*Drop, error) {
	if m == nil {
		return nil, fmt.Errorf("dragdrop: drop requires a manager")
	}
	if cfg.Node == nil {
		return nil, fmt.Errorf("dragdrop: drop requires a node")
	}
	padding, err := ParsePadding(cfg.Padding)
	if err != nil {
		return nil, err
	}

	p := &Drop{
		ID:      uuid.New().String(),
		node:    cfg.Node,
		padding: padding,
		lock:    cfg.Lock,
		groups:  make(map[string]bool),
		mgr:     m,
	}
	if len(cfg.Groups) == 0 {
		p.groups["default"] = true
	}
	for _, g := range cfg.Groups {
		p.groups[g] = true
	}

	m.regDrop(p)
	return p, nil
}

// Node returns the target node.
func (p *Drop) Node() *node.Node { return p.node }

// Region returns the target's interactive region: the node box grown by the
// configured padding. Recomputed on demand from current geometry.
func (p *Drop) Region() geom.Region {
	return p.node.Region().Pad(p.padding[0], p.padding[1], p.padding[2], p.padding[3])
}

// Shim returns the current shim region. Only meaningful while a drag session
// has activated the drop.
func (p *Drop) Shim() geom.Region { return p.shim }

// ShimActive reports whether the shim is raised for the current session.
func (p *Drop) ShimActive() bool { return p.shimActive }

// Over reports whether the active drag is currently considered over this
// drop.
func (p *Drop) Over() bool { return p.overTarget }

// Locked reports whether the drop is locked.
func (p *Drop) Locked() bool { return p.lock }

// SetLock locks or unlocks the drop. A locked drop is silently skipped
// during hit testing.
func (p *Drop) SetLock(locked bool) { p.lock = locked }

// Groups returns the drop's group names.
func (p *Drop) Groups() []string {
	out := make([]string, 0, len(p.groups))
	for g := range p.groups {
		out = append(out, g)
	}
	return out
}

// InGroup reports whether the drop carries the given group name.
func (p *Drop) InGroup(g string) bool { return p.groups[g] }

// AddToGroup adds a group name to the drop.
func (p *Drop) AddToGroup(g string) { p.groups[g] = true }

// RemoveFromGroup removes a group name from the drop.
func (p *Drop) RemoveFromGroup(g string) { delete(p.groups, g) }

// SizeShim recomputes the shim from the node's current box plus padding.
// While the active drag runs in intersect mode the shim is additionally
// inflated by the drag node's dimensions and shifted, so that the shim
// covers every drag-node origin that would produce any overlap; that turns
// the area-overlap pre-test into a point-in-rectangle test, while BestMatch
// still settles the winner with the exact area math.
func (p *Drop) SizeShim() {
	shim := p.Region()
	if p.mgr != nil {
		if d := p.mgr.active; d != nil && d.mode == ModeIntersect {
			shim.Left -= d.dragNode.Width - 1
			shim.Top -= d.dragNode.Height - 1
		}
	}
	p.shim = shim
}

// activate raises the shim for a new drag session.
func (p *Drop) activate() {
	p.overTarget = false
	p.shimActive = true
	p.SizeShim()
}

// deactivate lowers the shim and clears the hover state.
func (p *Drop) deactivate() {
	p.overTarget = false
	p.shimActive = false
	p.shim = geom.Region{}
}

// Destroy unregisters the drop from the manager. If it is part of the
// active session the session's valid-drop set keeps its reference until the
// session ends; the drop simply stops being registered for future ones.
func (p *Drop) Destroy() {
	if p.mgr != nil {
		p.mgr.unregDrop(p)
	}
	p.deactivate()
	p.mgr = nil
}

// ParsePadding parses the CSS-style padding shorthand into top, right,
// bottom, left values. The empty string means no padding.
func ParsePadding(s string) ([4]int, error) {
	var out [4]int
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return out, nil
	}
	if len(fields) > 4 {
		return out, fmt.Errorf("dragdrop: padding %q has more than four values", s)
	}

	vals := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return out, fmt.Errorf("dragdrop: padding %q: %w", s, err)
		}
		vals[i] = v
	}

	switch len(vals) {
	case 1:
		out = [4]int{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		out = [4]int{vals[0], vals[1], vals[0], vals[1]}
	case 3:
		out = [4]int{vals[0], vals[1], vals[2], vals[1]}
	case 4:
		out = [4]int{vals[0], vals[1], vals[2], vals[3]}
	}
	return out, nil
}
