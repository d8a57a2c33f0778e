package dragdrop

import (
	"github.com/Gaurav-Gosain/dropzone/internal/geom"
	"github.com/Gaurav-Gosain/dropzone/internal/node"
)

// ConstrainConfig configures a Constrain component. The region source
// priority is Region, then Node, then Viewport; with none configured the
// position is unclamped (axis locks and ticks still apply).
type ConstrainConfig struct {
	// Region clamps the drag node into an explicit rectangle.
	Region *geom.Region

	// Node clamps the drag node into another node's current region.
	Node *node.Node

	// Viewport clamps the drag node into the manager's viewport.
	Viewport bool

	// StickX pins the horizontal position to its value at drag start
	// (vertical-only dragging). StickY is the mirror.
	StickX bool
	StickY bool

	// TickX and TickY snap each axis to multiples of a fixed interval,
	// measured from the node's position at drag start. Zero disables.
	TickX int
	TickY int

	// TicksX and TicksY snap to an explicit ascending list of positions
	// instead of a fixed interval. They take precedence over TickX/TickY.
	TicksX []int
	TicksY []int
}

// Constrain clamps and quantizes a drag node's position. It is an
// independent component attached to a Drag with AttachConstraint; one
// instance may be shared by several drags since it keeps no per-session
// state.
type Constrain struct {
	cfg ConstrainConfig
}

// NewConstrain creates a constraint component from cfg.
func NewConstrain(cfg ConstrainConfig) *Constrain {
	return &Constrain{cfg: cfg}
}

// Align maps a proposed node origin to the nearest allowed one: axis locks
// first, then the per-axis clamp into the resolved region, then tick
// snapping. Clamping an already-in-bounds position returns it unchanged.
func (c *Constrain) Align(d *Drag, x, y int) (int, int) {
	startX, startY := d.StartPosition()
	if c.cfg.StickX {
		x = startX
	}
	if c.cfg.StickY {
		y = startY
	}

	w := d.DragNode().Width
	h := d.DragNode().Height

	r, bounded := c.resolveRegion(d)
	minX, maxX := r.Left, r.Right-w
	minY, maxY := r.Top, r.Bottom-h
	if bounded {
		x = clampAxis(x, minX, maxX)
		y = clampAxis(y, minY, maxY)
	}

	switch {
	case len(c.cfg.TicksX) > 0:
		x = snapToTicks(x, c.cfg.TicksX)
	case c.cfg.TickX > 0:
		x = snapToInterval(x, startX, c.cfg.TickX)
	}
	switch {
	case len(c.cfg.TicksY) > 0:
		y = snapToTicks(y, c.cfg.TicksY)
	case c.cfg.TickY > 0:
		y = snapToInterval(y, startY, c.cfg.TickY)
	}

	// A snapped position never escapes the already-computed bounds.
	if bounded {
		x = clampAxis(x, minX, maxX)
		y = clampAxis(y, minY, maxY)
	}
	return x, y
}

// resolveRegion picks the constraint region by source priority. ok is false
// when no source is configured.
func (c *Constrain) resolveRegion(d *Drag) (geom.Region, bool) {
	switch {
	case c.cfg.Region != nil:
		return *c.cfg.Region, true
	case c.cfg.Node != nil:
		return c.cfg.Node.Region(), true
	case c.cfg.Viewport:
		v := d.mgr.Viewport()
		return v, v.Area() > 0
	}
	return geom.Region{}, false
}

// clampAxis clamps v into [min, max]. A region smaller than the node makes
// max < min; both bounds then collapse to the single feasible value.
func clampAxis(v, min, max int) int {
	if max < min {
		max = min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// snapToInterval picks the nearest multiple of tick measured from the drag's
// start position, comparing the floor and ceiling candidates.
func snapToInterval(v, start, tick int) int {
	diff := v - start
	n := diff / tick
	t1 := start + n*tick
	t2 := t1 + tick
	if diff < 0 {
		t2 = t1 - tick
	}
	if abs(v-t2) < abs(v-t1) {
		return t2
	}
	return t1
}

// snapToTicks finds the nearest position in an explicit sorted tick list by
// linear scan. An equidistant pair resolves to the earlier tick.
func snapToTicks(v int, ticks []int) int {
	best := ticks[0]
	for _, t := range ticks[1:] {
		if abs(v-t) < abs(v-best) {
			best = t
		}
	}
	return best
}
