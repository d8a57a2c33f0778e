// Package geom provides the axis-aligned rectangle math used by the
// drag-and-drop engine for hit testing and overlap resolution.
package geom

// Region is an axis-aligned rectangle in board cell coordinates.
// The horizontal span is [Left, Right) and the vertical span is [Top, Bottom),
// matching how cells are addressed on the canvas. A normalized region has
// Right >= Left and Bottom >= Top.
type Region struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// FromXYWH builds a region from an origin and dimensions.
func FromXYWH(x, y, w, h int) Region {
	return Region{Top: y, Right: x + w, Bottom: y + h, Left: x}
}

// Width returns the horizontal extent of the region.
func (r Region) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent of the region.
func (r Region) Height() int {
	return r.Bottom - r.Top
}

// Area returns the number of cells covered by the region.
// Degenerate (inverted) regions report zero.
func (r Region) Area() int {
	if r.Right <= r.Left || r.Bottom <= r.Top {
		return 0
	}
	return r.Width() * r.Height()
}

// ContainsPoint reports whether the cell at (x, y) lies inside the region.
func (r Region) ContainsPoint(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Contains reports whether o lies entirely inside r. This is full
// containment, not mere overlap: every cell of o must be a cell of r.
func (r Region) Contains(o Region) bool {
	return o.Left >= r.Left && o.Right <= r.Right &&
		o.Top >= r.Top && o.Bottom <= r.Bottom
}

// Intersect returns the overlapping region of r and o. ok is false when the
// two regions share no cells, in which case the returned region is zero.
func (r Region) Intersect(o Region) (Region, bool) {
	out := Region{
		Top:    max(r.Top, o.Top),
		Left:   max(r.Left, o.Left),
		Bottom: min(r.Bottom, o.Bottom),
		Right:  min(r.Right, o.Right),
	}
	if out.Right <= out.Left || out.Bottom <= out.Top {
		return Region{}, false
	}
	return out, true
}

// Overlaps reports whether r and o share at least one cell.
func (r Region) Overlaps(o Region) bool {
	_, ok := r.Intersect(o)
	return ok
}

// Pad grows the region by the given amount on each side. Negative values
// shrink it.
func (r Region) Pad(top, right, bottom, left int) Region {
	return Region{
		Top:    r.Top - top,
		Right:  r.Right + right,
		Bottom: r.Bottom + bottom,
		Left:   r.Left - left,
	}
}
