// Package node provides the positioned, rendered boxes that the drag-and-drop
// engine manipulates. A node is the engine's stand-in for an on-screen
// element: it owns its geometry and rendering cache but knows nothing about
// drag semantics.
package node

import (
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/Gaurav-Gosain/dropzone/internal/geom"
)

// Node is a rectangular element on the board canvas.
// Position and size are in cell coordinates. The rendering cache mirrors the
// dirty-flag scheme used by the board renderer: a node is re-composed into a
// fresh layer only when something about it changed.
type Node struct {
	ID     string
	Title  string
	X      int
	Y      int
	Width  int
	Height int
	Z      int

	Hidden        bool // Excluded from rendering and hit testing
	PositionDirty bool
	ContentDirty  bool
	CachedLayer   *lipgloss.Layer
}

// New creates a node with a fresh ID at the given position and size.
func New(title string, x, y, w, h int) *Node {
	return &Node{
		ID:           uuid.New().String(),
		Title:        title,
		X:            x,
		Y:            y,
		Width:        w,
		Height:       h,
		ContentDirty: true,
	}
}

// Region returns the node's current bounding region in board coordinates.
func (n *Node) Region() geom.Region {
	return geom.FromXYWH(n.X, n.Y, n.Width, n.Height)
}

// MoveTo repositions the node's origin and marks it for re-composition.
func (n *Node) MoveTo(x, y int) {
	if n.X == x && n.Y == y {
		return
	}
	n.X = x
	n.Y = y
	n.PositionDirty = true
}

// Resize updates the node's dimensions and invalidates its cached layer.
func (n *Node) Resize(w, h int) {
	if n.Width == w && n.Height == h {
		return
	}
	n.Width = w
	n.Height = h
	n.ContentDirty = true
}

// Contains reports whether the cell at (x, y) lies inside the node.
func (n *Node) Contains(x, y int) bool {
	return n.Region().ContainsPoint(x, y)
}

// ClearDirtyFlags resets the render invalidation flags after the node has
// been composed into a layer.
func (n *Node) ClearDirtyFlags() {
	n.PositionDirty = false
	n.ContentDirty = false
}

// InvalidateCache forces the node to be re-rendered on the next frame.
func (n *Node) InvalidateCache() {
	n.ContentDirty = true
	n.CachedLayer = nil
}
