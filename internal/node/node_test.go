package node

import (
	"testing"

	"github.com/Gaurav-Gosain/dropzone/internal/geom"
)

func TestRegionTracksGeometry(t *testing.T) {
	n := New("card", 5, 3, 10, 4)

	want := geom.Region{Top: 3, Right: 15, Bottom: 7, Left: 5}
	if got := n.Region(); got != want {
		t.Errorf("Region() = %+v, want %+v", got, want)
	}

	n.MoveTo(0, 0)
	n.Resize(6, 2)
	want = geom.Region{Top: 0, Right: 6, Bottom: 2, Left: 0}
	if got := n.Region(); got != want {
		t.Errorf("Region() after move+resize = %+v, want %+v", got, want)
	}
}

func TestDirtyFlags(t *testing.T) {
	n := New("card", 0, 0, 10, 4)
	if !n.ContentDirty {
		t.Error("fresh node is not marked for composition")
	}
	n.ClearDirtyFlags()

	n.MoveTo(0, 0) // no-op move
	if n.PositionDirty {
		t.Error("no-op move dirtied the position")
	}
	n.MoveTo(1, 0)
	if !n.PositionDirty {
		t.Error("move did not dirty the position")
	}

	n.ClearDirtyFlags()
	n.Resize(10, 4) // no-op resize
	if n.ContentDirty {
		t.Error("no-op resize dirtied the content")
	}
	n.Resize(12, 4)
	if !n.ContentDirty {
		t.Error("resize did not dirty the content")
	}
}

func TestContains(t *testing.T) {
	n := New("card", 10, 10, 5, 3)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 10, 10, true},
		{"interior", 12, 11, true},
		{"right edge is exclusive", 15, 10, false},
		{"bottom edge is exclusive", 10, 13, false},
		{"last interior cell", 14, 12, true},
		{"outside", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
