package dragdrop

import (
	"testing"

	"github.com/Gaurav-Gosain/dropzone/internal/geom"
	"github.com/Gaurav-Gosain/dropzone/internal/node"
)

// constrainedDrag builds a drag with an active session so StartPosition is
// meaningful, attaches the constraint, and returns the drag.
func constrainedDrag(t *testing.T, m *Manager, n *node.Node, c *Constrain) *Drag {
	t.Helper()
	d := mustDrag(t, m, DragConfig{Node: n})
	d.AttachConstraint(c)
	if !d.MouseDown(n.X+1, n.Y+1) {
		t.Fatal("MouseDown rejected")
	}
	return d
}

func TestClampToRegion(t *testing.T) {
	region := geom.FromXYWH(0, 0, 100, 50)

	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"already in bounds is unchanged", 40, 20, 40, 20},
		{"past the right edge", 200, 20, 90, 20},
		{"past the left edge", -30, 20, 0, 20},
		{"past the bottom edge", 40, 200, 40, 46},
		{"past the top edge", 40, -5, 40, 0},
		{"both axes out", -10, 300, 0, 46},
		{"exactly at the feasible max", 90, 46, 90, 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			n := node.New("card", 10, 10, 10, 4)
			d := constrainedDrag(t, m, n, NewConstrain(ConstrainConfig{Region: &region}))
			defer m.HandleUp(0, 0)

			gotX, gotY := d.Constraint().Align(d, tt.x, tt.y)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("Align(%d, %d) = (%d, %d), want (%d, %d)",
					tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestClampIsIdempotent(t *testing.T) {
	region := geom.FromXYWH(0, 0, 100, 50)
	m := NewManager()
	n := node.New("card", 10, 10, 10, 4)
	d := constrainedDrag(t, m, n, NewConstrain(ConstrainConfig{Region: &region}))
	defer m.HandleUp(0, 0)

	x1, y1 := d.Constraint().Align(d, 250, -40)
	x2, y2 := d.Constraint().Align(d, x1, y1)
	if x1 != x2 || y1 != y2 {
		t.Errorf("second Align moved a clamped position: (%d, %d) -> (%d, %d)", x1, y1, x2, y2)
	}
}

func TestRegionSmallerThanNodeCollapses(t *testing.T) {
	region := geom.FromXYWH(20, 20, 5, 2) // smaller than the 10x4 node
	m := NewManager()
	n := node.New("card", 10, 10, 10, 4)
	d := constrainedDrag(t, m, n, NewConstrain(ConstrainConfig{Region: &region}))
	defer m.HandleUp(0, 0)

	for _, pt := range [][2]int{{0, 0}, {100, 100}, {22, 21}} {
		gotX, gotY := d.Constraint().Align(d, pt[0], pt[1])
		if gotX != 20 || gotY != 20 {
			t.Errorf("Align(%d, %d) = (%d, %d), want collapsed (20, 20)", pt[0], pt[1], gotX, gotY)
		}
	}
}

func TestStickAxes(t *testing.T) {
	m := NewManager()
	n := node.New("card", 10, 10, 10, 4)
	d := constrainedDrag(t, m, n, NewConstrain(ConstrainConfig{StickY: true}))
	defer m.HandleUp(0, 0)

	gotX, gotY := d.Constraint().Align(d, 50, 40)
	if gotX != 50 {
		t.Errorf("free axis clamped: x = %d, want 50", gotX)
	}
	if gotY != 10 {
		t.Errorf("stuck axis moved: y = %d, want 10", gotY)
	}

	d.AttachConstraint(NewConstrain(ConstrainConfig{StickX: true}))
	gotX, gotY = d.Constraint().Align(d, 50, 40)
	if gotX != 10 || gotY != 40 {
		t.Errorf("StickX Align = (%d, %d), want (10, 40)", gotX, gotY)
	}
}

func TestTickSnapping(t *testing.T) {
	// Start position is (10, 10); ticks are multiples of 7 from there.
	tests := []struct {
		name  string
		x     int
		wantX int
	}{
		{"on a tick stays", 24, 24},
		{"just past a tick floors", 26, 24},
		{"nearer the next tick ceils", 29, 31},
		{"midpoint resolves to the floor tick", 27, 24}, // 27 is 3 from 24 and 4 from 31
		{"negative direction", -3, -4},                  // ticks ... -4, 3, 10
	}

	m := NewManager()
	n := node.New("card", 10, 10, 10, 4)
	d := constrainedDrag(t, m, n, NewConstrain(ConstrainConfig{TickX: 7}))
	defer m.HandleUp(0, 0)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, _ := d.Constraint().Align(d, tt.x, 10)
			if gotX != tt.wantX {
				t.Errorf("Align x=%d -> %d, want %d", tt.x, gotX, tt.wantX)
			}
		})
	}
}

func TestTickSnappingIsDeterministic(t *testing.T) {
	m := NewManager()
	n := node.New("card", 10, 10, 10, 4)
	d := constrainedDrag(t, m, n, NewConstrain(ConstrainConfig{TickX: 5, TickY: 5}))
	defer m.HandleUp(0, 0)

	firstX, firstY := d.Constraint().Align(d, 33, 27)
	for range 10 {
		x, y := d.Constraint().Align(d, 33, 27)
		if x != firstX || y != firstY {
			t.Fatalf("repeated snap diverged: (%d, %d) vs (%d, %d)", x, y, firstX, firstY)
		}
	}
}

func TestTickSnappingRespectsBounds(t *testing.T) {
	// Region max for a 10-wide node is x=40; ticks from 10 step 25 would
	// reach 60, which must clamp back to 40.
	region := geom.FromXYWH(0, 0, 50, 50)
	m := NewManager()
	n := node.New("card", 10, 10, 10, 4)
	d := constrainedDrag(t, m, n, NewConstrain(ConstrainConfig{Region: &region, TickX: 25}))
	defer m.HandleUp(0, 0)

	gotX, _ := d.Constraint().Align(d, 49, 10)
	if gotX != 40 {
		t.Errorf("snapped x = %d, want 40 (clamped)", gotX)
	}
}

func TestExplicitTickArray(t *testing.T) {
	ticks := []int{0, 8, 20, 45}

	tests := []struct {
		name  string
		x     int
		wantX int
	}{
		{"below the first tick", -10, 0},
		{"nearest is the second", 10, 8},
		{"nearest is the third", 17, 20},
		{"equidistant resolves to the earlier tick", 4, 0},
		{"beyond the last tick", 90, 45},
	}

	m := NewManager()
	n := node.New("card", 10, 10, 10, 4)
	d := constrainedDrag(t, m, n, NewConstrain(ConstrainConfig{TicksX: ticks}))
	defer m.HandleUp(0, 0)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, _ := d.Constraint().Align(d, tt.x, 10)
			if gotX != tt.wantX {
				t.Errorf("Align x=%d -> %d, want %d", tt.x, gotX, tt.wantX)
			}
		})
	}
}

func TestConstrainToNodeRegion(t *testing.T) {
	m := NewManager()
	fence := node.New("fence", 0, 0, 60, 20)
	n := node.New("card", 10, 10, 10, 4)
	d := constrainedDrag(t, m, n, NewConstrain(ConstrainConfig{Node: fence}))
	defer m.HandleUp(0, 0)

	gotX, gotY := d.Constraint().Align(d, 200, 200)
	if gotX != 50 || gotY != 16 {
		t.Errorf("Align = (%d, %d), want (50, 16)", gotX, gotY)
	}

	// The region source is live: moving the fence moves the bounds.
	fence.MoveTo(100, 0)
	gotX, _ = d.Constraint().Align(d, 0, 0)
	if gotX != 100 {
		t.Errorf("Align after fence move: x = %d, want 100", gotX)
	}
}

func TestConstrainToViewport(t *testing.T) {
	m := NewManager()
	m.SetViewport(geom.FromXYWH(0, 0, 80, 24))
	n := node.New("card", 10, 10, 10, 4)
	d := constrainedDrag(t, m, n, NewConstrain(ConstrainConfig{Viewport: true}))
	defer m.HandleUp(0, 0)

	gotX, gotY := d.Constraint().Align(d, 500, 500)
	if gotX != 70 || gotY != 20 {
		t.Errorf("Align = (%d, %d), want (70, 20)", gotX, gotY)
	}
}

func TestUnconstrainedIsPassthrough(t *testing.T) {
	m := NewManager()
	n := node.New("card", 10, 10, 10, 4)
	d := constrainedDrag(t, m, n, NewConstrain(ConstrainConfig{}))
	defer m.HandleUp(0, 0)

	gotX, gotY := d.Constraint().Align(d, -999, 999)
	if gotX != -999 || gotY != 999 {
		t.Errorf("Align = (%d, %d), want passthrough (-999, 999)", gotX, gotY)
	}
}
