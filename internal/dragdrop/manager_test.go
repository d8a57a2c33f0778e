package dragdrop

import (
	"testing"

	"github.com/Gaurav-Gosain/dropzone/internal/geom"
	"github.com/Gaurav-Gosain/dropzone/internal/node"
)

func mustDrag(t *testing.T, m *Manager, cfg DragConfig) *Drag {
	t.Helper()
	d, err := NewDrag(m, cfg)
	if err != nil {
		t.Fatalf("NewDrag: %v", err)
	}
	return d
}

func mustDrop(t *testing.T, m *Manager, cfg DropConfig) *Drop {
	t.Helper()
	p, err := NewDrop(m, cfg)
	if err != nil {
		t.Fatalf("NewDrop: %v", err)
	}
	return p
}

// beginDrag drives a session past the click threshold so the drag is active.
func beginDrag(t *testing.T, m *Manager, d *Drag, downX, downY, moveX, moveY int) {
	t.Helper()
	if !d.MouseDown(downX, downY) {
		t.Fatalf("MouseDown(%d, %d) rejected", downX, downY)
	}
	m.HandleMove(moveX, moveY)
	if d.State() != StateDragging {
		t.Fatalf("drag did not promote after move to (%d, %d), state = %d", moveX, moveY, d.State())
	}
}

func TestConstructionErrors(t *testing.T) {
	m := NewManager()
	n := node.New("card", 0, 0, 10, 4)

	if _, err := NewDrag(nil, DragConfig{Node: n}); err == nil {
		t.Error("NewDrag with nil manager did not fail")
	}
	if _, err := NewDrag(m, DragConfig{}); err == nil {
		t.Error("NewDrag with nil node did not fail")
	}
	if _, err := NewDrop(nil, DropConfig{Node: n}); err == nil {
		t.Error("NewDrop with nil manager did not fail")
	}
	if _, err := NewDrop(m, DropConfig{}); err == nil {
		t.Error("NewDrop with nil node did not fail")
	}
	if _, err := NewDrop(m, DropConfig{Node: n, Padding: "1 x"}); err == nil {
		t.Error("NewDrop with malformed padding did not fail")
	}
	if len(m.drags) != 0 || len(m.drops) != 0 {
		t.Errorf("failed constructions registered objects: %d drags, %d drops", len(m.drags), len(m.drops))
	}
}

func TestDuplicateRegistrationIsHarmless(t *testing.T) {
	m := NewManager()
	d := mustDrag(t, m, DragConfig{Node: node.New("card", 0, 0, 10, 4)})

	m.regDrag(d)
	m.regDrag(d)
	if len(m.drags) != 1 {
		t.Errorf("registry holds %d entries after duplicate registration, want 1", len(m.drags))
	}

	m.unregDrag(d)
	m.unregDrag(d) // removal of an absent entry is a no-op
	if len(m.drags) != 0 {
		t.Errorf("registry holds %d entries after removal, want 0", len(m.drags))
	}
}

func TestBestMatch(t *testing.T) {
	tests := []struct {
		name      string
		dragBox   [4]int // x, y, w, h
		dropBoxes [][4]int
		wantIdx   int // -1 for no winner
	}{
		{
			name:      "largest overlap wins",
			dragBox:   [4]int{50, 50, 100, 100},
			dropBoxes: [][4]int{{0, 0, 100, 100}, {120, 120, 100, 100}},
			wantIdx:   0, // 50x50=2500 vs 30x30=900
		},
		{
			name:      "non-overlapping candidate never wins",
			dragBox:   [4]int{50, 50, 100, 100},
			dropBoxes: [][4]int{{0, 0, 100, 100}, {500, 500, 100, 100}},
			wantIdx:   0,
		},
		{
			name:      "all zero overlap yields no match",
			dragBox:   [4]int{0, 0, 10, 10},
			dropBoxes: [][4]int{{100, 100, 10, 10}, {200, 200, 10, 10}},
			wantIdx:   -1,
		},
		{
			name:      "equal areas resolve to first maximal",
			dragBox:   [4]int{10, 0, 20, 10},
			dropBoxes: [][4]int{{0, 0, 20, 10}, {20, 0, 20, 10}},
			wantIdx:   0, // both overlap 10x10
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			dragNode := node.New("drag", tt.dragBox[0], tt.dragBox[1], tt.dragBox[2], tt.dragBox[3])
			d := mustDrag(t, m, DragConfig{Node: dragNode, Mode: ModeIntersect})

			var drops []*Drop
			for _, b := range tt.dropBoxes {
				drops = append(drops, mustDrop(t, m, DropConfig{Node: node.New("slot", b[0], b[1], b[2], b[3])}))
			}

			// BestMatch needs an active drag to know the drag region.
			beginDrag(t, m, d, tt.dragBox[0]+1, tt.dragBox[1]+1, tt.dragBox[0]+1+DefaultClickPixelThresh+1, tt.dragBox[1]+1)
			// Undo the promotion move so the node region matches the fixture.
			dragNode.MoveTo(tt.dragBox[0], tt.dragBox[1])

			winner, losers := m.BestMatch(drops)
			if tt.wantIdx == -1 {
				if winner != nil {
					t.Fatalf("BestMatch = %v, want no winner", winner.ID)
				}
				return
			}
			if winner != drops[tt.wantIdx] {
				t.Fatalf("BestMatch picked the wrong drop")
			}
			if len(losers) != len(drops)-1 {
				t.Errorf("losers = %d, want %d", len(losers), len(drops)-1)
			}
		})
	}
}

func TestIsOverTargetStrict(t *testing.T) {
	tests := []struct {
		name    string
		dropBox [4]int
		want    bool
	}{
		{"fully contained", [4]int{0, 0, 100, 100}, true},
		{"overlapping only", [4]int{0, 0, 25, 25}, false},
		{"identical region", [4]int{20, 20, 10, 4}, true},
		{"disjoint", [4]int{200, 200, 50, 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			dragNode := node.New("drag", 20, 20, 10, 4)
			d := mustDrag(t, m, DragConfig{Node: dragNode, Mode: ModeStrict})
			p := mustDrop(t, m, DropConfig{Node: node.New("slot", tt.dropBox[0], tt.dropBox[1], tt.dropBox[2], tt.dropBox[3])})

			beginDrag(t, m, d, 21, 21, 21+DefaultClickPixelThresh+1, 21)
			dragNode.MoveTo(20, 20)

			if got := m.IsOverTarget(p); got != tt.want {
				t.Errorf("IsOverTarget = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsOverTargetWithoutSession(t *testing.T) {
	m := NewManager()
	p := mustDrop(t, m, DropConfig{Node: node.New("slot", 0, 0, 10, 10)})

	if m.IsOverTarget(p) {
		t.Error("IsOverTarget without an active drag = true, want false")
	}
	if m.IsOverTarget(nil) {
		t.Error("IsOverTarget(nil) = true, want false")
	}
}

func TestGroupEligibility(t *testing.T) {
	m := NewManager()
	d := mustDrag(t, m, DragConfig{Node: node.New("card", 0, 0, 6, 3), Groups: []string{"a"}})
	p := mustDrop(t, m, DropConfig{Node: node.New("slot", 50, 50, 10, 5), Groups: []string{"b"}})

	beginDrag(t, m, d, 1, 1, 1+DefaultClickPixelThresh+1, 1)
	if m.Eligible(p) {
		t.Fatal("drop with disjoint groups became eligible")
	}
	m.HandleUp(10, 1)

	// The first session moved the card; aim the second click at its new spot.
	p.AddToGroup("a")
	beginDrag(t, m, d, 5, 1, 5+DefaultClickPixelThresh+1, 1)
	if !m.Eligible(p) {
		t.Fatal("drop sharing a group did not become eligible")
	}
	m.HandleUp(10, 1)
}

func TestIntersectSessionHitAndMiss(t *testing.T) {
	m := NewManager()
	m.SetViewport(geom.FromXYWH(0, 0, 200, 200))

	card := node.New("card", 0, 0, 10, 4)
	d := mustDrag(t, m, DragConfig{Node: card, Mode: ModeIntersect})
	near := mustDrop(t, m, DropConfig{Node: node.New("near", 40, 10, 20, 8)})
	far := mustDrop(t, m, DropConfig{Node: node.New("far", 100, 100, 20, 8)})

	var enters, exits, overs, hits, misses int
	near.OnEnter.After(func(Event) { enters++ })
	near.OnExit.After(func(Event) { exits++ })
	near.OnOver.After(func(Event) { overs++ })
	near.OnHit.After(func(Event) { hits++ })
	d.OnDropMiss.After(func(Event) { misses++ })

	// Drag the card over the near slot and release.
	if !d.MouseDown(2, 1) {
		t.Fatal("MouseDown rejected")
	}
	m.HandleMove(30, 1) // promotes, node origin (28, 0), no overlap yet
	if near.Over() {
		t.Fatal("near reported over before any overlap")
	}
	m.HandleMove(47, 13) // node origin (45, 12): overlaps near
	if !near.Over() {
		t.Fatal("near not over after overlap")
	}
	if enters != 1 {
		t.Fatalf("enter fired %d times, want 1", enters)
	}
	m.HandleMove(48, 13) // still over: over fires again, enter does not
	if enters != 1 || overs < 2 {
		t.Fatalf("enters = %d overs = %d after second move", enters, overs)
	}

	m.HandleUp(48, 13)
	if hits != 1 {
		t.Errorf("hit fired %d times, want 1", hits)
	}
	if misses != 0 {
		t.Errorf("miss fired %d times, want 0", misses)
	}
	if m.ActiveDrag() != nil || m.ActiveDrop() != nil || m.GuardActive() {
		t.Error("session state not cleared after release")
	}
	if far.Over() || far.ShimActive() {
		t.Error("far drop kept session state after release")
	}

	// Drag back over the slot, then out into empty space: exit then miss.
	if !d.MouseDown(47, 13) {
		t.Fatal("second MouseDown rejected")
	}
	m.HandleMove(51, 14) // promotes, origin (50, 13): over the near slot again
	m.HandleMove(80, 60) // leaves it
	m.HandleUp(80, 60)
	if misses != 1 {
		t.Errorf("miss fired %d times, want 1", misses)
	}
	if exits < 1 {
		t.Errorf("exit fired %d times, want at least 1", exits)
	}
}

func TestIntersectBestMatchPrefersLargerOverlap(t *testing.T) {
	m := NewManager()
	card := node.New("card", 0, 0, 10, 10)
	d := mustDrag(t, m, DragConfig{Node: card, Mode: ModeIntersect})
	left := mustDrop(t, m, DropConfig{Node: node.New("left", 20, 20, 10, 10)})
	right := mustDrop(t, m, DropConfig{Node: node.New("right", 27, 20, 10, 10)})

	var hitDrop *Drop
	left.OnHit.After(func(e Event) { hitDrop = e.Drop })
	right.OnHit.After(func(e Event) { hitDrop = e.Drop })

	// Park the card overlapping both, but deeper into the right slot.
	if !d.MouseDown(5, 5) {
		t.Fatal("MouseDown rejected")
	}
	m.HandleMove(30, 25) // origin (25, 20): 5 cols of left, 8 cols of right
	m.HandleUp(30, 25)

	if hitDrop != right {
		t.Fatal("best match did not pick the drop with the larger overlap")
	}
	if hitDrop == left {
		t.Fatal("loser received the hit")
	}
}

func TestStopDragAbortsSession(t *testing.T) {
	m := NewManager()
	card := node.New("card", 0, 0, 10, 4)
	d := mustDrag(t, m, DragConfig{Node: card})

	var ends int
	d.OnEnd.After(func(Event) { ends++ })

	beginDrag(t, m, d, 2, 1, 2+DefaultClickPixelThresh+1, 1)
	m.StopDrag()

	if ends != 1 {
		t.Errorf("end fired %d times, want 1", ends)
	}
	if d.State() != StateIdle {
		t.Errorf("state = %d after stop, want idle", d.State())
	}
	if m.ActiveDrag() != nil {
		t.Error("manager kept an active drag after stop")
	}
}

func TestViewportCulling(t *testing.T) {
	m := NewManager()
	m.SetViewport(geom.FromXYWH(0, 0, 80, 24))

	card := node.New("card", 0, 0, 6, 3)
	d := mustDrag(t, m, DragConfig{Node: card, Mode: ModeIntersect})
	onScreen := mustDrop(t, m, DropConfig{Node: node.New("on", 40, 10, 10, 5)})
	offScreen := mustDrop(t, m, DropConfig{Node: node.New("off", 300, 300, 10, 5)})

	beginDrag(t, m, d, 1, 1, 1+DefaultClickPixelThresh+1, 1)
	candidates := m.lookup()
	m.HandleUp(10, 1)

	found := map[*Drop]bool{}
	for _, p := range candidates {
		found[p] = true
	}
	if !found[onScreen] {
		t.Error("on-screen drop culled from lookup")
	}
	if found[offScreen] {
		t.Error("off-screen drop survived lookup")
	}
}

func TestShutdownDetachesEverything(t *testing.T) {
	m := NewManager()
	d := mustDrag(t, m, DragConfig{Node: node.New("card", 0, 0, 6, 3)})
	p := mustDrop(t, m, DropConfig{Node: node.New("slot", 20, 20, 10, 5)})

	beginDrag(t, m, d, 1, 1, 1+DefaultClickPixelThresh+1, 1)
	m.Shutdown()

	if m.ActiveDrag() != nil || m.GuardActive() {
		t.Error("shutdown left an active session")
	}
	if len(m.drags) != 0 || len(m.drops) != 0 {
		t.Error("shutdown left registered objects")
	}
	if d.mgr != nil || p.mgr != nil {
		t.Error("shutdown did not detach objects from the manager")
	}
}
