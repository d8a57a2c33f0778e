// Package dragdrop implements the drag-and-drop engine: a manager that
// coordinates at most one active drag session, draggable nodes with
// click-vs-drag disambiguation, constraint components, and drop targets
// resolved by point, intersect, or strict hit testing.
//
// The engine is single-threaded by contract: every method must be called
// from the owning application's update loop. The manager performs no locking;
// correctness depends on that dispatch guarantee.
package dragdrop

// Event is the payload delivered to drag and drop listeners.
// Drop is nil for events that do not involve a target. The delta fields are
// only meaningful on move events: DeltaX/DeltaY are relative to the previous
// position, TotalX/TotalY relative to the position at drag start.
type Event struct {
	Drag *Drag
	Drop *Drop

	// X, Y is the pointer position in board coordinates.
	X int
	Y int

	DeltaX int
	DeltaY int
	TotalX int
	TotalY int
}

// BeforeFunc runs before a transition's default action. Returning false
// vetoes the default action where one exists (promoting to dragging,
// repositioning the node); for purely informational moments the return value
// is ignored.
type BeforeFunc func(Event) bool

// AfterFunc runs after the transition completed.
type AfterFunc func(Event)

// Hook is a pair of listener lists invoked in sequence around a state
// transition. Listeners run synchronously, in registration order.
type Hook struct {
	before []BeforeFunc
	after  []AfterFunc
}

// Before registers a listener that runs ahead of the transition and may veto
// its default action.
func (h *Hook) Before(fn BeforeFunc) {
	h.before = append(h.before, fn)
}

// After registers a listener that runs once the transition has completed.
func (h *Hook) After(fn AfterFunc) {
	h.after = append(h.after, fn)
}

// fire runs the before listeners, the default action, then the after
// listeners. If any before listener returns false the action is skipped and
// fire reports false; after listeners still do not run in that case.
func (h *Hook) fire(e Event, action func()) bool {
	for _, fn := range h.before {
		if !fn(e) {
			return false
		}
	}
	if action != nil {
		action()
	}
	for _, fn := range h.after {
		fn(e)
	}
	return true
}

// notify fires a hook that has no default action to veto.
func (h *Hook) notify(e Event) {
	h.fire(e, nil)
}
