package app

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Gaurav-Gosain/dropzone/internal/node"
)

// moveTween eases a node from its current position to a destination. Used
// for snap-back after a missed drop and for shuffle scatter.
type moveTween struct {
	node *node.Node
	x    *gween.Tween
	y    *gween.Tween
	toX  int
	toY  int
}

func newMoveTween(n *node.Node, toX, toY int, d time.Duration) *moveTween {
	dur := float32(d.Seconds())
	return &moveTween{
		node: n,
		x:    gween.New(float32(n.X), float32(toX), dur, ease.OutQuad),
		y:    gween.New(float32(n.Y), float32(toY), dur, ease.OutQuad),
		toX:  toX,
		toY:  toY,
	}
}

// Advance steps the tween by dt and moves the node. Reports whether the
// animation finished; the final frame lands exactly on the destination.
func (t *moveTween) Advance(dt time.Duration) bool {
	step := float32(dt.Seconds())
	xv, xDone := t.x.Update(step)
	yv, yDone := t.y.Update(step)
	if xDone && yDone {
		t.node.MoveTo(t.toX, t.toY)
		return true
	}
	t.node.MoveTo(int(math.Round(float64(xv))), int(math.Round(float64(yv))))
	return false
}
