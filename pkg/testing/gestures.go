package testing

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/rebound"
	"github.com/go-drift/motion/pkg/view"
)

// TouchHandler receives touch events for a view, as [rebound.ReleaseDetector]
// and [rebound.TouchFeedback] do.
type TouchHandler interface {
	OnTouch(v view.View, e rebound.TouchEvent) bool
}

// Tap simulates a down and up at the center of v.
func (t *FrameTester) Tap(h TouchHandler, v view.View) error {
	x, y := center(v)
	return t.TapAt(h, v, x, y)
}

// TapAt simulates a down and up at the given view-local position.
func (t *FrameTester) TapAt(h TouchHandler, v view.View, x, y float64) error {
	if err := send(h, v, rebound.ActionDown, x, y); err != nil {
		return err
	}
	return send(h, v, rebound.ActionUp, x, y)
}

// Press simulates a down at the center of v, holds it for hold while frames
// are pumped, then lifts at the same spot.
func (t *FrameTester) Press(h TouchHandler, v view.View, hold time.Duration) error {
	x, y := center(v)
	if err := send(h, v, rebound.ActionDown, x, y); err != nil {
		return err
	}
	t.Advance(hold)
	return send(h, v, rebound.ActionUp, x, y)
}

// DragFrom simulates a down at start, a move by (dx, dy) and an up at the
// end position. All coordinates are view-local.
func (t *FrameTester) DragFrom(h TouchHandler, v view.View, x, y, dx, dy float64) error {
	if err := send(h, v, rebound.ActionDown, x, y); err != nil {
		return err
	}
	if err := send(h, v, rebound.ActionMove, x+dx, y+dy); err != nil {
		return err
	}
	return send(h, v, rebound.ActionUp, x+dx, y+dy)
}

// DragOut presses the center of v and releases it one full width to the
// right, outside the view.
func (t *FrameTester) DragOut(h TouchHandler, v view.View) error {
	x, y := center(v)
	return t.DragFrom(h, v, x, y, float64(v.Geometry().Width), 0)
}

// Cancel simulates a down at the center of v followed by a cancel.
func (t *FrameTester) Cancel(h TouchHandler, v view.View) error {
	x, y := center(v)
	if err := send(h, v, rebound.ActionDown, x, y); err != nil {
		return err
	}
	return send(h, v, rebound.ActionCancel, x, y)
}

func send(h TouchHandler, v view.View, action rebound.TouchAction, x, y float64) error {
	if !h.OnTouch(v, rebound.TouchEvent{Action: action, X: x, Y: y}) {
		return fmt.Errorf("%s at (%g,%g) was not consumed", action, x, y)
	}
	return nil
}

func center(v view.View) (float64, float64) {
	if v == nil {
		return 0, 0
	}
	g := v.Geometry()
	return float64(g.Width) / 2, float64(g.Height) / 2
}
