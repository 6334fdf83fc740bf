package rebound

import "github.com/go-drift/motion/pkg/view"

// DefaultPressedValue is the spring value held while a view is pressed.
const DefaultPressedValue = 0.25

// TouchAction is the phase of a touch event.
type TouchAction int

const (
	ActionDown TouchAction = iota
	ActionMove
	ActionUp
	ActionCancel
)

func (a TouchAction) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// TouchEvent is a pointer event in the view's local coordinates.
type TouchEvent struct {
	Action TouchAction
	X, Y   float64
}

// ReleaseDetector reduces a touch sequence to a press and a release.
//
// The view's frame is recorded on down. An up whose position falls outside
// that frame, or a cancel, is a release without a click.
type ReleaseDetector struct {
	OnTouched  func(v view.View)
	OnReleased func(v view.View, clicked bool)

	frame   view.Geometry
	pressed bool
}

// OnTouch handles one event and reports whether it was consumed.
func (d *ReleaseDetector) OnTouch(v view.View, e TouchEvent) bool {
	if v == nil {
		return false
	}
	switch e.Action {
	case ActionDown:
		d.frame = v.Geometry()
		d.pressed = true
		if d.OnTouched != nil {
			d.OnTouched(v)
		}
	case ActionUp:
		g := v.Geometry()
		clicked := !d.pressed || d.frame.Contains(g.Left+int(e.X), g.Top+int(e.Y))
		d.release(v, clicked)
	case ActionCancel:
		d.release(v, false)
	}
	return true
}

func (d *ReleaseDetector) release(v view.View, clicked bool) {
	d.pressed = false
	if d.OnReleased != nil {
		d.OnReleased(v, clicked)
	}
}

// TouchFeedback springs a view down while pressed and back on release,
// calling OnClick for releases inside the view.
type TouchFeedback struct {
	ReleaseDetector

	// Pressed is the spring value held during a press.
	Pressed float64
	// OnClick runs after the release spring starts.
	OnClick func(v view.View)

	rebound *Rebound
}

// NewTouchFeedback creates feedback driven by r, or by [Default] when r is
// nil.
func NewTouchFeedback(r *Rebound, onClick func(v view.View)) *TouchFeedback {
	t := &TouchFeedback{
		Pressed: DefaultPressedValue,
		OnClick: onClick,
		rebound: r,
	}
	t.OnTouched = func(v view.View) {
		t.spring().SetEndValue(t.Pressed, v)
	}
	t.OnReleased = func(v view.View, clicked bool) {
		t.spring().SetEndValue(0, v)
		if clicked && t.OnClick != nil {
			t.OnClick(v)
		}
	}
	return t
}

func (t *TouchFeedback) spring() *Rebound {
	if t.rebound == nil {
		return Default()
	}
	return t.rebound
}
