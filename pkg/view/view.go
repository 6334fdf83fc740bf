// Package view defines the UI-element abstraction animations act on.
//
// A [View] exposes read-only pixel geometry (size, padding, frame within its
// parent) and a small set of transient visual properties that animations
// write every frame. [Node] is an in-memory implementation used by tests,
// the CLI simulator and anything else without a real widget tree.
package view

import "fmt"

// Property identifies a transient visual property of a view.
type Property int

const (
	Alpha Property = iota
	ScaleX
	ScaleY
	Rotation
	RotationX
	RotationY
	TranslationX
	TranslationY
	PivotX
	PivotY

	propertyCount
)

var propertyNames = [propertyCount]string{
	Alpha:        "alpha",
	ScaleX:       "scaleX",
	ScaleY:       "scaleY",
	Rotation:     "rotation",
	RotationX:    "rotationX",
	RotationY:    "rotationY",
	TranslationX: "translationX",
	TranslationY: "translationY",
	PivotX:       "pivotX",
	PivotY:       "pivotY",
}

// String returns the property's camel-case name, e.g. "translationY".
func (p Property) String() string {
	if p >= 0 && p < propertyCount {
		return propertyNames[p]
	}
	return fmt.Sprintf("Property(%d)", int(p))
}

// Properties returns every property in declaration order.
func Properties() []Property {
	props := make([]Property, propertyCount)
	for i := range props {
		props[i] = Property(i)
	}
	return props
}

// Visibility mirrors the platform's three visibility states.
type Visibility int

const (
	Visible Visibility = iota
	Invisible
	Gone
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// EdgeInsets is padding on each side, in pixels.
type EdgeInsets struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// EdgeInsetsAll creates uniform insets on all sides.
func EdgeInsetsAll(value int) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// Geometry is a snapshot of a view's layout in pixels. Left, Top, Right and
// Bottom are the frame within the parent.
type Geometry struct {
	Width          int
	Height         int
	MeasuredWidth  int
	MeasuredHeight int
	Padding        EdgeInsets
	Left           int
	Top            int
	Right          int
	Bottom         int
}

// Contains reports whether the point (x, y), in parent coordinates, is
// inside the frame.
func (g Geometry) Contains(x, y int) bool {
	return x >= g.Left && x < g.Right && y >= g.Top && y < g.Bottom
}

// View is the element an animation plays on.
//
// Geometry must be read at preparation time: it may change between when an
// animation is chosen and when it is played.
type View interface {
	Geometry() Geometry

	// Parent returns the containing element, or nil for a root.
	Parent() any

	Property(p Property) float64
	SetProperty(p Property, value float64)

	Visibility() Visibility
	SetVisibility(v Visibility)
}

// Group is the container capability some animations need from a parent to
// measure travel distances.
type Group interface {
	Geometry() Geometry
}

// Setter returns a function that writes p on v, for use as an animator's
// update callback.
func Setter(v View, p Property) func(float64) {
	return func(value float64) {
		v.SetProperty(p, value)
	}
}
