// Package easing provides the classic Penner easing curves and an evaluator
// that plugs them into animation timelines.
//
// A [Curve] names one of 25 curves. Each resolves to a pure [Func]
// of (elapsed, start, change, duration). A [Method] binds a curve to a
// duration and a list of observers and implements [animation.Evaluator], so
// a curve can replace straight-line interpolation on any value animator:
//
//	fall := animation.NewValueAnimator(view.Setter(node, view.TranslationY), 0, 400)
//	easing.BounceEaseOut.Glide(1200, fall)
//
// Observers see every raw sample, which is how trace recorders draw a curve
// as it plays.
package easing

import (
	"fmt"
	"strings"

	"github.com/go-drift/motion/pkg/errors"
)

// Curve identifies a named easing curve.
type Curve int

const (
	BackEaseIn Curve = iota
	BackEaseInOut
	BackEaseOut
	BounceEaseIn
	BounceEaseInOut
	BounceEaseOut
	CircEaseIn
	CircEaseInOut
	CircEaseOut
	ElasticEaseIn
	ElasticEaseInOut
	ElasticEaseOut
	ExpoEaseIn
	ExpoEaseInOut
	ExpoEaseOut
	Linear
	QuadEaseIn
	QuadEaseInOut
	QuadEaseOut
	QuintEaseIn
	QuintEaseInOut
	QuintEaseOut
	SineEaseIn
	SineEaseInOut
	SineEaseOut

	curveCount
)

var curveNames = [curveCount]string{
	BackEaseIn:       "BACK_EASE_IN",
	BackEaseInOut:    "BACK_EASE_IN_OUT",
	BackEaseOut:      "BACK_EASE_OUT",
	BounceEaseIn:     "BOUNCE_EASE_IN",
	BounceEaseInOut:  "BOUNCE_EASE_IN_OUT",
	BounceEaseOut:    "BOUNCE_EASE_OUT",
	CircEaseIn:       "CIRC_EASE_IN",
	CircEaseInOut:    "CIRC_EASE_IN_OUT",
	CircEaseOut:      "CIRC_EASE_OUT",
	ElasticEaseIn:    "ELASTIC_EASE_IN",
	ElasticEaseInOut: "ELASTIC_EASE_IN_OUT",
	ElasticEaseOut:   "ELASTIC_EASE_OUT",
	ExpoEaseIn:       "EXPO_EASE_IN",
	ExpoEaseInOut:    "EXPO_EASE_IN_OUT",
	ExpoEaseOut:      "EXPO_EASE_OUT",
	Linear:           "LINEAR",
	QuadEaseIn:       "QUAD_EASE_IN",
	QuadEaseInOut:    "QUAD_EASE_IN_OUT",
	QuadEaseOut:      "QUAD_EASE_OUT",
	QuintEaseIn:      "QUINT_EASE_IN",
	QuintEaseInOut:   "QUINT_EASE_IN_OUT",
	QuintEaseOut:     "QUINT_EASE_OUT",
	SineEaseIn:       "SINE_EASE_IN",
	SineEaseInOut:    "SINE_EASE_IN_OUT",
	SineEaseOut:      "SINE_EASE_OUT",
}

// factory builds a curve's function. Only the back curves read overshoot.
type factory func(overshoot float64) Func

func fixed(fn Func) factory {
	return func(float64) Func { return fn }
}

// Composed curves capture their building blocks when the Func is built.
var factories = [curveCount]factory{
	BackEaseIn:    backEaseIn,
	BackEaseInOut: backEaseInOut,
	BackEaseOut:   backEaseOut,
	BounceEaseIn: func(float64) Func {
		return bounceEaseIn(bounceEaseOut)
	},
	BounceEaseInOut: func(float64) Func {
		return bounceEaseInOut(bounceEaseIn(bounceEaseOut), bounceEaseOut)
	},
	BounceEaseOut:    fixed(bounceEaseOut),
	CircEaseIn:       fixed(circEaseIn),
	CircEaseInOut:    fixed(circEaseInOut),
	CircEaseOut:      fixed(circEaseOut),
	ElasticEaseIn:    fixed(elasticEaseIn),
	ElasticEaseInOut: fixed(elasticEaseInOut),
	ElasticEaseOut:   fixed(elasticEaseOut),
	ExpoEaseIn:       fixed(expoEaseIn),
	ExpoEaseInOut:    fixed(expoEaseInOut),
	ExpoEaseOut:      fixed(expoEaseOut),
	Linear:           fixed(linear),
	QuadEaseIn:       fixed(quadEaseIn),
	QuadEaseInOut:    fixed(quadEaseInOut),
	QuadEaseOut:      fixed(quadEaseOut),
	QuintEaseIn:      fixed(quintEaseIn),
	QuintEaseInOut:   fixed(quintEaseInOut),
	QuintEaseOut:     fixed(quintEaseOut),
	SineEaseIn:       fixed(sineEaseIn),
	SineEaseInOut:    fixed(sineEaseInOut),
	SineEaseOut:      fixed(sineEaseOut),
}

// Curves returns every curve in declaration order.
func Curves() []Curve {
	out := make([]Curve, curveCount)
	for i := range out {
		out[i] = Curve(i)
	}
	return out
}

// Valid reports whether c names a known curve.
func (c Curve) Valid() bool {
	return c >= 0 && c < curveCount
}

// String returns the curve's constant-style name, e.g. "BOUNCE_EASE_OUT".
func (c Curve) String() string {
	if c.Valid() {
		return curveNames[c]
	}
	return fmt.Sprintf("Curve(%d)", int(c))
}

// Overshoots reports whether the curve accepts an overshoot constant.
func (c Curve) Overshoots() bool {
	return c == BackEaseIn || c == BackEaseInOut || c == BackEaseOut
}

// Func returns the curve's easing function with [DefaultOvershoot].
// It panics if c is not a valid curve.
func (c Curve) Func() Func {
	return c.FuncWithOvershoot(DefaultOvershoot)
}

// FuncWithOvershoot returns the curve's easing function. The overshoot is
// used by the back curves and ignored by the rest.
// It panics if c is not a valid curve.
func (c Curve) FuncWithOvershoot(overshoot float64) Func {
	if !c.Valid() {
		panic(fmt.Sprintf("easing: invalid curve %d", int(c)))
	}
	return factories[c](overshoot)
}

// Calculate evaluates the curve once with default parameters.
func (c Curve) Calculate(t, b, change, d float64) float64 {
	return c.Func()(t, b, change, d)
}

// ParseCurve resolves a curve name. It accepts the constant form
// ("BOUNCE_EASE_OUT"), kebab case ("bounce-ease-out") and the Go
// identifier ("BounceEaseOut"), case-insensitively.
func ParseCurve(name string) (Curve, error) {
	key := NormalizeName(name)
	for i, n := range curveNames {
		if NormalizeName(n) == key {
			return Curve(i), nil
		}
	}
	return 0, &errors.ParseError{What: "curve", Name: name}
}

// NormalizeName folds a catalog name for matching: case, surrounding space
// and the separators '_', '-' and ' ' are ignored, so "BOUNCE_EASE_OUT",
// "bounce-ease-out" and "BounceEaseOut" compare equal.
func NormalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}
