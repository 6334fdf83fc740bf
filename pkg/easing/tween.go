package easing

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenFunc adapts the curve to gween's float32 signature so it can drive
// frame-stepped tweens.
func (c Curve) TweenFunc() ease.TweenFunc {
	fn := c.Func()
	return func(t, b, change, d float32) float32 {
		return float32(fn(float64(t), float64(b), float64(change), float64(d)))
	}
}

// NewTween returns a tween from begin to end over duration, eased by curve.
// Advance it with Update using the same time unit as duration.
func NewTween(curve Curve, begin, end, duration float32) *gween.Tween {
	return gween.New(begin, end, duration, curve.TweenFunc())
}
