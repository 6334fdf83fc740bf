package animation

import "fmt"

// Evaluator computes the value between start and end for a fraction of one
// keyframe segment. Custom evaluators (for example easing methods) replace
// the default straight-line interpolation.
type Evaluator interface {
	Evaluate(fraction, start, end float64) float64
}

// EvaluatorFunc adapts a plain function to [Evaluator].
type EvaluatorFunc func(fraction, start, end float64) float64

// Evaluate calls f.
func (f EvaluatorFunc) Evaluate(fraction, start, end float64) float64 {
	return f(fraction, start, end)
}

// LinearEvaluator interpolates on a straight line between segment values.
var LinearEvaluator Evaluator = EvaluatorFunc(func(fraction, start, end float64) float64 {
	return LerpFloat64(start, end, fraction)
})

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// KeyframeValue resolves fraction against keyframes spaced evenly over
// [0, 1]. The evaluator receives the fraction local to the active segment
// along with that segment's start and end values. Fractions outside [0, 1]
// (produced by overshooting interpolators) extrapolate the first or last
// segment.
//
// KeyframeValue panics if values has fewer than two entries.
func KeyframeValue(values []float64, fraction float64, ev Evaluator) float64 {
	if len(values) < 2 {
		panic(fmt.Sprintf("animation: need at least two keyframes, got %d", len(values)))
	}
	if ev == nil {
		ev = LinearEvaluator
	}
	segments := len(values) - 1
	scaled := fraction * float64(segments)
	i := int(scaled)
	switch {
	case scaled < 0:
		i = 0
	case i >= segments:
		i = segments - 1
	}
	return ev.Evaluate(scaled-float64(i), values[i], values[i+1])
}
