package animation

// ValueAnimator plays one property timeline: an ordered list of keyframe
// values resolved through an [Evaluator] and delivered to OnUpdate.
//
// A ValueAnimator has no clock of its own. It is driven by the
// [AnimatorSet] it is added to, which supplies the shared duration, delay and
// interpolator.
type ValueAnimator struct {
	// Name labels the animated property for diagnostics (e.g. "alpha").
	Name string

	// Values are the keyframes, spaced evenly over the run. At least two.
	Values []float64

	// Evaluator computes in-segment values. Nil means [LinearEvaluator].
	Evaluator Evaluator

	// OnUpdate receives every computed value.
	OnUpdate func(value float64)
}

// NewValueAnimator creates an animator that feeds values into onUpdate.
func NewValueAnimator(onUpdate func(float64), values ...float64) *ValueAnimator {
	return &ValueAnimator{
		Values:   values,
		OnUpdate: onUpdate,
	}
}

// SetEvaluator replaces the evaluator and returns the animator for chaining
// into [AnimatorSet.PlayTogether].
func (a *ValueAnimator) SetEvaluator(ev Evaluator) *ValueAnimator {
	a.Evaluator = ev
	return a
}

// ValueAt returns the value at an already-interpolated fraction.
func (a *ValueAnimator) ValueAt(fraction float64) float64 {
	return KeyframeValue(a.Values, fraction, a.Evaluator)
}

func (a *ValueAnimator) apply(fraction float64) {
	v := a.ValueAt(fraction)
	if a.OnUpdate != nil {
		a.OnUpdate(v)
	}
}
