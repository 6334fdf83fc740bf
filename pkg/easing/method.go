package easing

import (
	"reflect"
	"slices"

	"github.com/go-drift/motion/pkg/animation"
)

// Observer receives every sample a [Method] computes.
//
// delta is the change between the segment's start and end values, not the
// end value itself. Observers run synchronously on the evaluating goroutine
// and must not call back into the method that notified them.
type Observer interface {
	On(time, value, start, delta, duration float64)
}

// ObserverFunc adapts a function to [Observer].
type ObserverFunc func(time, value, start, delta, duration float64)

// On calls f.
func (f ObserverFunc) On(time, value, start, delta, duration float64) {
	f(time, value, start, delta, duration)
}

type observerEntry struct {
	id       int
	observer Observer
}

// Method evaluates one easing function against a duration, in milliseconds,
// and fans each sample out to observers in registration order.
//
// A Method holds no per-call state: every Evaluate derives its arguments
// from the fraction passed in and the current duration, so repeated calls
// with the same input give the same result and the same notifications.
//
// A Method whose duration is zero or negative never calls its function:
// Evaluate returns end, and observers still see the sample.
type Method struct {
	fn        Func
	duration  float64
	observers []observerEntry
	nextID    int
}

var _ animation.Evaluator = (*Method)(nil)

// NewMethod creates an evaluator for fn over duration milliseconds.
func NewMethod(fn Func, duration float64) *Method {
	return &Method{fn: fn, duration: duration}
}

// Method creates a fresh evaluator for the curve with [DefaultOvershoot].
func (c Curve) Method(duration float64) *Method {
	return NewMethod(c.Func(), duration)
}

// SetDuration changes the duration used by subsequent evaluations.
func (m *Method) SetDuration(duration float64) {
	m.duration = duration
}

// Duration returns the current duration in milliseconds.
func (m *Method) Duration() float64 {
	return m.duration
}

// AddObserver appends o and returns a function that removes this
// registration. Adding the same observer twice notifies it twice.
func (m *Method) AddObserver(o Observer) func() {
	id := m.nextID
	m.nextID++
	m.observers = append(slices.Clip(m.observers), observerEntry{id: id, observer: o})
	return func() {
		m.observers = slices.DeleteFunc(slices.Clone(m.observers), func(e observerEntry) bool {
			return e.id == id
		})
	}
}

// AddObservers appends each observer in order. Nil observers are skipped.
func (m *Method) AddObservers(observers ...Observer) {
	for _, o := range observers {
		if o != nil {
			m.AddObserver(o)
		}
	}
}

// RemoveObserver removes the first registration equal to o and reports
// whether one was found. Observers of non-comparable types (such as
// [ObserverFunc]) never match; use the function returned by AddObserver
// for those.
func (m *Method) RemoveObserver(o Observer) bool {
	if o == nil || !reflect.TypeOf(o).Comparable() {
		return false
	}
	for i, e := range m.observers {
		if reflect.TypeOf(e.observer).Comparable() && e.observer == o {
			m.observers = slices.Delete(slices.Clone(m.observers), i, i+1)
			return true
		}
	}
	return false
}

// ClearObservers removes every observer.
func (m *Method) ClearObservers() {
	m.observers = nil
}

// ObserverCount returns the number of registrations.
func (m *Method) ObserverCount() int {
	return len(m.observers)
}

// Calculate evaluates the function directly, without notifying observers.
func (m *Method) Calculate(t, b, c, d float64) float64 {
	return m.fn(t, b, c, d)
}

// Evaluate maps a fraction of the duration onto the curve between start and
// end, notifies observers with the raw sample and returns the eased value.
// A method with no duration jumps straight to end.
func (m *Method) Evaluate(fraction, start, end float64) float64 {
	t := m.duration * fraction
	b := start
	c := end - start
	d := m.duration
	result := end
	if d > 0 {
		result = m.fn(t, b, c, d)
	}
	for _, e := range m.observers {
		e.observer.On(t, result, b, c, d)
	}
	return result
}

// Glide installs a fresh [Method] for the curve on animator, with the given
// observers, and returns the animator.
func (c Curve) Glide(duration float64, animator *animation.ValueAnimator, observers ...Observer) *animation.ValueAnimator {
	m := c.Method(duration)
	m.AddObservers(observers...)
	animator.Evaluator = m
	return animator
}
