package technique

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/view"
)

// DefaultRunDuration is the length of a run when none is configured.
const DefaultRunDuration = time.Second

var (
	errReused   = stderrors.New("run already started")
	errNoTarget = stderrors.New("nil target")
)

// Options is the frozen configuration of one run.
type Options struct {
	// Duration of one iteration. Some techniques override it.
	Duration time.Duration

	// Delay before the first frame.
	Delay time.Duration

	// Interpolator reshapes progress. Nil means
	// [animation.AccelerateDecelerate].
	Interpolator animation.Interpolator

	// RepeatCount is the number of extra iterations, or [animation.Infinite].
	RepeatCount int

	// RepeatMode applies when RepeatCount is non-zero.
	RepeatMode animation.RepeatMode

	// Listeners are bound to the run in order when it starts.
	Listeners []Listener
}

// DefaultOptions returns the options a bare [Technique.PlayOn] uses.
func DefaultOptions() Options {
	return Options{Duration: DefaultRunDuration}
}

// Callback receives the run that raised an event.
type Callback func(a *SimpleAnimator)

// Listener is attached to a run when it starts. Use [Hooks] for run-level
// callbacks or [EngineListener] to pass an engine listener through.
type Listener interface {
	bind(a *SimpleAnimator) animation.Listener
}

// Hooks groups run-level callbacks. Nil fields are skipped.
type Hooks struct {
	Start  Callback
	End    Callback
	Cancel Callback
	Repeat Callback
}

func (h Hooks) bind(a *SimpleAnimator) animation.Listener {
	call := func(cb Callback) func(*animation.AnimatorSet) {
		if cb == nil {
			return nil
		}
		return func(*animation.AnimatorSet) { cb(a) }
	}
	return animation.ListenerFuncs{
		Start:  call(h.Start),
		End:    call(h.End),
		Cancel: call(h.Cancel),
		Repeat: call(h.Repeat),
	}
}

// EngineListener passes an [animation.Listener] straight to the run's set.
type EngineListener struct {
	animation.Listener
}

func (l EngineListener) bind(*SimpleAnimator) animation.Listener {
	return l.Listener
}

// SimpleAnimator is one run of a technique against one target. It is
// single-use: Start panics if called twice.
type SimpleAnimator struct {
	technique Technique
	set       *animation.AnimatorSet
	duration  time.Duration
	target    view.View
	started   bool
}

// NewSimpleAnimator creates a run of t configured by opts.
func NewSimpleAnimator(t Technique, opts Options) *SimpleAnimator {
	if !t.Valid() {
		panic(fmt.Sprintf("technique: invalid technique %d", int(t)))
	}
	a := &SimpleAnimator{
		technique: t,
		set:       animation.NewAnimatorSet(),
		duration:  opts.Duration,
	}
	a.set.StartDelay = opts.Delay
	a.set.Interpolator = opts.Interpolator
	a.set.RepeatCount = opts.RepeatCount
	a.set.RepeatMode = opts.RepeatMode
	for _, l := range opts.Listeners {
		if l != nil {
			a.set.AddListener(l.bind(a))
		}
	}
	return a
}

// Technique returns the technique this run plays.
func (a *SimpleAnimator) Technique() Technique {
	return a.technique
}

// Target returns the view the run was started on, or nil before Start.
func (a *SimpleAnimator) Target() view.View {
	return a.target
}

// Duration returns the run's iteration length.
func (a *SimpleAnimator) Duration() time.Duration {
	return a.duration
}

// AnimatorSet exposes the engine set that plays the run's timelines.
func (a *SimpleAnimator) AnimatorSet() *animation.AnimatorSet {
	return a.set
}

// Reset restores the target's transient properties: opaque, unscaled,
// untranslated, unrotated and pivoted at its measured center.
func (a *SimpleAnimator) Reset() {
	if a.target == nil {
		return
	}
	t := a.target
	g := t.Geometry()
	t.SetProperty(view.Alpha, 1)
	t.SetProperty(view.ScaleX, 1)
	t.SetProperty(view.ScaleY, 1)
	t.SetProperty(view.TranslationX, 0)
	t.SetProperty(view.TranslationY, 0)
	t.SetProperty(view.Rotation, 0)
	t.SetProperty(view.RotationY, 0)
	t.SetProperty(view.RotationX, 0)
	t.SetProperty(view.PivotX, float64(g.MeasuredWidth)/2)
	t.SetProperty(view.PivotY, float64(g.MeasuredHeight)/2)
}

// Start binds target, resets it, builds the technique's timelines from its
// current geometry and starts playback. Start listeners fire before it
// returns.
//
// Start panics with a [*errors.MotionError] if the run was already started,
// if target is nil (including a nil *view.Node), or if the technique needs a parent container the target
// does not have.
func (a *SimpleAnimator) Start(target view.View) Controller {
	op := "technique." + a.technique.String()
	if a.started {
		errors.Fail(op, errors.KindLifecycle, errReused)
	}
	if isNil(target) {
		errors.Fail(op, errors.KindLifecycle, errNoTarget)
	}
	a.started = true
	a.target = target

	a.Reset()
	recipes[a.technique](a, target.Geometry())
	a.set.Duration = a.duration
	a.set.Start()
	return Controller{run: a}
}

// isNil catches both a nil interface and a nil view pointer that reports
// itself through IsNil, as [view.Node] does.
func isNil(v view.View) bool {
	if v == nil {
		return true
	}
	n, ok := v.(interface{ IsNil() bool })
	return ok && n.IsNil()
}

// play adds a timeline for p on the target and returns it so a curve can be
// glided onto it.
func (a *SimpleAnimator) play(p view.Property, values ...float64) *animation.ValueAnimator {
	va := animation.NewValueAnimator(view.Setter(a.target, p), values...)
	va.Name = p.String()
	a.set.PlayTogether(va)
	return va
}

// parent returns the geometry of the target's container, failing the run if
// the parent is not a [view.Group].
func (a *SimpleAnimator) parent() view.Geometry {
	p := a.target.Parent()
	g, ok := p.(view.Group)
	if !ok {
		errors.Fail("technique."+a.technique.String(), errors.KindGeometry,
			fmt.Errorf("parent %T is not a view.Group", p))
	}
	return g.Geometry()
}

// millis returns the run duration in milliseconds as easing curves expect.
func (a *SimpleAnimator) millis() float64 {
	return float64(a.duration) / float64(time.Millisecond)
}
