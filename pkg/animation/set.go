package animation

import (
	"fmt"
	"slices"
	"time"
)

// DefaultDuration is the duration of a new [AnimatorSet].
const DefaultDuration = 300 * time.Millisecond

// Infinite as a RepeatCount repeats until cancelled.
const Infinite = -1

// AnimationStatus represents the current state of an [AnimatorSet].
//
// The status follows this state machine:
//
//	        Start()              delay elapsed           last frame
//	Idle ───────────► Delayed ──────────────► Running ──────────────► Completed
//	                     │                       │
//	                     └──────── Cancel() ─────┴──────────────────► Cancelled
//
// Start with no delay moves straight to Running. A finished set may be
// started again.
type AnimationStatus int

const (
	// StatusIdle means the set has never been started.
	StatusIdle AnimationStatus = iota
	// StatusDelayed means Start was called and the start delay has not elapsed.
	StatusDelayed
	// StatusRunning means frames are being applied.
	StatusRunning
	// StatusCompleted means the timelines ran to their end.
	StatusCompleted
	// StatusCancelled means Cancel stopped the set early.
	StatusCancelled
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusDelayed:
		return "delayed"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// RepeatMode selects what happens at a repeat boundary.
type RepeatMode int

const (
	// RepeatRestart plays every iteration from the first keyframe.
	RepeatRestart RepeatMode = iota
	// RepeatReverse alternates direction on every iteration.
	RepeatReverse
)

// Listener receives lifecycle events from an [AnimatorSet].
type Listener interface {
	OnAnimationStart(set *AnimatorSet)
	OnAnimationEnd(set *AnimatorSet)
	OnAnimationCancel(set *AnimatorSet)
	OnAnimationRepeat(set *AnimatorSet)
}

// ListenerFuncs implements [Listener] with optional function fields.
// Nil fields are skipped.
type ListenerFuncs struct {
	Start  func(*AnimatorSet)
	End    func(*AnimatorSet)
	Cancel func(*AnimatorSet)
	Repeat func(*AnimatorSet)
}

func (l ListenerFuncs) OnAnimationStart(s *AnimatorSet) {
	if l.Start != nil {
		l.Start(s)
	}
}

func (l ListenerFuncs) OnAnimationEnd(s *AnimatorSet) {
	if l.End != nil {
		l.End(s)
	}
}

func (l ListenerFuncs) OnAnimationCancel(s *AnimatorSet) {
	if l.Cancel != nil {
		l.Cancel(s)
	}
}

func (l ListenerFuncs) OnAnimationRepeat(s *AnimatorSet) {
	if l.Repeat != nil {
		l.Repeat(s)
	}
}

type listenerEntry struct {
	id       int
	listener Listener
}

// AnimatorSet plays a group of [ValueAnimator] timelines together.
//
// Every child shares the set's Duration, StartDelay and Interpolator. The
// interpolator reshapes the overall fraction first; each child then resolves
// its keyframes and evaluator against the reshaped fraction.
//
// Listeners are notified in registration order. A cancelled set notifies
// OnAnimationCancel before OnAnimationEnd.
type AnimatorSet struct {
	// Duration is the length of one iteration.
	Duration time.Duration

	// StartDelay is the wait between Start and the first applied frame.
	StartDelay time.Duration

	// Interpolator reshapes progress. Nil means [AccelerateDecelerate].
	Interpolator Interpolator

	// RepeatCount is the number of extra iterations, or [Infinite].
	RepeatCount int

	// RepeatMode selects restart or reverse at repeat boundaries.
	RepeatMode RepeatMode

	children       []*ValueAnimator
	listeners      []listenerEntry
	nextListenerID int
	status         AnimationStatus
	ticker         *Ticker
	iteration      int
}

// NewAnimatorSet creates an empty set with [DefaultDuration].
func NewAnimatorSet() *AnimatorSet {
	return &AnimatorSet{
		Duration: DefaultDuration,
	}
}

// PlayTogether adds animators that run concurrently for the set's lifetime.
func (s *AnimatorSet) PlayTogether(children ...*ValueAnimator) {
	s.children = append(s.children, children...)
}

// Children returns the animators added so far.
func (s *AnimatorSet) Children() []*ValueAnimator {
	return s.children
}

// AddListener registers l and returns an unsubscribe function.
func (s *AnimatorSet) AddListener(l Listener) func() {
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners = append(s.listeners, listenerEntry{id: id, listener: l})
	return func() {
		s.listeners = slices.DeleteFunc(slices.Clone(s.listeners), func(e listenerEntry) bool {
			return e.id == id
		})
	}
}

// Start begins playback. OnAnimationStart fires before Start returns.
// Starting a set that is already in flight restarts it without firing
// cancel or end events for the abandoned pass.
func (s *AnimatorSet) Start() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	s.iteration = 0
	s.status = StatusDelayed
	s.notify(Listener.OnAnimationStart)
	if s.status != StatusDelayed {
		// A start listener cancelled or ended the set.
		return
	}

	s.ticker = NewTicker(s.tick)
	s.ticker.Start()
	if s.StartDelay <= 0 {
		s.tick(0)
	}
}

func (s *AnimatorSet) tick(elapsed time.Duration) {
	if s.status != StatusDelayed && s.status != StatusRunning {
		return
	}
	if elapsed < s.StartDelay {
		return
	}
	s.status = StatusRunning

	if s.Duration <= 0 {
		s.apply(s.finalFraction())
		s.finish()
		return
	}

	played := elapsed - s.StartDelay
	iteration := int(played / s.Duration)
	if s.RepeatCount != Infinite && iteration > s.RepeatCount {
		s.apply(s.finalFraction())
		s.finish()
		return
	}
	for s.iteration < iteration {
		s.iteration++
		s.notify(Listener.OnAnimationRepeat)
		if s.status != StatusRunning {
			// A repeat listener cancelled or ended the set.
			return
		}
	}

	fraction := float64(played%s.Duration) / float64(s.Duration)
	if s.RepeatMode == RepeatReverse && iteration%2 == 1 {
		fraction = 1 - fraction
	}
	s.apply(fraction)
}

// finalFraction is where the last iteration comes to rest.
func (s *AnimatorSet) finalFraction() float64 {
	if s.RepeatMode == RepeatReverse && s.RepeatCount > 0 && s.RepeatCount%2 == 1 {
		return 0
	}
	return 1
}

func (s *AnimatorSet) apply(fraction float64) {
	interpolate := s.Interpolator
	if interpolate == nil {
		interpolate = AccelerateDecelerate
	}
	eased := interpolate(fraction)
	for _, child := range s.children {
		child.apply(eased)
	}
}

func (s *AnimatorSet) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

func (s *AnimatorSet) finish() {
	s.stopTicker()
	s.status = StatusCompleted
	s.notify(Listener.OnAnimationEnd)
}

// Cancel stops the set where it is. Listeners receive OnAnimationCancel and
// then OnAnimationEnd. No frame is applied after Cancel returns. Cancelling a
// set that is not in flight does nothing.
func (s *AnimatorSet) Cancel() {
	if !s.IsStarted() {
		return
	}
	s.stopTicker()
	s.status = StatusCancelled
	s.notify(Listener.OnAnimationCancel)
	s.notify(Listener.OnAnimationEnd)
}

// End jumps to the final values and finishes the set. A set that was never
// started is started first so listeners see a complete start/end pair.
func (s *AnimatorSet) End() {
	switch s.status {
	case StatusDelayed, StatusRunning:
	default:
		s.Start()
		if !s.IsStarted() {
			return
		}
	}
	s.status = StatusRunning
	s.apply(s.finalFraction())
	s.finish()
}

// Status returns the current animation status.
func (s *AnimatorSet) Status() AnimationStatus {
	return s.status
}

// IsStarted reports whether Start was called and the set has not ended,
// including while the start delay is pending.
func (s *AnimatorSet) IsStarted() bool {
	return s.status == StatusDelayed || s.status == StatusRunning
}

// IsRunning reports whether the set is past its start delay and applying
// frames.
func (s *AnimatorSet) IsRunning() bool {
	return s.status == StatusRunning
}

// TotalDuration returns delay plus every iteration, or -1 for infinite
// repetition.
func (s *AnimatorSet) TotalDuration() time.Duration {
	if s.RepeatCount == Infinite {
		return -1
	}
	return s.StartDelay + s.Duration*time.Duration(s.RepeatCount+1)
}

func (s *AnimatorSet) notify(event func(Listener, *AnimatorSet)) {
	for _, e := range slices.Clone(s.listeners) {
		event(e.listener, s)
	}
}
