// Package animation is the property-animation engine that presets and
// easing curves plug into.
//
// # Core Components
//
//   - [Ticker]: frame callback primitive, driven once per display refresh by
//     [StepTickers].
//
//   - [ValueAnimator]: plays an ordered list of keyframe values through an
//     [Evaluator] and hands each computed value to a setter.
//
//   - [AnimatorSet]: groups value animators under one duration, start delay,
//     interpolator and listener list, and owns the Idle → Delayed → Running →
//     Completed/Cancelled lifecycle.
//
//   - Interpolators: functions such as [LinearCurve] and
//     [AccelerateDecelerate] that reshape the overall fraction.
//
// # Threading
//
// All starts, cancels and frame steps are expected on one goroutine (the UI
// loop). The ticker registry is guarded so a frame source running elsewhere
// cannot corrupt it, but callbacks themselves are not synchronised.
//
// # Basic Usage
//
//	fade := animation.NewValueAnimator(func(v float64) { node.SetProperty(view.Alpha, v) }, 0, 1)
//	set := animation.NewAnimatorSet()
//	set.PlayTogether(fade)
//	set.Duration = 300 * time.Millisecond
//	set.Start()
//
//	// once per frame
//	animation.StepTickers()
package animation

import (
	"slices"
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers []*Ticker
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimatorSet]. The
// callback receives the elapsed time since Start was called. Tickers are
// stepped in the order they were started.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers = append(activeTickers, t)
	tickerMu.Unlock()
}

// Stop deactivates the ticker. Once Stop returns the callback is not
// invoked again, even by a StepTickers call already in progress.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	if i := slices.Index(activeTickers, t); i >= 0 {
		activeTickers = slices.Delete(activeTickers, i, i+1)
	}
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame by whatever owns the display loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks can start or stop tickers without holding the lock.
	tickers := slices.Clone(activeTickers)
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
