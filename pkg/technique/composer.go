package technique

import (
	"slices"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/view"
)

// Composer configures a technique before it is played. Every method returns
// a modified copy and leaves the receiver untouched.
type Composer struct {
	technique Technique
	opts      Options
}

// Technique returns the technique the composer plays.
func (c Composer) Technique() Technique {
	return c.technique
}

// Duration sets the iteration length.
func (c Composer) Duration(d time.Duration) Composer {
	c.opts.Duration = d
	return c
}

// Delay sets the wait before the first frame.
func (c Composer) Delay(d time.Duration) Composer {
	c.opts.Delay = d
	return c
}

// Interpolate sets the progress interpolator for every timeline.
func (c Composer) Interpolate(i animation.Interpolator) Composer {
	c.opts.Interpolator = i
	return c
}

// Repeat plays count extra iterations, or forever with [animation.Infinite].
func (c Composer) Repeat(count int, mode animation.RepeatMode) Composer {
	c.opts.RepeatCount = count
	c.opts.RepeatMode = mode
	return c
}

// WithListener adds an engine listener.
func (c Composer) WithListener(l animation.Listener) Composer {
	return c.with(EngineListener{Listener: l})
}

// WithHooks adds a group of run callbacks.
func (c Composer) WithHooks(h Hooks) Composer {
	return c.with(h)
}

// OnStart adds a callback for the start event.
func (c Composer) OnStart(cb Callback) Composer {
	return c.with(Hooks{Start: cb})
}

// OnEnd adds a callback for the end event, which also follows a cancel.
func (c Composer) OnEnd(cb Callback) Composer {
	return c.with(Hooks{End: cb})
}

// OnCancel adds a callback for cancellation.
func (c Composer) OnCancel(cb Callback) Composer {
	return c.with(Hooks{Cancel: cb})
}

// OnRepeat adds a callback for each repeat boundary.
func (c Composer) OnRepeat(cb Callback) Composer {
	return c.with(Hooks{Repeat: cb})
}

// ShowOnStart makes the target visible when the run starts.
func (c Composer) ShowOnStart() Composer {
	return c.OnStart(func(a *SimpleAnimator) {
		a.Target().SetVisibility(view.Visible)
	})
}

// HideOnFinished removes the target from layout when the run ends.
func (c Composer) HideOnFinished() Composer {
	return c.OnEnd(func(a *SimpleAnimator) {
		a.Target().SetVisibility(view.Gone)
	})
}

func (c Composer) with(l Listener) Composer {
	c.opts.Listeners = append(slices.Clone(c.opts.Listeners), l)
	return c
}

// Options returns a copy of the accumulated configuration.
func (c Composer) Options() Options {
	opts := c.opts
	opts.Listeners = slices.Clone(opts.Listeners)
	return opts
}

// PlayOn starts a fresh run on target and returns its controller.
func (c Composer) PlayOn(target view.View) Controller {
	return NewSimpleAnimator(c.technique, c.Options()).Start(target)
}
