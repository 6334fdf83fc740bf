// Package rebound drives press feedback with a damped spring.
//
// A [Rebound] owns one spring and the set of views it currently scales. Each
// frame the spring's value v is mapped to a scale of 1 - v/2 on every target
// that is still attached, so an end value of 0.25 shrinks targets to 87.5%
// and 0 springs them back.
//
// Retargeting replaces the previous target set. Callers that share one
// Rebound therefore interfere with each other; [Default] is a process-wide
// instance for the common case of one pressed control at a time.
//
// The spring is stepped by the animation package's tickers. SetEndValue and
// frame stepping must happen on the goroutine that calls
// [animation.StepTickers].
package rebound

import (
	"math"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/view"
)

// Config tunes the spring.
type Config struct {
	// FPS is the fixed simulation rate.
	FPS int
	// Frequency is the angular frequency of the spring.
	Frequency float64
	// Damping is the damping ratio; below 1 the spring overshoots.
	Damping float64
	// RestThreshold is the distance and speed below which the spring stops.
	RestThreshold float64
}

// DefaultConfig approximates the classic tension 40 / friction 7 spring.
func DefaultConfig() Config {
	return Config{
		FPS:           60,
		Frequency:     15.2,
		Damping:       0.72,
		RestThreshold: 0.001,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.FPS <= 0 {
		c.FPS = d.FPS
	}
	if c.Frequency <= 0 {
		c.Frequency = d.Frequency
	}
	if c.Damping <= 0 {
		c.Damping = d.Damping
	}
	if c.RestThreshold <= 0 {
		c.RestThreshold = d.RestThreshold
	}
	return c
}

// Scale maps a spring value to the scale applied to targets.
func Scale(value float64) float64 {
	return 1 - value*0.5
}

// Attacher is implemented by views that can leave their tree. Detached
// targets are skipped; views without it are always updated.
type Attacher interface {
	Attached() bool
}

func alive(v view.View) bool {
	if v == nil {
		return false
	}
	if a, ok := v.(Attacher); ok {
		return a.Attached()
	}
	return true
}

// Generation identifies one SetEndValue call.
type Generation uint64

type updateEntry struct {
	id int
	fn func(value float64)
}

// Rebound is a spring bound to the views it last targeted.
type Rebound struct {
	config Config
	spring harmonica.Spring
	frame  time.Duration

	pos, vel, end float64
	targets       []view.View
	generation    Generation

	ticker *animation.Ticker
	steps  int

	updates []updateEntry
	nextID  int
}

// New creates a spring at rest at 0.
func New(config Config) *Rebound {
	config = config.withDefaults()
	return &Rebound{
		config: config,
		spring: harmonica.NewSpring(harmonica.FPS(config.FPS), config.Frequency, config.Damping),
		frame:  time.Second / time.Duration(config.FPS),
	}
}

var (
	defaultOnce     sync.Once
	defaultInstance *Rebound
)

// Default returns the shared instance, creating it on first use.
// It is safe to call from any goroutine.
func Default() *Rebound {
	defaultOnce.Do(func() {
		defaultInstance = New(DefaultConfig())
	})
	return defaultInstance
}

// Animate retargets the shared instance.
func Animate(endValue float64, views ...view.View) Generation {
	return Default().SetEndValue(endValue, views...)
}

// Config returns the effective configuration.
func (r *Rebound) Config() Config {
	return r.config
}

// SetEndValue makes views the only targets and springs toward endValue from
// the current value and velocity. It returns the generation now in effect.
func (r *Rebound) SetEndValue(endValue float64, views ...view.View) Generation {
	r.generation++
	r.targets = slices.Clone(views)
	r.end = endValue
	if r.ticker == nil {
		r.steps = 0
		r.ticker = animation.NewTicker(r.tick)
		r.ticker.Start()
	}
	return r.generation
}

// Generation returns the generation of the latest SetEndValue call.
func (r *Rebound) Generation() Generation {
	return r.generation
}

// Current reports whether g is still the latest generation.
func (r *Rebound) Current(g Generation) bool {
	return g == r.generation
}

// Value returns the spring position.
func (r *Rebound) Value() float64 {
	return r.pos
}

// Velocity returns the spring velocity.
func (r *Rebound) Velocity() float64 {
	return r.vel
}

// EndValue returns the value the spring is heading to.
func (r *Rebound) EndValue() float64 {
	return r.end
}

// IsAtRest reports whether the spring has stopped.
func (r *Rebound) IsAtRest() bool {
	return r.ticker == nil
}

// Targets returns the current targets, including detached ones.
func (r *Rebound) Targets() []view.View {
	return slices.Clone(r.targets)
}

// OnUpdate registers fn to receive the spring value after every applied
// frame and returns a function that removes it.
func (r *Rebound) OnUpdate(fn func(value float64)) func() {
	id := r.nextID
	r.nextID++
	r.updates = append(r.updates, updateEntry{id: id, fn: fn})
	return func() {
		r.updates = slices.DeleteFunc(slices.Clone(r.updates), func(e updateEntry) bool {
			return e.id == id
		})
	}
}

// Stop halts the spring where it is.
func (r *Rebound) Stop() {
	if r.ticker != nil {
		r.ticker.Stop()
		r.ticker = nil
	}
}

func (r *Rebound) tick(elapsed time.Duration) {
	due := int(elapsed / r.frame)
	rest := false
	for r.steps < due && !rest {
		r.steps++
		r.pos, r.vel = r.spring.Update(r.pos, r.vel, r.end)
		rest = r.settled()
	}
	if !rest {
		rest = r.settled()
	}
	if rest {
		r.pos, r.vel = r.end, 0
	}
	r.apply()
	if rest {
		r.Stop()
	}
}

func (r *Rebound) settled() bool {
	t := r.config.RestThreshold
	return math.Abs(r.pos-r.end) < t && math.Abs(r.vel) < t
}

func (r *Rebound) apply() {
	scale := Scale(r.pos)
	for _, v := range r.targets {
		if alive(v) {
			v.SetProperty(view.ScaleX, scale)
			v.SetProperty(view.ScaleY, scale)
		}
	}
	for _, e := range slices.Clone(r.updates) {
		e.fn(r.pos)
	}
}
