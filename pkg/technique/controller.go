package technique

import "github.com/go-drift/motion/pkg/animation"

// Controller is a handle on one started run.
type Controller struct {
	run *SimpleAnimator
}

// IsStarted reports whether the run has started and not ended, including
// while its delay is pending.
func (c Controller) IsStarted() bool {
	return c.run != nil && c.run.set.IsStarted()
}

// IsRunning reports whether the run is past its delay and not ended.
func (c Controller) IsRunning() bool {
	return c.run != nil && c.run.set.IsRunning()
}

// Status returns the run's engine status.
func (c Controller) Status() animation.AnimationStatus {
	if c.run == nil {
		return animation.StatusIdle
	}
	return c.run.set.Status()
}

// Animator returns the controlled run.
func (c Controller) Animator() *SimpleAnimator {
	return c.run
}

// Stop cancels the run. Cancel callbacks fire, then end callbacks, and no
// further frame reaches the target. With reset the target's transient
// properties are restored afterwards.
func (c Controller) Stop(reset bool) {
	if c.run == nil {
		return
	}
	c.run.set.Cancel()
	if reset {
		c.run.Reset()
	}
}
