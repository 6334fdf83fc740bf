package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

// FrameDuration is the frame interval used by Advance and PumpAndSettle.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: tickers still active")

// FrameTester drives the animation engine with a fake clock so runs can be
// stepped frame by frame without a display loop.
type FrameTester struct {
	clock     *FakeClock
	prevClock animation.Clock
	frames    int
}

// NewFrameTester installs a fake animation clock.
// Call Cleanup() when done, or use NewFrameTesterWithT() instead.
func NewFrameTester() *FrameTester {
	clk := NewFakeClock()
	return &FrameTester{
		clock:     clk,
		prevClock: animation.SetClock(clk),
	}
}

// NewFrameTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewFrameTesterWithT(t testing.TB) *FrameTester {
	tester := NewFrameTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the previous animation clock.
func (t *FrameTester) Cleanup() {
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock for advancing time in tests.
func (t *FrameTester) Clock() *FakeClock {
	return t.clock
}

// Frames returns how many frames have been pumped.
func (t *FrameTester) Frames() int {
	return t.frames
}

// Pump runs a single frame at the current fake time.
func (t *FrameTester) Pump() {
	t.frames++
	animation.StepTickers()
}

// Advance moves the clock forward by d in FrameDuration steps, pumping a
// frame after each step. The last step is shortened so the clock lands
// exactly d later.
func (t *FrameTester) Advance(d time.Duration) {
	t.clock.Step(d, FrameDuration, t.Pump)
}

// PumpAndSettle runs frames until no ticker is active or the timeout is
// reached. Each frame advances the fake clock by FrameDuration.
// Returns ErrSettleTimeout if the engine does not settle within timeout.
func (t *FrameTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !animation.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}
