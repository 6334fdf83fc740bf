package technique_test

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/technique"
	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/go-drift/motion/pkg/view"
)

// This example shows a configured run driven by a fake frame clock.
func ExampleComposer() {
	tester := motiontest.NewFrameTester()
	defer tester.Cleanup()

	node := view.NewNode(nil, 0, 0, 200, 100)
	ctrl := technique.FadeIn.Composer().
		Duration(300 * time.Millisecond).
		Delay(100 * time.Millisecond).
		OnEnd(func(a *technique.SimpleAnimator) {
			fmt.Printf("%v finished, alpha=%.1f\n", a.Technique(), a.Target().Property(view.Alpha))
		}).
		PlayOn(node)

	fmt.Println("running:", ctrl.IsRunning())
	tester.Advance(500 * time.Millisecond)
	fmt.Println("started:", ctrl.IsStarted())

	// Output:
	// running: false
	// FADE_IN finished, alpha=1.0
	// started: false
}

func ExampleTechnique_Family() {
	for _, t := range []technique.Technique{technique.Shake, technique.Hinge, technique.ZoomOutUp} {
		fmt.Println(t, t.Family())
	}

	// Output:
	// SHAKE attention
	// HINGE special
	// ZOOM_OUT_UP zoom
}
