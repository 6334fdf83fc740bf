// Package testing provides deterministic frame stepping for animation tests.
//
// # Quick Start
//
//	func TestFade(t *testing.T) {
//	    tester := motiontest.NewFrameTesterWithT(t)
//	    ctrl := technique.FadeIn.PlayOn(node)
//
//	    tester.Advance(500 * time.Millisecond)
//	    if !ctrl.IsRunning() {
//	        t.Error("expected run in flight at 500ms")
//	    }
//
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Property Timelines
//
// A Recorder captures every frame of a view as the properties that differ
// from where it started. Compare the result against a golden file:
//
//	rec := tester.Record(node)
//	technique.Shake.PlayOn(node)
//	snap, err := rec.Settle(time.Second)
//	snap.MatchesFile(t, "testdata/shake.snapshot.json")
//
// Run with MOTION_UPDATE_SNAPSHOTS=1 to rewrite golden files.
//
// # Touches
//
// Tap, Press, DragOut and Cancel send touch sequences to anything with an
// OnTouch method, such as a rebound.TouchFeedback.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import motiontest "github.com/go-drift/motion/pkg/testing"
package testing
