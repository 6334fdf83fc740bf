package testing

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/motion/pkg/rebound"
	"github.com/go-drift/motion/pkg/view"
)

func newDetector(log *[]string) *rebound.ReleaseDetector {
	return &rebound.ReleaseDetector{
		OnTouched: func(view.View) { *log = append(*log, "touched") },
		OnReleased: func(_ view.View, clicked bool) {
			if clicked {
				*log = append(*log, "clicked")
			} else {
				*log = append(*log, "released")
			}
		},
	}
}

func TestGestures(t *testing.T) {
	tests := []struct {
		name    string
		gesture func(*FrameTester, TouchHandler, view.View) error
		want    []string
	}{
		{
			name:    "tap",
			gesture: (*FrameTester).Tap,
			want:    []string{"touched", "clicked"},
		},
		{
			name: "tap corner",
			gesture: func(ft *FrameTester, h TouchHandler, v view.View) error {
				return ft.TapAt(h, v, 1, 1)
			},
			want: []string{"touched", "clicked"},
		},
		{
			name: "drag within",
			gesture: func(ft *FrameTester, h TouchHandler, v view.View) error {
				return ft.DragFrom(h, v, 10, 10, 20, 5)
			},
			want: []string{"touched", "clicked"},
		},
		{
			name:    "drag out",
			gesture: (*FrameTester).DragOut,
			want:    []string{"touched", "released"},
		},
		{
			name:    "cancel",
			gesture: (*FrameTester).Cancel,
			want:    []string{"touched", "released"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := NewFrameTesterWithT(t)
			node := view.NewNode(nil, 40, 200, 240, 120)
			var log []string

			if err := tt.gesture(tester, newDetector(&log), node); err != nil {
				t.Fatalf("gesture: %v", err)
			}
			if diff := cmp.Diff(tt.want, log); diff != "" {
				t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGestures_NotConsumed(t *testing.T) {
	tester := NewFrameTesterWithT(t)
	var log []string

	err := tester.Tap(newDetector(&log), nil)
	if err == nil || !strings.Contains(err.Error(), "down at (0,0) was not consumed") {
		t.Errorf("Tap(nil) error = %v, want not consumed", err)
	}
	if len(log) != 0 {
		t.Errorf("callbacks = %v, want none", log)
	}
}

func TestPress_SpringsFeedback(t *testing.T) {
	tester := NewFrameTesterWithT(t)
	node := view.NewNode(nil, 40, 200, 240, 120)

	r := rebound.New(rebound.DefaultConfig())
	clicks := 0
	fb := rebound.NewTouchFeedback(r, func(view.View) { clicks++ })

	var lowest float64 = 1
	r.OnUpdate(func(float64) {
		lowest = min(lowest, node.Property(view.ScaleX))
	})

	if err := tester.Press(fb, node, 500*time.Millisecond); err != nil {
		t.Fatalf("Press: %v", err)
	}
	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatal(err)
	}

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if lowest > 0.9 {
		t.Errorf("lowest scale = %.3f, want the press to shrink the view", lowest)
	}
	if got := node.Property(view.ScaleX); got != 1 {
		t.Errorf("ScaleX at rest = %v, want 1", got)
	}
}
