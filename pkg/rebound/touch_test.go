package rebound_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/motion/pkg/rebound"
	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/go-drift/motion/pkg/view"
)

func TestReleaseDetector(t *testing.T) {
	tests := []struct {
		name   string
		events []rebound.TouchEvent
		want   []string
	}{
		{
			name: "click inside",
			events: []rebound.TouchEvent{
				{Action: rebound.ActionDown, X: 10, Y: 10},
				{Action: rebound.ActionMove, X: 12, Y: 11},
				{Action: rebound.ActionUp, X: 20, Y: 30},
			},
			want: []string{"touched", "released clicked=true"},
		},
		{
			name: "release outside",
			events: []rebound.TouchEvent{
				{Action: rebound.ActionDown, X: 10, Y: 10},
				{Action: rebound.ActionUp, X: 300, Y: 10},
			},
			want: []string{"touched", "released clicked=false"},
		},
		{
			name: "cancel",
			events: []rebound.TouchEvent{
				{Action: rebound.ActionDown, X: 10, Y: 10},
				{Action: rebound.ActionCancel},
			},
			want: []string{"touched", "released clicked=false"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			d := &rebound.ReleaseDetector{
				OnTouched: func(view.View) { got = append(got, "touched") },
				OnReleased: func(_ view.View, clicked bool) {
					if clicked {
						got = append(got, "released clicked=true")
					} else {
						got = append(got, "released clicked=false")
					}
				},
			}
			node := newButton()
			for _, e := range tt.events {
				if !d.OnTouch(node, e) {
					t.Errorf("OnTouch(%v) not consumed", e.Action)
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReleaseDetectorNilView(t *testing.T) {
	var d rebound.ReleaseDetector
	if d.OnTouch(nil, rebound.TouchEvent{Action: rebound.ActionDown}) {
		t.Error("OnTouch(nil) consumed the event")
	}
}

func TestTouchFeedback(t *testing.T) {
	tester := motiontest.NewFrameTesterWithT(t)
	r := rebound.New(rebound.DefaultConfig())
	node := newButton()

	clicks := 0
	fb := rebound.NewTouchFeedback(r, func(v view.View) {
		clicks++
		if r.EndValue() != 0 {
			t.Errorf("EndValue() during click = %v, want 0", r.EndValue())
		}
	})

	fb.OnTouch(node, rebound.TouchEvent{Action: rebound.ActionDown, X: 5, Y: 5})
	if got := r.EndValue(); got != rebound.DefaultPressedValue {
		t.Errorf("EndValue() while pressed = %v, want %v", got, rebound.DefaultPressedValue)
	}
	settle(t, tester)
	if got := node.Property(view.ScaleX); got != 0.875 {
		t.Errorf("pressed scaleX = %v, want 0.875", got)
	}

	fb.OnTouch(node, rebound.TouchEvent{Action: rebound.ActionUp, X: 5, Y: 5})
	settle(t, tester)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if got := node.Property(view.ScaleX); got != 1 {
		t.Errorf("released scaleX = %v, want 1", got)
	}

	fb.Pressed = 0.5
	fb.OnTouch(node, rebound.TouchEvent{Action: rebound.ActionDown, X: 5, Y: 5})
	if got := r.EndValue(); got != 0.5 {
		t.Errorf("EndValue() with custom pressed = %v, want 0.5", got)
	}
	fb.OnTouch(node, rebound.TouchEvent{Action: rebound.ActionCancel})
	settle(t, tester)
	if clicks != 1 {
		t.Errorf("clicks after cancel = %d, want 1", clicks)
	}
}
