package technique_test

import (
	stderrors "errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/easing"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/technique"
	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/go-drift/motion/pkg/view"
)

// newScene returns a 240x120 node at (40, 200) with 8px padding inside a
// 320x640 parent.
func newScene() (*view.Node, *view.Node) {
	parent := view.NewNode(nil, 0, 0, 320, 640)
	node := view.NewNode(parent, 40, 200, 240, 120)
	node.SetPadding(view.EdgeInsetsAll(8))
	return node, parent
}

func timeline(t *testing.T, c technique.Controller, p view.Property) *animation.ValueAnimator {
	t.Helper()
	for _, child := range c.Animator().AnimatorSet().Children() {
		if child.Name == p.String() {
			return child
		}
	}
	t.Fatalf("no %s timeline", p)
	return nil
}

func expectMotionPanic(t *testing.T, kind errors.ErrorKind) {
	t.Helper()
	r := recover()
	err, ok := r.(*errors.MotionError)
	if !ok {
		t.Fatalf("recovered %T (%v), want *errors.MotionError", r, r)
	}
	if err.Kind != kind {
		t.Errorf("Kind = %v, want %v", err.Kind, kind)
	}
}

func TestCatalog(t *testing.T) {
	all := technique.All()
	if got, want := len(all), 64; got != want {
		t.Fatalf("len(All()) = %d, want %d", got, want)
	}

	counts := map[technique.Family]int{}
	for _, tech := range all {
		counts[tech.Family()]++
		back, err := technique.ParseTechnique(tech.String())
		if err != nil || back != tech {
			t.Errorf("ParseTechnique(%q) = %v, %v", tech, back, err)
		}
	}
	want := map[technique.Family]int{
		technique.Attention:    10,
		technique.Special:      6,
		technique.BounceFamily: 5,
		technique.Fade:         10,
		technique.Flip:         4,
		technique.RotateFamily: 11,
		technique.Slide:        8,
		technique.Zoom:         10,
	}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("family sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTechnique(t *testing.T) {
	tests := []struct {
		name string
		want technique.Technique
	}{
		{"SLIDE_IN_LEFT", technique.SlideInLeft},
		{"slide-in-left", technique.SlideInLeft},
		{"SlideInLeft", technique.SlideInLeft},
		{"flip_in_y", technique.FlipInY},
	}
	for _, tt := range tests {
		got, err := technique.ParseTechnique(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseTechnique(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}

	_, err := technique.ParseTechnique("moonwalk")
	var pe *errors.ParseError
	if !stderrors.As(err, &pe) || pe.What != "technique" {
		t.Errorf("ParseTechnique(moonwalk) error = %v, want ParseError", err)
	}
}

func TestComposerRoundTrip(t *testing.T) {
	tester := motiontest.NewFrameTesterWithT(t)
	node, _ := newScene()

	ctrl := technique.FadeIn.Composer().
		Duration(1200 * time.Millisecond).
		Delay(100 * time.Millisecond).
		PlayOn(node)

	if !ctrl.IsStarted() {
		t.Error("IsStarted() = false right after PlayOn")
	}
	if ctrl.IsRunning() {
		t.Error("IsRunning() = true during the delay")
	}

	tester.Advance(150 * time.Millisecond)
	if !ctrl.IsRunning() {
		t.Error("IsRunning() = false after the delay")
	}

	tester.Advance(1150 * time.Millisecond)
	if ctrl.IsRunning() || ctrl.IsStarted() {
		t.Errorf("IsRunning() = %v, IsStarted() = %v after completion; want false, false",
			ctrl.IsRunning(), ctrl.IsStarted())
	}
	if got := ctrl.Status(); got != animation.StatusCompleted {
		t.Errorf("Status() = %v, want %v", got, animation.StatusCompleted)
	}
	if got := node.Property(view.Alpha); got != 1 {
		t.Errorf("alpha = %v, want 1", got)
	}
}

func TestStopReset(t *testing.T) {
	tester := motiontest.NewFrameTesterWithT(t)
	node, _ := newScene()

	var events []string
	ctrl := technique.Tada.Composer().
		OnCancel(func(*technique.SimpleAnimator) { events = append(events, "cancel") }).
		OnEnd(func(*technique.SimpleAnimator) { events = append(events, "end") }).
		PlayOn(node)

	tester.Advance(200 * time.Millisecond)
	if node.Property(view.ScaleX) == 1 && node.Property(view.Rotation) == 0 {
		t.Fatal("run did not move the target")
	}

	ctrl.Stop(true)
	if ctrl.IsRunning() {
		t.Error("IsRunning() = true after Stop")
	}
	if diff := cmp.Diff([]string{"cancel", "end"}, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	want := map[view.Property]float64{
		view.Alpha: 1, view.ScaleX: 1, view.ScaleY: 1,
		view.TranslationX: 0, view.TranslationY: 0,
		view.Rotation: 0, view.RotationX: 0, view.RotationY: 0,
		view.PivotX: 120, view.PivotY: 60,
	}
	if diff := cmp.Diff(want, node.Snapshot()); diff != "" {
		t.Errorf("properties after reset (-want +got):\n%s", diff)
	}

	tester.Advance(500 * time.Millisecond)
	if got := node.Property(view.Rotation); got != 0 {
		t.Errorf("rotation changed after Stop: %v", got)
	}
}

func TestStopWithoutReset(t *testing.T) {
	tester := motiontest.NewFrameTesterWithT(t)
	node, _ := newScene()

	ctrl := technique.FadeOut.Composer().Interpolate(animation.LinearCurve).PlayOn(node)
	tester.Advance(500 * time.Millisecond)
	ctrl.Stop(false)

	if got := node.Property(view.Alpha); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("alpha = %v, want 0.5", got)
	}
	if got := ctrl.Status(); got != animation.StatusCancelled {
		t.Errorf("Status() = %v, want %v", got, animation.StatusCancelled)
	}
}

func TestHingeDuration(t *testing.T) {
	motiontest.NewFrameTesterWithT(t)
	node, _ := newScene()

	ctrl := technique.Hinge.Composer().Duration(500 * time.Millisecond).PlayOn(node)
	defer ctrl.Stop(false)

	if got, want := ctrl.Animator().Duration(), 1300*time.Millisecond; got != want {
		t.Errorf("Duration() = %v, want %v", got, want)
	}
	if got, want := ctrl.Animator().AnimatorSet().Duration, 1300*time.Millisecond; got != want {
		t.Errorf("set Duration = %v, want %v", got, want)
	}
	m, ok := timeline(t, ctrl, view.Rotation).Evaluator.(*easing.Method)
	if !ok {
		t.Fatal("rotation timeline is not eased")
	}
	if m.Duration() != 1300 {
		t.Errorf("rotation curve duration = %v, want 1300", m.Duration())
	}
	if got := timeline(t, ctrl, view.PivotX).Values[0]; got != 8 {
		t.Errorf("pivotX = %v, want 8", got)
	}
}

func TestGlidedTimelinesUseRunDuration(t *testing.T) {
	motiontest.NewFrameTesterWithT(t)
	for _, tech := range []technique.Technique{technique.Landing, technique.TakingOff, technique.DropOut} {
		node, _ := newScene()
		ctrl := tech.Composer().Duration(800 * time.Millisecond).PlayOn(node)
		eased := 0
		for _, child := range ctrl.Animator().AnimatorSet().Children() {
			if m, ok := child.Evaluator.(*easing.Method); ok {
				eased++
				if m.Duration() != 800 {
					t.Errorf("%v %s curve duration = %v, want 800", tech, child.Name, m.Duration())
				}
			}
		}
		if eased == 0 {
			t.Errorf("%v has no eased timeline", tech)
		}
		ctrl.Stop(false)
	}
}

func TestGeometryDerivedValues(t *testing.T) {
	motiontest.NewFrameTesterWithT(t)
	tests := []struct {
		tech technique.Technique
		prop view.Property
		want []float64
	}{
		{technique.FadeInUp, view.TranslationY, []float64{30, 0}},
		{technique.FadeOutLeft, view.TranslationX, []float64{0, -60}},
		{technique.StandUp, view.PivotX, []float64{120, 120, 120, 120, 120}},
		{technique.Wave, view.PivotY, []float64{112, 112, 112, 112, 112}},
		{technique.Wobble, view.TranslationX, []float64{0, -60, 48, -36, 24, -12, 0, 0}},
		{technique.RollIn, view.TranslationX, []float64{-224, 0}},
		{technique.BounceInRight, view.TranslationX, []float64{480, -30, 10, 0}},
		{technique.BounceInUp, view.TranslationY, []float64{120, -30, 10, 0}},
		{technique.DropOut, view.TranslationY, []float64{-320, 0}},
		{technique.SlideInLeft, view.TranslationX, []float64{-280, 0}},
		{technique.SlideInUp, view.TranslationY, []float64{440, 0}},
		{technique.SlideOutLeft, view.TranslationX, []float64{0, -280}},
		{technique.SlideOutUp, view.TranslationY, []float64{0, -320}},
		{technique.ZoomInLeft, view.TranslationX, []float64{248, -48, 0}},
		{technique.ZoomInRight, view.TranslationX, []float64{248, -48, 0}},
		{technique.ZoomOutRight, view.TranslationX, []float64{0, -42, 320}},
		{technique.ZoomOutDown, view.TranslationY, []float64{0, -60, 440}},
		{technique.RotateInDownLeft, view.PivotX, []float64{8, 8}},
		{technique.RotateInUpLeft, view.PivotY, []float64{112, 112}},
		{technique.RotateInUpLeft, view.Rotation, []float64{90, 0}},
		{technique.RotateOutUpRight, view.PivotX, []float64{232, 232}},
	}
	for _, tt := range tests {
		t.Run(tt.tech.String()+"/"+tt.prop.String(), func(t *testing.T) {
			node, _ := newScene()
			ctrl := tt.tech.PlayOn(node)
			defer ctrl.Stop(false)

			got := timeline(t, ctrl, tt.prop).Values
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("%s values mismatch (-want +got):\n%s", tt.prop, diff)
			}
		})
	}
}

func TestFirstFrameAppliedOnStart(t *testing.T) {
	motiontest.NewFrameTesterWithT(t)
	node, _ := newScene()
	node.SetGeometry(view.Geometry{Width: 100, Height: 130, MeasuredWidth: 100, MeasuredHeight: 130})

	ctrl := technique.FadeInUp.PlayOn(node)
	defer ctrl.Stop(false)

	if got, want := node.Property(view.TranslationY), 32.0; got != want {
		t.Errorf("translationY = %v, want %v", got, want)
	}
	if got := node.Property(view.Alpha); got != 0 {
		t.Errorf("alpha = %v, want 0", got)
	}
}

func TestParentRequired(t *testing.T) {
	motiontest.NewFrameTesterWithT(t)
	for _, tech := range []technique.Technique{
		technique.SlideInLeft, technique.SlideInRight, technique.SlideInUp,
		technique.SlideOutRight, technique.SlideOutDown,
		technique.ZoomInUp, technique.ZoomOutDown, technique.ZoomOutRight,
	} {
		t.Run(tech.String(), func(t *testing.T) {
			node := view.NewNode(nil, 0, 0, 100, 100)
			defer expectMotionPanic(t, errors.KindGeometry)
			tech.PlayOn(node)
		})
	}
}

func TestParentNotRequired(t *testing.T) {
	motiontest.NewFrameTesterWithT(t)
	node := view.NewNode("not a group", 0, 0, 100, 100)
	ctrl := technique.SlideInDown.PlayOn(node)
	ctrl.Stop(false)
}

func TestRunIsSingleUse(t *testing.T) {
	motiontest.NewFrameTesterWithT(t)
	node, _ := newScene()

	run := technique.FadeIn.Animator()
	ctrl := run.Start(node)
	defer ctrl.Stop(false)

	defer expectMotionPanic(t, errors.KindLifecycle)
	run.Start(node)
}

func TestNilTarget(t *testing.T) {
	motiontest.NewFrameTesterWithT(t)
	var node *view.Node
	tests := []struct {
		name   string
		target view.View
	}{
		{"nil interface", nil},
		{"nil node", node},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer expectMotionPanic(t, errors.KindLifecycle)
			technique.FadeIn.PlayOn(tt.target)
		})
	}
}

func TestStopFromStartHook(t *testing.T) {
	tester := motiontest.NewFrameTesterWithT(t)
	node, _ := newScene()

	ctrl := technique.FadeIn.Composer().
		OnStart(func(a *technique.SimpleAnimator) { a.AnimatorSet().Cancel() }).
		PlayOn(node)

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle after a cancel from the start hook: %v", err)
	}
	if got := ctrl.Status(); got != animation.StatusCancelled {
		t.Errorf("Status() = %v, want cancelled", got)
	}
}

func TestComposerIsImmutable(t *testing.T) {
	noop := func(*technique.SimpleAnimator) {}
	base := technique.Pulse.Composer().Duration(200 * time.Millisecond).OnStart(noop)
	longer := base.Duration(900 * time.Millisecond).OnEnd(noop)
	other := base.OnCancel(noop)

	if got := base.Options(); got.Duration != 200*time.Millisecond || len(got.Listeners) != 1 {
		t.Errorf("base options changed: %+v", got)
	}
	if got := longer.Options(); got.Duration != 900*time.Millisecond || len(got.Listeners) != 2 {
		t.Errorf("longer options = %+v", got)
	}
	h, ok := other.Options().Listeners[1].(technique.Hooks)
	if !ok || h.Cancel == nil || h.End != nil {
		t.Errorf("other second listener = %#v, want cancel hook", other.Options().Listeners[1])
	}
	if got := technique.Pulse.Composer().Options().Duration; got != technique.DefaultRunDuration {
		t.Errorf("default duration = %v, want %v", got, technique.DefaultRunDuration)
	}
}

func TestVisibilityHooksAndOrder(t *testing.T) {
	tester := motiontest.NewFrameTesterWithT(t)
	node, _ := newScene()
	node.SetVisibility(view.Invisible)

	var events []string
	var seen view.Visibility
	ctrl := technique.FadeOut.Composer().
		Duration(100 * time.Millisecond).
		OnStart(func(a *technique.SimpleAnimator) {
			events = append(events, "hook-start")
			seen = a.Target().Visibility()
		}).
		ShowOnStart().
		WithListener(animation.ListenerFuncs{
			Start: func(*animation.AnimatorSet) { events = append(events, "engine-start") },
			End:   func(*animation.AnimatorSet) { events = append(events, "engine-end") },
		}).
		HideOnFinished().
		OnEnd(func(*technique.SimpleAnimator) { events = append(events, "hook-end") }).
		PlayOn(node)

	if seen != view.Invisible {
		t.Errorf("first start hook saw %v, want invisible", seen)
	}
	if got := node.Visibility(); got != view.Visible {
		t.Errorf("visibility after start = %v, want visible", got)
	}

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if got := node.Visibility(); got != view.Gone {
		t.Errorf("visibility after end = %v, want gone", got)
	}
	want := []string{"hook-start", "engine-start", "engine-end", "hook-end"}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if ctrl.IsStarted() {
		t.Error("IsStarted() = true after settling")
	}
}

func TestRepeat(t *testing.T) {
	tester := motiontest.NewFrameTesterWithT(t)
	node, _ := newScene()

	repeats := 0
	ctrl := technique.Flash.Composer().
		Duration(100 * time.Millisecond).
		Repeat(2, animation.RepeatRestart).
		OnRepeat(func(*technique.SimpleAnimator) { repeats++ }).
		PlayOn(node)

	tester.Advance(400 * time.Millisecond)
	if repeats != 2 {
		t.Errorf("repeats = %d, want 2", repeats)
	}
	if ctrl.IsStarted() {
		t.Error("IsStarted() = true after the last iteration")
	}
}

func TestEveryTechniqueSettles(t *testing.T) {
	tester := motiontest.NewFrameTesterWithT(t)
	for _, tech := range technique.All() {
		node, _ := newScene()
		ctrl := tech.Composer().Duration(300 * time.Millisecond).PlayOn(node)
		if err := tester.PumpAndSettle(2 * time.Second); err != nil {
			t.Errorf("%v: %v", tech, err)
			ctrl.Stop(false)
			continue
		}
		for p, v := range node.Snapshot() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("%v left %v = %v", tech, p, v)
			}
		}
	}
}
