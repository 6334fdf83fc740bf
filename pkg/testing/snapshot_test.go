package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/technique"
	"github.com/go-drift/motion/pkg/view"
)

func recordRun(t *testing.T, tq technique.Technique) *Snapshot {
	t.Helper()
	tester := NewFrameTesterWithT(t)
	node := view.NewNode(nil, 0, 0, 100, 50)
	rec := tester.Record(node)

	tq.Composer().
		Duration(100 * time.Millisecond).
		Interpolate(animation.LinearCurve).
		PlayOn(node)

	snap, err := rec.Settle(time.Second)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	return snap
}

func TestRecord_FadeIn(t *testing.T) {
	snap := recordRun(t, technique.FadeIn)
	if len(snap.Frames) < 3 {
		t.Fatalf("len(Frames) = %d, want at least 3", len(snap.Frames))
	}

	var mid bool
	for _, f := range snap.Frames {
		if a, ok := f.Properties["alpha"]; ok && a > 0 && a < 1 {
			mid = true
		}
	}
	if !mid {
		t.Error("no frame caught alpha between 0 and 1")
	}

	// fade_in ends at the baseline alpha of 1.
	if last := snap.Last(); len(last.Properties) != 0 {
		t.Errorf("last frame properties = %v, want none", last.Properties)
	}
	if got, want := snap.Last().TimeMS, int64(100); got < want {
		t.Errorf("last frame at %dms, want at least %dms", got, want)
	}
}

func TestRecord_Visibility(t *testing.T) {
	tester := NewFrameTesterWithT(t)
	node := view.NewNode(nil, 0, 0, 100, 50)
	rec := tester.Record(node)

	node.SetVisibility(view.Invisible)
	rec.Capture()

	if got, want := rec.Snapshot().Last().Visibility, view.Invisible.String(); got != want {
		t.Errorf("Visibility = %q, want %q", got, want)
	}
}

func TestRecorder_Advance(t *testing.T) {
	tester := NewFrameTesterWithT(t)
	node := view.NewNode(nil, 0, 0, 100, 50)
	rec := tester.Record(node)

	rec.Advance(40 * time.Millisecond)

	snap := rec.Snapshot()
	var times []int64
	for _, f := range snap.Frames {
		times = append(times, f.TimeMS)
	}
	if got, want := len(times), 3; got != want {
		t.Fatalf("frames = %v, want %d", times, want)
	}
	if times[0] != 16 || times[1] != 32 || times[2] != 40 {
		t.Errorf("frame times = %v, want [16 32 40]", times)
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	a := recordRun(t, technique.FadeIn)
	b := recordRun(t, technique.FadeIn)

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical runs, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	a := recordRun(t, technique.FadeIn)
	b := recordRun(t, technique.FadeOut)

	diff := a.Diff(b)
	if diff == "" {
		t.Fatal("expected diff for different runs")
	}
	if !strings.HasPrefix(diff, "--- expected\n+++ actual\n") {
		t.Errorf("diff header missing:\n%s", diff)
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	snap := recordRun(t, technique.Pulse)

	dir := t.TempDir()
	path := filepath.Join(dir, "testdata", "pulse.snapshot.json")

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("snapshot file should exist after UpdateFile")
	}

	// MatchesFile should pass now
	snap.MatchesFile(t, path)
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	snap := recordRun(t, technique.FadeIn)

	// Use a recorder to intercept the Fatal
	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	snap.MatchesFile(sub, "/nonexistent/path/snap.json")

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestSnapshot_MatchesFile_Invalid(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{frames"), 0o644); err != nil {
		t.Fatal(err)
	}

	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	recordRun(t, technique.FadeIn).MatchesFile(sub, path)

	if !failed {
		t.Error("expected MatchesFile to fail for invalid JSON")
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	first := recordRun(t, technique.FadeIn)

	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	if err := first.UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	second := recordRun(t, technique.Shake)

	errored := false
	sub := &errorRecorder{name: t.Name(), onError: func() { errored = true }}
	second.MatchesFile(sub, path)

	if !errored {
		t.Error("expected MatchesFile to report error for mismatch")
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	snap := recordRun(t, technique.FadeOut)

	dir := t.TempDir()
	path := filepath.Join(dir, "update.snapshot.json")

	t.Setenv(UpdateSnapshotsEnv, "1")
	snap.MatchesFile(t, path)

	// File should now exist
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("snapshot file should be created in update mode")
	}
}

// fatalRecorder intercepts Fatalf calls for testing MatchesFile failures.
type fatalRecorder struct {
	name    string
	onFatal func()
}

func (r *fatalRecorder) Fatalf(format string, args ...any) { r.onFatal() }
func (r *fatalRecorder) Errorf(format string, args ...any) {}
func (r *fatalRecorder) Helper()                           {}
func (r *fatalRecorder) Name() string                      { return r.name }

// errorRecorder intercepts Errorf calls for testing MatchesFile mismatches.
type errorRecorder struct {
	name    string
	onError func()
}

func (r *errorRecorder) Fatalf(format string, args ...any) {}
func (r *errorRecorder) Errorf(format string, args ...any) { r.onError() }
func (r *errorRecorder) Helper()                           {}
func (r *errorRecorder) Name() string                      { return r.name }
