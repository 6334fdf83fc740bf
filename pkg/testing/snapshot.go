package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/view"
)

// UpdateSnapshotsEnv names the variable that makes MatchesFile rewrite
// golden files instead of comparing against them.
const UpdateSnapshotsEnv = "MOTION_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is the timeline of a view's properties, one entry per frame.
type Snapshot struct {
	Frames []Frame `json:"frames"`
}

// Frame holds the properties that differ from the view's state when
// recording began, rounded to two decimals.
type Frame struct {
	TimeMS     int64              `json:"t"`
	Properties map[string]float64 `json:"props,omitempty"`
	Visibility string             `json:"visibility,omitempty"`
}

// Recorder captures frames of one view against its initial state.
type Recorder struct {
	tester     *FrameTester
	view       view.View
	start      time.Time
	base       map[view.Property]float64
	visibility view.Visibility
	snap       Snapshot
}

// Record starts recording v. The current properties become the baseline.
func (t *FrameTester) Record(v view.View) *Recorder {
	r := &Recorder{
		tester:     t,
		view:       v,
		start:      t.clock.Now(),
		base:       make(map[view.Property]float64),
		visibility: v.Visibility(),
	}
	for _, p := range view.Properties() {
		r.base[p] = v.Property(p)
	}
	return r
}

// Capture appends the view's current state.
func (r *Recorder) Capture() {
	f := Frame{TimeMS: r.tester.clock.Now().Sub(r.start).Milliseconds()}
	for _, p := range view.Properties() {
		if v := round2(r.view.Property(p)); v != round2(r.base[p]) {
			if f.Properties == nil {
				f.Properties = make(map[string]float64)
			}
			f.Properties[p.String()] = v
		}
	}
	if vis := r.view.Visibility(); vis != r.visibility {
		f.Visibility = vis.String()
	}
	r.snap.Frames = append(r.snap.Frames, f)
}

// Advance steps the clock like [FrameTester.Advance], capturing after every
// frame.
func (r *Recorder) Advance(d time.Duration) {
	r.tester.clock.Step(d, FrameDuration, func() {
		r.tester.Pump()
		r.Capture()
	})
}

// Settle captures the current frame, then pumps like
// [FrameTester.PumpAndSettle], capturing after every frame.
func (r *Recorder) Settle(timeout time.Duration) (*Snapshot, error) {
	r.Capture()
	var elapsed time.Duration
	for animation.HasActiveTickers() {
		if elapsed >= timeout {
			return r.Snapshot(), ErrSettleTimeout
		}
		r.tester.clock.Advance(FrameDuration)
		elapsed += FrameDuration
		r.tester.Pump()
		r.Capture()
	}
	return r.Snapshot(), nil
}

// Snapshot returns the frames captured so far.
func (r *Recorder) Snapshot() *Snapshot {
	frames := make([]Frame, len(r.snap.Frames))
	copy(frames, r.snap.Frames)
	return &Snapshot{Frames: frames}
}

// Last returns the final frame, or a zero frame for an empty snapshot.
func (s *Snapshot) Last() Frame {
	if len(s.Frames) == 0 {
		return Frame{}
	}
	return s.Frames[len(s.Frames)-1]
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// MOTION_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
