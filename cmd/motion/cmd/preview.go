package cmd

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/go-drift/motion/cmd/motion/internal/config"
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/easing"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/technique"
	"github.com/go-drift/motion/pkg/trace"
	"github.com/go-drift/motion/pkg/view"
)

var (
	// flags for preview
	previewFPS  int
	previewLoop bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <technique|curve>",
	Short: "preview a technique or curve live in the terminal",
	Long: `animate a technique on the simulated view, or a curve along a track, in
real time. space restarts, p pauses, q quits.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		subject, err := previewFor(args[0], cfg)
		if err != nil {
			return err
		}
		if previewFPS < 1 {
			return fmt.Errorf("--fps must be at least 1 (got %d)", previewFPS)
		}

		// Panics inside a frame are reported here and printed after the
		// terminal is restored.
		var reports bytes.Buffer
		prev := errors.SetHandler(&errors.LogHandler{Output: &reports})
		defer func() {
			errors.SetHandler(prev)
			if reports.Len() > 0 {
				os.Stderr.Write(reports.Bytes())
			}
		}()

		m := newPreviewModel(subject, time.Second/time.Duration(previewFPS), previewLoop)
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("error running bubble tea: %w", err)
		}
		if fm, ok := final.(previewModel); ok && fm.err != nil {
			return fm.err
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVar(&previewFPS, "fps", 60, "frames per second")
	previewCmd.Flags().BoolVar(&previewLoop, "loop", true, "restart when the animation finishes")
	rootCmd.AddCommand(previewCmd)
}

// subject is something the preview can play.
type subject interface {
	Title() string
	Restart()
	Step()
	Done() bool
	Render(width int) string
}

func previewFor(name string, cfg *config.Resolved) (subject, error) {
	if tq, err := technique.ParseTechnique(name); err == nil {
		return &techniqueSubject{technique: tq, cfg: cfg}, nil
	}
	if c, err := easing.ParseCurve(name); err == nil {
		return &curveSubject{curve: c, duration: cfg.Duration}, nil
	}
	return nil, fmt.Errorf("%q is neither a technique nor a curve", name)
}

type frameMsg time.Time

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type previewModel struct {
	subject  subject
	interval time.Duration
	loop     bool
	paused   bool
	frames   int
	width    int
	err      error
}

func newPreviewModel(s subject, interval time.Duration, loop bool) previewModel {
	return previewModel{subject: s, interval: interval, loop: loop}
}

func (m previewModel) Init() tea.Cmd {
	m.subject.Restart()
	return frameCmd(m.interval)
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "r":
			m.subject.Restart()
			m.frames = 0
		case "p":
			m.paused = !m.paused
		}
		return m, nil

	case frameMsg:
		if m.paused {
			return m, frameCmd(m.interval)
		}
		if err := m.advance(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.frames++
		if m.subject.Done() && m.loop {
			m.subject.Restart()
			m.frames = 0
		}
		return m, frameCmd(m.interval)
	}
	return m, nil
}

func (m previewModel) advance() (err error) {
	defer errors.Recover("preview.frame", func(p *errors.PanicError) {
		err = fmt.Errorf("%s panicked: %v", m.subject.Title(), p.Value)
	})
	m.subject.Step()
	return nil
}

func (m previewModel) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}
	help := "space restart • p pause • q quit"
	if m.paused {
		help = "paused • " + help
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.subject.Title()),
		"",
		m.subject.Render(max(width-2, 10)),
		"",
		dimStyle.Render(fmt.Sprintf("frame %d", m.frames)),
		dimStyle.Render(help),
	)
}

type techniqueSubject struct {
	technique technique.Technique
	cfg       *config.Resolved
	parent    *view.Node
	target    *view.Node
	defaults  map[view.Property]float64
	ctrl      technique.Controller
}

func (s *techniqueSubject) Title() string {
	return fmt.Sprintf("%s (%s)", s.technique, s.technique.Family())
}

func (s *techniqueSubject) Restart() {
	s.ctrl.Stop(false)
	s.parent, s.target = s.cfg.Scene()
	s.defaults = s.target.Snapshot()
	opts := s.cfg.Options()
	s.ctrl = s.technique.Composer().
		Duration(opts.Duration).
		Delay(opts.Delay).
		Interpolate(opts.Interpolator).
		PlayOn(s.target)
}

func (s *techniqueSubject) Step() {
	animation.StepTickers()
}

func (s *techniqueSubject) Done() bool {
	return done(s.ctrl)
}

// Render draws the target as a bar on a track as wide as the parent.
// Position follows translationX, width follows scaleX and the fill
// follows alpha.
func (s *techniqueSubject) Render(width int) string {
	pw := float64(s.parent.Geometry().Width)
	g := s.target.Geometry()
	cols := func(px float64) int {
		return int(math.Round(px / pw * float64(width)))
	}
	scale := s.target.Property(view.ScaleX)
	w := float64(g.Width) * math.Abs(scale)
	center := float64(g.Left) + s.target.Property(view.TranslationX) + float64(g.Width)/2
	from := max(cols(center-w/2), 0)
	to := min(cols(center+w/2), width)

	var bar strings.Builder
	bar.WriteString(strings.Repeat(" ", min(from, width)))
	if to > from && s.target.Visibility() == view.Visible {
		bar.WriteString(strings.Repeat(shade(s.target.Property(view.Alpha)), to-from))
	}
	track := lipgloss.NewStyle().Foreground(inkColor).Render(strings.Repeat("─", width))
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(accentColor).Render(bar.String()),
		track,
		describe(s.target, s.defaults),
		dimStyle.Render(s.ctrl.Status().String()),
	)
}

func shade(alpha float64) string {
	switch {
	case alpha >= 0.875:
		return "█"
	case alpha >= 0.625:
		return "▓"
	case alpha >= 0.375:
		return "▒"
	case alpha > 0.05:
		return "░"
	default:
		return " "
	}
}

type curveSubject struct {
	curve    easing.Curve
	duration time.Duration
	method   *easing.Method
	trace    *trace.Trace
	start    time.Time
	value    float64
	fraction float64
	lo, hi   float64
}

func (s *curveSubject) Title() string {
	return fmt.Sprintf("%s over %s", s.curve, s.duration)
}

func (s *curveSubject) Restart() {
	s.trace = trace.New()
	s.method = s.curve.Method(float64(s.duration.Milliseconds()))
	s.method.AddObserver(s.trace)
	s.start = animation.Now()
	s.fraction, s.value = 0, 0
	s.lo, s.hi = trace.Sample(s.curve, 64).Bounds()
}

func (s *curveSubject) Step() {
	f := 1.0
	if s.duration > 0 {
		f = min(float64(animation.Now().Sub(s.start))/float64(s.duration), 1)
	}
	s.fraction = f
	s.value = s.method.Evaluate(f, 0, 1)
}

func (s *curveSubject) Done() bool {
	return s.fraction >= 1
}

var sparks = []rune("▁▂▃▄▅▆▇█")

// Render draws a dot at the eased position and a sparkline of the values
// seen so far, scaled to the curve's full range.
func (s *curveSubject) Render(width int) string {
	pos := int(math.Round(s.value * float64(width-1)))
	pos = min(max(pos, 0), width-1)
	dot := strings.Repeat(" ", pos) + lipgloss.NewStyle().Foreground(accentColor).Render("●")

	lo, hi := s.lo, s.hi
	line := make([]rune, width)
	for i := range line {
		line[i] = ' '
	}
	for _, p := range s.trace.Points() {
		col := min(int(p.X*float64(width-1)), width-1)
		level := 0
		if hi > lo {
			level = int((p.Y - lo) / (hi - lo) * float64(len(sparks)-1))
		}
		line[col] = sparks[min(max(level, 0), len(sparks)-1)]
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		dot,
		lipgloss.NewStyle().Foreground(inkColor).Render(strings.Repeat("─", width)),
		string(line),
		fmt.Sprintf("t=%.2f value=%.3f", s.fraction, s.value),
	)
}
