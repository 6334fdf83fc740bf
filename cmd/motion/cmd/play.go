package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/motion/cmd/motion/internal/config"
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/technique"
	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/go-drift/motion/pkg/view"
)

var (
	// flags for play
	playDuration time.Duration
	playDelay    time.Duration
	playFPS      int
	playRepeat   int
	playReverse  bool
	playLimit    time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play <technique>",
	Short: "simulate a technique on a view",
	Long: `play a technique on the simulated view from the config, stepping a fake
clock at --fps and printing every property that differs from its default.

run options come from the defaults section of the config; flags override them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tq, err := technique.ParseTechnique(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if playFPS < 1 {
			return fmt.Errorf("--fps must be at least 1 (got %d)", playFPS)
		}

		c := composerFor(cmd, tq, cfg)
		return simulate(cmd.OutOrStdout(), c, cfg, time.Second/time.Duration(playFPS), playLimit)
	},
}

func init() {
	playCmd.Flags().DurationVarP(&playDuration, "duration", "d", 0, "iteration length (default from config)")
	playCmd.Flags().DurationVar(&playDelay, "delay", 0, "start delay (default from config)")
	playCmd.Flags().IntVar(&playFPS, "fps", 30, "simulated frames per second")
	playCmd.Flags().IntVarP(&playRepeat, "repeat", "r", 0, "extra iterations, -1 for infinite")
	playCmd.Flags().BoolVar(&playReverse, "reverse", false, "alternate direction on repeat")
	playCmd.Flags().DurationVar(&playLimit, "limit", 10*time.Second, "stop the simulation after this long")
	rootCmd.AddCommand(playCmd)
}

func composerFor(cmd *cobra.Command, tq technique.Technique, cfg *config.Resolved) technique.Composer {
	opts := cfg.Options()
	if cmd.Flags().Changed("duration") {
		opts.Duration = playDuration
	}
	if cmd.Flags().Changed("delay") {
		opts.Delay = playDelay
	}
	mode := animation.RepeatRestart
	if playReverse {
		mode = animation.RepeatReverse
	}
	return tq.Composer().
		Duration(opts.Duration).
		Delay(opts.Delay).
		Interpolate(opts.Interpolator).
		Repeat(playRepeat, mode)
}

func simulate(w io.Writer, c technique.Composer, cfg *config.Resolved, frame, limit time.Duration) error {
	tester := motiontest.NewFrameTester()
	defer tester.Cleanup()

	_, target := cfg.Scene()
	defaults := target.Snapshot()
	stamp := func() string {
		ms := tester.Clock().Elapsed().Milliseconds()
		return dimStyle.Render(fmt.Sprintf("%6dms", ms))
	}

	event := func(name string) technique.Callback {
		return func(a *technique.SimpleAnimator) {
			fmt.Fprintf(w, "%s %s\n", stamp(), eventStyle.Render(name))
		}
	}
	c = c.WithHooks(technique.Hooks{
		Start:  event("start"),
		End:    event("end"),
		Cancel: event("cancel"),
		Repeat: event("repeat"),
	})

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s on %dx%d at (%d,%d)",
		c.Technique(), cfg.Target.Width, cfg.Target.Height, cfg.Target.Left, cfg.Target.Top)))

	ctrl := c.PlayOn(target)
	fmt.Fprintf(w, "%s %s\n", stamp(), describe(target, defaults))
	for !done(ctrl) {
		if tester.Clock().Elapsed() >= limit {
			fmt.Fprintf(w, "%s %s\n", stamp(), dimStyle.Render("limit reached"))
			ctrl.Stop(false)
			break
		}
		tester.Clock().Advance(frame)
		tester.Pump()
		fmt.Fprintf(w, "%s %s\n", stamp(), describe(target, defaults))
	}
	fmt.Fprintf(w, "%s after %d frames, run %s\n",
		dimStyle.Render("finished"), tester.Frames(), ctrl.Status())
	return nil
}

func done(ctrl technique.Controller) bool {
	s := ctrl.Status()
	return s == animation.StatusCompleted || s == animation.StatusCancelled
}

func describe(v *view.Node, defaults map[view.Property]float64) string {
	var parts []string
	for _, p := range view.Properties() {
		if val := v.Property(p); val != defaults[p] {
			parts = append(parts, fmt.Sprintf("%s=%.2f", p, val))
		}
	}
	if len(parts) == 0 {
		return dimStyle.Render("(rest)")
	}
	return strings.Join(parts, " ")
}
