package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/motion/pkg/rebound"
	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/go-drift/motion/pkg/view"
)

var (
	// flags for spring
	springPressed float64
	springHold    time.Duration
	springOutside bool
	springEvery   int
)

var springCmd = &cobra.Command{
	Use:   "spring",
	Short: "simulate press feedback on a view",
	Long: `press the simulated view, hold it, then release it while the spring
scales it down and back. --outside releases the touch beyond the view, which
springs back without a click.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		pressed := cfg.Pressed
		if cmd.Flags().Changed("pressed") {
			pressed = springPressed
		}
		if pressed < 0 || pressed > 1 {
			return fmt.Errorf("--pressed must be within [0, 1] (got %v)", pressed)
		}
		if springEvery < 1 {
			springEvery = 1
		}

		out := cmd.OutOrStdout()
		tester := motiontest.NewFrameTester()
		defer tester.Cleanup()

		_, target := cfg.Scene()
		r := rebound.New(cfg.Spring)
		frames := 0
		r.OnUpdate(func(v float64) {
			frames++
			if frames%springEvery != 0 {
				return
			}
			fmt.Fprintf(out, "%s value=%.4f scale=%.4f\n",
				dimStyle.Render(fmt.Sprintf("%6dms", tester.Clock().Elapsed().Milliseconds())),
				v, target.Property(view.ScaleX))
		})

		fb := rebound.NewTouchFeedback(r, func(view.View) {
			fmt.Fprintln(out, eventStyle.Render("click"))
		})
		fb.Pressed = pressed

		c := r.Config()
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("spring fps=%d frequency=%g damping=%g pressed=%g",
			c.FPS, c.Frequency, c.Damping, pressed)))

		g := target.Geometry()
		fmt.Fprintln(out, eventStyle.Render("down"))
		fb.OnTouch(target, rebound.TouchEvent{Action: rebound.ActionDown, X: float64(g.Width / 2), Y: float64(g.Height / 2)})
		tester.Advance(springHold)

		up := rebound.TouchEvent{Action: rebound.ActionUp, X: float64(g.Width / 2), Y: float64(g.Height / 2)}
		if springOutside {
			up.X = float64(g.Width * 2)
		}
		fmt.Fprintln(out, eventStyle.Render("up"))
		fb.OnTouch(target, up)
		if err := tester.PumpAndSettle(10 * time.Second); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s scale=%.4f\n", dimStyle.Render("at rest"), target.Property(view.ScaleX))
		return nil
	},
}

func init() {
	springCmd.Flags().Float64VarP(&springPressed, "pressed", "p", rebound.DefaultPressedValue, "spring value held while pressed")
	springCmd.Flags().DurationVar(&springHold, "hold", 400*time.Millisecond, "how long the press is held")
	springCmd.Flags().BoolVar(&springOutside, "outside", false, "release outside the view")
	springCmd.Flags().IntVar(&springEvery, "every", 3, "print every nth frame")
	rootCmd.AddCommand(springCmd)
}
