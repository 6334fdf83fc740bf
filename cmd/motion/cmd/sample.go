package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/motion/pkg/easing"
	"github.com/go-drift/motion/pkg/trace"
)

var (
	// flags for sample
	sampleSteps    int
	sampleFrom     float64
	sampleTo       float64
	sampleDuration float64

	// flags for trace
	traceOutput string
	traceSteps  int
	traceWidth  int
	traceHeight int
)

var sampleCmd = &cobra.Command{
	Use:   "sample <curve>",
	Short: "print eased values of a curve",
	Long: `evaluate a curve at evenly spaced fractions and print the observed
time, value, start, change and duration of every sample.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		curve, err := easing.ParseCurve(args[0])
		if err != nil {
			return err
		}
		if sampleSteps < 1 {
			return fmt.Errorf("--steps must be at least 1 (got %d)", sampleSteps)
		}

		t := newTable("TIME", "VALUE", "START", "CHANGE", "DURATION")
		m := curve.Method(sampleDuration)
		m.AddObserver(easing.ObserverFunc(func(time, value, start, delta, duration float64) {
			t.Row(
				fmt.Sprintf("%.1f", time),
				fmt.Sprintf("%.4f", value),
				fmt.Sprintf("%g", start),
				fmt.Sprintf("%g", delta),
				fmt.Sprintf("%g", duration),
			)
		}))
		for i := 0; i <= sampleSteps; i++ {
			m.Evaluate(float64(i)/float64(sampleSteps), sampleFrom, sampleTo)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(curve.String()))
		fmt.Fprintln(out, t.Render())
		return nil
	},
}

var traceCmd = &cobra.Command{
	Use:   "trace <curve>",
	Short: "draw a curve to a PNG",
	Long: `sample a curve and draw it inside a frame, scaled to the range of the
recorded values. the image size defaults to the trace section of the config.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		curve, err := easing.ParseCurve(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		width, height := cfg.TraceWidth, cfg.TraceHeight
		if cmd.Flags().Changed("width") {
			width = traceWidth
		}
		if cmd.Flags().Changed("height") {
			height = traceHeight
		}
		if width <= 0 || height <= 0 {
			return fmt.Errorf("image size must be positive (got %dx%d)", width, height)
		}

		path := traceOutput
		if path == "" {
			path = strings.ToLower(curve.String()) + ".png"
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		tr := trace.Sample(curve, traceSteps)
		if err := tr.WritePNG(f, width, height); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}

		lo, hi := tr.Bounds()
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d points, range %.3f..%.3f)\n",
			path, width, height, tr.Len(), lo, hi)
		return nil
	},
}

func init() {
	sampleCmd.Flags().IntVarP(&sampleSteps, "steps", "n", 10, "number of intervals to sample")
	sampleCmd.Flags().Float64Var(&sampleFrom, "from", 0, "start value")
	sampleCmd.Flags().Float64Var(&sampleTo, "to", 1, "end value")
	sampleCmd.Flags().Float64VarP(&sampleDuration, "duration", "d", 1000, "duration in milliseconds")
	rootCmd.AddCommand(sampleCmd)

	traceCmd.Flags().StringVarP(&traceOutput, "output", "o", "", "output file (default <curve>.png)")
	traceCmd.Flags().IntVarP(&traceSteps, "steps", "n", 120, "number of intervals to sample")
	traceCmd.Flags().IntVar(&traceWidth, "width", 0, "image width in pixels")
	traceCmd.Flags().IntVar(&traceHeight, "height", 0, "image height in pixels")
	rootCmd.AddCommand(traceCmd)
}
