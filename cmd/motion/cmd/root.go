// Package cmd implements the motion CLI commands.
//
// The root command carries the global --config flag; subcommands list the
// catalogs, sample and trace easing curves, and simulate technique runs and
// the press spring without a display.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/motion/cmd/motion/internal/config"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "motion",
	Short: "easing curves and view animation techniques",
	Long: `motion explores a catalog of easing curves and composite view animations.

Curves can be sampled as numbers or traced to a PNG. Techniques are played
on a simulated view with a fake clock, printing the animated properties
frame by frame, or previewed live in the terminal.

Use "motion <command> --help" for more information about a command.`,
	Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.FileName, "path to the motion.yaml config")
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Resolved, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
