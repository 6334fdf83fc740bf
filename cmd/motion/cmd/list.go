package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-drift/motion/pkg/easing"
	"github.com/go-drift/motion/pkg/technique"
)

var listCmd = &cobra.Command{
	Use:       "list [curves|techniques]",
	Short:     "list the easing curves and animation techniques",
	Long:      `list every easing curve and animation technique. pass "curves" or "techniques" to show one catalog.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"curves", "techniques"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		which := ""
		if len(args) == 1 {
			which = args[0]
		}
		if which != "techniques" {
			printCurves(out)
		}
		if which == "" {
			fmt.Fprintln(out)
		}
		if which != "curves" {
			printTechniques(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func printCurves(w io.Writer) {
	t := newTable("CURVE", "OVERSHOOT")
	for _, c := range easing.Curves() {
		t.Row(c.String(), strconv.FormatBool(c.Overshoots()))
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d curves", len(easing.Curves()))))
	fmt.Fprintln(w, t.Render())
}

func printTechniques(w io.Writer) {
	t := newTable("TECHNIQUE", "FAMILY")
	for _, tq := range technique.All() {
		t.Row(tq.String(), tq.Family().String())
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d techniques", len(technique.All()))))
	fmt.Fprintln(w, t.Render())
}
