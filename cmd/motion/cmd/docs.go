package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/motion/cmd/motion/internal/config"
	"github.com/go-drift/motion/pkg/easing"
	"github.com/go-drift/motion/pkg/technique"
	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/go-drift/motion/pkg/trace"
)

var (
	// flags for docs
	docsOut    string
	docsImages bool
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "generate the catalog reference",
	Long: `write markdown reference pages for every curve and technique, with
docusaurus frontmatter, into --out. each curve gets a trace image and each
technique lists the properties it animates on the configured view.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		imgDir := filepath.Join(docsOut, "img")
		if err := os.MkdirAll(imgDir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", imgDir, err)
		}
		if err := writeCategoryFile(docsOut); err != nil {
			return err
		}

		if err := writePage(docsOut, "curves", "Curves", 1, func(w io.Writer) error {
			return writeCurves(w, imgDir, cfg)
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s (%d curves)\n", filepath.Join(docsOut, "curves.md"), len(easing.Curves()))

		if err := writePage(docsOut, "techniques", "Techniques", 2, func(w io.Writer) error {
			return writeTechniques(w, cfg)
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s (%d techniques)\n", filepath.Join(docsOut, "techniques.md"), len(technique.All()))
		return nil
	},
}

func init() {
	docsCmd.Flags().StringVarP(&docsOut, "out", "o", filepath.Join("website", "docs", "reference"), "output directory")
	docsCmd.Flags().BoolVar(&docsImages, "images", true, "render a trace image per curve")
	rootCmd.AddCommand(docsCmd)
}

func writeCategoryFile(dir string) error {
	content := `{
  "label": "Reference",
  "position": 100,
  "link": {
    "type": "generated-index",
    "description": "Every easing curve and animation technique."
  }
}
`
	return os.WriteFile(filepath.Join(dir, "_category_.json"), []byte(content), 0o644)
}

func writePage(dir, id, title string, position int, body func(io.Writer) error) error {
	var b strings.Builder
	fmt.Fprintf(&b, `---
id: %s
title: %s
sidebar_position: %d
---

`, id, title, position)
	if err := body(&b); err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}
	return os.WriteFile(filepath.Join(dir, id+".md"), []byte(b.String()), 0o644)
}

func writeCurves(w io.Writer, imgDir string, cfg *config.Resolved) error {
	fmt.Fprintln(w, "| Curve | Overshoots | Range | Trace |")
	fmt.Fprintln(w, "| --- | --- | --- | --- |")
	for _, c := range easing.Curves() {
		tr := trace.Sample(c, 120)
		lo, hi := tr.Bounds()
		img := ""
		if docsImages {
			name := strings.ToLower(c.String()) + ".png"
			if err := writeTrace(filepath.Join(imgDir, name), tr, cfg.TraceWidth, cfg.TraceHeight); err != nil {
				return err
			}
			img = fmt.Sprintf("![%s](img/%s)", c, name)
		}
		fmt.Fprintf(w, "| `%s` | %t | %.3f to %.3f | %s |\n", c, c.Overshoots(), lo, hi, img)
	}
	return nil
}

func writeTrace(path string, tr *trace.Trace, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tr.WritePNG(f, width, height); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// writeTechniques groups the techniques by family and records one run of
// each to list the properties it moves.
func writeTechniques(w io.Writer, cfg *config.Resolved) error {
	byFamily := make(map[technique.Family][]technique.Technique)
	var families []technique.Family
	for _, tq := range technique.All() {
		f := tq.Family()
		if _, ok := byFamily[f]; !ok {
			families = append(families, f)
		}
		byFamily[f] = append(byFamily[f], tq)
	}

	for _, f := range families {
		fmt.Fprintf(w, "## %s\n\n", f)
		fmt.Fprintln(w, "| Technique | Animates |")
		fmt.Fprintln(w, "| --- | --- |")
		for _, tq := range byFamily[f] {
			ranges, err := propertyRanges(tq, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", tq, err)
			}
			fmt.Fprintf(w, "| `%s` | %s |\n", tq, ranges)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func propertyRanges(tq technique.Technique, cfg *config.Resolved) (string, error) {
	tester := motiontest.NewFrameTester()
	defer tester.Cleanup()

	_, target := cfg.Scene()
	base := make(map[string]float64)
	for p, v := range target.Snapshot() {
		base[p.String()] = v
	}
	rec := tester.Record(target)
	opts := cfg.Options()
	tq.Composer().
		Duration(opts.Duration).
		Delay(opts.Delay).
		Interpolate(opts.Interpolator).
		PlayOn(target)
	snap, err := rec.Settle(30 * time.Second)
	if err != nil {
		return "", err
	}

	type span struct{ lo, hi float64 }
	spans := make(map[string]*span)
	for _, f := range snap.Frames {
		for p, v := range f.Properties {
			s, ok := spans[p]
			if !ok {
				s = &span{base[p], base[p]}
				spans[p] = s
			}
			s.lo, s.hi = min(s.lo, v), max(s.hi, v)
		}
	}
	if len(spans) == 0 {
		return "nothing", nil
	}
	names := make([]string, 0, len(spans))
	for p := range spans {
		names = append(names, p)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, p := range names {
		parts[i] = fmt.Sprintf("%s %.2f to %.2f", p, spans[p].lo, spans[p].hi)
	}
	return strings.Join(parts, ", "), nil
}
