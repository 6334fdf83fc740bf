package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/rebound"
	"github.com/go-drift/motion/pkg/technique"
	"github.com/go-drift/motion/pkg/view"
)

// FileName is the config file looked up when no path is given.
const FileName = "motion.yaml"

// SchemaVersion is the config schema written by default.
const SchemaVersion = "v1"

// Config represents the optional motion.yaml configuration.
type Config struct {
	Version  string         `yaml:"version,omitempty"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Target   TargetConfig   `yaml:"target"`
	Parent   SizeConfig     `yaml:"parent"`
	Spring   SpringConfig   `yaml:"spring"`
	Trace    SizeConfig     `yaml:"trace"`
}

// DefaultsConfig holds run options applied to every played technique.
type DefaultsConfig struct {
	Duration     string `yaml:"duration,omitempty"`
	Delay        string `yaml:"delay,omitempty"`
	Interpolator string `yaml:"interpolator,omitempty"`
}

// TargetConfig describes the simulated view.
type TargetConfig struct {
	Width   int   `yaml:"width,omitempty"`
	Height  int   `yaml:"height,omitempty"`
	Left    int   `yaml:"left,omitempty"`
	Top     int   `yaml:"top,omitempty"`
	Padding []int `yaml:"padding,omitempty"`
}

// SizeConfig is a width and height in pixels.
type SizeConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// SpringConfig tunes the press-feedback spring.
type SpringConfig struct {
	FPS       int     `yaml:"fps,omitempty"`
	Frequency float64 `yaml:"frequency,omitempty"`
	Damping   float64 `yaml:"damping,omitempty"`
	Pressed   float64 `yaml:"pressed,omitempty"`
}

// Resolved contains configuration values with defaults applied.
type Resolved struct {
	Path             string
	Version          string
	Duration         time.Duration
	Delay            time.Duration
	InterpolatorName string
	Interpolator     animation.Interpolator
	Target           view.Geometry
	Parent           view.Geometry
	Spring           rebound.Config
	Pressed          float64
	TraceWidth       int
	TraceHeight      int
}

// Options converts the run defaults into technique options.
func (r *Resolved) Options() technique.Options {
	opts := technique.DefaultOptions()
	opts.Duration = r.Duration
	opts.Delay = r.Delay
	opts.Interpolator = r.Interpolator
	return opts
}

// Scene builds the simulated parent and target views.
func (r *Resolved) Scene() (parent, target *view.Node) {
	parent = view.NewNode(nil, 0, 0, r.Parent.Width, r.Parent.Height)
	g := r.Target
	target = view.NewNode(parent, g.Left, g.Top, g.Width, g.Height)
	target.SetPadding(g.Padding)
	return parent, target
}

var knownKeys = map[string]bool{
	"version":  true,
	"defaults": true,
	"target":   true,
	"parent":   true,
	"spring":   true,
	"trace":    true,
}

// LoadOptional reads the config at path if present. A missing file yields
// an empty config. Unknown top-level keys are logged and ignored.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	var cfg Config
	if len(doc.Content) == 0 {
		return &cfg, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(root.Content); i += 2 {
			if key := root.Content[i].Value; !knownKeys[key] {
				log.Printf("warning: %s:%d: ignoring unknown key %q", path, root.Content[i].Line, key)
			}
		}
	}
	if err := root.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve loads the config at path (if present) and resolves defaults.
func Resolve(path string) (*Resolved, error) {
	if path == "" {
		path = FileName
	}
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	res, err := cfg.Resolve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res.Path = path
	return res, nil
}

// Resolve validates cfg and fills in defaults.
func (cfg *Config) Resolve() (*Resolved, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = SchemaVersion
	}
	if err := validateVersion(version); err != nil {
		return nil, err
	}

	duration, err := parseDuration("defaults.duration", cfg.Defaults.Duration, technique.DefaultRunDuration)
	if err != nil {
		return nil, err
	}
	delay, err := parseDuration("defaults.delay", cfg.Defaults.Delay, 0)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(strings.TrimSpace(cfg.Defaults.Interpolator))
	if name == "" {
		name = "accelerate-decelerate"
	}
	interp, ok := animation.InterpolatorNamed(name)
	if !ok {
		return nil, fmt.Errorf("defaults.interpolator: unknown interpolator %q", name)
	}

	target, err := cfg.Target.geometry()
	if err != nil {
		return nil, err
	}
	parent, err := cfg.Parent.geometry("parent", 320, 640)
	if err != nil {
		return nil, err
	}
	trace, err := cfg.Trace.geometry("trace", 480, 320)
	if err != nil {
		return nil, err
	}

	spring := rebound.Config{
		FPS:       cfg.Spring.FPS,
		Frequency: cfg.Spring.Frequency,
		Damping:   cfg.Spring.Damping,
	}
	if spring.FPS < 0 || spring.Frequency < 0 || spring.Damping < 0 {
		return nil, fmt.Errorf("spring: values must not be negative")
	}
	pressed := cfg.Spring.Pressed
	if pressed == 0 {
		pressed = rebound.DefaultPressedValue
	}
	if pressed < 0 || pressed > 1 {
		return nil, fmt.Errorf("spring.pressed must be within [0, 1] (got %v)", pressed)
	}

	return &Resolved{
		Version:          version,
		Duration:         duration,
		Delay:            delay,
		InterpolatorName: name,
		Interpolator:     interp,
		Target:           target,
		Parent:           parent,
		Spring:           rebound.New(spring).Config(),
		Pressed:          pressed,
		TraceWidth:       trace.Width,
		TraceHeight:      trace.Height,
	}, nil
}

func validateVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a valid semantic version", v)
	}
	if major := semver.Major(v); major != semver.Major(SchemaVersion) {
		return fmt.Errorf("unsupported config version %s (want %s.x)", v, semver.Major(SchemaVersion))
	}
	return nil
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative (got %s)", key, d)
	}
	return d, nil
}

func (s SizeConfig) geometry(key string, width, height int) (view.Geometry, error) {
	if s.Width < 0 || s.Height < 0 {
		return view.Geometry{}, fmt.Errorf("%s: size must not be negative (got %dx%d)", key, s.Width, s.Height)
	}
	if s.Width > 0 {
		width = s.Width
	}
	if s.Height > 0 {
		height = s.Height
	}
	return view.Geometry{
		Width: width, Height: height,
		MeasuredWidth: width, MeasuredHeight: height,
		Right: width, Bottom: height,
	}, nil
}

func (t TargetConfig) geometry() (view.Geometry, error) {
	g, err := SizeConfig{Width: t.Width, Height: t.Height}.geometry("target", 240, 120)
	if err != nil {
		return g, err
	}
	left, top := t.Left, t.Top
	if t.Left == 0 && t.Top == 0 {
		left, top = 40, 200
	}
	g.Left, g.Top = left, top
	g.Right, g.Bottom = left+g.Width, top+g.Height

	switch p := t.Padding; len(p) {
	case 0:
		g.Padding = view.EdgeInsetsAll(8)
	case 1:
		g.Padding = view.EdgeInsetsAll(p[0])
	case 4:
		g.Padding = view.EdgeInsets{Left: p[0], Top: p[1], Right: p[2], Bottom: p[3]}
	default:
		return g, fmt.Errorf("target.padding takes 1 or 4 values (got %d)", len(p))
	}
	return g, nil
}
