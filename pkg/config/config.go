// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/bouncer/pkg/motion"
	"github.com/user/bouncer/pkg/orchestrator"
	"github.com/user/bouncer/pkg/pixbuf"
	"github.com/user/bouncer/pkg/ports"
	"github.com/user/bouncer/pkg/raster"
)

// Config represents the full configuration for bouncer.
type Config struct {
	// Animation
	Frames      int            `yaml:"frames"`
	RadiusRatio float64        `yaml:"radius_ratio"`
	Gradient    GradientConfig `yaml:"gradient"`
	MotionTable []float64      `yaml:"motion_table"`

	// Background scaling, 0 keeps the source size
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Output
	OutputDir       string `yaml:"output_dir"`
	Prefix          string `yaml:"prefix"`
	Format          string `yaml:"format"`
	JPEGQuality     int    `yaml:"jpeg_quality"`
	Workers         int    `yaml:"workers"`
	ContinueOnError bool   `yaml:"continue_on_error"`

	// Preview video
	Video string  `yaml:"video"`
	FPS   float64 `yaml:"fps"`
	CRF   int     `yaml:"crf"`

	// Reporting
	Summary  string `yaml:"summary"`
	LogLevel string `yaml:"log_level"`

	// Debug
	Debug      bool   `yaml:"debug"`
	DebugDir   string `yaml:"debug_dir"`
	DebugColor string `yaml:"debug_color"` // overlay color of annotated frames
}

// GradientConfig holds the disc colors as hex strings.
type GradientConfig struct {
	Inner string `yaml:"inner"`
	Outer string `yaml:"outer"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Frames:      300,
		RadiusRatio: 0.10,
		Gradient: GradientConfig{
			Inner: "#fafafa",
			Outer: "#b22222",
		},

		Prefix:      "frame",
		Format:      string(ports.FormatPNG),
		JPEGQuality: 90,
		Workers:     1,

		FPS: 30,
		CRF: 23,

		LogLevel: "info",
		DebugDir:   "./debug",
		DebugColor: "#00ff80",
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Frames <= 0:
		return invalid("frames must be positive, got %d", c.Frames)
	case c.RadiusRatio < 0 || c.RadiusRatio > 1:
		return invalid("radius_ratio must be within 0..1, got %v", c.RadiusRatio)
	case c.Width < 0 || c.Height < 0:
		return invalid("width and height must not be negative, got %dx%d", c.Width, c.Height)
	case c.Prefix == "" || strings.ContainsAny(c.Prefix, `/\`):
		return invalid("prefix must be a plain file name prefix, got %q", c.Prefix)
	case c.JPEGQuality < 0 || c.JPEGQuality > 100:
		return invalid("jpeg_quality must be within 0..100, got %d", c.JPEGQuality)
	case c.Workers < 0:
		return invalid("workers must not be negative, got %d", c.Workers)
	case c.Video != "" && c.FPS <= 0:
		return invalid("fps must be positive, got %v", c.FPS)
	case c.CRF < 0 || c.CRF > 51:
		return invalid("crf must be within 0..51, got %d", c.CRF)
	}

	if _, err := ports.ParseImageFormat(c.Format); err != nil {
		return invalid("format %q is not supported", c.Format)
	}
	if _, err := ParseHexColor(c.Gradient.Inner); err != nil {
		return invalid("gradient.inner: %s", err)
	}
	if _, err := ParseHexColor(c.Gradient.Outer); err != nil {
		return invalid("gradient.outer: %s", err)
	}
	if _, err := ParseHexColor(c.DebugColor); err != nil {
		return invalid("debug_color: %s", err)
	}
	if len(c.MotionTable) > 0 {
		if _, err := motion.New(c.MotionTable); err != nil {
			return err
		}
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ports.ErrArgument, fmt.Sprintf(format, args...))
}

// ToOrchestratorConfig converts Config to orchestrator.Config for the given
// background image. The config is validated first.
func (c Config) ToOrchestratorConfig(inputPath string) (orchestrator.Config, error) {
	if err := c.Validate(); err != nil {
		return orchestrator.Config{}, err
	}

	format, _ := ports.ParseImageFormat(c.Format)
	inner, _ := ParseHexColor(c.Gradient.Inner)
	outer, _ := ParseHexColor(c.Gradient.Outer)
	overlay, _ := ParseHexColor(c.DebugColor)

	table := motion.Default()
	if len(c.MotionTable) > 0 {
		table, _ = motion.New(c.MotionTable)
	}

	return orchestrator.Config{
		InputPath: inputPath,
		Width:     c.Width,
		Height:    c.Height,

		Frames:      c.Frames,
		RadiusRatio: c.RadiusRatio,
		Gradient:    raster.Gradient{Inner: inner, Outer: outer},
		MotionTable: table,

		OutputDir:       c.OutputDir,
		Prefix:          c.Prefix,
		Format:          format,
		ContinueOnError: c.ContinueOnError,

		VideoPath: c.Video,
		FPS:       c.FPS,
		CRF:       c.CRF,

		OverlayColor: overlay,
	}, nil
}

// ParseHexColor parses "#rrggbb" or "rrggbb" (also the short "#rgb" form).
func ParseHexColor(hex string) (pixbuf.RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return pixbuf.RGB{}, fmt.Errorf("invalid color %q", hex)
	}

	var v [3]uint8
	for i := range v {
		hi, ok1 := hexValue(s[2*i])
		lo, ok2 := hexValue(s[2*i+1])
		if !ok1 || !ok2 {
			return pixbuf.RGB{}, fmt.Errorf("invalid color %q", hex)
		}
		v[i] = hi<<4 | lo
	}
	return pixbuf.RGB{R: v[0], G: v[1], B: v[2]}, nil
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
