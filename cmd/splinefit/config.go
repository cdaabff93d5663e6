package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"honnef.co/go/spline"
)

const (
	defaultSamples      = 50
	defaultWidth        = 1200
	defaultHeight       = 600
	defaultLineWidth    = 6
	defaultMarkerRadius = 7.5
)

// config is the contents of the file passed with -config. Flags that are
// set explicitly take precedence over it.
type config struct {
	Anchors      []spline.Point `yaml:"anchors"`
	Samples      int            `yaml:"samples"`
	Width        int            `yaml:"width"`
	Height       int            `yaml:"height"`
	LineWidth    float64        `yaml:"line_width"`
	MarkerRadius float64        `yaml:"marker_radius"`
	Dense        bool           `yaml:"dense"`
}

func defaultConfig() config {
	return config{
		Samples:      defaultSamples,
		Width:        defaultWidth,
		Height:       defaultHeight,
		LineWidth:    defaultLineWidth,
		MarkerRadius: defaultMarkerRadius,
	}
}

// loadConfig reads a YAML config file. Keys missing from the file keep
// their default values.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg config) validate() error {
	var errs []error
	if len(cfg.Anchors) < 2 {
		errs = append(errs, fmt.Errorf("need at least 2 anchors, got %d", len(cfg.Anchors)))
	}
	if cfg.Samples < 1 {
		errs = append(errs, fmt.Errorf("samples must be positive, got %d", cfg.Samples))
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		errs = append(errs, fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height))
	}
	if cfg.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("line width must be positive, got %g", cfg.LineWidth))
	}
	return errors.Join(errs...)
}

// parsePoint parses an anchor given as "x,y".
func parsePoint(s string) (spline.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return spline.Point{}, fmt.Errorf("invalid point %q, want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return spline.Point{}, fmt.Errorf("invalid x coordinate in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return spline.Point{}, fmt.Errorf("invalid y coordinate in %q: %w", s, err)
	}
	return spline.Pt(x, y), nil
}
