// Command splinefit fits a smooth curve through a sequence of points and
// writes it as SVG or PNG.
//
// Usage:
//
//	splinefit [flags] [x,y ...]
//
// Anchors are taken from the config file given with -config, followed by
// the positional arguments. The output format is chosen by the extension of
// -o: .svg writes an SVG document, .png a raster image. Without -o, or with
// -o -, the SVG path data of the curve is written to standard output.
//
// Anchors with a negative x coordinate look like flags; put them after --.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"honnef.co/go/spline"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("splinefit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath   = fs.String("config", "", "YAML config file with anchors and drawing options")
		output       = fs.String("o", "-", "Output file: .svg, .png, or - for SVG path data on stdout")
		samples      = fs.Int("samples", defaultSamples, "Samples per segment when rasterizing")
		width        = fs.Int("width", defaultWidth, "Image width in pixels")
		height       = fs.Int("height", defaultHeight, "Image height in pixels")
		lineWidth    = fs.Float64("line-width", defaultLineWidth, "Curve line width")
		markerRadius = fs.Float64("marker-radius", defaultMarkerRadius, "Radius of anchor markers")
		dense        = fs.Bool("dense", false, "Solve with a dense QR factorization instead of the tridiagonal solver")
		verbose      = fs.Bool("v", false, "Enable debug logging")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: splinefit [flags] [x,y ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	spline.SetLogger(logger)
	defer spline.SetLogger(nil)

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			logger.Error("loading config", "err", err)
			return exitError
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "samples":
			cfg.Samples = *samples
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "line-width":
			cfg.LineWidth = *lineWidth
		case "marker-radius":
			cfg.MarkerRadius = *markerRadius
		case "dense":
			cfg.Dense = *dense
		}
	})
	for _, arg := range fs.Args() {
		pt, err := parsePoint(arg)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
		cfg.Anchors = append(cfg.Anchors, pt)
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return exitUsage
	}

	s, err := fit(cfg)
	if err != nil {
		logger.Error("fitting curve", "err", err)
		return exitError
	}
	logger.Debug("fitted curve", "anchors", len(cfg.Anchors), "segments", len(s))

	if *output != "" && *output != "-" {
		canvas := spline.Rect{X1: float64(cfg.Width), Y1: float64(cfg.Height)}
		bounds := s.BoundingBox().Inflate(cfg.LineWidth/2, cfg.LineWidth/2)
		if !canvas.ContainsRect(bounds) {
			logger.Warn("curve extends beyond the canvas", "bounds", bounds, "width", cfg.Width, "height", cfg.Height)
		}
	}

	if err := writeOutput(*output, stdout, cfg, s); err != nil {
		logger.Error("writing output", "path", *output, "err", err)
		return exitError
	}
	return exitOK
}

func fit(cfg config) (spline.Spline, error) {
	solve := spline.Solve
	if cfg.Dense {
		solve = spline.SolveDense
	}
	cp, err := solve(cfg.Anchors)
	if err != nil {
		return nil, err
	}
	return spline.BuildSegments(cfg.Anchors, cp)
}

func writeOutput(path string, stdout io.Writer, cfg config, s spline.Spline) error {
	if path == "" || path == "-" {
		if err := spline.WriteSVG(stdout, s.Path().Elements(), spline.SVGOptions{}); err != nil {
			return err
		}
		_, err := fmt.Fprintln(stdout)
		return err
	}

	var buf bytes.Buffer
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		if err := renderSVG(&buf, cfg, s); err != nil {
			return err
		}
	case ".png":
		if err := renderPNG(&buf, cfg, s); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
