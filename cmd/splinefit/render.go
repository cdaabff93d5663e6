package main

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"honnef.co/go/spline"
)

// renderPNG draws the sampled curve as a blue polyline with red markers on
// the anchors, on a white background.
func renderPNG(w io.Writer, cfg config, s spline.Spline) error {
	dc := gg.NewContext(cfg.Width, cfg.Height)
	defer dc.Close()

	dc.ClearWithColor(gg.White)

	dc.SetRGB(0, 0, 1)
	dc.SetLineWidth(cfg.LineWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	first := true
	for pt := range s.Sample(cfg.Samples) {
		if first {
			dc.MoveTo(pt.X, pt.Y)
			first = false
		} else {
			dc.LineTo(pt.X, pt.Y)
		}
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("failed to stroke curve: %w", err)
	}

	dc.SetRGB(1, 0, 0)
	for _, pt := range s.Anchors() {
		dc.DrawCircle(pt.X, pt.Y, cfg.MarkerRadius)
	}
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("failed to draw anchors: %w", err)
	}

	return dc.EncodePNG(w)
}

// renderSVG writes a standalone SVG document equivalent to renderPNG. The
// curve is emitted as exact cubic Béziers rather than samples.
func renderSVG(w io.Writer, cfg config, s spline.Spline) error {
	var err error
	printf := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
	printf(`<rect width="100%%" height="100%%" fill="white" />` + "\n")
	printf(`<path d="`)
	if err == nil {
		err = spline.WriteSVG(w, s.Path().Elements(), spline.SVGOptions{MaxPrecision: 3})
	}
	printf(`" fill="none" stroke="blue" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round" />`+"\n", cfg.LineWidth)
	for _, pt := range s.Anchors() {
		printf(`<circle cx="%g" cy="%g" r="%g" fill="red" />`+"\n", pt.X, pt.Y, cfg.MarkerRadius)
	}
	printf("</svg>\n")
	return err
}
