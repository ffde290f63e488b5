package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Default rendering parameters.
const (
	DefaultTitle  = "TSP Tour Visualization"
	DefaultXLabel = "X Coordinate"
	DefaultYLabel = "Y Coordinate"
	DefaultDPI    = 300
)

// Options configures how a tour is drawn.
//
// Fields:
//   - Width, Height — figure size; equal values give a square plot.
//   - DPI           — raster resolution used when encoding.
//   - Title, XLabel, YLabel — text decorations.
//   - MarkerSize    — marker diameter (circle glyphs at every vertex).
//   - LineWidth     — width of the connecting polyline.
//   - Color         — shared by markers and line.
//   - Grid          — draw major grid lines under the path.
type Options struct {
	Width  vg.Length
	Height vg.Length
	DPI    int

	Title  string
	XLabel string
	YLabel string

	MarkerSize vg.Length
	LineWidth  vg.Length
	Color      color.Color
	Grid       bool
}

// DefaultOptions returns a 10in×10in, 300 DPI plot with 3pt blue circle
// markers joined by a 1pt line, titled and gridded.
func DefaultOptions() Options {
	return Options{
		Width:      10 * vg.Inch,
		Height:     10 * vg.Inch,
		DPI:        DefaultDPI,
		Title:      DefaultTitle,
		XLabel:     DefaultXLabel,
		YLabel:     DefaultYLabel,
		MarkerSize: vg.Points(3),
		LineWidth:  vg.Points(1),
		Color:      color.RGBA{B: 255, A: 255},
		Grid:       true,
	}
}

// Validate checks that every dimension is positive and a color is set.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: size %v×%v", ErrBadOptions, o.Width, o.Height)
	}
	if o.DPI <= 0 {
		return fmt.Errorf("%w: dpi %d", ErrBadOptions, o.DPI)
	}
	if o.MarkerSize <= 0 || o.LineWidth <= 0 {
		return fmt.Errorf("%w: marker %v line %v", ErrBadOptions, o.MarkerSize, o.LineWidth)
	}
	if o.Color == nil {
		return fmt.Errorf("%w: nil color", ErrBadOptions)
	}

	return nil
}

// PixelSize returns the raster dimensions produced by Encode.
func (o Options) PixelSize() (w, h int) {
	return int(o.Width.Dots(float64(o.DPI)) + 0.5), int(o.Height.Dots(float64(o.DPI)) + 0.5)
}
