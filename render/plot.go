package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Plot builds a line-and-marker plot of xys: circle markers at every vertex
// joined by straight segments in order.
//
// Errors:
//   - ErrBadOptions — opts.Validate failed.
//   - ErrEmptyPath  — xys is nil or has no points.
func Plot(xys plotter.XYer, opts Options) (*plot.Plot, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if xys == nil || xys.Len() == 0 {
		return nil, ErrEmptyPath
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	if opts.Grid {
		// Added first so the path is drawn on top.
		p.Add(plotter.NewGrid())
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, fmt.Errorf("render: build line: %w", err)
	}
	line.LineStyle.Width = opts.LineWidth
	line.LineStyle.Color = opts.Color
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = opts.MarkerSize / 2
	points.GlyphStyle.Color = opts.Color

	p.Add(line, points)

	return p, nil
}

// Encode rasterizes p at opts.DPI and writes it to w as PNG.
// It returns the number of bytes written.
func Encode(w io.Writer, p *plot.Plot, opts Options) (int64, error) {
	if p == nil {
		return 0, ErrNilPlot
	}
	if err := opts.Validate(); err != nil {
		return 0, err
	}

	c := vgimg.NewWith(
		vgimg.UseWH(opts.Width, opts.Height),
		vgimg.UseDPI(opts.DPI),
	)
	p.Draw(draw.New(c))

	n, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("render: encode png: %w", err)
	}

	return n, nil
}

// SaveFile encodes p into the file name, creating or truncating it.
// The file is closed before SaveFile returns; a close error is reported.
func SaveFile(name string, p *plot.Plot, opts Options) (n int64, err error) {
	if p == nil {
		return 0, ErrNilPlot
	}

	f, err := os.Create(name)
	if err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", name, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if n, err = Encode(bw, p, opts); err != nil {
		return n, err
	}
	if err = bw.Flush(); err != nil {
		return n, fmt.Errorf("render: flush %s: %w", name, err)
	}

	return n, nil
}
