package render

import "errors"

var (
	// ErrEmptyPath indicates there is nothing to draw.
	ErrEmptyPath = errors.New("render: path has no points")

	// ErrBadOptions indicates a non-positive size, DPI, marker or line width.
	ErrBadOptions = errors.New("render: invalid options")

	// ErrNilPlot indicates a nil *plot.Plot was passed to an encoder.
	ErrNilPlot = errors.New("render: nil plot")
)
