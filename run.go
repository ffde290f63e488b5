package tourplot

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/tourplot/render"
	"github.com/katalvlaran/tourplot/tour"
)

// Result is what a successful Run produced.
type Result struct {
	Order   []int // tour indices as read; owned by the caller
	Path    tour.ClosedPath
	Summary tour.Summary
	Output  string // file written
	Bytes   int64  // PNG size
}

// Run reads cfg.PointsFile and cfg.TourFile, closes the tour, and writes
// the rendered plot to cfg.OutputFile.
//
// Stages, each aborting on the first error:
//  1. parse points, parse tour;
//  2. build the closed path (empty tour and out-of-range indices fail here);
//  3. summarize and log;
//  4. build the plot, then create and write the output file.
//
// The output file is not touched unless stages 1–3 and plot construction
// succeeded. A nil logger discards records.
func Run(cfg Config, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	points, err := tour.ReadPoints(cfg.PointsFile)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("points loaded", "file", cfg.PointsFile, "count", points.Len())

	t, err := tour.ReadTour(cfg.TourFile)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("tour loaded", "file", cfg.TourFile, "declared", t.Declared, "indices", t.Len())

	path, err := tour.Close(points, t)
	if err != nil {
		return Result{}, fmt.Errorf("build path: %w", err)
	}

	sum, err := tour.Summarize(points, t, path)
	if err != nil {
		return Result{}, fmt.Errorf("summarize: %w", err)
	}
	if sum.DeclaredMismatch() {
		// Header is informational; all indices are still plotted.
		logger.Warn("tour header disagrees with body",
			"declared", sum.Declared, "indices", sum.Visits)
	}
	if !sum.Permutation {
		logger.Warn("tour does not visit every point exactly once",
			"points", sum.Points, "indices", sum.Visits)
	}
	logger.Info("tour summary",
		"length", sum.Length,
		"edges", sum.Edges,
		"shortest_edge", sum.ShortestEdge,
		"longest_edge", sum.LongestEdge,
		"mean_edge", sum.MeanEdge,
		"median_edge", sum.MedianEdge,
		"bound_min", fmt.Sprintf("%g,%g", sum.Bound.Min.X(), sum.Bound.Min.Y()),
		"bound_max", fmt.Sprintf("%g,%g", sum.Bound.Max.X(), sum.Bound.Max.Y()),
	)
	logger.Debug("tour order", "order", tour.DebugString(t.Order))

	p, err := render.Plot(path, cfg.Render)
	if err != nil {
		return Result{}, err
	}
	n, err := render.SaveFile(cfg.OutputFile, p, cfg.Render)
	if err != nil {
		return Result{}, err
	}

	w, h := cfg.Render.PixelSize()
	logger.Info("plot written",
		"file", cfg.OutputFile,
		"size", humanize.Bytes(uint64(n)),
		"pixels", fmt.Sprintf("%dx%d", w, h),
		"dpi", cfg.Render.DPI,
	)

	return Result{
		Order:   tour.CopyOrder(t.Order),
		Path:    path,
		Summary: sum,
		Output:  cfg.OutputFile,
		Bytes:   n,
	}, nil
}
