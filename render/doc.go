// Package render draws a tour as a line-and-marker plot and rasterizes it
// to PNG with gonum.org/v1/plot.
//
// ⚙️ Usage:
//
//	opts := render.DefaultOptions() // 10in square, 300 DPI, blue "o-" line
//	p, err := render.Plot(path, opts)
//	n, err := render.SaveFile("tsp_tour.png", p, opts)
//
// Plot accepts any plotter.XYer; tour.ClosedPath is one. The path is drawn
// exactly as given: closing the loop is the caller's job.
package render
