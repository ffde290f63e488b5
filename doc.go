// Package tourplot renders a travelling-salesman tour over 2D points as a
// PNG image.
//
// 🚀 What does it do?
//
//	Reads a points file and a tour file, closes the tour back to its first
//	point, and draws it as a line-and-marker plot:
//
//	  tsp300.txt  ─┐
//	               ├─► tour.Close ─► render.Plot ─► tsp_tour.png
//	  solution.txt ┘
//
// Under the hood:
//
//	tour/          — file formats, closed path construction, tour statistics
//	render/        — gonum/plot drawing and PNG encoding
//	cmd/plottour/  — the command; always uses DefaultConfig
//
// Run ties the pieces together and logs each stage.
//
//	go run github.com/katalvlaran/tourplot/cmd/plottour
package tourplot
