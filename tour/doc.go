// Package tour reads TSP instances and tours from plain-text files and turns
// them into closed paths ready for plotting.
//
// A points file declares a count n and then lists n coordinate pairs:
//
//	3
//	0 0
//	1 0
//	1 1
//
// A tour file declares a length and then lists point indices, in any line
// layout:
//
//	3
//	0 1 2
//
// The declared tour length is kept for reporting only; every index present
// in the file is used, in order.
//
// Typical flow:
//
//	points, err := tour.ReadPoints("tsp300.txt")
//	t, err := tour.ReadTour("solution.txt")
//	path, err := tour.Close(points, t) // [p0 p1 … pk | p0]
//	sum, err := tour.Summarize(points, t, path)
//
// All functions are deterministic and side-effect free apart from file
// reads. Errors are the sentinels from errors.go, wrapped with position
// context where useful; match them with errors.Is.
package tour
