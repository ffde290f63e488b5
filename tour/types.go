package tour

import (
	"math"

	"github.com/paulmach/orb"
)

// PointSet is the ordered list of coordinates read from a points file.
// A point is identified by its 0-based position.
type PointSet []orb.Point

// Len returns the number of points.
func (ps PointSet) Len() int { return len(ps) }

// Tour is a visiting order over a PointSet.
type Tour struct {
	// Declared is the length written in the tour file header.
	// It is informational only and never cross-checked against Order.
	Declared int

	// Order holds every index found after the header, in file order.
	Order []int
}

// Len returns the number of indices actually present.
func (t Tour) Len() int { return len(t.Order) }

// ClosedPath is a tour's points in visiting order with the first point
// repeated at the end: len == tour length + 1 and path[0] == path[len-1].
//
// ClosedPath implements gonum.org/v1/plot/plotter.XYer.
type ClosedPath orb.Ring

// Len returns the number of vertices, including the closing one.
func (c ClosedPath) Len() int { return len(c) }

// XY returns the x and y values at index i, where i < Len().
func (c ClosedPath) XY(i int) (float64, float64) {
	return c[i][0], c[i][1]
}

// Split returns the path as two parallel coordinate slices.
func (c ClosedPath) Split() (xs, ys []float64) {
	xs = make([]float64, len(c))
	ys = make([]float64, len(c))

	var i int
	for i = range c {
		xs[i], ys[i] = c[i].X(), c[i].Y()
	}

	return xs, ys
}

// EdgeLengths returns the Euclidean length of each segment c[i]→c[i+1].
// Finite coordinates always give finite lengths, even near the float range.
func (c ClosedPath) EdgeLengths() []float64 {
	if len(c) < 2 {
		return nil
	}
	out := make([]float64, len(c)-1)

	var i int
	for i = 0; i < len(c)-1; i++ {
		out[i] = math.Hypot(c[i+1][0]-c[i][0], c[i+1][1]-c[i][1])
	}

	return out
}

// Length returns the Euclidean length of the closed path.
func (c ClosedPath) Length() float64 {
	var (
		sum float64
		e   float64
	)
	for _, e = range c.EdgeLengths() {
		sum += e
	}

	return sum
}

// Bound returns the axis-aligned bounding box of the path.
func (c ClosedPath) Bound() orb.Bound {
	return orb.Ring(c).Bound()
}
