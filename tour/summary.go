package tour

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/paulmach/orb"
)

// Summary describes a closed path numerically.
type Summary struct {
	Points   int // size of the point set
	Declared int // tour header value, as read
	Visits   int // indices actually present in the tour

	// Length is the Euclidean length of the closed path; Edges is len(path)-1.
	Length       float64
	Edges        int
	ShortestEdge float64
	LongestEdge  float64
	MeanEdge     float64
	MedianEdge   float64

	// Bound is the bounding box of the visited points.
	Bound orb.Bound

	// Permutation reports whether the tour visits each point exactly once.
	Permutation bool
}

// DeclaredMismatch reports whether the tour header disagrees with the
// number of indices that were actually read.
func (s Summary) DeclaredMismatch() bool { return s.Declared != s.Visits }

// String implements fmt.Stringer.
func (s Summary) String() string {
	return fmt.Sprintf("points=%d visits=%d length=%.6f edges=%d permutation=%t",
		s.Points, s.Visits, s.Length, s.Edges, s.Permutation)
}

// Summarize computes tour statistics for path, which must have been built
// by Close(points, t).
//
// The total is rounded to 1e-9 so the same input yields the same figure
// across platforms.
//
// Complexity: O(m log m) for m edges (median sorts a copy).
func Summarize(points PointSet, t Tour, path ClosedPath) (Summary, error) {
	if len(path) < 2 {
		return Summary{}, ErrEmptyTour
	}

	var (
		edges = stats.Float64Data(path.EdgeLengths())
		err   error
		s     = Summary{
			Points:   len(points),
			Declared: t.Declared,
			Visits:   len(t.Order),
			Edges:    len(path) - 1,
			Bound:    path.Bound(),
		}
	)

	s.Length = round1e9(path.Length())
	if s.ShortestEdge, err = stats.Min(edges); err != nil {
		return Summary{}, err
	}
	if s.LongestEdge, err = stats.Max(edges); err != nil {
		return Summary{}, err
	}
	if s.MeanEdge, err = stats.Mean(edges); err != nil {
		return Summary{}, err
	}
	if s.MedianEdge, err = stats.Median(edges); err != nil {
		return Summary{}, err
	}
	s.Permutation = ValidatePermutation(t.Order, len(points)) == nil

	return s, nil
}

// roundLimit bounds the magnitudes round1e9 touches; beyond it x*1e9
// would overflow and the 1e-9 grid is below float precision anyway.
const roundLimit = 1e290

// round1e9 stabilizes floating sums to 1e-9.
func round1e9(x float64) float64 {
	if math.Abs(x) >= roundLimit {
		return x
	}
	return math.Round(x*1e9) / 1e9
}
