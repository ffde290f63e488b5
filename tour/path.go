package tour

import "fmt"

// Close builds the closed path for t over points: each index is looked up
// in order and the first looked-up point is appended again.
//
// Contract:
//   - t.Order is non-empty, else ErrEmptyTour.
//   - every index lies in [0, len(points)), else ErrIndexOutOfRange.
//   - t.Declared is ignored.
//   - result satisfies len == t.Len()+1 and result[0] == result[len-1].
//
// Complexity: O(m) time and space for m = t.Len().
func Close(points PointSet, t Tour) (ClosedPath, error) {
	if len(t.Order) == 0 {
		return nil, ErrEmptyTour
	}

	var (
		n    = len(points)
		path = make(ClosedPath, 0, len(t.Order)+1)
		i    int
		v    int
	)
	for i, v = range t.Order {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: position %d holds %d, want [0,%d)", ErrIndexOutOfRange, i, v, n)
		}
		path = append(path, points[v])
	}

	// Return to the origin.
	path = append(path, path[0])

	return path, nil
}
