// Package tour: sentinel error set.
// All exported functions return (possibly wrapped) sentinels from this file.
// Callers match them via errors.Is; nothing in this package panics on user input.

package tour

import "errors"

var (
	// ErrBadHeader is returned when the first line of a points or tour file
	// is not an integer, or a points count is negative.
	ErrBadHeader = errors.New("tour: malformed header")

	// ErrBadCoordinate indicates a coordinate line that does not hold exactly
	// two numeric tokens.
	ErrBadCoordinate = errors.New("tour: malformed coordinate line")

	// ErrShortPointSet signals that fewer coordinate lines were present than
	// the header declared.
	ErrShortPointSet = errors.New("tour: fewer points than declared")

	// ErrBadIndex indicates a non-integer token in the tour body.
	ErrBadIndex = errors.New("tour: malformed tour index")

	// ErrEmptyTour is returned when a tour holds no indices, so there is no
	// first point to close the path with.
	ErrEmptyTour = errors.New("tour: tour has no indices")

	// ErrIndexOutOfRange indicates a tour index outside [0, n).
	ErrIndexOutOfRange = errors.New("tour: index out of range")

	// ErrNotPermutation signals that a tour does not visit every point of
	// 0..n-1 exactly once.
	ErrNotPermutation = errors.New("tour: not a permutation of the point set")
)
