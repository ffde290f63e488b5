// Package tour — structural checks on visiting orders.
//
// These helpers look at index sequences only, never at coordinates:
//   - ValidatePermutation: the order visits each of 0..n-1 exactly once.
//   - CopyOrder: independent copy of an order slice.
//   - DebugString: compact printable form for logs and test failures.
//
// Close does not require a permutation; repeated or skipped points still
// render. Summarize reports the permutation property instead.
package tour

import (
	"fmt"
	"strings"
)

// ValidatePermutation checks that order is a permutation of {0..n-1}.
// It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(order []int, n int) error {
	if n <= 0 || len(order) != n {
		return fmt.Errorf("%w: %d indices for %d points", ErrNotPermutation, len(order), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = order[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: position %d holds %d", ErrIndexOutOfRange, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: index %d visited twice", ErrNotPermutation, v)
		}
		seen[v] = true
	}

	return nil
}

// CopyOrder returns an independent copy of order.
func CopyOrder(order []int) []int {
	if order == nil {
		return nil
	}
	out := make([]int, len(order))
	copy(out, order)

	return out
}

// DebugString renders order as a closed cycle, e.g. "[0 3 1 2 | 0]" where
// the bar marks the return to the first index. An empty order is "[]".
func DebugString(order []int) string {
	if len(order) == 0 {
		return "[]"
	}

	var (
		sb strings.Builder
		i  int
	)
	sb.WriteByte('[')
	for i = range order {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", order[i])
	}
	fmt.Fprintf(&sb, " | %d]", order[0])

	return sb.String()
}
