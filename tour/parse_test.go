package tour_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplot/tour"
)

// TestParsePoints_Valid checks file-order parsing and tolerance for extra
// whitespace, CRLF endings and a missing final newline.
func TestParsePoints_Valid(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want tour.PointSet
	}{
		{"triangle", "3\n0 0\n1 0\n1 1\n", tour.PointSet{{0, 0}, {1, 0}, {1, 1}}},
		{"no trailing newline", "2\n1.5 2.5\n-3 4e2", tour.PointSet{{1.5, 2.5}, {-3, 400}}},
		{"crlf and spacing", " 2 \r\n  7\t8 \r\n9 10\r\n", tour.PointSet{{7, 8}, {9, 10}}},
		{"extra lines ignored", "1\n5 6\n7 8\nnot numbers\n", tour.PointSet{{5, 6}}},
		{"zero points", "0\n", tour.PointSet{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tour.ParsePoints(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestParsePoints_Errors covers every malformed-input sentinel.
func TestParsePoints_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty input", "", tour.ErrBadHeader},
		{"non-integer header", "three\n0 0\n", tour.ErrBadHeader},
		{"float header", "3.0\n0 0\n", tour.ErrBadHeader},
		{"negative header", "-1\n", tour.ErrBadHeader},
		{"fewer lines than declared", "3\n0 0\n1 1\n", tour.ErrShortPointSet},
		{"one token", "2\n0 0\n1\n", tour.ErrBadCoordinate},
		{"three tokens", "1\n0 0 0\n", tour.ErrBadCoordinate},
		{"blank coordinate line", "2\n0 0\n\n1 1\n", tour.ErrBadCoordinate},
		{"non-numeric x", "1\nx 0\n", tour.ErrBadCoordinate},
		{"non-numeric y", "1\n0 y\n", tour.ErrBadCoordinate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tour.ParsePoints(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParsePoints_LineNumber ensures the offending line is named.
func TestParsePoints_LineNumber(t *testing.T) {
	_, err := tour.ParsePoints(strings.NewReader("3\n0 0\n1 1\nbad\n"))
	require.ErrorIs(t, err, tour.ErrBadCoordinate)
	assert.Contains(t, err.Error(), "line 4")
}

// TestParseTour_Valid checks that every body index is consumed in order,
// independent of the declared length and of line layout.
func TestParseTour_Valid(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		declared int
		order    []int
	}{
		{"single line", "3\n0 1 2\n", 3, []int{0, 1, 2}},
		{"one per line", "3\n2\n0\n1\n", 3, []int{2, 0, 1}},
		{"declared smaller", "2\n0 1 2 3\n", 2, []int{0, 1, 2, 3}},
		{"declared larger", "10\n4 3\n", 10, []int{4, 3}},
		{"negative declared", "-5\n1 0\n", -5, []int{1, 0}},
		{"negative index kept", "1\n-1\n", 1, []int{-1}},
		{"header only", "0\n", 0, []int{}},
		{"header without newline", "4", 4, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tour.ParseTour(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.declared, got.Declared)
			assert.Equal(t, tc.order, got.Order)
		})
	}
}

// TestParseTour_Errors covers the header and body sentinels.
func TestParseTour_Errors(t *testing.T) {
	_, err := tour.ParseTour(strings.NewReader(""))
	require.ErrorIs(t, err, tour.ErrBadHeader)

	_, err = tour.ParseTour(strings.NewReader("n\n0 1\n"))
	require.ErrorIs(t, err, tour.ErrBadHeader)

	_, err = tour.ParseTour(strings.NewReader("3\n0 1.5 2\n"))
	require.ErrorIs(t, err, tour.ErrBadIndex)
	assert.Contains(t, err.Error(), `"1.5"`)
}

// TestReadFiles exercises the file wrappers, including a missing file.
func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	pointsFile := filepath.Join(dir, "points.txt")
	tourFile := filepath.Join(dir, "tour.txt")
	require.NoError(t, os.WriteFile(pointsFile, []byte("2\n0 0\n3 4\n"), 0o644))
	require.NoError(t, os.WriteFile(tourFile, []byte("2\n1 0\n"), 0o644))

	ps, err := tour.ReadPoints(pointsFile)
	require.NoError(t, err)
	assert.Equal(t, tour.PointSet{orb.Point{0, 0}, orb.Point{3, 4}}, ps)

	tr, err := tour.ReadTour(tourFile)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, tr.Order)

	_, err = tour.ReadPoints(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = tour.ReadTour(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
