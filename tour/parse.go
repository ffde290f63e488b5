// Package tour — text-file readers for points and tours.
//
// Both formats start with a single integer header line. Points files then
// carry exactly n "x y" lines; tour files carry any number of
// whitespace-separated indices spread over any number of lines.
//
// Design:
//   - Readers accept io.Reader so tests never touch the filesystem;
//     ReadPoints/ReadTour are thin file wrappers with scoped Close.
//   - Errors carry the 1-based line (points) or token position (tour).
package tour

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ReadPoints opens name and parses it with ParsePoints.
func ReadPoints(name string) (PointSet, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	defer f.Close()

	ps, err := ParsePoints(f)
	if err != nil {
		return nil, fmt.Errorf("read points %s: %w", name, err)
	}

	return ps, nil
}

// ReadTour opens name and parses it with ParseTour.
func ReadTour(name string) (Tour, error) {
	f, err := os.Open(name)
	if err != nil {
		return Tour{}, fmt.Errorf("read tour: %w", err)
	}
	defer f.Close()

	t, err := ParseTour(f)
	if err != nil {
		return Tour{}, fmt.Errorf("read tour %s: %w", name, err)
	}

	return t, nil
}

// ParsePoints reads a header n followed by n coordinate lines.
// Anything after the n-th coordinate line is ignored.
//
// Errors:
//   - ErrBadHeader      — first line missing, not an integer, or negative.
//   - ErrBadCoordinate  — a line without exactly two numeric tokens.
//   - ErrShortPointSet  — input ends before n coordinate lines were read.
//
// Complexity: O(n) time, O(n) space.
func ParsePoints(r io.Reader) (PointSet, error) {
	br := bufio.NewReader(r)

	n, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrBadHeader, n)
	}

	ps := make(PointSet, 0, capHint(n))

	var (
		i    int
		line string
		eof  bool
		p    orb.Point
	)
	for i = 0; i < n; i++ {
		line, eof, err = readLine(br)
		if err != nil {
			return nil, err
		}
		if eof && line == "" {
			return nil, fmt.Errorf("%w: declared %d, got %d", ErrShortPointSet, n, i)
		}
		p, err = parseCoordinate(line)
		if err != nil {
			// Header is line 1, so coordinate i lives on line i+2.
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		ps = append(ps, p)
	}

	return ps, nil
}

// ParseTour reads a header (the declared length) and then every remaining
// whitespace-separated integer, regardless of the declared length.
//
// Errors:
//   - ErrBadHeader — first line missing or not an integer.
//   - ErrBadIndex  — a body token that is not an integer.
//
// Complexity: O(m) time and space for m indices.
func ParseTour(r io.Reader) (Tour, error) {
	br := bufio.NewReader(r)

	declared, err := readHeader(br)
	if err != nil {
		return Tour{}, err
	}

	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)

	order := make([]int, 0, capHint(declared))

	var (
		pos int
		v   int
	)
	for sc.Scan() {
		v, err = strconv.Atoi(sc.Text())
		if err != nil {
			return Tour{}, fmt.Errorf("%w: token %d %q", ErrBadIndex, pos, sc.Text())
		}
		order = append(order, v)
		pos++
	}
	if err = sc.Err(); err != nil {
		return Tour{}, err
	}

	return Tour{Declared: declared, Order: order}, nil
}

// maxPrealloc bounds slice preallocation driven by untrusted headers.
const maxPrealloc = 1 << 16

func capHint(n int) int {
	if n < 0 {
		return 0
	}
	if n > maxPrealloc {
		return maxPrealloc
	}
	return n
}

// readHeader consumes the first line and parses it as a count.
func readHeader(br *bufio.Reader) (int, error) {
	line, eof, err := readLine(br)
	if err != nil {
		return 0, err
	}
	if eof && line == "" {
		return 0, fmt.Errorf("%w: empty input", ErrBadHeader)
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadHeader, strings.TrimSpace(line))
	}

	return n, nil
}

// readLine returns the next line without its terminator. eof reports that
// the input is exhausted; a final unterminated line comes back with eof
// set and non-empty content.
func readLine(br *bufio.Reader) (line string, eof bool, err error) {
	line, err = br.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return strings.TrimRight(line, "\r\n"), true, nil
	}
	if err != nil {
		return "", false, err
	}

	return strings.TrimRight(line, "\r\n"), false, nil
}

// parseCoordinate parses "x y" into a point.
func parseCoordinate(line string) (orb.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return orb.Point{}, fmt.Errorf("%w: want 2 fields, got %d", ErrBadCoordinate, len(fields))
	}

	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("%w: x %q", ErrBadCoordinate, fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("%w: y %q", ErrBadCoordinate, fields[1])
	}

	return orb.Point{x, y}, nil
}
