package model

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// AliveMarker marks a living cell in a grid description
	AliveMarker = '@'
	// DeadMarker marks a dead cell in a grid description
	DeadMarker = ' '
)

// FormatError reports a malformed grid description. Line and Column are 1-based;
// Column is 0 when the problem concerns the whole line.
type FormatError struct {
	Line   int
	Column int
	Msg    string
}

func (e *FormatError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("invalid grid description at line %d, column %d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("invalid grid description at line %d: %s", e.Line, e.Msg)
}

// IOError reports a grid description file that could not be opened or read
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read grid file %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// LoadFile reads a grid description from path
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		var formatErr *FormatError
		if errors.As(err, &formatErr) {
			return nil, errors.Wrapf(err, "[LoadFile] %s", path)
		}
		return nil, &IOError{Path: path, Err: err}
	}
	return g, nil
}

// Parse reads a grid description: a "<width> <height>" header followed by exactly
// height rows of width cells. The first malformed line aborts the whole load.
func Parse(r io.Reader) (*Grid, error) {
	br := bufio.NewReader(r)

	header, err := readLine(br)
	if err == io.EOF {
		return nil, &FormatError{Line: 1, Msg: "missing header, expected 'width height' (eg. '50 100')"}
	}
	if err != nil {
		return nil, err
	}
	width, height, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	// rows are checked before the grid is allocated, so memory follows the
	// input actually read rather than the header's claim
	rows := make([]string, 0, min(height, 1024))
	for i := range height {
		row, err := readRow(br, i, width)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	g := NewGrid(width, height)
	for i, row := range rows {
		for j := range width {
			g.cells[i*width+j] = row[j] == AliveMarker
		}
	}

	return g, nil
}

// readRow reads row i and checks its length and markers
func readRow(br *bufio.Reader, i, width int) (string, error) {
	lineNo := i + 2

	row, err := readLine(br)
	if err == io.EOF {
		return "", &FormatError{
			Line: lineNo,
			Msg:  fmt.Sprintf("missing grid rows (found: %d)", i),
		}
	}
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(row, "\n") {
		return "", &FormatError{Line: lineNo, Msg: "row is missing its trailing newline"}
	}
	row = row[:len(row)-1]

	if len(row) != width {
		return "", &FormatError{
			Line: lineNo,
			Msg:  fmt.Sprintf("wrong number of cells on row %d (expected: %d, found: %d)", i, width, len(row)),
		}
	}
	for j := range width {
		if row[j] != DeadMarker && row[j] != AliveMarker {
			return "", &FormatError{
				Line:   lineNo,
				Column: j + 1,
				Msg:    fmt.Sprintf("invalid cell value (expected: %q or %q, found: %q)", DeadMarker, AliveMarker, row[j]),
			}
		}
	}
	return row, nil
}

// readLine returns the next line including its newline. io.EOF is only returned
// when nothing at all was left to read.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

func parseHeader(line string) (width, height int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, &FormatError{Line: 1, Msg: "first line must be 'width height' (eg. '50 100' for a grid of width 50 and height 100)"}
	}
	width, err = strconv.Atoi(fields[0])
	if err != nil || width <= 0 {
		return 0, 0, &FormatError{Line: 1, Msg: fmt.Sprintf("width must be a positive integer, found %q", fields[0])}
	}
	height, err = strconv.Atoi(fields[1])
	if err != nil || height <= 0 {
		return 0, 0, &FormatError{Line: 1, Msg: fmt.Sprintf("height must be a positive integer, found %q", fields[1])}
	}
	if width > math.MaxInt/height {
		return 0, 0, &FormatError{Line: 1, Msg: fmt.Sprintf("a %dx%d grid has too many cells", width, height)}
	}
	return width, height, nil
}
