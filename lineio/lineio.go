// Package lineio reads and writes line lists in a plain text batch format.
//
// A line list file holds a segment count, one segment per line and the clip
// window on the last line:
//
//	5
//	-15 -5 15 5
//	-10 10 10 -10
//	5 -15 5 15
//	-8 -8 8 8
//	-12 0 12 0
//	-10 -8 10 8
//
// Segments are "x1 y1 x2 y2", the window is "xmin ymin xmax ymax". Fields are
// separated by any amount of whitespace. Blank lines and lines starting with
// '#' are skipped.
package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/clip"
)

// ErrSyntax is wrapped by every error caused by malformed input.
var ErrSyntax = errors.New("lineio: syntax error")

// File is the content of a line list file.
type File struct {
	Segments []clip.Segment
	Window   clip.Window
}

// maxPrealloc caps the segment slice allocated from a file's declared count.
const maxPrealloc = 1024

// Decode reads a line list from r.
//
// Errors name the offending line. A window that is not strictly ordered is
// reported as a wrapped clip.ErrInvalidWindow. Anything after the window
// line is ignored, so files written by EncodeResults decode to their input.
func Decode(r io.Reader) (*File, error) {
	sc := newScanner(r)

	fields, err := sc.next("segment count")
	if err != nil {
		return nil, err
	}
	if len(fields) != 1 {
		return nil, sc.errorf("want a segment count, got %d fields", len(fields))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return nil, sc.errorf("invalid segment count %q", fields[0])
	}

	// The count is untrusted; let append grow past a modest preallocation.
	f := &File{Segments: make([]clip.Segment, 0, min(n, maxPrealloc))}
	for i := range n {
		v, err := sc.floats(fmt.Sprintf("segment %d of %d", i+1, n), 4)
		if err != nil {
			return nil, err
		}
		f.Segments = append(f.Segments, clip.Seg(v[0], v[1], v[2], v[3]))
	}

	v, err := sc.floats("clip window", 4)
	if err != nil {
		return nil, err
	}
	f.Window, err = clip.WindowFromBounds(v[0], v[1], v[2], v[3])
	if err != nil {
		return nil, fmt.Errorf("lineio: line %d: %w", sc.line, err)
	}

	clip.Logger().Debug("lineio: decoded line list",
		"segments", len(f.Segments),
		"lines", sc.line)
	return f, nil
}

// DecodePolygon reads a polygon, one "x y" vertex per line.
// Fewer than 3 vertices is reported as a wrapped clip.ErrDegeneratePolygon.
func DecodePolygon(r io.Reader) (clip.Polygon, error) {
	sc := newScanner(r)

	var pg clip.Polygon
	for {
		fields, err := sc.next("")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		v, err := sc.parse(fields, 2)
		if err != nil {
			return nil, err
		}
		pg = append(pg, clip.Pt(v[0], v[1]))
	}

	if err := pg.Validate(); err != nil {
		return nil, fmt.Errorf("lineio: %w", err)
	}
	return pg, nil
}

// Encode writes f in the line list format. Numbers are written in their
// shortest exact form, so Decode(Encode(f)) reproduces f.
func Encode(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)
	writeFile(bw, f)
	return bw.Flush()
}

// EncodeResults writes f followed by a blank line, a "# clipped: K segments"
// comment and the K clipped segments.
func EncodeResults(w io.Writer, f *File, clipped []clip.Segment) error {
	bw := bufio.NewWriter(w)
	writeFile(bw, f)
	fmt.Fprintf(bw, "\n# clipped: %d segments\n", len(clipped))
	for _, s := range clipped {
		writeSegment(bw, s)
	}
	return bw.Flush()
}

func writeFile(bw *bufio.Writer, f *File) {
	fmt.Fprintf(bw, "%d\n", len(f.Segments))
	for _, s := range f.Segments {
		writeSegment(bw, s)
	}
	writeNumbers(bw, f.Window.Min.X, f.Window.Min.Y, f.Window.Max.X, f.Window.Max.Y)
}

func writeSegment(bw *bufio.Writer, s clip.Segment) {
	writeNumbers(bw, s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
}

func writeNumbers(bw *bufio.Writer, vals ...float64) {
	for i, v := range vals {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	bw.WriteByte('\n')
}

// scanner walks the significant lines of a text input.
type scanner struct {
	sc   *bufio.Scanner
	line int
}

func newScanner(r io.Reader) *scanner {
	return &scanner{sc: bufio.NewScanner(r)}
}

// next returns the fields of the next non-blank, non-comment line.
// At the end of input it returns io.EOF when want is empty and a syntax
// error naming want otherwise.
func (s *scanner) next(want string) ([]string, error) {
	for s.sc.Scan() {
		s.line++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return strings.Fields(text), nil
	}
	if err := s.sc.Err(); err != nil {
		return nil, fmt.Errorf("lineio: line %d: %w", s.line, err)
	}
	if want == "" {
		return nil, io.EOF
	}
	return nil, fmt.Errorf("%w: unexpected end of input, want %s", ErrSyntax, want)
}

// floats reads the next line as exactly n numbers.
func (s *scanner) floats(want string, n int) ([]float64, error) {
	fields, err := s.next(want)
	if err != nil {
		return nil, err
	}
	return s.parse(fields, n)
}

func (s *scanner) parse(fields []string, n int) ([]float64, error) {
	if len(fields) != n {
		return nil, s.errorf("want %d numbers, got %d fields", n, len(fields))
	}
	vals := make([]float64, n)
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, s.errorf("invalid number %q", field)
		}
		vals[i] = v
	}
	return vals, nil
}

func (s *scanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, s.line, fmt.Sprintf(format, args...))
}
