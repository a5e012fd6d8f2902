package clip

import "fmt"

// Window is an axis-aligned clip rectangle given by its lower-left (Min)
// and upper-right (Max) corners. Y grows upwards.
//
// A valid window has Min.X < Max.X and Min.Y < Max.Y. The zero Window is
// invalid; use NewWindow or WindowFromBounds to get a checked value.
type Window struct {
	Min, Max Point
}

// NewWindow creates a window from its corners.
// Returns ErrInvalidWindow if the corners are not strictly ordered.
func NewWindow(min, max Point) (Window, error) {
	w := Window{Min: min, Max: max}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// WindowFromBounds creates a window from xmin, ymin, xmax, ymax, the order
// used by the line-list file format.
func WindowFromBounds(xmin, ymin, xmax, ymax float64) (Window, error) {
	return NewWindow(Pt(xmin, ymin), Pt(xmax, ymax))
}

// Validate returns ErrInvalidWindow (wrapped with the offending bounds)
// unless Min.X < Max.X and Min.Y < Max.Y.
// NaN bounds fail both comparisons and are rejected too.
func (w Window) Validate() error {
	if !(w.Min.X < w.Max.X) || !(w.Min.Y < w.Max.Y) {
		return fmt.Errorf("%w: min=(%g, %g) max=(%g, %g)",
			ErrInvalidWindow, w.Min.X, w.Min.Y, w.Max.X, w.Max.Y)
	}
	return nil
}

// Width returns Max.X - Min.X.
func (w Window) Width() float64 {
	return w.Max.X - w.Min.X
}

// Height returns Max.Y - Min.Y.
func (w Window) Height() float64 {
	return w.Max.Y - w.Min.Y
}

// Contains reports whether p lies inside the window or on its boundary.
func (w Window) Contains(p Point) bool {
	return ComputeOutcode(p, w) == OutcodeInside
}

// Inflate returns the window grown by d on every side.
// A negative d shrinks it; the result may then be invalid.
func (w Window) Inflate(d float64) Window {
	return Window{
		Min: Point{X: w.Min.X - d, Y: w.Min.Y - d},
		Max: Point{X: w.Max.X + d, Y: w.Max.Y + d},
	}
}

// Polygon returns the window corners in counter-clockwise order,
// starting at Min.
func (w Window) Polygon() Polygon {
	return Polygon{
		w.Min,
		{X: w.Max.X, Y: w.Min.Y},
		w.Max,
		{X: w.Min.X, Y: w.Max.Y},
	}
}
