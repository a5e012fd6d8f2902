package clip

import "strings"

// Outcode is the 4-bit Cohen-Sutherland region code of a point relative
// to a Window. Zero means the point is inside or on the boundary.
type Outcode uint8

// Outcode bits.
const (
	OutcodeInside Outcode = 0
	OutcodeLeft   Outcode = 1 // x < Min.X
	OutcodeRight  Outcode = 2 // x > Max.X
	OutcodeBottom Outcode = 4 // y < Min.Y
	OutcodeTop    Outcode = 8 // y > Max.Y
)

// ComputeOutcode classifies p against w.
//
// Comparisons are strict, so points exactly on a window edge are inside.
// Left and right are mutually exclusive for a valid window, as are bottom
// and top. The window is not validated.
func ComputeOutcode(p Point, w Window) Outcode {
	code := OutcodeInside

	if p.X < w.Min.X {
		code |= OutcodeLeft
	} else if p.X > w.Max.X {
		code |= OutcodeRight
	}

	if p.Y < w.Min.Y {
		code |= OutcodeBottom
	} else if p.Y > w.Max.Y {
		code |= OutcodeTop
	}

	return code
}

// String returns "inside" or the set bits joined with "|", e.g. "left|top".
func (c Outcode) String() string {
	if c == OutcodeInside {
		return "inside"
	}
	var parts []string
	for _, b := range []struct {
		bit  Outcode
		name string
	}{
		{OutcodeLeft, "left"},
		{OutcodeRight, "right"},
		{OutcodeBottom, "bottom"},
		{OutcodeTop, "top"},
	} {
		if c&b.bit != 0 {
			parts = append(parts, b.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}
