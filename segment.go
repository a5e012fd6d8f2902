package clip

// Segment is a directed line segment from P1 to P2.
// The direction only matters for parametric evaluation; every clipper
// treats (P1, P2) and (P2, P1) as the same visible set.
type Segment struct {
	P1, P2 Point
}

// Seg creates a Segment from endpoint coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{P1: Point{X: x1, Y: y1}, P2: Point{X: x2, Y: y2}}
}

// At evaluates the segment at parameter t: P1 + t*(P2-P1).
func (s Segment) At(t float64) Point {
	return s.P1.Lerp(s.P2, t)
}

// Direction returns P2-P1.
func (s Segment) Direction() Point {
	return s.P2.Sub(s.P1)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Distance(s.P2)
}

// Midpoint returns the point halfway between P1 and P2. Unlike At(0.5) it
// stays finite for any finite endpoints.
func (s Segment) Midpoint() Point {
	return Point{
		X: s.P1.X*0.5 + s.P2.X*0.5,
		Y: s.P1.Y*0.5 + s.P2.Y*0.5,
	}
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{P1: s.P2, P2: s.P1}
}

// Near reports whether the endpoints of s and o match pairwise within eps.
func (s Segment) Near(o Segment, eps float64) bool {
	return s.P1.Near(o.P1, eps) && s.P2.Near(o.P2, eps)
}
