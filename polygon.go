package clip

import (
	"fmt"
	"math"
)

// Polygon is an ordered list of vertices, implicitly closed by an edge
// from the last vertex back to the first. Either winding is accepted.
type Polygon []Point

// Validate returns ErrDegeneratePolygon if the polygon has fewer than
// 3 vertices.
func (pg Polygon) Validate() error {
	if len(pg) < 3 {
		return fmt.Errorf("%w: got %d", ErrDegeneratePolygon, len(pg))
	}
	return nil
}

// Edge returns the edge from vertex i to vertex (i+1) mod n.
func (pg Polygon) Edge(i int) Segment {
	return Segment{P1: pg[i], P2: pg[(i+1)%len(pg)]}
}

// SignedArea returns the shoelace area of the polygon: positive for
// counter-clockwise winding, negative for clockwise, zero when degenerate.
func (pg Polygon) SignedArea() float64 {
	if len(pg) < 3 {
		return 0
	}
	var sum float64
	prev := pg[len(pg)-1]
	for _, p := range pg {
		sum += prev.Cross(p)
		prev = p
	}
	return sum / 2
}

// IsConvex reports whether every turn along the boundary has the same
// direction. Collinear vertices are ignored. Self-intersecting star shapes
// are not detected.
func (pg Polygon) IsConvex() bool {
	n := len(pg)
	if n < 3 {
		return false
	}

	var sign int
	for i := range n {
		a, b, c := pg[i], pg[(i+1)%n], pg[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		if cross == 0 {
			continue
		}
		s := 1
		if cross < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return sign != 0
}

// Contains reports whether p is inside the polygon by ray casting.
// See PointInPolygon for the boundary rules.
func (pg Polygon) Contains(p Point) bool {
	return PointInPolygon(p, pg)
}

// Bounds returns the axis-aligned bounding box of the polygon.
// The result is not validated: a polygon with no area along one axis
// yields an invalid Window.
func (pg Polygon) Bounds() Window {
	if len(pg) == 0 {
		return Window{}
	}
	b := Window{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, p := range pg {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// Clone returns a copy of the polygon that shares no memory with pg.
func (pg Polygon) Clone() Polygon {
	if pg == nil {
		return nil
	}
	out := make(Polygon, len(pg))
	copy(out, pg)
	return out
}
