package clip

import (
	"math"
	"math/rand/v2"
)

// DefaultWindow is the clip window the demo scenes start with: (-10,-8)-(10,8).
var DefaultWindow = Window{Min: Point{X: -10, Y: -8}, Max: Point{X: 10, Y: 8}}

// DefaultRandomArea is where the demo scatters random segment endpoints,
// a margin of 5 by 4 units around DefaultWindow.
var DefaultRandomArea = Window{Min: Point{X: -15, Y: -12}, Max: Point{X: 15, Y: 12}}

// DefaultClipPolygon returns the demo clip polygon, a 16x12 rectangle
// listed clockwise.
func DefaultClipPolygon() Polygon {
	return Polygon{{X: -8, Y: -6}, {X: -8, Y: 6}, {X: 8, Y: 6}, {X: 8, Y: -6}}
}

// RandomSegments returns n segments with both endpoints drawn uniformly
// from area. The area is not validated.
func RandomSegments(rng *rand.Rand, n int, area Window) []Segment {
	segs := make([]Segment, n)
	for i := range segs {
		segs[i] = Segment{
			P1: randomPoint(rng, area),
			P2: randomPoint(rng, area),
		}
	}
	return segs
}

// RegularPolygon returns an n-gon inscribed in the circle of the given
// center and radius, counter-clockwise, with its first vertex at angle 0.
// Returns nil for n < 3.
func RegularPolygon(center Point, radius float64, n int) Polygon {
	if n < 3 {
		return nil
	}
	pg := make(Polygon, n)
	for i := range pg {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pg[i] = Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return pg
}

// RandomConvexPolygon returns a regular polygon with 3 to 8 vertices,
// center in [-5,5]x[-4,4] and radius in [3,8].
func RandomConvexPolygon(rng *rand.Rand) Polygon {
	n := 3 + rng.IntN(6)
	center := Point{X: uniform(rng, -5, 5), Y: uniform(rng, -4, 4)}
	return RegularPolygon(center, uniform(rng, 3, 8), n)
}

// RandomPolygons returns count subject polygons with 3 to 6 vertices each:
// regular polygons (center in [-10,10]x[-8,8], radius in [2,5]) with every
// vertex jittered by up to 1 unit per axis. They are usually, but not
// always, convex.
func RandomPolygons(rng *rand.Rand, count int) []Polygon {
	out := make([]Polygon, count)
	for i := range out {
		n := 3 + rng.IntN(4)
		center := Point{X: uniform(rng, -10, 10), Y: uniform(rng, -8, 8)}
		pg := RegularPolygon(center, uniform(rng, 2, 5), n)
		for j := range pg {
			pg[j].X += uniform(rng, -1, 1)
			pg[j].Y += uniform(rng, -1, 1)
		}
		out[i] = pg
	}
	return out
}

func randomPoint(rng *rand.Rand, area Window) Point {
	return Point{
		X: uniform(rng, area.Min.X, area.Max.X),
		Y: uniform(rng, area.Min.Y, area.Max.Y),
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
