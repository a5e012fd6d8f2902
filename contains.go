package clip

// PointInPolygon reports whether p lies inside poly using ray casting.
//
// A horizontal ray is cast from p towards +X and the inside flag is
// toggled for every edge it crosses. An edge (pi, pj), with pj the vertex
// before pi, is crossed when exactly one endpoint lies strictly above p
// and the edge meets the ray strictly to the right of p.
//
// Boundary behaviour follows from those strict comparisons: on the square
// (0,0) (10,0) (10,10) (0,10), the point (0,5) on the left edge is inside
// while (10,5) on the right edge and (5,10) on the top edge are outside.
// Polygons with fewer than 3 vertices contain nothing.
func PointInPolygon(p Point, poly Polygon) bool {
	if len(poly) < 3 {
		return false
	}

	inside := false
	j := len(poly) - 1
	for i := range poly {
		pi, pj := poly[i], poly[j]
		// (pi.Y > p.Y) != (pj.Y > p.Y) guarantees pj.Y != pi.Y.
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
