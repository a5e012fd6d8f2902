package clip

// ClipSegmentByPolygon clips s to the convex polygon clip with the
// Cyrus-Beck edge-normal method.
//
// Every clip edge narrows the candidate pieces to the side its inward
// normal points to. A piece crossing the edge line is cut at the crossing
// and keeps its inner part; a piece parallel to the edge survives only if
// it already lies on the inner side. Survivors must finally have their
// midpoint inside clip (see PointInPolygon), which drops slivers left by
// rounding along the boundary.
//
// For a convex clip polygon the result holds at most one segment. The
// result is nil when nothing is visible. Returns ErrDegeneratePolygon if
// clip has fewer than 3 vertices.
func ClipSegmentByPolygon(s Segment, clip Polygon) ([]Segment, error) {
	if err := clip.Validate(); err != nil {
		return nil, err
	}
	return clipSegmentByPolygon(s, clip), nil
}

func clipSegmentByPolygon(s Segment, clip Polygon) []Segment {
	candidates := []Segment{s}

	for i := range clip {
		if len(candidates) == 0 {
			return nil
		}
		edge := clip.Edge(i)
		normal, ok := inwardNormal(clip, i)
		if !ok {
			// Every vertex is on this edge's line: the polygon has no
			// interior, and the final containment check rejects everything.
			continue
		}

		var next []Segment
		for _, c := range candidates {
			if piece, keep := clipToHalfPlane(c, edge.P1, normal); keep {
				next = append(next, piece)
			}
		}
		candidates = next
	}

	var result []Segment
	for _, c := range candidates {
		if PointInPolygon(c.Midpoint(), clip) {
			result = append(result, c)
		}
	}
	return result
}

// clipToHalfPlane keeps the part of c where normal·(p-origin) >= 0.
func clipToHalfPlane(c Segment, origin, normal Point) (Segment, bool) {
	d := c.Direction()
	w := c.P1.Sub(origin)
	nd := normal.Dot(d)
	nw := normal.Dot(w)

	if nd == 0 {
		// Parallel to the edge.
		return c, nw >= 0
	}

	// The edge line is crossed at t. Crossings at or beyond an endpoint
	// keep all of c or none of it, never a zero-length piece.
	t := -nw / nd
	if nd > 0 {
		// Entering: the part after the crossing is inside.
		switch {
		case t <= 0:
			return c, true
		case t >= 1:
			return Segment{}, false
		}
		return Segment{P1: c.At(t), P2: c.P2}, true
	}

	// Leaving: the part before the crossing is inside.
	switch {
	case t >= 1:
		return c, true
	case t <= 0:
		return Segment{}, false
	}
	return Segment{P1: c.P1, P2: c.At(t)}, true
}

// inwardNormal returns a normal of edge i oriented towards the interior of
// poly. The orientation is taken from the first vertex, starting two past
// the edge start, that does not lie on the edge line.
func inwardNormal(poly Polygon, i int) (Point, bool) {
	edge := poly.Edge(i)
	normal := edge.Direction().Perp()

	n := len(poly)
	for k := 2; k < n; k++ {
		side := normal.Dot(poly[(i+k)%n].Sub(edge.P1))
		if side > 0 {
			return normal, true
		}
		if side < 0 {
			return normal.Neg(), true
		}
	}
	return Point{}, false
}
