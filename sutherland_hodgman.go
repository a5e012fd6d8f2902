package clip

// ClipPolygon clips subject to the convex polygon clip using
// Sutherland-Hodgman successive half-plane clipping.
//
// Each clip edge in turn keeps the part of the current subject on the
// inner side of the edge's supporting line; the output of one edge is the
// input to the next. The inner side is derived from the winding of clip,
// so either orientation works. The subject may be concave, but the result
// is only correct when clip is convex; concave clip polygons and multiple
// disjoint output contours are not supported.
//
// An empty overlap returns a nil Polygon and a nil error. The result can
// contain repeated or collinear vertices where the subject touches a clip
// edge. Returns ErrDegeneratePolygon if either polygon has fewer than
// 3 vertices.
func ClipPolygon(subject, clip Polygon) (Polygon, error) {
	if err := subject.Validate(); err != nil {
		return nil, err
	}
	if err := clip.Validate(); err != nil {
		return nil, err
	}

	winding := 1.0
	if clip.SignedArea() < 0 {
		winding = -1
	}

	output := subject.Clone()
	for i := range clip {
		if len(output) == 0 {
			return nil, nil
		}
		edge := clip.Edge(i)
		output = clipPolygonByEdge(output, edge, winding)
	}

	if len(output) == 0 {
		return nil, nil
	}
	return output, nil
}

// clipPolygonByEdge keeps the part of polygon on the inner side of edge.
func clipPolygonByEdge(polygon Polygon, edge Segment, winding float64) Polygon {
	inside := func(p Point) bool {
		return winding*edge.Direction().Cross(p.Sub(edge.P1)) >= 0
	}

	result := make(Polygon, 0, len(polygon)+1)
	s := polygon[len(polygon)-1]
	for _, p := range polygon {
		switch {
		case inside(p):
			if !inside(s) {
				result = append(result, lineIntersection(s, p, edge))
			}
			result = append(result, p)
		case inside(s):
			result = append(result, lineIntersection(s, p, edge))
		}
		s = p
	}
	return result
}

// lineIntersection returns where the line through p1 and p2 meets the
// line through edge. Parallel lines fall back to p1 unchanged.
func lineIntersection(p1, p2 Point, edge Segment) Point {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := edge.P1.X, edge.P1.Y
	x4, y4 := edge.P2.X, edge.P2.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return p1
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	return Point{
		X: x1 + t*(x2-x1),
		Y: y1 + t*(y2-y1),
	}
}
