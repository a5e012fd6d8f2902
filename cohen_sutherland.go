package clip

// CohenSutherland clips s to w using the Cohen-Sutherland algorithm.
//
// It returns the visible part of s and true, or the zero Segment and false
// when s lies entirely outside w. Endpoints that start inside the window
// are returned unchanged; clipped endpoints lie exactly on the window
// boundary. Segments with a NaN or infinite coordinate are rejected. Returns ErrInvalidWindow if w is not a valid window.
func CohenSutherland(s Segment, w Window) (Segment, bool, error) {
	if err := w.Validate(); err != nil {
		return Segment{}, false, err
	}
	out, ok := cohenSutherland(s, w)
	return out, ok, nil
}

// maxCohenSutherlandSteps bounds the clipping loop. Exact arithmetic needs
// at most two steps per endpoint; the rest absorbs rounding near corners.
const maxCohenSutherlandSteps = 16

// cohenSutherland is CohenSutherland without window validation.
func cohenSutherland(s Segment, w Window) (Segment, bool) {
	if !isFinite(s.P1) || !isFinite(s.P2) {
		return Segment{}, false
	}

	p0, p1 := s.P1, s.P2
	code0 := ComputeOutcode(p0, w)
	code1 := ComputeOutcode(p1, w)

	for step := 0; ; step++ {
		if step == maxCohenSutherlandSteps {
			// Endpoints are oscillating around a corner by rounding error.
			return Segment{P1: clampToWindow(p0, w), P2: clampToWindow(p1, w)}, true
		}
		if (code0 | code1) == 0 {
			// Both inside - trivially accept
			return Segment{P1: p0, P2: p1}, true
		}
		if (code0 & code1) != 0 {
			// Both outside the same half-plane - trivially reject
			return Segment{}, false
		}

		// One point outside, clip it
		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		// Halved so the deltas stay finite for any finite endpoints.
		hdx := halfDiff(p0.X, p1.X)
		hdy := halfDiff(p0.Y, p1.Y)

		// Only the first set bit in top, bottom, right, left order is
		// handled per iteration. A zero denominator means the segment runs
		// parallel to that boundary while lying beyond it, so it never
		// enters the window.
		var p Point
		switch {
		case (codeOut & OutcodeTop) != 0:
			if hdy == 0 {
				return Segment{}, false
			}
			p.X = p0.X + 2*(hdx*(halfDiff(p0.Y, w.Max.Y)/hdy))
			p.Y = w.Max.Y
		case (codeOut & OutcodeBottom) != 0:
			if hdy == 0 {
				return Segment{}, false
			}
			p.X = p0.X + 2*(hdx*(halfDiff(p0.Y, w.Min.Y)/hdy))
			p.Y = w.Min.Y
		case (codeOut & OutcodeRight) != 0:
			if hdx == 0 {
				return Segment{}, false
			}
			p.Y = p0.Y + 2*(hdy*(halfDiff(p0.X, w.Max.X)/hdx))
			p.X = w.Max.X
		case (codeOut & OutcodeLeft) != 0:
			if hdx == 0 {
				return Segment{}, false
			}
			p.Y = p0.Y + 2*(hdy*(halfDiff(p0.X, w.Min.X)/hdx))
			p.X = w.Min.X
		}

		// Update the point that was outside
		if codeOut == code0 {
			p0 = p
			code0 = ComputeOutcode(p0, w)
		} else {
			p1 = p
			code1 = ComputeOutcode(p1, w)
		}
	}
}

func clampToWindow(p Point, w Window) Point {
	return Point{
		X: min(max(p.X, w.Min.X), w.Max.X),
		Y: min(max(p.Y, w.Min.Y), w.Max.Y),
	}
}
