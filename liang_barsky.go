package clip

// LiangBarsky clips s to w using the Liang-Barsky parametric algorithm.
//
// The segment is written as P(t) = P1 + t*(P2-P1) for t in [0, 1], and
// each window edge contributes a constraint p*t <= q that narrows the
// admissible interval [u1, u2]. Returns the zero Segment and false when
// the interval becomes empty. Clipped endpoints lie on the window boundary.
// Segments with a NaN or infinite coordinate are rejected.
// Returns ErrInvalidWindow if w is not valid.
func LiangBarsky(s Segment, w Window) (Segment, bool, error) {
	if err := w.Validate(); err != nil {
		return Segment{}, false, err
	}
	out, ok := liangBarsky(s, w)
	return out, ok, nil
}

// liangBarsky is LiangBarsky without window validation.
//
// Deltas and edge distances are kept halved so that they stay finite for
// any finite input; halving both sides leaves every ratio q/p unchanged.
func liangBarsky(s Segment, w Window) (Segment, bool) {
	if !isFinite(s.P1) || !isFinite(s.P2) {
		return Segment{}, false
	}

	x1, y1 := s.P1.X, s.P1.Y
	hdx := halfDiff(x1, s.P2.X)
	hdy := halfDiff(y1, s.P2.Y)

	// left, right, bottom, top
	p := [4]float64{-hdx, hdx, -hdy, hdy}
	q := [4]float64{
		halfDiff(w.Min.X, x1),
		halfDiff(x1, w.Max.X),
		halfDiff(w.Min.Y, y1),
		halfDiff(y1, w.Max.Y),
	}

	u1, u2 := 0.0, 1.0
	in, out := -1, -1 // edges that set u1 and u2
	for i := range p {
		if p[i] == 0 {
			// Parallel to this edge: either fully outside it or unconstrained.
			if q[i] < 0 {
				return Segment{}, false
			}
			continue
		}

		t := q[i] / p[i]
		if p[i] < 0 {
			// entering
			if t > u1 {
				u1, in = t, i
			}
		} else {
			// leaving
			if t < u2 {
				u2, out = t, i
			}
		}
	}

	if u1 > u2 {
		return Segment{}, false
	}

	res := s
	if in >= 0 {
		res.P1 = liangBarskyPoint(x1, y1, hdx, hdy, u1, in, w)
	}
	// x1 + 1*dx need not round back to x2.
	if out >= 0 {
		res.P2 = liangBarskyPoint(x1, y1, hdx, hdy, u2, out, w)
	}
	return res, true
}

// liangBarskyPoint evaluates the segment at u, where it crosses the given
// edge. The crossed coordinate is set to the edge exactly; the other one is
// clamped to the window to absorb rounding in u.
func liangBarskyPoint(x1, y1, hdx, hdy, u float64, edge int, w Window) Point {
	pt := Point{X: x1 + 2*(u*hdx), Y: y1 + 2*(u*hdy)}
	switch edge {
	case 0:
		pt.X = w.Min.X
	case 1:
		pt.X = w.Max.X
	case 2:
		pt.Y = w.Min.Y
	case 3:
		pt.Y = w.Max.Y
	}
	return clampToWindow(pt, w)
}

// halfDiff returns (b-a)/2 without overflowing for finite a and b.
func halfDiff(a, b float64) float64 {
	return b*0.5 - a*0.5
}
