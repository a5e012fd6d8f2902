package clip

import "math"

// MidpointTolerance is the length below which the midpoint subdivision
// clipper stops bisecting, in world units. It also bounds how far the
// endpoints it returns may be from the exact boundary intersections,
// and is the distance within which adjacent accepted pieces are joined.
const MidpointTolerance = 0.1

// Midpoint clips s to w by midpoint subdivision.
//
// Pieces whose endpoints are both inside are accepted, pieces with both
// endpoints beyond the same edge are rejected, and everything else is
// bisected. A piece shorter than MidpointTolerance is accepted or rejected
// by the outcode of its own midpoint. Accepted pieces are visited from P1
// towards P2 and chained while each one starts where the previous ended.
//
// The result is an approximation: unlike CohenSutherland and LiangBarsky
// no boundary intersection is computed, so a clipped endpoint may lie up
// to MidpointTolerance away from the window edge on either side.
// Segments with a NaN or infinite coordinate are rejected. Far from the
// origin, where adjacent float64 values are more than MidpointTolerance
// apart, the error is bounded by their spacing instead.
// Returns ErrInvalidWindow if w is not a valid window.
func Midpoint(s Segment, w Window) (Segment, bool, error) {
	if err := w.Validate(); err != nil {
		return Segment{}, false, err
	}
	out, ok := midpoint(s, w)
	return out, ok, nil
}

// midpoint is Midpoint without window validation.
func midpoint(s Segment, w Window) (Segment, bool) {
	// Bisection never shrinks a non-finite piece.
	if !isFinite(s.P1) || !isFinite(s.P2) {
		return Segment{}, false
	}

	var (
		result  Segment
		found   bool
		pending = make([]Segment, 1, 64)
	)
	pending[0] = s

	accept := func(piece Segment) {
		switch {
		case !found:
			result = piece
			found = true
		case result.P2.Near(piece.P1, MidpointTolerance):
			result.P2 = piece.P2
		}
	}

	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		code1 := ComputeOutcode(cur.P1, w)
		code2 := ComputeOutcode(cur.P2, w)

		if code1 == 0 && code2 == 0 {
			accept(cur)
			continue
		}
		if code1&code2 != 0 {
			continue
		}

		// A piece is a leaf once it is shorter than the tolerance or too
		// short to split in floating point.
		m := cur.Midpoint()
		if cur.Length() < MidpointTolerance || m == cur.P1 || m == cur.P2 {
			if ComputeOutcode(m, w) == 0 {
				accept(cur)
			}
			continue
		}

		// Push the far half first so the near half is popped next and
		// pieces come out ordered from P1 to P2.
		pending = append(pending,
			Segment{P1: m, P2: cur.P2},
			Segment{P1: cur.P1, P2: m},
		)
	}

	return result, found
}

func isFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
