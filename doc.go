// Package clip provides 2D line and polygon clipping.
//
// # Overview
//
// clip reduces line segments and polygons to the part that lies inside an
// axis-aligned rectangle (a [Window]) or a convex polygon. It is the
// geometric core used by gogpu tooling that imports, draws and exports
// clipped line lists; it does no drawing or I/O itself (see the lineio and
// render packages).
//
// # Quick Start
//
//	import "github.com/gogpu/clip"
//
//	win, err := clip.WindowFromBounds(-10, -8, 10, 8)
//	if err != nil {
//	    return err
//	}
//	seg, ok, err := clip.ClipSegment(clip.Seg(-15, -5, 15, 5), win, clip.AlgorithmLiangBarsky)
//	// seg = (-10,-3.33)-(10,3.33), ok = true
//
// # Algorithms
//
// Segment against rectangle, selected with [Algorithm]:
//   - [CohenSutherland]: outcode-driven endpoint replacement
//   - [LiangBarsky]: parametric interval narrowing
//   - [Midpoint]: bisection to [MidpointTolerance], approximate
//
// Against a convex polygon:
//   - [ClipSegmentByPolygon]: Cyrus-Beck edge-normal narrowing
//   - [ClipPolygon]: Sutherland-Hodgman polygon clipping
//
// [PointInPolygon] is the ray casting containment test used by both.
//
// # Coordinate System
//
// World coordinates with Y growing upwards: a Window's Min is its
// lower-left corner, and the "top" outcode bit means y > Max.Y.
//
// # Errors
//
// Invalid inputs are reported as errors wrapping [ErrInvalidWindow] or
// [ErrDegeneratePolygon]. A primitive lying entirely outside is not an
// error: single-segment clippers return ok=false, the others return nil.
//
// # Concurrency
//
// Every clipper is a pure function of its arguments and may be called from
// any number of goroutines. [ClipSegments], [ClipSegmentsByPolygon] and
// [ClipPolygons] spread a batch over a worker pool.
package clip
