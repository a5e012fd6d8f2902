package clip

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/clip/internal/parallel"
)

// SegmentResult is the outcome of clipping one input segment.
type SegmentResult struct {
	Input Segment
	// Visible holds the visible pieces: none when the segment was clipped
	// away, exactly one for rectangle and convex polygon clipping.
	Visible []Segment
}

// LineBatch is the result of clipping many segments against one boundary.
// Results are in input order.
type LineBatch struct {
	Results []SegmentResult
	Elapsed time.Duration
}

// Visible returns every visible piece in input order.
func (b *LineBatch) Visible() []Segment {
	var out []Segment
	for _, r := range b.Results {
		out = append(out, r.Visible...)
	}
	return out
}

// Accepted returns how many inputs kept at least one visible piece.
func (b *LineBatch) Accepted() int {
	n := 0
	for _, r := range b.Results {
		if len(r.Visible) > 0 {
			n++
		}
	}
	return n
}

// Rejected returns how many inputs were clipped away entirely.
func (b *LineBatch) Rejected() int {
	return len(b.Results) - b.Accepted()
}

// Efficiency returns the share of inputs with a visible part, in percent.
// An empty batch has efficiency 0.
func (b *LineBatch) Efficiency() float64 {
	if len(b.Results) == 0 {
		return 0
	}
	return float64(b.Accepted()) / float64(len(b.Results)) * 100
}

// PolygonResult is the outcome of clipping one subject polygon.
type PolygonResult struct {
	Input   Polygon
	Clipped Polygon // nil when there is no overlap or Err is set
	// Err is non-nil when the subject could not be clipped, and wraps
	// ErrDegeneratePolygon for a subject with fewer than 3 vertices.
	Err error
}

// PolygonBatch is the result of clipping many polygons against one
// clip polygon. Results are in input order.
type PolygonBatch struct {
	Results []PolygonResult
	Elapsed time.Duration
}

// Clipped returns the non-empty clipped polygons in input order.
func (b *PolygonBatch) Clipped() []Polygon {
	var out []Polygon
	for _, r := range b.Results {
		if len(r.Clipped) > 0 {
			out = append(out, r.Clipped)
		}
	}
	return out
}

// Accepted returns how many subjects overlap the clip polygon.
func (b *PolygonBatch) Accepted() int {
	return len(b.Clipped())
}

// Failed returns how many subjects could not be clipped.
func (b *PolygonBatch) Failed() int {
	n := 0
	for _, r := range b.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Err joins the errors of every failed subject, or returns nil.
func (b *PolygonBatch) Err() error {
	var errs []error
	for _, r := range b.Results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}

// ClipSegments clips every segment to w with the algorithm chosen by
// WithAlgorithm (Cohen-Sutherland by default).
//
// The window and algorithm are checked once up front; ErrInvalidWindow and
// ErrUnknownAlgorithm are the only errors. Segments are clipped
// independently on a worker pool sized by WithWorkers.
func ClipSegments(segs []Segment, w Window, opts ...BatchOption) (*LineBatch, error) {
	o := applyBatchOptions(opts)
	fn, err := o.algorithm.clipper()
	if err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]SegmentResult, len(segs))
	forEach(len(segs), o.workers, func(i int) {
		results[i].Input = segs[i]
		if out, ok := fn(segs[i], w); ok {
			results[i].Visible = []Segment{out}
		}
	})

	b := &LineBatch{Results: results, Elapsed: time.Since(start)}
	Logger().Debug("clip: segment batch",
		"algorithm", o.algorithm.String(),
		"segments", len(segs),
		"visible", b.Accepted(),
		"elapsed", b.Elapsed)
	return b, nil
}

// ClipSegmentsByPolygon clips every segment to the convex polygon clip
// with ClipSegmentByPolygon. Returns ErrDegeneratePolygon if clip has
// fewer than 3 vertices.
func ClipSegmentsByPolygon(segs []Segment, clip Polygon, opts ...BatchOption) (*LineBatch, error) {
	o := applyBatchOptions(opts)
	if err := clip.Validate(); err != nil {
		return nil, err
	}
	warnIfConcave(clip)

	start := time.Now()
	results := make([]SegmentResult, len(segs))
	forEach(len(segs), o.workers, func(i int) {
		results[i] = SegmentResult{
			Input:   segs[i],
			Visible: clipSegmentByPolygon(segs[i], clip),
		}
	})

	b := &LineBatch{Results: results, Elapsed: time.Since(start)}
	Logger().Debug("clip: segment-by-polygon batch",
		"clip_vertices", len(clip),
		"segments", len(segs),
		"visible", b.Accepted(),
		"elapsed", b.Elapsed)
	return b, nil
}

// ClipPolygons clips every subject to the convex polygon clip with
// ClipPolygon.
//
// Returns ErrDegeneratePolygon if clip has fewer than 3 vertices. A subject
// with fewer than 3 vertices does not fail the batch; its result carries
// the error instead (see PolygonBatch.Err).
func ClipPolygons(subjects []Polygon, clip Polygon, opts ...BatchOption) (*PolygonBatch, error) {
	o := applyBatchOptions(opts)
	if err := clip.Validate(); err != nil {
		return nil, err
	}
	warnIfConcave(clip)

	start := time.Now()
	results := make([]PolygonResult, len(subjects))
	forEach(len(subjects), o.workers, func(i int) {
		out, err := ClipPolygon(subjects[i], clip)
		if err != nil {
			err = fmt.Errorf("subject %d: %w", i, err)
		}
		results[i] = PolygonResult{Input: subjects[i], Clipped: out, Err: err}
	})

	b := &PolygonBatch{Results: results, Elapsed: time.Since(start)}
	Logger().Debug("clip: polygon batch",
		"clip_vertices", len(clip),
		"polygons", len(subjects),
		"clipped", b.Accepted(),
		"failed", b.Failed(),
		"elapsed", b.Elapsed)
	return b, nil
}

// forEach calls fn(i) for i in [0, n), on a worker pool unless a single
// worker was requested.
func forEach(n, workers int, fn func(i int)) {
	if workers == 1 || n <= parallel.MinChunk {
		for i := range n {
			fn(i)
		}
		return
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	pool.Range(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	})
}

func warnIfConcave(clip Polygon) {
	if !clip.IsConvex() {
		Logger().Warn("clip: clip polygon is not convex, results may be wrong",
			"vertices", len(clip))
	}
}
