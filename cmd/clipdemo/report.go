package main

import (
	"io"
	"strings"

	"golang.org/x/text/message"

	"github.com/gogpu/clip"
)

func reportLines(p *message.Printer, w io.Writer, algorithm, boundary string, b *clip.LineBatch) {
	p.Fprintf(w, "Algorithm:     %s\n", algorithm)
	p.Fprintf(w, "Clip boundary: %s\n", boundary)
	p.Fprintf(w, "Segments:      %d\n", len(b.Results))
	p.Fprintf(w, "Visible:       %d\n", b.Accepted())
	p.Fprintf(w, "Rejected:      %d\n", b.Rejected())
	p.Fprintf(w, "Efficiency:    %.1f%%\n", b.Efficiency())
	p.Fprintf(w, "Time:          %v\n", b.Elapsed)

	if len(b.Results) == 0 {
		return
	}
	first := b.Results[0]
	p.Fprintf(w, "First segment: %s\n", formatSegment(p, first.Input))
	if len(first.Visible) == 0 {
		p.Fprintf(w, "  clipped to:  nothing, fully outside\n")
		return
	}
	for _, s := range first.Visible {
		p.Fprintf(w, "  clipped to:  %s\n", formatSegment(p, s))
	}
}

func reportPolygons(p *message.Printer, w io.Writer, b *clip.PolygonBatch) {
	p.Fprintf(w, "Algorithm:     sutherland-hodgman\n")
	p.Fprintf(w, "Polygons:      %d\n", len(b.Results))
	p.Fprintf(w, "Overlapping:   %d\n", b.Accepted())
	if n := b.Failed(); n > 0 {
		p.Fprintf(w, "Invalid:       %d (%v)\n", n, b.Err())
	}
	p.Fprintf(w, "Time:          %v\n", b.Elapsed)
	for i, r := range b.Results {
		if len(r.Clipped) > 0 {
			p.Fprintf(w, "First overlap: #%d, %d vertices clipped to %d\n", i+1, len(r.Input), len(r.Clipped))
			break
		}
	}
}

// reportAgreement compares every algorithm's result with the first one's.
// Endpoints may differ by up to clip.MidpointTolerance, and a visible part
// shorter than that counts as matching a rejection.
func reportAgreement(p *message.Printer, w io.Writer, algs []clip.Algorithm, batches []*clip.LineBatch) {
	ref := batches[0]
	total := 0
	for i := 1; i < len(batches); i++ {
		diff := 0
		for j := range ref.Results {
			if !sameResult(ref.Results[j], batches[i].Results[j], clip.MidpointTolerance) {
				diff++
			}
		}
		if diff > 0 {
			p.Fprintf(w, "%s differs from %s on %d of %d segments\n",
				algs[i], algs[0], diff, len(ref.Results))
		}
		total += diff
	}
	if total == 0 {
		names := make([]string, len(algs))
		for i, a := range algs {
			names[i] = a.String()
		}
		p.Fprintf(w, "Agreement:     %s agree on all %d segments\n",
			strings.Join(names, ", "), len(ref.Results))
	}
}

func sameResult(a, b clip.SegmentResult, eps float64) bool {
	if len(a.Visible) != len(b.Visible) {
		return visibleLength(a) < eps && visibleLength(b) < eps
	}
	for i := range a.Visible {
		if !a.Visible[i].Near(b.Visible[i], eps) {
			return false
		}
	}
	return true
}

func visibleLength(r clip.SegmentResult) float64 {
	var sum float64
	for _, s := range r.Visible {
		sum += s.Length()
	}
	return sum
}

func formatPoint(p *message.Printer, pt clip.Point) string {
	return p.Sprintf("(%.1f, %.1f)", pt.X, pt.Y)
}

func formatSegment(p *message.Printer, s clip.Segment) string {
	return formatPoint(p, s.P1) + " - " + formatPoint(p, s.P2)
}

func formatWindow(p *message.Printer, w clip.Window) string {
	return formatPoint(p, w.Min) + " - " + formatPoint(p, w.Max)
}

func formatPolygon(p *message.Printer, pg clip.Polygon) string {
	parts := make([]string, len(pg))
	for i, pt := range pg {
		parts[i] = formatPoint(p, pt)
	}
	return p.Sprintf("%d vertices %s", len(pg), strings.Join(parts, " "))
}
