package clip

import "testing"

// BenchmarkClipSegment benchmarks each rectangle algorithm on a mix of
// visible, partly visible and hidden segments.
func BenchmarkClipSegment(b *testing.B) {
	segs := randomSegments(1024)
	for _, a := range Algorithms() {
		b.Run(a.String(), func(b *testing.B) {
			fn, _ := a.clipper()
			b.ReportAllocs()
			i := 0
			for b.Loop() {
				fn(segs[i&1023], testWindow)
				i++
			}
		})
	}
}

// BenchmarkClipSegmentByPolygon benchmarks Cyrus-Beck against an octagon.
func BenchmarkClipSegmentByPolygon(b *testing.B) {
	segs := randomSegments(1024)
	clip := RegularPolygon(Pt(0, 0), 8, 8)
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		clipSegmentByPolygon(segs[i&1023], clip)
		i++
	}
}

// BenchmarkClipPolygon benchmarks Sutherland-Hodgman on random subjects.
func BenchmarkClipPolygon(b *testing.B) {
	subjects := RandomPolygons(newTestRand(), 1024)
	clip := DefaultClipPolygon()
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		_, _ = ClipPolygon(subjects[i&1023], clip)
		i++
	}
}

// BenchmarkClipSegments compares serial and pooled batches.
func BenchmarkClipSegments(b *testing.B) {
	segs := randomSegments(100_000)
	for _, bc := range []struct {
		name    string
		workers int
	}{
		{"serial", 1},
		{"pooled", 0},
	} {
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = ClipSegments(segs, testWindow,
					WithAlgorithm(AlgorithmLiangBarsky), WithWorkers(bc.workers))
			}
		})
	}
}
