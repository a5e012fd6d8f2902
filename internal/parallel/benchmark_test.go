package parallel

import (
	"math"
	"strconv"
	"testing"
)

// BenchmarkWorkerPool_Create benchmarks creating a worker pool.
func BenchmarkWorkerPool_Create(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		pool := NewWorkerPool(0) // Use GOMAXPROCS
		pool.Close()
	}
}

// BenchmarkWorkerPool_ExecuteAll benchmarks dispatching empty jobs.
func BenchmarkWorkerPool_ExecuteAll(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			pool := NewWorkerPool(0)
			defer pool.Close()

			work := make([]func(), n)
			for i := range work {
				work[i] = func() {}
			}

			b.ReportAllocs()
			for b.Loop() {
				pool.ExecuteAll(work)
			}
		})
	}
}

// BenchmarkWorkerPool_Range benchmarks a batch shaped like a segment clip:
// a little floating point work per index, written to its own slot.
func BenchmarkWorkerPool_Range(b *testing.B) {
	for _, n := range []int{MinChunk, 10_000, 1_000_000} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			pool := NewWorkerPool(0)
			defer pool.Close()

			out := make([]float64, n)
			b.ReportAllocs()
			for b.Loop() {
				pool.Range(n, func(lo, hi int) {
					for i := lo; i < hi; i++ {
						out[i] = math.Hypot(float64(i), float64(n-i))
					}
				})
			}
		})
	}
}
