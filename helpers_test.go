package clip

import (
	"math"
	"math/rand/v2"
	"testing"
)

const testEpsilon = 1e-9

// testWindow matches DefaultWindow.
var testWindow = Window{Min: Pt(-10, -8), Max: Pt(10, 8)}

func assertPointEqual(t *testing.T, got, want Point) {
	t.Helper()
	if got.X != want.X || got.Y != want.Y {
		t.Errorf("point mismatch: got %v, want %v", got, want)
	}
}

func assertPointNear(t *testing.T, got, want Point) {
	t.Helper()
	assertPointWithin(t, got, want, testEpsilon)
}

func assertPointWithin(t *testing.T, got, want Point, eps float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps {
		t.Errorf("point mismatch: got %v, want %v (epsilon=%v)", got, want, eps)
	}
}

// assertSameSegment compares segments without regard to direction.
func assertSameSegment(t *testing.T, got, want Segment, eps float64) {
	t.Helper()
	if got.Near(want, eps) || got.Near(want.Reverse(), eps) {
		return
	}
	t.Errorf("segment mismatch: got %v, want %v (epsilon=%v)", got, want, eps)
}

// rectClippers lists the exported rectangle clippers by name.
var rectClippers = []struct {
	name string
	fn   func(Segment, Window) (Segment, bool, error)
	eps  float64
}{
	{"CohenSutherland", CohenSutherland, testEpsilon},
	{"LiangBarsky", LiangBarsky, testEpsilon},
	{"Midpoint", Midpoint, MidpointTolerance},
}

// newTestRand returns a generator with a fixed seed so failures reproduce.
func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
