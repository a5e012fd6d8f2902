package clip

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestCohenSutherland_CrossesBothSides(t *testing.T) {
	got, ok, err := CohenSutherland(Seg(-15, -5, 15, 5), testWindow)
	if err != nil {
		t.Fatalf("CohenSutherland() error = %v", err)
	}
	if !ok {
		t.Fatal("expected segment to be accepted")
	}
	assertPointNear(t, got.P1, Pt(-10, -10.0/3))
	assertPointNear(t, got.P2, Pt(10, 10.0/3))
	// Clipped endpoints land exactly on the boundary.
	if got.P1.X != -10 || got.P2.X != 10 {
		t.Errorf("endpoints not on x=±10: %v", got)
	}
}

func TestLiangBarsky_CrossesBothSides(t *testing.T) {
	got, ok, err := LiangBarsky(Seg(-15, -5, 15, 5), testWindow)
	if err != nil {
		t.Fatalf("LiangBarsky() error = %v", err)
	}
	if !ok {
		t.Fatal("expected segment to be accepted")
	}
	assertPointNear(t, got.P1, Pt(-10, -10.0/3))
	assertPointNear(t, got.P2, Pt(10, 10.0/3))
}

func TestMidpoint_CrossesBothSides(t *testing.T) {
	got, ok, err := Midpoint(Seg(-15, -5, 15, 5), testWindow)
	if err != nil {
		t.Fatalf("Midpoint() error = %v", err)
	}
	if !ok {
		t.Fatal("expected segment to be accepted")
	}
	assertPointWithin(t, got.P1, Pt(-10, -10.0/3), MidpointTolerance)
	assertPointWithin(t, got.P2, Pt(10, 10.0/3), MidpointTolerance)
}

func TestRectClippers_FullyOutside(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
	}{
		{"upper right", Seg(20, 20, 30, 30)},
		{"left", Seg(-50, 0, -11, 5)},
		{"right", Seg(11, -3, 40, 3)},
		{"below", Seg(-5, -9, 5, -20)},
		{"above", Seg(-5, 9, 5, 20)},
		{"horizontal above", Seg(-20, 9, 20, 9)},
		{"vertical left", Seg(-11, -20, -11, 20)},
		{"point outside", Seg(12, 0, 12, 0)},
		// Outcodes share no bit but the line passes beyond the corner.
		{"misses corner", Seg(7, 12, 16, 3)},
	}

	for _, c := range rectClippers {
		for _, tt := range tests {
			t.Run(c.name+"/"+tt.name, func(t *testing.T) {
				got, ok, err := c.fn(tt.seg, testWindow)
				if err != nil {
					t.Fatalf("error = %v", err)
				}
				if ok {
					t.Errorf("expected rejection, got %v", got)
				}
			})
		}
	}
}

func TestRectClippers_FullyInside(t *testing.T) {
	tests := []Segment{
		Seg(-5, -5, 5, 5),
		Seg(0.1, 0.2, 0.3, 0.7),
		Seg(-9.99, 7.5, 9.99, -7.5),
		Seg(3, 3, 3, 3),
		Seg(-10, -8, 10, 8), // corner to corner, on the boundary
	}

	for _, c := range rectClippers {
		for _, seg := range tests {
			got, ok, err := c.fn(seg, testWindow)
			if err != nil {
				t.Fatalf("%s: error = %v", c.name, err)
			}
			if !ok {
				t.Errorf("%s(%v): rejected", c.name, seg)
				continue
			}
			if got != seg {
				t.Errorf("%s(%v) = %v, want unchanged", c.name, seg, got)
			}
		}
	}
}

func TestRectClippers_OneEndpointOutside(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want Segment
	}{
		{"exits right", Seg(0, 0, 20, 0), Seg(0, 0, 10, 0)},
		{"enters from left", Seg(-20, 1, 0, 1), Seg(-10, 1, 0, 1)},
		{"exits top", Seg(2, 0, 2, 20), Seg(2, 0, 2, 8)},
		{"enters from bottom", Seg(-3, -20, -3, 4), Seg(-3, -8, -3, 4)},
		{"exits through corner region", Seg(0, 0, 20, 16), Seg(0, 0, 10, 8)},
		{"diagonal exits top", Seg(0, 0, 6, 12), Seg(0, 0, 4, 8)},
	}

	for _, c := range rectClippers {
		for _, tt := range tests {
			t.Run(c.name+"/"+tt.name, func(t *testing.T) {
				got, ok, err := c.fn(tt.seg, testWindow)
				if err != nil {
					t.Fatalf("error = %v", err)
				}
				if !ok {
					t.Fatal("expected segment to be accepted")
				}
				assertPointWithin(t, got.P1, tt.want.P1, c.eps)
				assertPointWithin(t, got.P2, tt.want.P2, c.eps)
			})
		}
	}
}

func TestRectClippers_InvalidWindow(t *testing.T) {
	windows := []Window{
		{},
		{Min: Pt(10, 0), Max: Pt(0, 10)},
		{Min: Pt(0, 10), Max: Pt(10, 0)},
		{Min: Pt(0, 0), Max: Pt(0, 10)},
		{Min: Pt(0, 5), Max: Pt(10, 5)},
	}

	for _, c := range rectClippers {
		for _, w := range windows {
			_, ok, err := c.fn(Seg(0, 0, 1, 1), w)
			if !errors.Is(err, ErrInvalidWindow) {
				t.Errorf("%s(window %v) error = %v, want ErrInvalidWindow", c.name, w, err)
			}
			if ok {
				t.Errorf("%s(window %v) reported ok with an error", c.name, w)
			}
		}
	}
}

func TestCohenSutherland_KeepsDirection(t *testing.T) {
	got, ok, _ := CohenSutherland(Seg(15, 5, -15, -5), testWindow)
	if !ok {
		t.Fatal("expected segment to be accepted")
	}
	assertPointNear(t, got.P1, Pt(10, 10.0/3))
	assertPointNear(t, got.P2, Pt(-10, -10.0/3))
}

func TestMidpoint_ShortSegmentStraddlingEdge(t *testing.T) {
	// Shorter than the tolerance: classified by its midpoint only.
	inside := Seg(9.97, 0, 10.02, 0) // midpoint x=9.995
	if _, ok, _ := Midpoint(inside, testWindow); !ok {
		t.Error("expected sub-tolerance segment with inside midpoint to be accepted")
	}

	outside := Seg(9.99, 0, 10.05, 0) // midpoint x=10.02
	if _, ok, _ := Midpoint(outside, testWindow); ok {
		t.Error("expected sub-tolerance segment with outside midpoint to be rejected")
	}
}

func TestRectClippers_NonFinite(t *testing.T) {
	for _, c := range rectClippers {
		for _, seg := range []Segment{
			Seg(0, 0, math.Inf(1), 0),
			Seg(math.NaN(), 0, 20, 0),
			Seg(0, 0, 1, math.NaN()),
		} {
			if got, ok, _ := c.fn(seg, testWindow); ok {
				t.Errorf("%s(%v) = %v, want rejection", c.name, seg, got)
			}
		}
	}
}

// extremeSegments have finite endpoints whose differences overflow float64.
var extremeSegments = []Segment{
	Seg(-1e308, 0, 1e308, 0),
	Seg(1.7e308, 3, -1.7e308, 3),
	Seg(0, -1.7e308, 0, 1.7e308),
	Seg(-math.MaxFloat64, -4, 5, -4),
}

func TestRectClippers_ExtremeCoordinates(t *testing.T) {
	want := []Segment{
		Seg(-10, 0, 10, 0),
		Seg(10, 3, -10, 3),
		Seg(0, -8, 0, 8),
		Seg(-10, -4, 5, -4),
	}

	for _, c := range rectClippers {
		for i, seg := range extremeSegments {
			got, ok := clipWithin(t, c.fn, seg, testWindow)
			if !ok {
				t.Errorf("%s(%v): rejected", c.name, seg)
				continue
			}
			if !isFinite(got.P1) || !isFinite(got.P2) {
				t.Errorf("%s(%v) = %v, want finite endpoints", c.name, seg, got)
				continue
			}
			assertPointWithin(t, got.P1, want[i].P1, c.eps)
			assertPointWithin(t, got.P2, want[i].P2, c.eps)
		}
	}
}

func TestMidpoint_FarFromOrigin(t *testing.T) {
	// Adjacent float64 values are 16 apart near 1e17, far above the
	// tolerance, so bisection has to stop on its own.
	w := Window{Min: Pt(1e17, -1), Max: Pt(1e17+1024, 1)}
	seg := Seg(1e17-4096, 0, 1e17+512, 0)

	got, ok := clipWithin(t, Midpoint, seg, w)
	if !ok {
		t.Fatal("expected segment to be accepted")
	}
	if math.Abs(got.P1.X-1e17) > 16 {
		t.Errorf("P1 = %v, want within 16 of x=1e17", got.P1)
	}
	assertPointEqual(t, got.P2, seg.P2)
}

// clipWithin runs fn and fails the test if it does not return promptly.
func clipWithin(t *testing.T, fn func(Segment, Window) (Segment, bool, error), s Segment, w Window) (Segment, bool) {
	t.Helper()
	type result struct {
		seg Segment
		ok  bool
		err error
	}
	done := make(chan result, 1)
	go func() {
		seg, ok, err := fn(s, w)
		done <- result{seg, ok, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			t.Fatalf("clip(%v) error = %v", s, r.err)
		}
		return r.seg, r.ok
	case <-time.After(5 * time.Second):
		t.Fatalf("clip(%v) did not return within 5s", s)
		return Segment{}, false
	}
}

// randomSegments returns reproducible segments spread around testWindow.
func randomSegments(n int) []Segment {
	return RandomSegments(newTestRand(), n, testWindow.Inflate(15))
}

func TestRectClippers_Agree(t *testing.T) {
	segs := append(randomSegments(2000), extremeSegments...)
	for i, seg := range segs {
		cs, csOK, _ := CohenSutherland(seg, testWindow)
		lb, lbOK, _ := LiangBarsky(seg, testWindow)
		mp, mpOK, _ := Midpoint(seg, testWindow)

		if csOK != lbOK {
			t.Fatalf("#%d %v: CohenSutherland ok=%v, LiangBarsky ok=%v", i, seg, csOK, lbOK)
		}
		if !csOK {
			if mpOK {
				t.Errorf("#%d %v: Midpoint accepted %v, exact clippers rejected", i, seg, mp)
			}
			continue
		}
		assertSameSegment(t, cs, lb, 1e-9)

		// Visible parts shorter than the tolerance are below the
		// midpoint clipper's resolution.
		if lb.Length() < MidpointTolerance {
			continue
		}
		if !mpOK {
			t.Errorf("#%d %v: Midpoint rejected, exact result %v", i, seg, lb)
			continue
		}
		assertSameSegment(t, mp, lb, MidpointTolerance)
	}
}

func TestRectClippers_Idempotent(t *testing.T) {
	for _, c := range rectClippers {
		for _, seg := range randomSegments(300) {
			// Skip visible parts too short for the midpoint clipper to
			// resolve twice.
			if exact, ok, _ := LiangBarsky(seg, testWindow); !ok || exact.Length() < 2*c.eps {
				continue
			}
			first, ok, _ := c.fn(seg, testWindow)
			if !ok {
				t.Errorf("%s: %v rejected", c.name, seg)
				continue
			}
			second, ok, _ := c.fn(first, testWindow)
			if !ok {
				t.Errorf("%s: re-clipping %v rejected it", c.name, first)
				continue
			}
			assertSameSegment(t, second, first, c.eps)
		}
	}
}

func TestRectClippers_Monotonic(t *testing.T) {
	bigger := Window{Min: Pt(-12, -9), Max: Pt(15, 10)}

	for _, c := range rectClippers {
		for _, seg := range randomSegments(300) {
			small, okSmall, _ := c.fn(seg, testWindow)
			large, okLarge, _ := c.fn(seg, bigger)
			if okSmall && !okLarge {
				t.Errorf("%s: %v visible in the small window but not the large one", c.name, seg)
				continue
			}
			// Each approximate endpoint may be off by eps in either result.
			if okSmall && large.Length() < small.Length()-4*c.eps {
				t.Errorf("%s: %v shrank from %g to %g in a larger window",
					c.name, seg, small.Length(), large.Length())
			}
		}
	}
}
