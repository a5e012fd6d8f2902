package clip

import (
	"errors"
	"testing"
)

func TestPolygonValidate(t *testing.T) {
	for n := range 3 {
		pg := make(Polygon, n)
		if err := pg.Validate(); !errors.Is(err, ErrDegeneratePolygon) {
			t.Errorf("%d vertices: error = %v, want ErrDegeneratePolygon", n, err)
		}
	}
	if err := (Polygon{{0, 0}, {1, 0}, {0, 1}}).Validate(); err != nil {
		t.Errorf("triangle: unexpected error %v", err)
	}
}

func TestPolygonEdge(t *testing.T) {
	tri := Polygon{{0, 0}, {4, 0}, {0, 3}}
	if got := tri.Edge(0); got != Seg(0, 0, 4, 0) {
		t.Errorf("Edge(0) = %v", got)
	}
	// The last edge closes the polygon.
	if got := tri.Edge(2); got != Seg(0, 3, 0, 0) {
		t.Errorf("Edge(2) = %v", got)
	}
}

func TestPolygonSignedArea(t *testing.T) {
	ccw := Polygon{{0, 0}, {4, 0}, {0, 3}}
	if got := ccw.SignedArea(); got != 6 {
		t.Errorf("ccw SignedArea = %v, want 6", got)
	}
	cw := Polygon{{0, 0}, {0, 3}, {4, 0}}
	if got := cw.SignedArea(); got != -6 {
		t.Errorf("cw SignedArea = %v, want -6", got)
	}
	if got := DefaultClipPolygon().SignedArea(); got != -192 {
		t.Errorf("default clip polygon SignedArea = %v, want -192", got)
	}
	if got := (Polygon{{0, 0}, {1, 1}}).SignedArea(); got != 0 {
		t.Errorf("degenerate SignedArea = %v, want 0", got)
	}
}

func TestPolygonIsConvex(t *testing.T) {
	tests := []struct {
		name string
		pg   Polygon
		want bool
	}{
		{"triangle", Polygon{{0, 0}, {4, 0}, {0, 3}}, true},
		{"clockwise square", DefaultClipPolygon(), true},
		{"square with collinear midpoints", Polygon{{0, 0}, {1, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 1}}, true},
		{"regular hexagon", RegularPolygon(Pt(0, 0), 5, 6), true},
		{"arrow", Polygon{{0, 0}, {4, 2}, {0, 4}, {1, 2}}, false},
		{"all collinear", Polygon{{0, 0}, {1, 1}, {2, 2}}, false},
		{"two vertices", Polygon{{0, 0}, {1, 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pg.IsConvex(); got != tt.want {
				t.Errorf("IsConvex() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonBounds(t *testing.T) {
	pg := Polygon{{1, -2}, {5, 3}, {-4, 0}}
	b := pg.Bounds()
	if b.Min != Pt(-4, -2) || b.Max != Pt(5, 3) {
		t.Errorf("Bounds() = %v", b)
	}
	if (Polygon{}).Bounds() != (Window{}) {
		t.Error("empty polygon should have zero bounds")
	}
}

func TestPolygonClone(t *testing.T) {
	pg := Polygon{{0, 0}, {1, 0}, {0, 1}}
	c := pg.Clone()
	c[0] = Pt(9, 9)
	if pg[0] != Pt(0, 0) {
		t.Error("Clone shares memory with the original")
	}
	if Polygon(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
