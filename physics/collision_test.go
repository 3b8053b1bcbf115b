package physics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func bodyAt(id int, x, y float64, s Shape) *Body {
	return &Body{ID: id, Pos: r2.Vec{X: x, Y: y}, Shape: s, Mass: 1, Solid: true}
}

func TestCircleCircle(t *testing.T) {
	tests := []struct {
		name      string
		ax, ay    float64
		bx, by    float64
		ra, rb    float64
		wantHit   bool
		wantDepth float64
		wantN     r2.Vec
	}{
		{
			name: "overlapping along x",
			ax:   0, ay: 0, bx: 15, by: 0, ra: 10, rb: 10,
			wantHit: true, wantDepth: 5, wantN: r2.Vec{X: 1},
		},
		{
			name: "overlapping along y",
			ax:   0, ay: 0, bx: 0, by: -12, ra: 10, rb: 10,
			wantHit: true, wantDepth: 8, wantN: r2.Vec{Y: -1},
		},
		{
			name: "separated",
			ax:   0, ay: 0, bx: 25, by: 0, ra: 10, rb: 10,
			wantHit: false,
		},
		{
			name: "touching exactly is not a collision",
			ax:   0, ay: 0, bx: 20, by: 0, ra: 10, rb: 10,
			wantHit: false,
		},
		{
			name: "coincident centers are degenerate",
			ax:   5, ay: 5, bx: 5, by: 5, ra: 10, rb: 10,
			wantHit: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := bodyAt(1, tc.ax, tc.ay, Circle{Radius: tc.ra})
			b := bodyAt(2, tc.bx, tc.by, Circle{Radius: tc.rb})
			c, hit := CheckCollision(a, b)
			if hit != tc.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tc.wantHit)
			}
			if !hit {
				return
			}
			if math.Abs(c.Depth-tc.wantDepth) > 0.001 {
				t.Errorf("depth = %f, want %f", c.Depth, tc.wantDepth)
			}
			if math.Abs(c.Normal.X-tc.wantN.X) > 0.001 || math.Abs(c.Normal.Y-tc.wantN.Y) > 0.001 {
				t.Errorf("normal = (%f, %f), want (%f, %f)", c.Normal.X, c.Normal.Y, tc.wantN.X, tc.wantN.Y)
			}
			if c.Other != b {
				t.Error("contact should reference the second body")
			}
		})
	}
}

func TestCircleContactPoint(t *testing.T) {
	a := bodyAt(1, 0, 0, Circle{Radius: 10})
	b := bodyAt(2, 15, 0, Circle{Radius: 10})
	c, hit := CheckCollision(a, b)
	if !hit {
		t.Fatal("expected collision")
	}
	if math.Abs(c.Point.X-10) > 0.001 || math.Abs(c.Point.Y) > 0.001 {
		t.Errorf("contact point = (%f, %f), want (10, 0)", c.Point.X, c.Point.Y)
	}
}

func TestRectRectSmallerOverlapAxis(t *testing.T) {
	// The x overlap (4) is smaller than the y overlap (10), so separation
	// happens along x, pointing from the lower-min box to the other.
	a := bodyAt(1, 20, 20, Rect{W: 40, H: 40})
	b := bodyAt(2, 56, 50, Rect{W: 40, H: 40})

	c, hit := CheckCollision(a, b)
	if !hit {
		t.Fatal("expected collision")
	}
	if math.Abs(c.Depth-4) > 0.001 {
		t.Errorf("depth = %f, want 4", c.Depth)
	}
	if c.Normal.X != 1 || c.Normal.Y != 0 {
		t.Errorf("normal = (%f, %f), want (1, 0)", c.Normal.X, c.Normal.Y)
	}
}

func TestRectRectVerticalAxis(t *testing.T) {
	// Wide overlap on x, shallow on y; b sits above a, so the normal
	// points up at it.
	a := bodyAt(1, 0, 0, Rect{W: 100, H: 40})
	b := bodyAt(2, 10, -35, Rect{W: 100, H: 40})

	c, hit := CheckCollision(a, b)
	if !hit {
		t.Fatal("expected collision")
	}
	if math.Abs(c.Depth-5) > 0.001 {
		t.Errorf("depth = %f, want 5", c.Depth)
	}
	if c.Normal.X != 0 || c.Normal.Y != -1 {
		t.Errorf("normal = (%f, %f), want (0, -1)", c.Normal.X, c.Normal.Y)
	}
}

func TestRectRectSeparated(t *testing.T) {
	a := bodyAt(1, 0, 0, Rect{W: 40, H: 40})
	b := bodyAt(2, 100, 0, Rect{W: 40, H: 40})
	if _, hit := CheckCollision(a, b); hit {
		t.Error("separated rects should not collide")
	}
}

func TestCollisionSymmetry(t *testing.T) {
	tests := []struct {
		name string
		a, b *Body
	}{
		{"circles", bodyAt(1, 0, 0, Circle{Radius: 10}), bodyAt(2, 12, 5, Circle{Radius: 10})},
		{"rects", bodyAt(1, 20, 20, Rect{W: 40, H: 40}), bodyAt(2, 56, 50, Rect{W: 40, H: 40})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ab, hitAB := CheckCollision(tc.a, tc.b)
			ba, hitBA := CheckCollision(tc.b, tc.a)
			if !hitAB || !hitBA {
				t.Fatalf("hit = %v/%v, want both", hitAB, hitBA)
			}
			if math.Abs(ab.Depth-ba.Depth) > 0.001 {
				t.Errorf("depth differs by order: %f vs %f", ab.Depth, ba.Depth)
			}
			if math.Abs(ab.Normal.X+ba.Normal.X) > 0.001 || math.Abs(ab.Normal.Y+ba.Normal.Y) > 0.001 {
				t.Errorf("normals are not opposite: (%f, %f) vs (%f, %f)",
					ab.Normal.X, ab.Normal.Y, ba.Normal.X, ba.Normal.Y)
			}
		})
	}
}

func TestMixedPairsUseBoundingBoxes(t *testing.T) {
	// Circle vs rect has no exact test; the box fallback reports this
	// pair as colliding with an axis-aligned normal.
	circle := bodyAt(1, 0, 0, Circle{Radius: 10})
	rect := bodyAt(2, 15, 0, Rect{W: 20, H: 20})

	c, hit := CheckCollision(circle, rect)
	if !hit {
		t.Fatal("expected bounding-box collision")
	}
	if math.Abs(c.Depth-5) > 0.001 {
		t.Errorf("depth = %f, want 5", c.Depth)
	}
	if c.Normal.X != 1 || c.Normal.Y != 0 {
		t.Errorf("normal = (%f, %f), want (1, 0)", c.Normal.X, c.Normal.Y)
	}
}

func TestUnimplementedShapesUseDefaultBox(t *testing.T) {
	// Polygon vertices are ignored by the narrow phase; two polygon bodies
	// collide exactly when their 32x32 default boxes do.
	tests := []struct {
		name    string
		sep     float64
		wantHit bool
	}{
		{"default boxes overlapping", 30, true},
		{"default boxes separated", 40, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := bodyAt(1, 0, 0, Polygon{Vertices: []r2.Vec{{X: -1, Y: -1}, {X: 1, Y: 1}}})
			b := bodyAt(2, tc.sep, 0, PixelMask{W: 8, H: 8})
			_, hit := CheckCollision(a, b)
			if hit != tc.wantHit {
				t.Errorf("hit = %v at separation %f, want %v", hit, tc.sep, tc.wantHit)
			}
		})
	}
}
