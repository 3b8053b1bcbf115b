package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Contact describes one detected collision. The normal is a unit vector
// pointing from the first body toward the second; the first body separates
// by moving against it. Depth is the overlap along the normal, always
// positive. Point is an approximate world-space contact location.
type Contact struct {
	Point  r2.Vec
	Normal r2.Vec
	Depth  float64
	Other  *Body
}

// CheckCollision runs the narrow-phase test for a pair of bodies,
// dispatching on the shape combination. Circle-circle and rect-rect are
// exact; mixed circle/rect pairs and any pairing that involves a Polygon
// or PixelMask degrade to the bounding-box test. Exactly coincident circle
// centers report no collision so the normal stays defined.
func CheckCollision(a, b *Body) (Contact, bool) {
	switch sa := a.Shape.(type) {
	case Circle:
		if sb, ok := b.Shape.(Circle); ok {
			return circleCircle(a, sa, b, sb)
		}
	case Rect:
		if _, ok := b.Shape.(Rect); ok {
			return boxBox(a, b)
		}
	case Polygon, PixelMask:
		// No exact test exists for these variants; fall through to the
		// bounding-box path below.
	}
	return boxBox(a, b)
}

// circleCircle is the exact analytic circle test. Collision iff
// 0 < d < r1+r2 with d the center distance.
func circleCircle(a *Body, sa Circle, b *Body, sb Circle) (Contact, bool) {
	delta := r2.Sub(b.Pos, a.Pos)
	d := r2.Norm(delta)
	sum := sa.Radius + sb.Radius
	if d <= 0 || d >= sum {
		return Contact{}, false
	}
	n := r2.Scale(1/d, delta)
	return Contact{
		Point:  r2.Add(a.Pos, r2.Scale(sa.Radius, n)),
		Normal: n,
		Depth:  sum - d,
		Other:  b,
	}, true
}

// boxBox tests the bodies' bounding boxes. On overlap the separation axis
// is the one with the smaller overlap; the normal sign follows which box's
// min bound is smaller. The contact point is the midpoint of the box
// centers, an approximation rather than a true manifold.
func boxBox(a, b *Body) (Contact, bool) {
	ba := BoundsAt(a.Shape, a.Pos)
	bb := BoundsAt(b.Shape, b.Pos)
	if !ba.Overlaps(bb) {
		return Contact{}, false
	}

	overlapX := math.Min(ba.Max.X, bb.Max.X) - math.Max(ba.Min.X, bb.Min.X)
	overlapY := math.Min(ba.Max.Y, bb.Max.Y) - math.Max(ba.Min.Y, bb.Min.Y)

	var n r2.Vec
	var depth float64
	if overlapX < overlapY {
		depth = overlapX
		if ba.Min.X < bb.Min.X {
			n = r2.Vec{X: 1}
		} else {
			n = r2.Vec{X: -1}
		}
	} else {
		depth = overlapY
		if ba.Min.Y < bb.Min.Y {
			n = r2.Vec{Y: 1}
		} else {
			n = r2.Vec{Y: -1}
		}
	}

	return Contact{
		Point:  r2.Scale(0.5, r2.Add(ba.Center(), bb.Center())),
		Normal: n,
		Depth:  depth,
		Other:  b,
	}, true
}
