package physics

import "gonum.org/v1/gonum/spatial/r2"

// DefaultBoxSize is the bounding-box side length used for shapes without a
// working extent of their own (Polygon, PixelMask).
const DefaultBoxSize = 32.0

// Shape is the collision shape attached to a body: exactly one of Circle,
// Rect, Polygon or PixelMask. Circle and Rect have exact narrow-phase
// tests; the other two degrade to a bounding box (see BoundsAt).
type Shape interface {
	isShape()
}

// Circle is a circle of the given radius centered on the body position.
type Circle struct {
	Radius float64
}

// Rect is an axis-aligned W x H rectangle centered on the body position
// shifted by Offset.
type Rect struct {
	W, H   float64
	Offset r2.Vec
}

// Polygon carries a vertex list relative to the body position. No exact
// test is implemented for it; polygons collide as the default box.
type Polygon struct {
	Vertices []r2.Vec
}

// PixelMask carries an image-derived alpha mask. No exact test is
// implemented for it; masks collide as the default box.
type PixelMask struct {
	W, H int
	Bits []bool
}

func (Circle) isShape()    {}
func (Rect) isShape()      {}
func (Polygon) isShape()   {}
func (PixelMask) isShape() {}

// AABB is an axis-aligned box in world coordinates.
type AABB struct {
	Min, Max r2.Vec
}

// Overlaps reports whether two boxes intersect. Touching edges count as
// an intersection with zero depth, which is what keeps a body resting
// flush on a floor in contact (and therefore grounded) every tick.
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

// Center returns the box midpoint.
func (b AABB) Center() r2.Vec {
	return r2.Scale(0.5, r2.Add(b.Min, b.Max))
}

// BoundsAt returns the world-space bounding box of a shape for a body at
// pos. Circle and Rect derive exact boxes. Every other variant takes the
// default-box branch: Polygon and PixelMask are declared but not
// implemented in the collision pipeline, and keeping the fallback explicit
// here is what makes that limitation visible.
func BoundsAt(s Shape, pos r2.Vec) AABB {
	switch sh := s.(type) {
	case Circle:
		r := sh.Radius
		return AABB{
			Min: r2.Vec{X: pos.X - r, Y: pos.Y - r},
			Max: r2.Vec{X: pos.X + r, Y: pos.Y + r},
		}
	case Rect:
		c := r2.Add(pos, sh.Offset)
		hw, hh := sh.W/2, sh.H/2
		return AABB{
			Min: r2.Vec{X: c.X - hw, Y: c.Y - hh},
			Max: r2.Vec{X: c.X + hw, Y: c.Y + hh},
		}
	default:
		h := DefaultBoxSize / 2
		return AABB{
			Min: r2.Vec{X: pos.X - h, Y: pos.Y - h},
			Max: r2.Vec{X: pos.X + h, Y: pos.Y + h},
		}
	}
}
