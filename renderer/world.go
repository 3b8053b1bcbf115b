// Package renderer draws the physics world: body shapes, debug overlays
// for the spatial grid, and velocity vectors. It reads engine state once
// per frame and never mutates it.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/SickDinner/Uho-sub001/camera"
	"github.com/SickDinner/Uho-sub001/components"
	"github.com/SickDinner/Uho-sub001/physics"
)

// World draws physics bodies through a camera.
type World struct {
	cam *camera.Camera
}

// NewWorld creates a world renderer for the given camera.
func NewWorld(cam *camera.Camera) *World {
	return &World{cam: cam}
}

// DrawBodies renders every body in the engine. Bodies without a sprite
// entity fall back to a shape-derived default color.
func (w *World) DrawBodies(eng *physics.Engine, tints map[int]rl.Color) {
	eng.Each(func(b *physics.Body) {
		tint, ok := tints[b.ID]
		if !ok {
			tint = defaultTint(b)
		}
		w.drawBody(b, tint)
	})
}

// drawBody renders one body by its shape variant. Polygon and PixelMask
// draw as their collision fallback box, matching what the engine actually
// collides with.
func (w *World) drawBody(b *physics.Body, tint rl.Color) {
	sx, sy := w.cam.WorldToScreen(float32(b.Pos.X), float32(b.Pos.Y))
	if !w.cam.IsVisible(float32(b.Pos.X), float32(b.Pos.Y), visibleRadius(b)) {
		return
	}

	zoom := w.cam.Zoom
	switch s := b.Shape.(type) {
	case physics.Circle:
		r := float32(s.Radius) * zoom
		rl.DrawCircle(int32(sx), int32(sy), r, tint)
		// Heading tick so rotation is visible on circles
		hx, hy := headingTip(b, s.Radius)
		tx, ty := w.cam.WorldToScreen(hx, hy)
		rl.DrawLine(int32(sx), int32(sy), int32(tx), int32(ty), rl.White)
	case physics.Rect:
		cw := float32(s.W) * zoom
		ch := float32(s.H) * zoom
		ox := float32(s.Offset.X) * zoom
		oy := float32(s.Offset.Y) * zoom
		rl.DrawRectangle(int32(sx+ox-cw/2), int32(sy+oy-ch/2), int32(cw), int32(ch), tint)
	default:
		side := float32(physics.DefaultBoxSize) * zoom
		rl.DrawRectangleLines(int32(sx-side/2), int32(sy-side/2), int32(side), int32(side), tint)
	}
}

// DrawGridOverlay renders the spatial index cells intersecting the
// viewport, for the debug view.
func (w *World) DrawGridOverlay(grid *physics.Grid) {
	cell := float32(grid.CellSize())
	minX, minY, maxX, maxY := w.cam.VisibleWorldBounds()

	lineColor := rl.Color{R: 80, G: 90, B: 100, A: 90}
	for x := float32(int(minX/cell)) * cell; x <= maxX; x += cell {
		sx1, sy1 := w.cam.WorldToScreen(x, minY)
		sx2, sy2 := w.cam.WorldToScreen(x, maxY)
		rl.DrawLine(int32(sx1), int32(sy1), int32(sx2), int32(sy2), lineColor)
	}
	for y := float32(int(minY/cell)) * cell; y <= maxY; y += cell {
		sx1, sy1 := w.cam.WorldToScreen(minX, y)
		sx2, sy2 := w.cam.WorldToScreen(maxX, y)
		rl.DrawLine(int32(sx1), int32(sy1), int32(sx2), int32(sy2), lineColor)
	}
}

// DrawVelocities renders a velocity vector from each moving dynamic body,
// scaled so a body at 100 units/s shows a 25-unit arrow.
func (w *World) DrawVelocities(eng *physics.Engine) {
	const velScale = 0.25
	eng.Each(func(b *physics.Body) {
		if b.Static || b.Speed() == 0 {
			return
		}
		sx, sy := w.cam.WorldToScreen(float32(b.Pos.X), float32(b.Pos.Y))
		ex, ey := w.cam.WorldToScreen(
			float32(b.Pos.X+b.Vel.X*velScale),
			float32(b.Pos.Y+b.Vel.Y*velScale),
		)
		rl.DrawLine(int32(sx), int32(sy), int32(ex), int32(ey), rl.Green)
	})
}

// SpriteTint picks the draw color for a sprite component kind, falling
// back to the component's explicit tint when set.
func SpriteTint(s components.Sprite) rl.Color {
	if s.Tint.A != 0 {
		return s.Tint
	}
	switch s.Kind {
	case components.SpriteCircle:
		return rl.SkyBlue
	case components.SpriteBox:
		return rl.Beige
	case components.SpriteDiamond:
		return rl.Gold
	default:
		return rl.Gold
	}
}

// defaultTint colors a body when no sprite entity references it.
func defaultTint(b *physics.Body) rl.Color {
	if b.Static {
		return rl.DarkGray
	}
	if !b.Solid {
		return rl.Gold
	}
	return rl.SkyBlue
}

// visibleRadius returns a conservative cull radius for a body.
func visibleRadius(b *physics.Body) float32 {
	box := physics.BoundsAt(b.Shape, b.Pos)
	w := box.Max.X - box.Min.X
	h := box.Max.Y - box.Min.Y
	if h > w {
		w = h
	}
	return float32(w)
}

// headingTip returns the world point at the edge of a circle body along
// its heading.
func headingTip(b *physics.Body, radius float64) (float32, float32) {
	sin, cos := sincosDeg(b.Rotation)
	return float32(b.Pos.X + cos*radius), float32(b.Pos.Y + sin*radius)
}
