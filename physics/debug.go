package physics

import "fmt"

// DebugInfo returns a multi-line human-readable snapshot of a body for
// on-screen debug overlays. The format is for eyes, not machines.
func (e *Engine) DebugInfo(id int) string {
	b, ok := e.bodies[id]
	if !ok {
		return fmt.Sprintf("body %d: not registered", id)
	}
	return fmt.Sprintf(
		"body %d (%s)\npos %.1f, %.1f\nvel %.1f, %.1f (%.1f u/s)\nrot %.1f deg @ %.1f deg/s\ngrounded %v, moving %v",
		b.ID, shapeName(b.Shape),
		b.Pos.X, b.Pos.Y,
		b.Vel.X, b.Vel.Y, b.Speed(),
		b.Rotation, b.AngularVel,
		b.Grounded, b.Moving,
	)
}

// shapeName names a shape variant for debug output.
func shapeName(s Shape) string {
	switch s.(type) {
	case Circle:
		return "circle"
	case Rect:
		return "rect"
	case Polygon:
		return "polygon"
	case PixelMask:
		return "pixelmask"
	default:
		return "unknown"
	}
}
