package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// resolve applies positional correction and the velocity response for one
// detected contact. a is always dynamic and solid; other may be static.
// The contact normal points from a toward other.
func (e *Engine) resolve(a, other *Body, c Contact) {
	n := c.Normal

	// Positional correction: against a static body, the dynamic body alone
	// is pushed the full depth out; between two dynamic bodies the depth is
	// split in proportion to the opposing mass, so heavier bodies move
	// less. The inverse-mass form keeps infinite-mass bodies in place even
	// when they are not flagged static.
	if other.Static {
		a.Pos = r2.Sub(a.Pos, r2.Scale(c.Depth, n))
	} else {
		invA, invB := a.InvMass(), other.InvMass()
		invSum := invA + invB
		if invSum > 0 {
			a.Pos = r2.Sub(a.Pos, r2.Scale(c.Depth*invA/invSum, n))
			other.Pos = r2.Add(other.Pos, r2.Scale(c.Depth*invB/invSum, n))
		}
	}

	// Grounding is a side effect of contact normals, never a separate
	// sensor. Each dynamic participant sees the normal pointing at the
	// other body.
	e.vertical.Contact(a, n)
	if !other.Static {
		e.vertical.Contact(other, r2.Scale(-1, n))
	}

	if other.Static {
		// Simplified reflection against immovables: flip each axis the
		// normal touches, scaled by the body's own restitution. This is
		// deliberately not a true normal-impulse reflection and looks
		// springy at shallow angles, matching the original engine.
		if n.X != 0 {
			a.Vel.X *= -a.Restitution
		}
		if n.Y != 0 {
			a.Vel.Y *= -a.Restitution
		}
		return
	}

	// Impulse response along the normal between two dynamic bodies.
	rel := r2.Sub(other.Vel, a.Vel)
	alongNormal := r2.Dot(rel, n)
	if alongNormal > 0 {
		// Already separating.
		return
	}
	invA, invB := a.InvMass(), other.InvMass()
	invSum := invA + invB
	if invSum == 0 {
		return
	}
	restitution := math.Min(a.Restitution, other.Restitution)
	j := -(1 + restitution) * alongNormal / invSum
	impulse := r2.Scale(j, n)
	a.Vel = r2.Sub(a.Vel, r2.Scale(invA, impulse))
	other.Vel = r2.Add(other.Vel, r2.Scale(invB, impulse))
}
