package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/SickDinner/Uho-sub001/components"
	"github.com/SickDinner/Uho-sub001/physics"
)

// Animation derives each entity's animation state from the engine's
// Moving/Grounded flags and vertical velocity. Pure state logic; drawing
// happens in the renderer.
type Animation struct {
	engine *physics.Engine
	filter *ecs.Filter2[components.BodyRef, components.Anim]
}

// NewAnimation creates the animation system.
func NewAnimation(w *ecs.World, engine *physics.Engine) *Animation {
	return &Animation{
		engine: engine,
		filter: ecs.NewFilter2[components.BodyRef, components.Anim](w),
	}
}

// Update advances animation clocks and switches states. dt is the frame
// time in seconds.
func (a *Animation) Update(dt float64) {
	query := a.filter.Query()
	for query.Next() {
		ref, anim := query.Get()
		body, ok := a.engine.GetBody(ref.ID)
		if !ok {
			continue
		}
		next := NextAnimState(body.Moving, body.Grounded, body.Vel.Y)
		if next != anim.State {
			anim.State = next
			anim.Clock = 0
		} else {
			anim.Clock += dt
		}
	}
}

// NextAnimState picks the animation state for a body. Airborne bodies are
// jumping while still rising (Y grows downward, so rising is negative)
// and falling otherwise; grounded bodies walk or idle by the Moving flag.
func NextAnimState(moving, grounded bool, velY float64) components.AnimState {
	if !grounded {
		if velY < 0 {
			return components.AnimJump
		}
		return components.AnimFall
	}
	if moving {
		return components.AnimWalk
	}
	return components.AnimIdle
}
