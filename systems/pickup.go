package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/SickDinner/Uho-sub001/components"
	"github.com/SickDinner/Uho-sub001/physics"
)

// Pickup collects loot entities the player touches: the loot's body is
// removed from the physics engine and the entity from the world.
type Pickup struct {
	engine       *physics.Engine
	playerFilter *ecs.Filter2[components.BodyRef, components.Player]
	lootFilter   *ecs.Filter2[components.BodyRef, components.Loot]
	lootMapper   *ecs.Map3[components.BodyRef, components.Sprite, components.Loot]
}

// NewPickup creates the pickup system.
func NewPickup(w *ecs.World, engine *physics.Engine) *Pickup {
	return &Pickup{
		engine:       engine,
		playerFilter: ecs.NewFilter2[components.BodyRef, components.Player](w),
		lootFilter:   ecs.NewFilter2[components.BodyRef, components.Loot](w),
		lootMapper:   ecs.NewMap3[components.BodyRef, components.Sprite, components.Loot](w),
	}
}

// Update collects loot in range of the player and returns the value
// gained this tick. Collection is two-pass: candidates are gathered while
// the query runs, removal happens after it completes.
func (p *Pickup) Update() int {
	playerPos, playerReach, ok := p.playerBody()
	if !ok {
		return 0
	}

	type hit struct {
		entity ecs.Entity
		bodyID int
		value  int
	}
	var collected []hit

	query := p.lootFilter.Query()
	for query.Next() {
		ref, loot := query.Get()
		body, found := p.engine.GetBody(ref.ID)
		if !found {
			continue
		}
		if InPickupRange(playerPos, body.Pos, playerReach, lootRadius(body)) {
			collected = append(collected, hit{entity: query.Entity(), bodyID: ref.ID, value: loot.Value})
		}
	}

	score := 0
	for _, h := range collected {
		p.engine.RemoveBody(h.bodyID)
		p.lootMapper.Remove(h.entity)
		score += h.value
	}
	return score
}

// playerBody returns the player body position and reach radius.
func (p *Pickup) playerBody() (r2.Vec, float64, bool) {
	query := p.playerFilter.Query()
	for query.Next() {
		ref, _ := query.Get()
		if body, ok := p.engine.GetBody(ref.ID); ok {
			query.Close()
			reach := lootRadius(body)
			return body.Pos, reach, true
		}
	}
	return r2.Vec{}, 0, false
}

// lootRadius returns a body's pickup extent: its circle radius, or half
// the larger rectangle side, falling back to half the default box.
func lootRadius(b *physics.Body) float64 {
	switch s := b.Shape.(type) {
	case physics.Circle:
		return s.Radius
	case physics.Rect:
		if s.W > s.H {
			return s.W / 2
		}
		return s.H / 2
	default:
		return physics.DefaultBoxSize / 2
	}
}

// InPickupRange reports whether two bodies' extents touch within a small
// grab margin.
func InPickupRange(a, b r2.Vec, reachA, reachB float64) bool {
	const grabMargin = 4.0
	d := r2.Norm(r2.Sub(b, a))
	return d <= reachA+reachB+grabMargin
}
