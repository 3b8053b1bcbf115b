// Package systems contains the ECS systems of the sandbox game layer:
// movement input, animation state, and loot pickup. Each system holds its
// own filters and a reference to the physics engine injected by the game's
// composition root.
package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/SickDinner/Uho-sub001/components"
)

// Mode selects which movement scheme drives the player.
type Mode uint8

const (
	// ModeFree is 360-degree force steering.
	ModeFree Mode = iota
	// ModePlatformer is side-scroller walk/run/jump movement.
	ModePlatformer
)

// Intent is one frame of already-debounced player input, produced by the
// input layer and consumed here.
type Intent struct {
	Dir  r2.Vec // normalized direction, zero when no keys are held
	Run  bool
	Jump bool
}

// MovementTarget is the subset of physics engine operations the movement
// system drives. Satisfied by *physics.Engine.
type MovementTarget interface {
	MoveBody(id int, dir r2.Vec, force float64, turnTowards bool)
	MoveLeft(id int, running bool)
	MoveRight(id int, running bool)
	Jump(id int) bool
	StopHorizontal(id int)
}

// Movement applies player intent to the player body each tick.
type Movement struct {
	engine MovementTarget
	mode   Mode
	filter *ecs.Filter2[components.BodyRef, components.Player]
}

// NewMovement creates the movement system for the given mode.
func NewMovement(w *ecs.World, engine MovementTarget, mode Mode) *Movement {
	return &Movement{
		engine: engine,
		mode:   mode,
		filter: ecs.NewFilter2[components.BodyRef, components.Player](w),
	}
}

// Update applies the intent to every player-tagged body.
func (m *Movement) Update(intent Intent) {
	query := m.filter.Query()
	for query.Next() {
		ref, _ := query.Get()
		switch m.mode {
		case ModeFree:
			m.engine.MoveBody(ref.ID, intent.Dir, ForceFor(intent), true)
		case ModePlatformer:
			m.applyPlatformer(ref.ID, intent)
		}
	}
}

// applyPlatformer maps intent onto the direct-velocity operations: the
// horizontal sign walks or runs, releasing it stops outright, and jump is
// attempted whenever pressed (the engine refuses it while airborne).
func (m *Movement) applyPlatformer(id int, intent Intent) {
	switch {
	case intent.Dir.X < 0:
		m.engine.MoveLeft(id, intent.Run)
	case intent.Dir.X > 0:
		m.engine.MoveRight(id, intent.Run)
	default:
		m.engine.StopHorizontal(id)
	}
	if intent.Jump {
		m.engine.Jump(id)
	}
}

// ForceFor maps an intent onto the force scalar for MoveBody: full
// deflection when running, half otherwise, zero for no input.
func ForceFor(intent Intent) float64 {
	if r2.Norm(intent.Dir) == 0 {
		return 0
	}
	if intent.Run {
		return 1
	}
	return 0.5
}

// NormalizeDir scales a raw key-state direction to unit length, so
// diagonal input is no faster than cardinal input.
func NormalizeDir(x, y float64) r2.Vec {
	n := math.Hypot(x, y)
	if n == 0 {
		return r2.Vec{}
	}
	return r2.Vec{X: x / n, Y: y / n}
}
