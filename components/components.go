// Package components defines ECS components for the sandbox game layer.
// The physics engine owns all kinematic state; entities here carry only a
// reference into its body registry plus display metadata.
package components

import rl "github.com/gen2brain/raylib-go/raylib"

// BodyRef links an entity to a body in the physics engine's registry.
type BodyRef struct {
	ID int
}

// SpriteKind selects how an entity is drawn.
type SpriteKind uint8

const (
	SpriteCircle SpriteKind = iota
	SpriteBox
	SpriteDiamond
)

// Sprite holds display-only data. The physics body carries its own
// presentation metadata (sprite id, scale, layer); this component adds
// the bits the renderer resolves per entity.
type Sprite struct {
	Kind SpriteKind
	Tint rl.Color
}

// AnimState is the coarse animation state derived from engine flags.
type AnimState uint8

const (
	AnimIdle AnimState = iota
	AnimWalk
	AnimJump
	AnimFall
)

// String returns the state name for debug overlays.
func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimJump:
		return "jump"
	case AnimFall:
		return "fall"
	}
	return "unknown"
}

// Anim tracks the current animation state and its running clock in
// seconds. The clock resets on every state change.
type Anim struct {
	State AnimState
	Clock float64
}

// Loot marks an entity as a pickup worth Value points.
type Loot struct {
	Value int
}

// Player tags the player-controlled entity.
type Player struct{}
