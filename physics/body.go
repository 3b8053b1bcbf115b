package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Body is one simulated object. Units are world pixels, seconds and
// degrees. Kinematic state is mutated by the owning Engine through the
// documented operations; writing Pos or Vel directly is tolerated as a
// teleport/reset escape hatch but bypasses collision safety.
type Body struct {
	ID int

	// Kinematic state.
	Pos        r2.Vec  // world units
	Vel        r2.Vec  // units/s
	Accel      r2.Vec  // units/s^2, reset to zero after every tick
	Rotation   float64 // degrees, kept in [0,360)
	AngularVel float64 // degrees/s

	// Physical parameters.
	Mass        float64 // kg; math.Inf(1) for immovable bodies
	Friction    float64 // ground friction multiplier [0,1]
	Restitution float64 // bounciness [0,1]
	MaxSpeed    float64 // units/s
	TurnSpeed   float64 // degrees/s
	Drag        float64 // per-tick air-resistance multiplier

	// Direct-velocity movement parameters (side-scroller policy).
	WalkSpeed float64
	RunSpeed  float64
	JumpPower float64
	CanJump   bool

	Shape Shape

	// Flags. Static bodies are never integrated and never displaced by
	// collision response. Non-solid bodies are triggers: they keep moving
	// but are skipped during collision resolution. Grounded and Moving are
	// derived status flags for animation and camera logic.
	Static   bool
	Solid    bool
	Grounded bool
	Moving   bool

	// Presentation metadata carried for the renderer's convenience. The
	// simulation never reads these.
	SpriteID string
	Scale    float64
	Layer    int
	Opacity  float64

	// Spatial index back-reference, owned by Grid.
	cell   cellKey
	inGrid bool
}

// InvMass returns 1/mass, or 0 for static and infinite-mass bodies so
// positional correction and impulse transfer never move them.
func (b *Body) InvMass() float64 {
	if b.Static || b.Mass <= 0 || math.IsInf(b.Mass, 1) {
		return 0
	}
	return 1 / b.Mass
}

// Speed returns the velocity magnitude in units/s.
func (b *Body) Speed() float64 {
	return r2.Norm(b.Vel)
}

// BodyOptions configures a body at creation. Start from Defaults() and
// override fields as needed.
type BodyOptions struct {
	Mass        float64
	Friction    float64
	Restitution float64
	MaxSpeed    float64
	TurnSpeed   float64
	Drag        float64

	WalkSpeed float64
	RunSpeed  float64
	JumpPower float64
	CanJump   bool

	Static bool
	Solid  bool

	SpriteID string
	Scale    float64
	Layer    int
	Opacity  float64
}

// Defaults returns the documented body defaults: unit mass, friction 0.95,
// restitution 0.1, max speed 200 units/s, turn speed 180 deg/s, drag 0.98,
// dynamic and solid.
func Defaults() BodyOptions {
	return BodyOptions{
		Mass:        1,
		Friction:    0.95,
		Restitution: 0.1,
		MaxSpeed:    200,
		TurnSpeed:   180,
		Drag:        0.98,
		WalkSpeed:   120,
		RunSpeed:    200,
		JumpPower:   350,
		CanJump:     true,
		Solid:       true,
		Scale:       1,
		Opacity:     1,
	}
}
