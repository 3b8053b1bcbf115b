package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Params holds engine-level tuning shared by all bodies. Body-level
// parameters (mass, drag, speeds) live on Body.
type Params struct {
	CellSize     float64 // spatial grid cell size, world units
	MaxStepMs    float64 // integration step clamp, milliseconds
	MinSpeed     float64 // snap-to-zero threshold, units/s (free policy)
	AccelForce   float64 // movement input force scale, units/s^2 at force 1
	Deadzone     float64 // input magnitude below this is ignored
	RunThreshold float64 // force at or above this selects run speed
	Gravity      float64 // units/s^2, positive is down (gravity policy)
	TerminalVel  float64 // maximum fall speed, units/s (gravity policy)
	AirDrag      float64 // per-second velocity-proportional drag (gravity policy)
}

// DefaultParams returns the free-movement tuning, with 128-unit grid
// cells.
func DefaultParams() Params {
	return Params{
		CellSize:     128,
		MaxStepMs:    1000.0 / 30.0,
		MinSpeed:     0.5,
		AccelForce:   1000,
		Deadzone:     0.1,
		RunThreshold: 0.75,
		Gravity:      980,
		TerminalVel:  600,
		AirDrag:      0.1,
	}
}

// PlatformerParams returns the gravity-variant tuning. The grid cell is
// halved to 64 units to match tile-scale bodies.
func PlatformerParams() Params {
	p := DefaultParams()
	p.CellSize = 64
	return p
}

// VerticalPolicy is the pluggable vertical-motion model. FreeMotion is the
// 360-degree engine: no gravity, radial speed clamp, snap-to-zero.
// GravityMotion is the grounded side-scroller engine: gravity, per-axis
// clamp with terminal velocity, grounding via contact normals. The two
// used to be near-duplicate engines; the policy carries everything that
// actually differed between them.
type VerticalPolicy interface {
	// Accumulate adds policy forces before acceleration is integrated.
	Accumulate(b *Body, p Params)
	// Damp applies the policy's drag model to velocity.
	Damp(b *Body, p Params, dt float64)
	// ClampVelocity enforces the policy's speed limits.
	ClampVelocity(b *Body, p Params)
	// Settle snaps residual velocity to zero where the policy wants it.
	Settle(b *Body, p Params)
	// EndTick runs after position integration.
	EndTick(b *Body)
	// Contact reacts to a resolved collision normal pointing from b toward
	// the other body.
	Contact(b *Body, normal r2.Vec)
	// Jump attempts a jump, reporting whether it had any effect.
	Jump(b *Body, p Params) bool
}

// FreeMotion treats both axes identically; there is no vertical.
type FreeMotion struct{}

func (FreeMotion) Accumulate(b *Body, p Params) {}

// Damp applies the flat per-tick air-resistance multiplier.
func (FreeMotion) Damp(b *Body, p Params, dt float64) {
	b.Vel = r2.Scale(b.Drag, b.Vel)
}

// ClampVelocity rescales velocity down to MaxSpeed, preserving direction.
func (FreeMotion) ClampVelocity(b *Body, p Params) {
	speed := r2.Norm(b.Vel)
	if speed > b.MaxSpeed && speed > 0 {
		b.Vel = r2.Scale(b.MaxSpeed/speed, b.Vel)
	}
}

// Settle zeroes velocity below the minimum-speed threshold so bodies do
// not creep forever on floating-point residue.
func (FreeMotion) Settle(b *Body, p Params) {
	if r2.Norm(b.Vel) < p.MinSpeed {
		b.Vel = r2.Vec{}
	}
}

func (FreeMotion) EndTick(b *Body)                {}
func (FreeMotion) Contact(b *Body, normal r2.Vec) {}
func (FreeMotion) Jump(b *Body, p Params) bool    { return false }

// GravityMotion is the grounded vertical policy. Y grows downward, so
// gravity is positive and a jump is a negative vertical velocity.
type GravityMotion struct{}

// Accumulate adds gravitational acceleration while airborne.
func (GravityMotion) Accumulate(b *Body, p Params) {
	if !b.Grounded {
		b.Accel.Y += p.Gravity
	}
}

// Damp subtracts velocity-proportional air resistance, then applies the
// body's own ground friction while grounded.
func (GravityMotion) Damp(b *Body, p Params, dt float64) {
	b.Vel = r2.Sub(b.Vel, r2.Scale(p.AirDrag*dt, b.Vel))
	if b.Grounded {
		b.Vel.X *= b.Friction
	}
}

// ClampVelocity clamps each axis independently: the horizontal axis to
// the body's MaxSpeed, the vertical axis to the terminal velocity.
func (GravityMotion) ClampVelocity(b *Body, p Params) {
	b.Vel.X = clampAbs(b.Vel.X, b.MaxSpeed)
	b.Vel.Y = clampAbs(b.Vel.Y, p.TerminalVel)
}

func (GravityMotion) Settle(b *Body, p Params) {}

// EndTick provisionally clears grounding; the collision resolver
// re-asserts it while the body still rests on something. Walking off a
// ledge therefore reads as grounded for one extra tick.
func (GravityMotion) EndTick(b *Body) {
	b.Grounded = false
}

// Contact grounds the body when something below pushes up against
// non-upward motion, and kills the vertical velocity so the body rests
// instead of bouncing.
func (GravityMotion) Contact(b *Body, normal r2.Vec) {
	if normal.Y > 0 && b.Vel.Y >= 0 {
		b.Grounded = true
		b.Vel.Y = 0
	}
}

// Jump launches the body upward. Fails without effect when the body is
// airborne or jumping is disabled for it.
func (GravityMotion) Jump(b *Body, p Params) bool {
	if !b.Grounded || !b.CanJump {
		return false
	}
	b.Vel.Y = -b.JumpPower
	b.Grounded = false
	return true
}

// MovementPolicy translates caller movement intent into body motion.
type MovementPolicy interface {
	// Move applies a normalized direction and a force scalar in [0,1].
	Move(b *Body, dir r2.Vec, force float64, turnTowards bool, p Params, dt float64)
}

// ForceSteering converts direction and force into an acceleration
// contribution and turns the body's heading toward the direction of
// travel at a bounded angular rate.
type ForceSteering struct{}

func (ForceSteering) Move(b *Body, dir r2.Vec, force float64, turnTowards bool, p Params, dt float64) {
	if r2.Norm(dir) <= p.Deadzone {
		b.Moving = false
		return
	}
	b.Moving = true
	b.Accel = r2.Add(b.Accel, r2.Scale(p.AccelForce*force*b.InvMass(), dir))
	if turnTowards {
		target := math.Atan2(dir.Y, dir.X) * 180 / math.Pi
		turnToward(b, target, dt)
	}
}

// DirectVelocity is the side-scroller movement policy: horizontal
// velocity is set outright from the direction sign, at walk or run speed
// depending on the force scalar. The vertical component of dir is
// ignored; jumping is the vertical policy's business.
type DirectVelocity struct{}

func (DirectVelocity) Move(b *Body, dir r2.Vec, force float64, turnTowards bool, p Params, dt float64) {
	if math.Abs(dir.X) <= p.Deadzone {
		b.Moving = false
		return
	}
	speed := b.WalkSpeed
	if force >= p.RunThreshold {
		speed = b.RunSpeed
	}
	b.Moving = true
	if dir.X > 0 {
		b.Vel.X = speed
	} else {
		b.Vel.X = -speed
	}
}

// turnToward rotates the body's heading toward the target via the
// shortest angular path: snap when the remaining delta fits in one tick,
// otherwise run the angular velocity at full turn speed in the shorter
// direction and let the integrator close the gap.
func turnToward(b *Body, targetDeg, dt float64) {
	target := normalizeDegrees(targetDeg)
	delta := angleDelta(b.Rotation, target)
	if math.Abs(delta) <= b.TurnSpeed*dt {
		b.Rotation = target
		b.AngularVel = 0
		return
	}
	if delta > 0 {
		b.AngularVel = b.TurnSpeed
	} else {
		b.AngularVel = -b.TurnSpeed
	}
}
