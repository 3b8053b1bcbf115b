package physics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{365, 5},
		{-30, 330},
		{725, 5},
		{-725, 355},
		{180, 180},
	}

	for _, tc := range tests {
		if got := normalizeDegrees(tc.in); math.Abs(got-tc.want) > 0.001 {
			t.Errorf("normalizeDegrees(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}

func TestAngleDelta(t *testing.T) {
	tests := []struct {
		from, to, want float64
	}{
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{0, 181, -179},
		{90, 90, 0},
		{0, 90, 90},
		{270, 0, 90},
	}

	for _, tc := range tests {
		if got := angleDelta(tc.from, tc.to); math.Abs(got-tc.want) > 0.001 {
			t.Errorf("angleDelta(%f, %f) = %f, want %f", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestTurnTowardShortestPath(t *testing.T) {
	// From 350 toward 10 the short way is +20 degrees through zero. At
	// 180 deg/s and a sixtieth-of-a-second tick the body cannot snap, so
	// the angular velocity runs positive.
	b := &Body{Rotation: 350, TurnSpeed: 180}
	turnToward(b, 10, 1.0/60.0)

	if b.AngularVel != 180 {
		t.Errorf("AngularVel = %f, want 180 (turning through zero)", b.AngularVel)
	}
	if b.Rotation != 350 {
		t.Errorf("Rotation changed to %f before integration", b.Rotation)
	}
}

func TestTurnTowardSnapsWithinOneTick(t *testing.T) {
	b := &Body{Rotation: 8, TurnSpeed: 180}
	turnToward(b, 10, 1.0/60.0) // max step 3 degrees, delta 2

	if b.Rotation != 10 {
		t.Errorf("Rotation = %f, want snapped to 10", b.Rotation)
	}
	if b.AngularVel != 0 {
		t.Errorf("AngularVel = %f after snap, want 0", b.AngularVel)
	}
}

func TestTurnTowardNegativeDirection(t *testing.T) {
	b := &Body{Rotation: 10, TurnSpeed: 180}
	turnToward(b, 350, 1.0/60.0)
	if b.AngularVel != -180 {
		t.Errorf("AngularVel = %f, want -180 (turning through zero backwards)", b.AngularVel)
	}
}

func TestFreeMotionClampPreservesDirection(t *testing.T) {
	b := &Body{Vel: r2.Vec{X: 300, Y: 400}, MaxSpeed: 200}
	FreeMotion{}.ClampVelocity(b, DefaultParams())

	if math.Abs(b.Speed()-200) > 0.001 {
		t.Errorf("speed = %f after clamp, want 200", b.Speed())
	}
	// Direction 3:4 must survive the rescale.
	if math.Abs(b.Vel.X-120) > 0.001 || math.Abs(b.Vel.Y-160) > 0.001 {
		t.Errorf("vel = (%f, %f), want (120, 160)", b.Vel.X, b.Vel.Y)
	}
}

func TestFreeMotionSettle(t *testing.T) {
	p := DefaultParams()

	slow := &Body{Vel: r2.Vec{X: 0.2, Y: 0.1}}
	FreeMotion{}.Settle(slow, p)
	if slow.Vel.X != 0 || slow.Vel.Y != 0 {
		t.Errorf("sub-threshold velocity (%f, %f) should snap to zero", slow.Vel.X, slow.Vel.Y)
	}

	moving := &Body{Vel: r2.Vec{X: 5}}
	FreeMotion{}.Settle(moving, p)
	if moving.Vel.X != 5 {
		t.Errorf("velocity above threshold should be untouched, got %f", moving.Vel.X)
	}
}

func TestGravityAppliesOnlyAirborne(t *testing.T) {
	p := DefaultParams()

	airborne := &Body{}
	GravityMotion{}.Accumulate(airborne, p)
	if airborne.Accel.Y != p.Gravity {
		t.Errorf("airborne Accel.Y = %f, want %f", airborne.Accel.Y, p.Gravity)
	}

	grounded := &Body{Grounded: true}
	GravityMotion{}.Accumulate(grounded, p)
	if grounded.Accel.Y != 0 {
		t.Errorf("grounded Accel.Y = %f, want 0", grounded.Accel.Y)
	}
}

func TestGravityClampSplitsAxes(t *testing.T) {
	b := &Body{Vel: r2.Vec{X: 500, Y: 900}, MaxSpeed: 200}
	GravityMotion{}.ClampVelocity(b, DefaultParams())

	if b.Vel.X != 200 {
		t.Errorf("Vel.X = %f, want clamped to 200", b.Vel.X)
	}
	if b.Vel.Y != 600 {
		t.Errorf("Vel.Y = %f, want terminal 600", b.Vel.Y)
	}
}

func TestGravityGroundFriction(t *testing.T) {
	p := DefaultParams()
	b := &Body{Vel: r2.Vec{X: 100}, Friction: 0.9, Grounded: true}
	GravityMotion{}.Damp(b, p, 1.0/60.0)

	// Air drag removes a sliver, then ground friction multiplies.
	want := 100 * (1 - p.AirDrag/60.0) * 0.9
	if math.Abs(b.Vel.X-want) > 0.001 {
		t.Errorf("Vel.X = %f, want %f", b.Vel.X, want)
	}
}

func TestGravityContactGrounds(t *testing.T) {
	tests := []struct {
		name       string
		normal     r2.Vec
		velY       float64
		wantGround bool
		wantVelY   float64
	}{
		{"floor below while falling", r2.Vec{Y: 1}, 50, true, 0},
		{"floor below at rest", r2.Vec{Y: 1}, 0, true, 0},
		{"floor below while rising", r2.Vec{Y: 1}, -50, false, -50},
		{"ceiling above", r2.Vec{Y: -1}, 50, false, 50},
		{"wall beside", r2.Vec{X: 1}, 50, false, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Body{Vel: r2.Vec{Y: tc.velY}}
			GravityMotion{}.Contact(b, tc.normal)
			if b.Grounded != tc.wantGround {
				t.Errorf("Grounded = %v, want %v", b.Grounded, tc.wantGround)
			}
			if b.Vel.Y != tc.wantVelY {
				t.Errorf("Vel.Y = %f, want %f", b.Vel.Y, tc.wantVelY)
			}
		})
	}
}

func TestGravityJump(t *testing.T) {
	p := DefaultParams()

	b := &Body{Grounded: true, CanJump: true, JumpPower: 350}
	if !(GravityMotion{}).Jump(b, p) {
		t.Fatal("grounded body with CanJump should jump")
	}
	if b.Vel.Y != -350 {
		t.Errorf("Vel.Y = %f after jump, want -350", b.Vel.Y)
	}
	if b.Grounded {
		t.Error("jumping body should leave the ground immediately")
	}

	airborne := &Body{Grounded: false, CanJump: true, JumpPower: 350}
	if (GravityMotion{}).Jump(airborne, p) {
		t.Error("airborne jump should fail")
	}
	if airborne.Vel.Y != 0 {
		t.Errorf("failed jump must not touch velocity, got %f", airborne.Vel.Y)
	}

	disabled := &Body{Grounded: true, CanJump: false, JumpPower: 350}
	if (GravityMotion{}).Jump(disabled, p) {
		t.Error("jump-disabled body should not jump")
	}
}

func TestForceSteeringDeadzone(t *testing.T) {
	p := DefaultParams()
	b := &Body{Mass: 1, Moving: true, TurnSpeed: 180}
	ForceSteering{}.Move(b, r2.Vec{X: 0.05}, 1, true, p, 1.0/60.0)

	if b.Moving {
		t.Error("input below deadzone should clear Moving")
	}
	if b.Accel.X != 0 {
		t.Errorf("Accel.X = %f for deadzone input, want 0", b.Accel.X)
	}
}

func TestForceSteeringAcceleration(t *testing.T) {
	p := DefaultParams()
	b := &Body{Mass: 2, TurnSpeed: 360}
	ForceSteering{}.Move(b, r2.Vec{X: 1}, 0.5, false, p, 1.0/60.0)

	// accelForce * force / mass = 1000 * 0.5 / 2.
	if math.Abs(b.Accel.X-250) > 0.001 {
		t.Errorf("Accel.X = %f, want 250", b.Accel.X)
	}
	if !b.Moving {
		t.Error("above-deadzone input should set Moving")
	}
	if b.AngularVel != 0 || b.Rotation != 0 {
		t.Error("turnTowards=false must not touch heading")
	}
}

func TestForceSteeringTurnsTowardHeading(t *testing.T) {
	p := DefaultParams()
	b := &Body{Mass: 1, TurnSpeed: 720}
	ForceSteering{}.Move(b, r2.Vec{Y: 1}, 1, true, p, 1.0/60.0)

	// Heading for +y input is 90 degrees; 720 deg/s covers 12 degrees a
	// tick, so from 84 it snaps, from 0 it runs the angular velocity.
	if b.AngularVel != 720 {
		t.Errorf("AngularVel = %f, want 720", b.AngularVel)
	}

	near := &Body{Mass: 1, TurnSpeed: 720, Rotation: 84}
	ForceSteering{}.Move(near, r2.Vec{Y: 1}, 1, true, p, 1.0/60.0)
	if near.Rotation != 90 {
		t.Errorf("Rotation = %f, want snapped to 90", near.Rotation)
	}
}

func TestDirectVelocity(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name     string
		dirX     float64
		force    float64
		wantVelX float64
		wantMove bool
	}{
		{"walk right", 1, 0.5, 120, true},
		{"run right", 1, 1, 200, true},
		{"walk left", -1, 0.5, -120, true},
		{"run threshold exactly", 1, 0.75, 200, true},
		{"deadzone", 0.05, 1, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Body{WalkSpeed: 120, RunSpeed: 200}
			DirectVelocity{}.Move(b, r2.Vec{X: tc.dirX}, tc.force, false, p, 1.0/60.0)
			if b.Vel.X != tc.wantVelX {
				t.Errorf("Vel.X = %f, want %f", b.Vel.X, tc.wantVelX)
			}
			if b.Moving != tc.wantMove {
				t.Errorf("Moving = %v, want %v", b.Moving, tc.wantMove)
			}
		})
	}
}

func TestDirectVelocityIgnoresVertical(t *testing.T) {
	p := DefaultParams()
	b := &Body{WalkSpeed: 120, RunSpeed: 200}
	DirectVelocity{}.Move(b, r2.Vec{X: 1, Y: -1}, 1, false, p, 1.0/60.0)
	if b.Vel.Y != 0 {
		t.Errorf("Vel.Y = %f, direct movement must not set vertical velocity", b.Vel.Y)
	}
	if b.Vel.X != 200 {
		t.Errorf("Vel.X = %f, want 200", b.Vel.X)
	}
}
