// Package physics implements the 2D physics and collision engine behind
// the game's free-movement and side-scrolling modes: a body registry with
// archetype factories, a uniform spatial grid for broad-phase candidate
// lookup, a semi-implicit Euler integrator with pluggable vertical-motion
// and movement policies, and narrow-phase collision detection with
// positional correction and impulse response.
//
// An Engine is an explicit instance owned by the game's composition root;
// there is no package-level engine. All methods are single-threaded: one
// caller drives Update once per frame and all mutation happens inside that
// call.
package physics

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// StepStats holds counters from the most recent Update call, for debug
// overlays and telemetry.
type StepStats struct {
	Bodies        int
	Statics       int
	PairsTested   int
	Collisions    int
	OccupiedCells int
	MaxBucket     int
}

// Engine owns a set of bodies and advances them in discrete ticks.
type Engine struct {
	params   Params
	vertical VerticalPolicy
	movement MovementPolicy

	bodies map[int]*Body
	list   []*Body // creation order, for deterministic iteration
	grid   *Grid

	log     *slog.Logger
	lastDt  float64 // seconds, last clamped step
	stats   StepStats
	scratch []*Body
}

// NewEngine creates an engine with explicit policies. Nil policies default
// to the free-movement pair.
func NewEngine(params Params, vertical VerticalPolicy, movement MovementPolicy) *Engine {
	if vertical == nil {
		vertical = FreeMotion{}
	}
	if movement == nil {
		movement = ForceSteering{}
	}
	return &Engine{
		params:   params,
		vertical: vertical,
		movement: movement,
		bodies:   make(map[int]*Body),
		grid:     NewGrid(params.CellSize),
		lastDt:   1.0 / 60.0,
	}
}

// NewFreeEngine creates the free 360-degree engine: no gravity, force
// steering.
func NewFreeEngine(params Params) *Engine {
	return NewEngine(params, FreeMotion{}, ForceSteering{})
}

// NewPlatformerEngine creates the gravity engine: grounded vertical
// motion, direct-velocity horizontal movement.
func NewPlatformerEngine(params Params) *Engine {
	return NewEngine(params, GravityMotion{}, DirectVelocity{})
}

// SetLogger attaches a logger used only for integration-bug diagnostics
// such as duplicate id registration. The hot path never logs.
func (e *Engine) SetLogger(l *slog.Logger) { e.log = l }

// Params returns the engine tuning constants.
func (e *Engine) Params() Params { return e.params }

// SetParams replaces the tuning constants for live adjustment. The grid
// cell size is fixed at construction and cannot change here.
func (e *Engine) SetParams(p Params) {
	p.CellSize = e.params.CellSize
	e.params = p
}

// Grid exposes the spatial index for read-only inspection (overlays,
// tests).
func (e *Engine) Grid() *Grid { return e.grid }

// Stats returns the counters from the most recent Update.
func (e *Engine) Stats() StepStats { return e.stats }

// Count returns the number of registered bodies, statics included.
func (e *Engine) Count() int { return len(e.list) }

// Each calls fn for every registered body in creation order.
func (e *Engine) Each(fn func(*Body)) {
	for _, b := range e.list {
		fn(b)
	}
}

// CreateBody registers a new body at (x, y) with the given shape and
// options. A duplicate id replaces the previous registration entirely;
// last write wins, as in the original engine. When a logger is attached
// the replacement is reported, since silent overwrites make integration
// bugs hard to notice.
func (e *Engine) CreateBody(id int, x, y float64, shape Shape, opts BodyOptions) *Body {
	if old, ok := e.bodies[id]; ok {
		if e.log != nil {
			e.log.Warn("duplicate body id replaced", "id", id)
		}
		e.list = spliceBody(e.list, old)
		e.grid.Remove(old)
	}

	mass := opts.Mass
	if opts.Static {
		mass = math.Inf(1)
	} else if mass <= 0 {
		// Dynamic bodies divide by mass; zero is never allowed.
		mass = 1
	}

	b := &Body{
		ID:          id,
		Pos:         r2.Vec{X: x, Y: y},
		Mass:        mass,
		Friction:    opts.Friction,
		Restitution: opts.Restitution,
		MaxSpeed:    opts.MaxSpeed,
		TurnSpeed:   opts.TurnSpeed,
		Drag:        opts.Drag,
		WalkSpeed:   opts.WalkSpeed,
		RunSpeed:    opts.RunSpeed,
		JumpPower:   opts.JumpPower,
		CanJump:     opts.CanJump,
		Shape:       shape,
		Static:      opts.Static,
		Solid:       opts.Solid,
		Grounded:    true,
		SpriteID:    opts.SpriteID,
		Scale:       opts.Scale,
		Layer:       opts.Layer,
		Opacity:     opts.Opacity,
	}

	e.bodies[id] = b
	e.list = append(e.list, b)
	e.grid.Insert(b)
	return b
}

// GetBody returns the body registered under id.
func (e *Engine) GetBody(id int) (*Body, bool) {
	b, ok := e.bodies[id]
	return b, ok
}

// RemoveBody deletes a body from the registry, the static list and the
// spatial index. Removing an unknown id is a no-op.
func (e *Engine) RemoveBody(id int) {
	b, ok := e.bodies[id]
	if !ok {
		return
	}
	delete(e.bodies, id)
	e.list = spliceBody(e.list, b)
	e.grid.Remove(b)
}

// CreatePlayer registers a player-archetype body: a heavier, faster
// circle with a quick turn rate.
func (e *Engine) CreatePlayer(id int, x, y float64) *Body {
	o := Defaults()
	o.Mass = 5
	o.MaxSpeed = 250
	o.TurnSpeed = 360
	o.SpriteID = "player"
	return e.CreateBody(id, x, y, Circle{Radius: 16}, o)
}

// CreateStaticObstacle registers an immovable solid rectangle.
func (e *Engine) CreateStaticObstacle(id int, x, y, w, h float64) *Body {
	o := Defaults()
	o.Static = true
	o.Restitution = 0
	o.SpriteID = "obstacle"
	return e.CreateBody(id, x, y, Rect{W: w, H: h}, o)
}

// CreateItem registers a small, bouncy, non-solid pickup body.
func (e *Engine) CreateItem(id int, x, y float64) *Body {
	o := Defaults()
	o.Mass = 0.2
	o.Restitution = 0.6
	o.Solid = false
	o.MaxSpeed = 150
	o.SpriteID = "item"
	return e.CreateBody(id, x, y, Circle{Radius: 6}, o)
}

// Update advances the simulation by dtMs milliseconds: integrate
// unconstrained motion for all dynamic bodies, run the collision pass over
// the spatial index, then re-bucket bodies whose cell changed. The step is
// clamped so a frame hitch cannot tunnel bodies through each other.
func (e *Engine) Update(dtMs float64) {
	if dtMs <= 0 {
		return
	}
	if dtMs > e.params.MaxStepMs {
		dtMs = e.params.MaxStepMs
	}
	dt := dtMs / 1000
	e.lastDt = dt

	e.stats = StepStats{Bodies: len(e.list), Statics: e.grid.StaticCount()}

	for _, b := range e.list {
		if b.Static {
			continue
		}
		e.integrate(b, dt)
	}

	e.collide()

	for _, b := range e.list {
		if !b.Static {
			e.grid.Move(b)
		}
	}

	e.stats.OccupiedCells = e.grid.OccupiedCells()
	e.stats.MaxBucket = e.grid.MaxBucket()
}

// integrate runs the per-body semi-implicit Euler step.
func (e *Engine) integrate(b *Body, dt float64) {
	b.Rotation = normalizeDegrees(b.Rotation + b.AngularVel*dt)

	e.vertical.Damp(b, e.params, dt)
	e.vertical.Accumulate(b, e.params)

	b.Vel = r2.Add(b.Vel, r2.Scale(dt, b.Accel))
	e.vertical.ClampVelocity(b, e.params)
	e.vertical.Settle(b, e.params)

	b.Pos = r2.Add(b.Pos, r2.Scale(dt, b.Vel))

	// Forces are impulsive per tick, not persistent.
	b.Accel = r2.Vec{}
	e.vertical.EndTick(b)
}

// collide tests each candidate pair once and resolves sequentially, so
// later pairs observe earlier corrections. Candidates come from the grid
// cell neighborhood plus all statics; dynamic pairs are visited from the
// lower id only.
func (e *Engine) collide() {
	for _, a := range e.list {
		if a.Static || !a.Solid {
			continue
		}
		e.scratch = e.grid.NearbyInto(e.scratch[:0], a)
		for _, other := range e.scratch {
			if other == a || !other.Solid {
				continue
			}
			if !other.Static && other.ID < a.ID {
				continue
			}
			e.stats.PairsTested++
			c, hit := CheckCollision(a, other)
			if !hit {
				continue
			}
			e.stats.Collisions++
			e.resolve(a, other, c)
		}
	}
}

// MoveBody applies movement input: a normalized direction and a force
// scalar in [0,1]. Unknown ids and static bodies are ignored.
func (e *Engine) MoveBody(id int, dir r2.Vec, force float64, turnTowards bool) {
	b, ok := e.bodies[id]
	if !ok || b.Static {
		return
	}
	e.movement.Move(b, dir, force, turnTowards, e.params, e.lastDt)
}

// RotateTowards turns a body toward the target heading in degrees, always
// via the shorter angular path.
func (e *Engine) RotateTowards(id int, targetDeg float64) {
	b, ok := e.bodies[id]
	if !ok || b.Static {
		return
	}
	turnToward(b, targetDeg, e.lastDt)
}

// MoveLeft walks (or runs) the body leftward.
func (e *Engine) MoveLeft(id int, running bool) {
	e.MoveBody(id, r2.Vec{X: -1}, runForce(running), false)
}

// MoveRight walks (or runs) the body rightward.
func (e *Engine) MoveRight(id int, running bool) {
	e.MoveBody(id, r2.Vec{X: 1}, runForce(running), false)
}

// runForce maps the running flag onto the force scalar the movement
// policies consume.
func runForce(running bool) float64 {
	if running {
		return 1
	}
	return 0.5
}

// Jump launches a grounded body upward. Returns false without effect when
// the body is unknown, static, airborne, or jumping is disabled for it.
func (e *Engine) Jump(id int) bool {
	b, ok := e.bodies[id]
	if !ok || b.Static {
		return false
	}
	return e.vertical.Jump(b, e.params)
}

// StopHorizontal halts horizontal movement immediately.
func (e *Engine) StopHorizontal(id int) {
	b, ok := e.bodies[id]
	if !ok || b.Static {
		return
	}
	b.Vel.X = 0
	b.Moving = false
}

// ApplyForce adds a force for the current tick; acceleration is cleared
// after integration.
func (e *Engine) ApplyForce(id int, f r2.Vec) {
	b, ok := e.bodies[id]
	if !ok || b.Static {
		return
	}
	b.Accel = r2.Add(b.Accel, r2.Scale(b.InvMass(), f))
}

// ApplyImpulse changes velocity immediately by impulse over mass.
func (e *Engine) ApplyImpulse(id int, imp r2.Vec) {
	b, ok := e.bodies[id]
	if !ok || b.Static {
		return
	}
	b.Vel = r2.Add(b.Vel, r2.Scale(b.InvMass(), imp))
}
