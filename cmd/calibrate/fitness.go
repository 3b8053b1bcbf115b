package main

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/SickDinner/Uho-sub001/config"
	"github.com/SickDinner/Uho-sub001/physics"
)

// Targets are the handling numbers calibration steers towards.
type Targets struct {
	TopSpeed     float64 // units/s at full run deflection
	SpinUpSec    float64 // seconds to reach 95% of top speed
	StopDistance float64 // units coasted after input release
}

// Measured holds the handling numbers observed in one trial run.
type Measured struct {
	TopSpeed     float64
	SpinUpSec    float64
	StopDistance float64
}

// FitnessEvaluator drives a lone body across an empty arena and scores
// the candidate tuning against the targets. The trial is deterministic,
// so a single run per evaluation is enough.
type FitnessEvaluator struct {
	params  *ParamVector
	targets Targets
	baseCfg *config.Config

	lastMeasured Measured
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, targets Targets, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:  params,
		targets: targets,
		baseCfg: baseCfg,
	}
}

// LastMeasured returns the handling numbers from the most recent trial.
func (fe *FitnessEvaluator) LastMeasured() Measured {
	return fe.lastMeasured
}

const (
	trialDtMs    = 1000.0 / 60.0
	driveTicks   = 6 * 60 // ample time to saturate speed
	coastTicks   = 10 * 60
	spinUpTarget = 0.95
)

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is the sum of squared relative errors of the three measures.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	clamped := fe.params.Clamp(x)

	m := fe.runTrial(clamped)
	fe.lastMeasured = m

	fitness := relErrSq(m.TopSpeed, fe.targets.TopSpeed) +
		relErrSq(m.SpinUpSec, fe.targets.SpinUpSec) +
		relErrSq(m.StopDistance, fe.targets.StopDistance)
	if math.IsNaN(fitness) || math.IsInf(fitness, 0) {
		return 1e9
	}
	return fitness
}

// runTrial drives a single body with full run input along +X, then
// releases and lets it coast to rest.
func (fe *FitnessEvaluator) runTrial(values []float64) Measured {
	p := physics.DefaultParams()
	p.CellSize = fe.baseCfg.Physics.GridCellSize
	p.MaxStepMs = fe.baseCfg.Physics.MaxStepMs
	p.Deadzone = fe.baseCfg.Physics.Deadzone
	p.RunThreshold = fe.baseCfg.Physics.RunThreshold
	p.AccelForce = values[0]
	p.MinSpeed = values[1]

	opts := physics.Defaults()
	opts.Mass = fe.baseCfg.Player.Mass
	opts.MaxSpeed = fe.baseCfg.Player.MaxSpeed
	opts.TurnSpeed = fe.baseCfg.Player.TurnSpeed
	opts.Drag = values[2]
	opts.Friction = values[3]

	eng := physics.NewFreeEngine(p)
	body := eng.CreateBody(1, 0, 0, physics.Circle{Radius: fe.baseCfg.Player.Radius}, opts)

	m := Measured{SpinUpSec: math.Inf(1)}
	dir := r2.Vec{X: 1}

	for tick := 0; tick < driveTicks; tick++ {
		eng.MoveBody(body.ID, dir, 1.0, true)
		eng.Update(trialDtMs)

		speed := body.Speed()
		if speed > m.TopSpeed {
			m.TopSpeed = speed
		}
		if math.IsInf(m.SpinUpSec, 1) && speed >= spinUpTarget*fe.targets.TopSpeed {
			m.SpinUpSec = float64(tick+1) * trialDtMs / 1000
		}
	}

	releaseX := body.Pos.X
	for tick := 0; tick < coastTicks; tick++ {
		eng.Update(trialDtMs)
		if body.Speed() == 0 {
			break
		}
	}
	m.StopDistance = body.Pos.X - releaseX

	// Never reaching the spin-up threshold scores as the whole drive phase.
	if math.IsInf(m.SpinUpSec, 1) {
		m.SpinUpSec = float64(driveTicks) * trialDtMs / 1000
	}
	return m
}

func relErrSq(got, want float64) float64 {
	if want == 0 {
		return got * got
	}
	e := (got - want) / want
	return e * e
}
