// Package telemetry provides windowed simulation statistics, performance
// collection, and CSV output for the physics sandbox.
package telemetry

import (
	"github.com/SickDinner/Uho-sub001/physics"
)

// Collector accumulates per-tick engine counters within time windows and
// produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Counters accumulated over the current window
	pairsTested int
	collisions  int

	// Scratch for speed sampling
	speeds []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordTick accumulates one tick's collision-pass counters.
func (c *Collector) RecordTick(stats physics.StepStats) {
	c.pairsTested += stats.PairsTested
	c.collisions += stats.Collisions
}

// ShouldEmit reports whether the window ending at tick is complete.
func (c *Collector) ShouldEmit(tick int32) bool {
	return tick-c.windowStartTick >= c.windowDurationTicks
}

// Emit produces the stats for the closing window, sampling the engine's
// current bodies for the distribution fields, and starts the next window.
func (c *Collector) Emit(tick int32, eng *physics.Engine) WindowStats {
	step := eng.Stats()

	c.speeds = c.speeds[:0]
	moving, grounded := 0, 0
	eng.Each(func(b *physics.Body) {
		if b.Static {
			return
		}
		c.speeds = append(c.speeds, b.Speed())
		if b.Moving {
			moving++
		}
		if b.Grounded {
			grounded++
		}
	})
	mean, p10, p50, p90, max := ComputeSpeedStats(c.speeds)

	var hitRate float64
	if c.pairsTested > 0 {
		hitRate = float64(c.collisions) / float64(c.pairsTested)
	}

	s := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		SimTimeSec:      float64(tick) * c.dt,
		Bodies:          step.Bodies,
		Statics:         step.Statics,
		Moving:          moving,
		Grounded:        grounded,
		PairsTested:     c.pairsTested,
		Collisions:      c.collisions,
		HitRate:         hitRate,
		SpeedMean:       mean,
		SpeedP10:        p10,
		SpeedP50:        p50,
		SpeedP90:        p90,
		SpeedMax:        max,
		OccupiedCells:   step.OccupiedCells,
		MaxBucket:       step.MaxBucket,
	}

	// Reset for next window
	c.windowStartTick = tick
	c.pairsTested = 0
	c.collisions = 0

	return s
}
