// Package main is a headless soak bench for the physics engine: it fills
// an arena with random bodies, steps for a fixed tick count, checks the
// engine's invariants every tick, and reports throughput.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/SickDinner/Uho-sub001/physics"
	"github.com/SickDinner/Uho-sub001/telemetry"
)

const dtMs = 1000.0 / 60.0

func main() {
	bodies := flag.Int("bodies", 200, "Number of dynamic bodies")
	statics := flag.Int("statics", 20, "Number of static obstacles")
	ticks := flag.Int("ticks", 10000, "Ticks to simulate")
	worldSize := flag.Float64("world", 2000, "Square world side length in units")
	seed := flag.Int64("seed", 42, "RNG seed")
	mode := flag.String("mode", "free", "Engine mode: free or platformer")
	statsWindow := flag.Float64("stats-window", 5, "Stats window size in seconds")
	outputDir := flag.String("output-dir", "", "Output directory for telemetry CSV (empty = disabled)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rng := rand.New(rand.NewSource(*seed))

	var eng *physics.Engine
	if *mode == "platformer" {
		eng = physics.NewPlatformerEngine(physics.PlatformerParams())
	} else {
		eng = physics.NewFreeEngine(physics.DefaultParams())
	}
	eng.SetLogger(logger)

	buildArena(eng, rng, *bodies, *statics, *worldSize)

	collector := telemetry.NewCollector(*statsWindow, dtMs/1000)
	perf := telemetry.NewPerfCollector(240)

	var output *telemetry.OutputManager
	if *outputDir != "" {
		om, err := telemetry.NewOutputManager(*outputDir)
		if err != nil {
			slog.Error("telemetry output disabled", "error", err)
		} else {
			output = om
			defer output.Close()
		}
	}

	slog.Info("starting soak",
		"mode", *mode,
		"bodies", *bodies,
		"statics", *statics,
		"ticks", *ticks,
		"seed", *seed,
	)

	start := time.Now()
	for tick := int32(1); tick <= int32(*ticks); tick++ {
		perf.StartTick()

		perf.StartPhase(telemetry.PhaseMovement)
		steer(eng, rng, tick)

		perf.StartPhase(telemetry.PhasePhysics)
		eng.Update(dtMs)

		perf.StartPhase(telemetry.PhaseTelemetry)
		collector.RecordTick(eng.Stats())
		if violations := checkInvariants(eng, *worldSize); violations > 0 {
			slog.Error("invariant violations", "tick", tick, "count", violations)
			os.Exit(1)
		}
		if collector.ShouldEmit(tick) {
			stats := collector.Emit(tick, eng)
			stats.LogStats()
			if output != nil {
				if err := output.WriteTelemetry(stats); err != nil {
					slog.Warn("writing telemetry window", "error", err)
				}
			}
		}

		perf.EndTick()
	}
	elapsed := time.Since(start)

	perf.Stats().LogStats()
	slog.Info("soak complete",
		"ticks", *ticks,
		"elapsed", elapsed.String(),
		"ticks_per_sec", fmt.Sprintf("%.0f", float64(*ticks)/elapsed.Seconds()),
	)
}

// buildArena scatters dynamic circles and static rectangles across the
// world, with boundary walls so nothing drifts out of the grid forever.
func buildArena(eng *physics.Engine, rng *rand.Rand, bodies, statics int, world float64) {
	id := 1

	wall := 32.0
	eng.CreateStaticObstacle(id, world/2, wall/2, world, wall)
	id++
	eng.CreateStaticObstacle(id, world/2, world-wall/2, world, wall)
	id++
	eng.CreateStaticObstacle(id, wall/2, world/2, wall, world)
	id++
	eng.CreateStaticObstacle(id, world-wall/2, world/2, wall, world)
	id++

	for i := 0; i < statics; i++ {
		w := 40 + rng.Float64()*120
		h := 40 + rng.Float64()*120
		eng.CreateStaticObstacle(id, randPos(rng, world), randPos(rng, world), w, h)
		id++
	}

	for i := 0; i < bodies; i++ {
		opts := physics.Defaults()
		opts.Mass = 0.5 + rng.Float64()*4
		opts.Restitution = rng.Float64() * 0.6
		eng.CreateBody(id, randPos(rng, world), randPos(rng, world),
			physics.Circle{Radius: 8 + rng.Float64()*12}, opts)
		id++
	}
}

func randPos(rng *rand.Rand, world float64) float64 {
	return 64 + rng.Float64()*(world-128)
}

// steer re-rolls a force direction for every dynamic body once a second.
func steer(eng *physics.Engine, rng *rand.Rand, tick int32) {
	if tick%60 != 1 {
		return
	}
	eng.Each(func(b *physics.Body) {
		dir := r2.Vec{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}
		eng.MoveBody(b.ID, dir, 0.5+rng.Float64()*0.5, true)
	})
}

// checkInvariants verifies per-body guarantees the engine documents:
// speed never exceeds MaxSpeed, rotation stays in [0,360), and bodies
// remain within the walled arena with a small resolution allowance.
func checkInvariants(eng *physics.Engine, world float64) int {
	violations := 0
	const slack = 64.0
	eng.Each(func(b *physics.Body) {
		if b.MaxSpeed > 0 && b.Speed() > b.MaxSpeed*1.001 {
			slog.Warn("speed above clamp", "id", b.ID, "speed", b.Speed(), "max", b.MaxSpeed)
			violations++
		}
		if b.Rotation < 0 || b.Rotation >= 360 {
			slog.Warn("rotation out of range", "id", b.ID, "rotation", b.Rotation)
			violations++
		}
		if b.Pos.X < -slack || b.Pos.X > world+slack || b.Pos.Y < -slack || b.Pos.Y > world+slack {
			slog.Warn("body escaped arena", "id", b.ID, "x", b.Pos.X, "y", b.Pos.Y)
			violations++
		}
	})
	return violations
}
