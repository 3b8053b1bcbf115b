package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/SickDinner/Uho-sub001/systems"
	"github.com/SickDinner/Uho-sub001/telemetry"
)

// headlessDtMs is the fixed step used when no frame clock exists.
const headlessDtMs = 1000.0 / 60.0

// Update runs one graphical frame: input, then one or more simulation
// ticks driven by the wall-clock frame time.
func (g *Game) Update() {
	g.perf.RecordFrame()

	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseInput)
	intent := g.handleInput()

	if g.paused {
		g.perf.EndTick()
		return
	}

	dtMs := float64(rl.GetFrameTime()) * 1000
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep(intent, dtMs)
	}

	g.perf.StartPhase(telemetry.PhaseCamera)
	g.updateCamera(dtMs / 1000)

	g.perf.EndTick()
}

// UpdateHeadless runs one fixed-step tick without raylib. The player body
// wanders under a periodically re-rolled intent so the collision pass has
// real work to do.
func (g *Game) UpdateHeadless() {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseInput)
	g.updateWander()
	g.simulationStep(g.wanderIntent, headlessDtMs)
	g.perf.EndTick()
}

// simulationStep advances the world by one tick: movement intent, the
// physics update, derived animation state, then pickups and telemetry.
func (g *Game) simulationStep(intent systems.Intent, dtMs float64) {
	g.perf.StartPhase(telemetry.PhaseMovement)
	g.movement.Update(intent)

	g.perf.StartPhase(telemetry.PhasePhysics)
	g.engine.Update(dtMs)

	g.perf.StartPhase(telemetry.PhaseAnimation)
	g.animation.Update(dtMs / 1000)

	g.perf.StartPhase(telemetry.PhasePickup)
	g.score += g.pickup.Update()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordTick(g.engine.Stats())
	g.tick++
	if g.collector.ShouldEmit(g.tick) {
		g.emitStats()
	}
}

// emitStats closes the current stats window and routes it to slog and CSV.
func (g *Game) emitStats() {
	stats := g.collector.Emit(g.tick, g.engine)
	perfStats := g.perf.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}
	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Warn("writing telemetry window", "error", err)
		}
		if err := g.output.WritePerf(perfStats, g.tick); err != nil {
			slog.Warn("writing perf window", "error", err)
		}
	}
}

// updateCamera eases the camera after the player while following.
func (g *Game) updateCamera(dt float64) {
	if g.cam == nil || !g.followCam {
		return
	}
	body, ok := g.engine.GetBody(g.playerID)
	if !ok {
		return
	}
	g.cam.Follow(
		float32(body.Pos.X), float32(body.Pos.Y),
		float32(body.Vel.X), float32(body.Vel.Y),
		body.Moving, float32(dt),
	)
}

// updateWander re-rolls the headless steering intent roughly once a
// second, with occasional rest so snap-to-zero paths get exercised too.
func (g *Game) updateWander() {
	if g.tick%60 != 0 {
		return
	}
	if g.rng.Float64() < 0.2 {
		g.wanderIntent = systems.Intent{}
		return
	}
	g.wanderIntent = systems.Intent{
		Dir:  systems.NormalizeDir(g.rng.Float64()*2-1, g.rng.Float64()*2-1),
		Run:  g.rng.Float64() < 0.3,
		Jump: g.mode == systems.ModePlatformer && g.rng.Float64() < 0.3,
	}
}
