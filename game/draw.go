package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/SickDinner/Uho-sub001/renderer"
	"github.com/SickDinner/Uho-sub001/systems"
	"github.com/SickDinner/Uho-sub001/ui"
)

const freeControls = "WASD move | Shift run | C follow cam | Arrows pan | Wheel zoom | F1 tuning | F3 debug | P pause"
const platformerControls = "A/D move | Space jump | Shift run | C follow cam | Arrows pan | Wheel zoom | F1 tuning | F3 debug | P pause"

// Draw renders the world and UI. Must run between BeginDrawing and
// EndDrawing, which main owns.
func (g *Game) Draw() {
	rl.ClearBackground(rl.NewColor(24, 26, 32, 255))

	g.worldRenderer.DrawBodies(g.engine, g.spriteTints())

	if g.debugOverlay {
		g.worldRenderer.DrawGridOverlay(g.engine.Grid())
		g.worldRenderer.DrawVelocities(g.engine)
	}

	g.drawHUD()
}

// spriteTints snapshots per-body colors from the ECS so the renderer
// stays ignorant of components.
func (g *Game) spriteTints() map[int]rl.Color {
	tints := make(map[int]rl.Color, g.engine.Count())
	query := g.spriteFilter.Query()
	for query.Next() {
		ref, sprite := query.Get()
		tints[ref.ID] = renderer.SpriteTint(*sprite)
	}
	return tints
}

func (g *Game) drawHUD() {
	stats := g.engine.Stats()
	g.hud.Draw(ui.HUDData{
		Title:        "Physics Sandbox",
		Mode:         g.modeName(),
		Tick:         g.tick,
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		Score:        g.score,
		Bodies:       stats.Bodies,
		Statics:      stats.Statics,
		PairsTested:  stats.PairsTested,
		Collisions:   stats.Collisions,
		MaxBucket:    stats.MaxBucket,
		ScreenHeight: int32(g.screenHeight),
	})

	controls := freeControls
	if g.mode == systems.ModePlatformer {
		controls = platformerControls
	}
	g.hud.DrawControls(int32(g.screenHeight), controls)

	if g.debugOverlay {
		g.hud.DrawDebugInfo(10, 100, g.engine.DebugInfo(g.playerID))
	}

	if g.tuning != nil && g.tuning.Visible {
		if params, changed := g.tuning.Draw(g.engine.Params()); changed {
			g.engine.SetParams(params)
		}
	}
}

func (g *Game) modeName() string {
	if g.mode == systems.ModePlatformer {
		return "platformer"
	}
	return "free"
}

// WindowTitle is the OS window caption for a scene mode.
func WindowTitle(mode string) string {
	return fmt.Sprintf("Physics Sandbox (%s)", mode)
}
