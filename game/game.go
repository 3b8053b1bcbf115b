// Package game is the sandbox composition root: it owns the physics
// engine instance, the ECS world binding sprites to bodies, the camera,
// and telemetry, and drives one simulation tick per frame.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/SickDinner/Uho-sub001/camera"
	"github.com/SickDinner/Uho-sub001/components"
	"github.com/SickDinner/Uho-sub001/config"
	"github.com/SickDinner/Uho-sub001/physics"
	"github.com/SickDinner/Uho-sub001/renderer"
	"github.com/SickDinner/Uho-sub001/systems"
	"github.com/SickDinner/Uho-sub001/telemetry"
	"github.com/SickDinner/Uho-sub001/ui"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	Mode           string // "free" or "platformer"
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	StepsPerUpdate int
}

// Game holds the complete sandbox state.
type Game struct {
	world  *ecs.World
	rng    *rand.Rand
	engine *physics.Engine
	cam    *camera.Camera

	// Entity mappers and filters
	playerMapper *ecs.Map4[components.BodyRef, components.Sprite, components.Anim, components.Player]
	lootMapper   *ecs.Map3[components.BodyRef, components.Sprite, components.Loot]
	spriteFilter *ecs.Filter2[components.BodyRef, components.Sprite]

	// Systems
	movement  *systems.Movement
	animation *systems.Animation
	pickup    *systems.Pickup

	// Telemetry
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	perf      *telemetry.PerfCollector
	logStats  bool

	// Rendering (nil in headless mode)
	worldRenderer *renderer.World
	hud           *ui.HUD
	tuning        *ui.TuningPanel

	// State
	mode           systems.Mode
	playerID       int
	nextID         int
	tick           int32
	paused         bool
	score          int
	followCam      bool
	debugOverlay   bool
	stepsPerUpdate int
	headless       bool

	// Headless wander state
	wanderIntent systems.Intent

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game instance from options and the loaded
// config.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	mode := systems.ModeFree
	if opts.Mode == "platformer" {
		mode = systems.ModePlatformer
	}

	world := ecs.NewWorld()

	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	g := &Game{
		world:          world,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		mode:           mode,
		followCam:      true,
		stepsPerUpdate: stepsPerUpdate,
		headless:       opts.Headless,
		logStats:       opts.LogStats,
		screenWidth:    cfg.Derived.ScreenW32,
		screenHeight:   cfg.Derived.ScreenH32,
		playerMapper:   ecs.NewMap4[components.BodyRef, components.Sprite, components.Anim, components.Player](world),
		lootMapper:     ecs.NewMap3[components.BodyRef, components.Sprite, components.Loot](world),
		spriteFilter:   ecs.NewFilter2[components.BodyRef, components.Sprite](world),
	}

	g.engine = newEngine(cfg, mode)
	g.engine.SetLogger(slog.Default())

	g.buildScene(cfg)

	g.movement = systems.NewMovement(world, g.engine, mode)
	g.animation = systems.NewAnimation(world, g.engine)
	g.pickup = systems.NewPickup(world, g.engine)

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow, 1.0/60.0)
	g.perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
	} else if om != nil {
		g.output = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Warn("failed to snapshot config", "error", err)
		}
	}

	if !opts.Headless {
		g.cam = camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, cfg.Derived.WorldW32, cfg.Derived.WorldH32)
		g.worldRenderer = renderer.NewWorld(g.cam)
		g.hud = ui.NewHUD()
		g.tuning = ui.NewTuningPanel(cfg.Derived.ScreenW32-320, 40, 280)
	}

	return g
}

// newEngine builds the physics engine for the scene mode from config.
func newEngine(cfg *config.Config, mode systems.Mode) *physics.Engine {
	p := physics.DefaultParams()
	p.CellSize = cfg.Physics.GridCellSize
	p.MaxStepMs = cfg.Physics.MaxStepMs
	p.MinSpeed = cfg.Physics.MinSpeed
	p.AccelForce = cfg.Physics.AccelForce
	p.Deadzone = cfg.Physics.Deadzone
	p.RunThreshold = cfg.Physics.RunThreshold
	p.Gravity = cfg.Platformer.Gravity
	p.TerminalVel = cfg.Platformer.TerminalVelocity
	p.AirDrag = cfg.Platformer.AirDrag

	if mode == systems.ModePlatformer {
		p.CellSize = cfg.Platformer.GridCellSize
		return physics.NewPlatformerEngine(p)
	}
	return physics.NewFreeEngine(p)
}

// Engine exposes the physics engine for tooling and tests.
func (g *Game) Engine() *physics.Engine { return g.engine }

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 { return g.tick }

// Score returns the loot value collected so far.
func (g *Game) Score() int { return g.score }

// Unload flushes telemetry output.
func (g *Game) Unload() {
	if g.output != nil {
		if err := g.output.Close(); err != nil {
			slog.Warn("closing telemetry output", "error", err)
		}
	}
}
