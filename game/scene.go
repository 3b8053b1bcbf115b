package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/SickDinner/Uho-sub001/components"
	"github.com/SickDinner/Uho-sub001/config"
	"github.com/SickDinner/Uho-sub001/physics"
	"github.com/SickDinner/Uho-sub001/systems"
)

// buildScene constructs the scene bodies and their ECS entities for the
// selected mode. The physics engine's id space is owned here; entities
// reference bodies by id only.
func (g *Game) buildScene(cfg *config.Config) {
	if g.mode == systems.ModePlatformer {
		g.buildPlatformerScene(cfg)
		return
	}
	g.buildFreeScene(cfg)
}

// buildFreeScene sets up the top-down arena: boundary walls and obstacles
// from config, scattered loot, and the player in the middle.
func (g *Game) buildFreeScene(cfg *config.Config) {
	for _, o := range cfg.Obstacles {
		g.engine.CreateStaticObstacle(g.claimID(), o.X, o.Y, o.W, o.H)
	}

	for i := 0; i < cfg.Items.Count; i++ {
		x := 64 + g.rng.Float64()*(cfg.Derived.WorldW-128)
		y := 64 + g.rng.Float64()*(cfg.Derived.WorldH-128)
		g.spawnLoot(cfg, x, y, 1+g.rng.Intn(5))
	}

	g.spawnPlayer(cfg, cfg.Derived.WorldW/2, cfg.Derived.WorldH/2)
}

// buildPlatformerScene sets up the side-scroller: floor and ledges from
// config, a few loose crates, loot on the ledges, and the player above
// the floor.
func (g *Game) buildPlatformerScene(cfg *config.Config) {
	for _, p := range cfg.Platforms {
		g.engine.CreateStaticObstacle(g.claimID(), p.X, p.Y, p.W, p.H)
	}

	// Loose crates the player can shove around
	for i := 0; i < 3; i++ {
		o := physics.Defaults()
		o.Mass = 3
		o.Restitution = 0.05
		o.MaxSpeed = 300
		o.SpriteID = "crate"
		x := cfg.Derived.WorldW*0.4 + float64(i)*80
		id := g.claimID()
		g.engine.CreateBody(id, x, cfg.Derived.WorldH-120, physics.Rect{W: 28, H: 28}, o)
	}

	// Loot hovering over each ledge (skip the floor at index 0)
	for i, p := range cfg.Platforms {
		if i == 0 {
			continue
		}
		g.spawnLoot(cfg, p.X, p.Y-p.H/2-24, 3)
	}

	g.spawnPlayer(cfg, cfg.Derived.WorldW/2, cfg.Derived.WorldH-120)
}

// spawnPlayer creates the player body from config and its ECS entity.
func (g *Game) spawnPlayer(cfg *config.Config, x, y float64) {
	id := g.claimID()
	o := physics.Defaults()
	o.Mass = cfg.Player.Mass
	o.MaxSpeed = cfg.Player.MaxSpeed
	o.TurnSpeed = cfg.Player.TurnSpeed
	o.Drag = cfg.Player.Drag
	o.Friction = cfg.Player.Friction
	o.Restitution = cfg.Player.Restitution
	o.WalkSpeed = cfg.Player.WalkSpeed
	o.RunSpeed = cfg.Player.RunSpeed
	o.JumpPower = cfg.Player.JumpPower
	o.SpriteID = "player"
	g.engine.CreateBody(id, x, y, physics.Circle{Radius: cfg.Player.Radius}, o)
	g.playerID = id

	ref := components.BodyRef{ID: id}
	sprite := components.Sprite{Kind: components.SpriteCircle, Tint: rl.Color{R: 120, G: 200, B: 255, A: 255}}
	anim := components.Anim{State: components.AnimIdle}
	player := components.Player{}
	g.playerMapper.NewEntity(&ref, &sprite, &anim, &player)
}

// spawnLoot creates one pickup body and its ECS entity.
func (g *Game) spawnLoot(cfg *config.Config, x, y float64, value int) {
	id := g.claimID()
	o := physics.Defaults()
	o.Mass = cfg.Items.Mass
	o.Restitution = cfg.Items.Restitution
	o.MaxSpeed = cfg.Items.MaxSpeed
	o.Solid = false
	o.SpriteID = "item"
	g.engine.CreateBody(id, x, y, physics.Circle{Radius: cfg.Items.Radius}, o)

	ref := components.BodyRef{ID: id}
	sprite := components.Sprite{Kind: components.SpriteDiamond, Tint: rl.Gold}
	loot := components.Loot{Value: value}
	g.lootMapper.NewEntity(&ref, &sprite, &loot)
}

// claimID hands out the next body id.
func (g *Game) claimID() int {
	id := g.nextID
	g.nextID++
	return id
}
