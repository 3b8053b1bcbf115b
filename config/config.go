// Package config provides configuration loading and access for the sandbox.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all sandbox configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Platformer PlatformerConfig `yaml:"platformer"`
	Player     PlayerConfig     `yaml:"player"`
	Items      ItemsConfig      `yaml:"items"`
	Obstacles  []BlockConfig    `yaml:"obstacles"`
	Platforms  []BlockConfig    `yaml:"platforms"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds simulation world dimensions.
// World can be larger than the screen; camera handles the viewport.
type WorldConfig struct {
	Width  int `yaml:"width"`  // World width in world units (0 = use screen width)
	Height int `yaml:"height"` // World height in world units (0 = use screen height)
}

// PhysicsConfig holds the free-movement engine tuning.
type PhysicsConfig struct {
	GridCellSize float64 `yaml:"grid_cell_size"`
	MaxStepMs    float64 `yaml:"max_step_ms"`   // Integration step clamp per tick
	MinSpeed     float64 `yaml:"min_speed"`     // Snap-to-zero threshold
	AccelForce   float64 `yaml:"accel_force"`   // Movement input force at full deflection
	Deadzone     float64 `yaml:"deadzone"`      // Input magnitude below this is ignored
	RunThreshold float64 `yaml:"run_threshold"` // Force at or above this selects run speed
}

// PlatformerConfig holds the gravity-variant tuning.
type PlatformerConfig struct {
	GridCellSize     float64 `yaml:"grid_cell_size"`
	Gravity          float64 `yaml:"gravity"`           // Units/s^2, positive is down
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Maximum fall speed
	AirDrag          float64 `yaml:"air_drag"`          // Per-second velocity-proportional drag
}

// PlayerConfig holds player body parameters.
type PlayerConfig struct {
	Radius      float64 `yaml:"radius"`
	Mass        float64 `yaml:"mass"`
	MaxSpeed    float64 `yaml:"max_speed"`
	TurnSpeed   float64 `yaml:"turn_speed"`
	Drag        float64 `yaml:"drag"`
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
	WalkSpeed   float64 `yaml:"walk_speed"`
	RunSpeed    float64 `yaml:"run_speed"`
	JumpPower   float64 `yaml:"jump_power"`
}

// ItemsConfig holds pickup item parameters.
type ItemsConfig struct {
	Count       int     `yaml:"count"` // Items scattered into the arena scene
	Radius      float64 `yaml:"radius"`
	Mass        float64 `yaml:"mass"`
	Restitution float64 `yaml:"restitution"`
	MaxSpeed    float64 `yaml:"max_speed"`
}

// BlockConfig is one static rectangle in a scene list, centered at (x, y).
type BlockConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds per aggregation window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW    float64 // Effective world width (screen size when unset)
	WorldH    float64 // Effective world height
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	WorldW32  float32
	WorldH32  float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW = float64(worldW)
	c.Derived.WorldH = float64(worldH)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.WorldW32 = float32(worldW)
	c.Derived.WorldH32 = float32(worldH)

	// Synthesize a boundary-wall arena if no obstacles are specified
	if len(c.Obstacles) == 0 {
		w, h := c.Derived.WorldW, c.Derived.WorldH
		const t = 32.0 // wall thickness
		c.Obstacles = []BlockConfig{
			{X: w / 2, Y: t / 2, W: w, H: t},
			{X: w / 2, Y: h - t/2, W: w, H: t},
			{X: t / 2, Y: h / 2, W: t, H: h},
			{X: w - t/2, Y: h / 2, W: t, H: h},
		}
	}

	// Synthesize a floor plus two ledges if no platforms are specified
	if len(c.Platforms) == 0 {
		w, h := c.Derived.WorldW, c.Derived.WorldH
		c.Platforms = []BlockConfig{
			{X: w / 2, Y: h - 20, W: w, H: 40},
			{X: w * 0.3, Y: h - 180, W: 220, H: 24},
			{X: w * 0.65, Y: h - 320, W: 220, H: 24},
		}
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
