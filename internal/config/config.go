// Package config provides YAML-based game configuration loading for Neon Breaker.
package config

// Config contains all tunable constants of the simulation.
// Units are field pixels and ticks.
type Config struct {
	Field     FieldConfig     `yaml:"field"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Ball      BallConfig      `yaml:"ball"`
	Bricks    BricksConfig    `yaml:"bricks"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
	Particles ParticlesConfig `yaml:"particles"`
	Physics   PhysicsConfig   `yaml:"physics"`
}

// FieldConfig defines the playfield size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Pixels per tick while a direction is held
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the field bottom to the paddle top
	Color        string  `yaml:"color"`
}

// BallConfig defines the ball and its spawn state.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	SpeedX      float64 `yaml:"speed_x"`      // Horizontal speed at spawn; sign is randomized
	SpeedY      float64 `yaml:"speed_y"`      // Vertical speed at spawn, always launched upward
	TrailLength int     `yaml:"trail_length"` // Max remembered positions
	SpawnOffset float64 `yaml:"spawn_offset"` // Distance from the field bottom to the spawn point
	Color       string  `yaml:"color"`
}

// BricksConfig defines the fixed brick grid.
type BricksConfig struct {
	Rows       int      `yaml:"rows"`
	Cols       int      `yaml:"cols"`
	Width      float64  `yaml:"width"`
	Height     float64  `yaml:"height"`
	Padding    float64  `yaml:"padding"`
	OffsetTop  float64  `yaml:"offset_top"`
	OffsetLeft float64  `yaml:"offset_left"`
	Palette    []string `yaml:"palette"` // Cell color is palette[(row+col) % len]
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives       int     `yaml:"lives"`
	BrickPoints int     `yaml:"brick_points"`
	Spin        float64 `yaml:"spin"` // Horizontal speed at the very edge of the paddle
}

// ParticlesConfig defines collision bursts.
type ParticlesConfig struct {
	Count         int     `yaml:"count"`          // Particles per burst
	LifeMin       int     `yaml:"life_min"`       // Ticks, inclusive
	LifeMax       int     `yaml:"life_max"`       // Ticks, inclusive
	VelocityRange float64 `yaml:"velocity_range"` // Each axis is uniform in [-range/2, range/2)
	Radius        float64 `yaml:"radius"`
}

// PhysicsConfig holds collision behavior switches.
type PhysicsConfig struct {
	// LegacyPaddleHit restores the original paddle test that only looks at the
	// paddle's top edge, letting a ball below the paddle still register a hit.
	LegacyPaddleHit bool `yaml:"legacy_paddle_hit"`
}

// Preset represents a named difficulty preset applied once at load time.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a CLI string into a Preset.
// Empty input means no preset. Unknown values return ok=false.
func ParsePreset(s string) (p Preset, ok bool) {
	switch Preset(s) {
	case "":
		return "", true
	case PresetEasy, PresetNormal, PresetHard:
		return Preset(s), true
	default:
		return "", false
	}
}
