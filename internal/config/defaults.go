package config

import (
	_ "embed"
)

//go:embed defaults/breaker.yaml
var defaultBreakerYAML []byte

// NeonPalette is the default brick palette.
var NeonPalette = []string{
	"#00fff7", "#ff00ea", "#39ff14", "#fffb00", "#ff007f", "#00bfff", "#ff5f1f",
}

// DefaultConfig returns the built-in configuration.
// It is used when the embedded YAML cannot be parsed and as the base that
// partial YAML files are merged onto.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  500,
			Height: 700,
		},
		Paddle: PaddleConfig{
			Width:        90,
			Height:       16,
			Speed:        8,
			BottomOffset: 40,
			Color:        "#00fff7",
		},
		Ball: BallConfig{
			Radius:      10,
			SpeedX:      4,
			SpeedY:      5,
			TrailLength: 10,
			SpawnOffset: 60,
			Color:       "#ff00ea",
		},
		Bricks: BricksConfig{
			Rows:       6,
			Cols:       7,
			Width:      56,
			Height:     24,
			Padding:    12,
			OffsetTop:  60,
			OffsetLeft: 18,
			Palette:    append([]string(nil), NeonPalette...),
		},
		Gameplay: GameplayConfig{
			Lives:       5,
			BrickPoints: 10,
			Spin:        6,
		},
		Particles: ParticlesConfig{
			Count:         14,
			LifeMin:       20,
			LifeMax:       30,
			VelocityRange: 6,
			Radius:        4,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakerYAML
}
