package core

// RuntimeConfig describes the host the simulation runs on: the terminal it is
// drawn into, how often it ticks, and the seed for its RNG.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 means the platform layer picks a time-based seed
}

// Minimum terminal size the renderer can lay the field out in.
const (
	MinScreenW = 30
	MinScreenH = 16
)

// DefaultConfig returns the runtime used when nothing is known about the host.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Normalized fills zero or negative fields with defaults.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	return c
}

// TooSmall reports whether the terminal cannot fit the field.
func (c RuntimeConfig) TooSmall() bool {
	return c.ScreenW < MinScreenW || c.ScreenH < MinScreenH
}
