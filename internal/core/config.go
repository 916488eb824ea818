package core

// RuntimeConfig contains configuration passed to a session at initialization.
// Sessions use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DeltaTime returns the fixed simulation step in seconds.
func (c RuntimeConfig) DeltaTime() float32 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float32(c.TickRate)
}
