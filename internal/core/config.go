package core

// RuntimeConfig contains configuration passed to the engine and hosts at startup.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (terminal columns or window pixels)
	ScreenH  int   // Host surface height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  160,
		ScreenH:  45,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDelta returns the fixed timestep in milliseconds.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60
	}
	return 1000.0 / float64(c.TickRate)
}
