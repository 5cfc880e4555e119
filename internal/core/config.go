package core

// RuntimeConfig controls the host loop that drives a scenario.
type RuntimeConfig struct {
	TickRate     int     // Host frames per second when pacing in real time
	UpdateEvery  int     // Advance the simulation every Nth frame
	FlowTimestep float64 // Simulated time per update
	Frames       int     // Frames to run before stopping (0 = until canceled)
	Realtime     bool    // Pace frames with a wall-clock ticker
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:     60,
		UpdateEvery:  10,
		FlowTimestep: 1.0,
		Frames:       600,
		Realtime:     false,
	}
}

// Normalize fills zero or invalid fields from DefaultConfig.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	def := DefaultConfig()
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.UpdateEvery <= 0 {
		c.UpdateEvery = def.UpdateEvery
	}
	if !(c.FlowTimestep > 0) {
		c.FlowTimestep = def.FlowTimestep
	}
	if c.Frames < 0 {
		c.Frames = 0
	}
	return c
}
