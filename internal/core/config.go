package core

// RuntimeConfig contains configuration passed to a rendering backend.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal backends)
	ScreenH  int // Screen height in characters (terminal backends)
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
