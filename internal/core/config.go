package core

// RuntimeConfig contains host parameters passed to the game at startup.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters (ignored by the window host)
	ScreenH  int // Terminal height in characters
	TickRate int // Nominal host ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
