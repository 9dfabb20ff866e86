package core

// RuntimeConfig contains terminal-level settings for a play session.
// The simulation itself runs in logical playfield units and never depends
// on the terminal size.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Redraws per second
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 30,
		Seed:      0, // 0 means use current time in platform layer
	}
}
