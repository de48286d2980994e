package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The session uses it to size the board and seed its RNG.
type RuntimeConfig struct {
	ScreenW int   // Viewport width in board units
	ScreenH int   // Viewport height in board units
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults: a 600x600
// board (30x30 cells of size 20).
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 600,
		ScreenH: 600,
		Seed:    0, // 0 means use current time in platform layer
	}
}
