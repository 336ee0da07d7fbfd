package game

import "github.com/samdwyer/delve/internal/procgen"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Every floor and the monsters'
	// choices derive from it, so a seed replays the same session.
	Seed int64

	Generation procgen.Config
	FOVRadius  int
	MaxDepth   int // Number of floors; the deepest level is MaxDepth-1
}

// DefaultConfig returns a ten-floor dungeon with the default floor layout.
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:       seed,
		Generation: procgen.DefaultConfig(),
		FOVRadius:  8,
		MaxDepth:   10,
	}
}
