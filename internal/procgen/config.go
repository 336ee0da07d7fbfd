package procgen

import (
	"errors"
	"fmt"

	"github.com/samdwyer/delve/internal/world"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid generation config")

// DefaultMaxRetries is how many consecutive rejected room candidates end
// room placement.
const DefaultMaxRetries = 250

// LevelStep sets Value from Level downward until the next step.
type LevelStep struct {
	Level int
	Value int
}

// LevelTable is a list of steps ordered by Level.
type LevelTable []LevelStep

// At returns the value in effect at level, or 0 above the first step.
func (t LevelTable) At(level int) int {
	value := 0
	for _, step := range t {
		if level < step.Level {
			break
		}
		value = step.Value
	}
	return value
}

// Config holds floor generation parameters.
type Config struct {
	Width  int
	Height int

	// Room placement stops once MaxRooms rooms exist or MaxRetries
	// candidates in a row were rejected.
	MaxRooms    int
	RoomMinSize int // Includes the wall ring, so 3 is the smallest useful room
	RoomMaxSize int
	MaxRetries  int

	PlaceUpStairs   bool
	PlaceDownStairs bool

	MaxMonstersPerRoom LevelTable
	MaxItemsPerRoom    LevelTable
}

// DefaultConfig returns the standard floor layout.
func DefaultConfig() Config {
	return Config{
		Width:           world.DefaultWidth,
		Height:          world.DefaultHeight,
		MaxRooms:        30,
		RoomMinSize:     6,
		RoomMaxSize:     10,
		MaxRetries:      DefaultMaxRetries,
		PlaceUpStairs:   true,
		PlaceDownStairs: true,
		MaxMonstersPerRoom: LevelTable{
			{Level: 0, Value: 2},
			{Level: 3, Value: 3},
			{Level: 5, Value: 5},
		},
		MaxItemsPerRoom: LevelTable{
			{Level: 0, Value: 1},
			{Level: 3, Value: 2},
		},
	}
}

// Validate checks that a room of the largest size always fits on the grid.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.RoomMinSize < 3:
		return fmt.Errorf("%w: room min size %d is below 3", ErrInvalidConfig, c.RoomMinSize)
	case c.RoomMaxSize < c.RoomMinSize:
		return fmt.Errorf("%w: room max size %d below min size %d", ErrInvalidConfig, c.RoomMaxSize, c.RoomMinSize)
	case c.RoomMaxSize >= c.Width || c.RoomMaxSize >= c.Height:
		return fmt.Errorf("%w: room max size %d does not fit %dx%d", ErrInvalidConfig, c.RoomMaxSize, c.Width, c.Height)
	case c.MaxRooms < 1:
		return fmt.Errorf("%w: max rooms %d", ErrInvalidConfig, c.MaxRooms)
	case c.MaxRetries < 1:
		return fmt.Errorf("%w: max retries %d", ErrInvalidConfig, c.MaxRetries)
	}
	return nil
}
