// Package game runs a headless play session: it owns the dungeon, the
// player and the monsters' turns, and leaves drawing to the caller.
package game

// State represents where the player stands relative to the stairs.
type State int

const (
	// StateExplore is the default mode: the player walks the current floor.
	StateExplore State = iota
	// StateDescending means the player is on a down staircase.
	StateDescending
	// StateAscending means the player is on an up staircase.
	StateAscending
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateDescending:
		return "descending"
	case StateAscending:
		return "ascending"
	default:
		return "unknown"
	}
}
