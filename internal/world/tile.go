// Package world provides the floor grid, rooms and the dungeon that strings
// floors together.
package world

import "github.com/gdamore/tcell/v2"

// Tile describes a single grid cell. Floors hold tiles by value, so
// changing one cell never affects another.
type Tile struct {
	Glyph    rune
	Color    tcell.Color
	Walkable bool
	Explored bool // Set once the cell has been seen
}

var (
	// WallTile is an impassable, sight-blocking cell.
	WallTile = Tile{Glyph: '#', Color: tcell.ColorDarkGray}
	// FloorTile is an open cell.
	FloorTile = Tile{Glyph: '.', Color: tcell.ColorGray, Walkable: true}
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t.Walkable
}
