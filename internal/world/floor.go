package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/geom"
)

const (
	// Default floor dimensions
	DefaultWidth  = 80
	DefaultHeight = 45
)

// ErrIndexInconsistent reports that the wall-cell index disagrees with the
// tile grid. It always indicates a bug in a mutation path.
var ErrIndexInconsistent = errors.New("wall index inconsistent with grid")

// Floor is one dungeon level: a fixed grid of tiles, the rooms carved into
// it, the staircases and the entities standing on it.
//
// The grid and the wall-cell index are only changed through SetWalkable,
// which keeps the two in step.
type Floor struct {
	Width  int
	Height int
	Level  int

	// Rooms in placement order, which is also tunnel-connection order.
	Rooms []Room

	// Staircase cells, nil until placed.
	UpStairs   *geom.Point
	DownStairs *geom.Point

	tiles    [][]Tile
	walls    mapset.Set[geom.Point]
	explored mapset.Set[geom.Point]
	entities []*entity.Entity
}

// NewFloor creates a floor filled with walls.
func NewFloor(width, height, level int) *Floor {
	f := &Floor{
		Width:  width,
		Height: height,
		Level:  level,
	}
	f.Reset()
	return f
}

// Reset fills every cell with wall and drops rooms, stairs, entities and
// exploration state.
func (f *Floor) Reset() {
	f.tiles = make([][]Tile, f.Height)
	f.walls = mapset.New[geom.Point]()
	for y := range f.tiles {
		f.tiles[y] = make([]Tile, f.Width)
		for x := range f.tiles[y] {
			f.tiles[y][x] = WallTile
			f.walls.Put(geom.Pt(x, y))
		}
	}

	f.explored = mapset.New[geom.Point]()
	f.Rooms = make([]Room, 0)
	f.UpStairs = nil
	f.DownStairs = nil
	f.entities = nil
}

// InBounds reports whether p lies on the grid.
func (f *Floor) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < f.Width && p.Y >= 0 && p.Y < f.Height
}

// Tile returns the tile at p. Cells off the grid read as wall.
func (f *Floor) Tile(p geom.Point) Tile {
	if !f.InBounds(p) {
		return WallTile
	}
	return f.tiles[p.Y][p.X]
}

// SetWalkable turns the cell at p into floor or wall, updating the grid and
// the wall index together. It returns false when p is off the grid or the
// cell already had the requested walkability.
func (f *Floor) SetWalkable(p geom.Point, walkable bool) bool {
	if !f.InBounds(p) {
		return false
	}
	cur := f.tiles[p.Y][p.X]
	if cur.Walkable == walkable {
		return false
	}

	next := WallTile
	if walkable {
		next = FloorTile
	}
	next.Explored = cur.Explored
	f.tiles[p.Y][p.X] = next

	if walkable {
		f.walls.Remove(p)
	} else {
		f.walls.Put(p)
	}
	return true
}

// Carve makes the cell at p walkable. It reports whether anything changed.
func (f *Floor) Carve(p geom.Point) bool {
	return f.SetWalkable(p, true)
}

// AddRoom appends a room, stamping it with this floor's level.
func (f *Floor) AddRoom(r Room) {
	r.Level = f.Level
	f.Rooms = append(f.Rooms, r)
}

// RoomIndexAt returns the index of the room containing p, or -1 if p is
// not in a room.
func (f *Floor) RoomIndexAt(p geom.Point) int {
	for i, room := range f.Rooms {
		if room.Contains(p) {
			return i
		}
	}
	return -1
}

// IsWall reports whether p is a wall. Off-grid cells count as walls.
func (f *Floor) IsWall(p geom.Point) bool {
	if !f.InBounds(p) {
		return true
	}
	return f.walls.Has(p)
}

// IsWalkable reports whether p can be walked on, ignoring entities.
func (f *Floor) IsWalkable(p geom.Point) bool {
	return !f.IsWall(p)
}

// BlocksSight reports whether p stops line of sight.
func (f *Floor) BlocksSight(p geom.Point) bool {
	return f.IsWall(p)
}

// IsBlocked reports whether p is a wall or holds a blocking entity.
func (f *Floor) IsBlocked(p geom.Point) bool {
	return f.IsWall(p) || f.BlockingEntityAt(p) != nil
}

// WallCount returns the size of the wall index.
func (f *Floor) WallCount() int {
	return f.walls.Size()
}

// WalkableCount returns the number of walkable cells.
func (f *Floor) WalkableCount() int {
	return f.Width*f.Height - f.walls.Size()
}

// MarkExplored flags p as seen. Off-grid cells are ignored.
func (f *Floor) MarkExplored(p geom.Point) {
	if !f.InBounds(p) {
		return
	}
	f.tiles[p.Y][p.X].Explored = true
	f.explored.Put(p)
}

// IsExplored reports whether p has been seen.
func (f *Floor) IsExplored(p geom.Point) bool {
	return f.explored.Has(p)
}

// ExploredCount returns how many cells have been seen.
func (f *Floor) ExploredCount() int {
	return f.explored.Size()
}

// Validate checks that the wall index matches the grid cell for cell.
func (f *Floor) Validate() error {
	walls := 0
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := geom.Pt(x, y)
			walkable := f.tiles[y][x].IsPassable()
			indexed := f.walls.Has(p)
			if walkable == indexed {
				return fmt.Errorf("%w: cell %v walkable=%t indexed=%t", ErrIndexInconsistent, p, walkable, indexed)
			}
			if indexed {
				walls++
			}
		}
	}
	if walls != f.walls.Size() {
		return fmt.Errorf("%w: index holds %d cells, grid has %d walls", ErrIndexInconsistent, f.walls.Size(), walls)
	}
	return nil
}

// AssertConsistent panics when the wall index is out of step with the
// grid. It is a no-op unless built with the delvedebug tag.
func (f *Floor) AssertConsistent() {
	if !debugAssertions {
		return
	}
	if err := f.Validate(); err != nil {
		panic(err)
	}
}
