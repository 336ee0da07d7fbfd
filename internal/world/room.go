package world

import (
	"github.com/samdwyer/delve/internal/geom"
	"github.com/samdwyer/delve/internal/rng"
)

// Room is an axis-aligned rectangle on a floor. The rectangle includes its
// wall ring; the carved interior runs from X+1 to X+Width-1 and Y+1 to
// Y+Height-1, upper bounds exclusive.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room, walls included
	Level         int // Index of the owning floor in its dungeon
}

// Center returns the center cell of the room.
func (r Room) Center() geom.Point {
	return geom.Pt(r.X+r.Width/2, r.Y+r.Height/2)
}

// RandomInterior returns a uniformly chosen interior cell.
func (r Room) RandomInterior(src *rng.Source) geom.Point {
	return geom.Pt(
		src.IntRange(r.X+1, r.X+r.Width-2),
		src.IntRange(r.Y+1, r.Y+r.Height-2),
	)
}

// Contains returns true if p lies inside the rectangle, walls included.
func (r Room) Contains(p geom.Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ContainsInterior returns true if p lies in the carved interior.
func (r Room) ContainsInterior(p geom.Point) bool {
	return p.X > r.X && p.X < r.X+r.Width-1 && p.Y > r.Y && p.Y < r.Y+r.Height-1
}

// Interior lists the interior cells in row-major order.
func (r Room) Interior() []geom.Point {
	cells := make([]geom.Point, 0, max(0, (r.Width-2)*(r.Height-2)))
	for y := r.Y + 1; y < r.Y+r.Height-1; y++ {
		for x := r.X + 1; x < r.X+r.Width-1; x++ {
			cells = append(cells, geom.Pt(x, y))
		}
	}
	return cells
}

// Intersects returns true if the two rooms overlap once each is grown by a
// one-cell margin, so accepted rooms never share a wall.
func (r Room) Intersects(other Room) bool {
	return r.X-1 < other.X+other.Width+1 &&
		r.X+r.Width+1 > other.X-1 &&
		r.Y-1 < other.Y+other.Height+1 &&
		r.Y+r.Height+1 > other.Y-1
}
