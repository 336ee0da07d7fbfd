// Package geom holds the integer grid coordinate shared by the world,
// visibility and pathfinding packages.
package geom

import (
	"fmt"
	"math"
)

// Point is a grid cell coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistSq returns the squared Euclidean distance between p and q.
func (p Point) DistSq(q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(float64(p.DistSq(q)))
}

// Chebyshev returns the king-move distance between p and q.
func (p Point) Chebyshev(q Point) int {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

// Less orders points row-major: by Y, then by X.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Directions8 lists the eight neighbour offsets clockwise from north.
var Directions8 = [8]Point{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Neighbors8 returns the eight surrounding cells in Directions8 order.
func (p Point) Neighbors8() [8]Point {
	var out [8]Point
	for i, d := range Directions8 {
		out[i] = Point{X: p.X + d.X, Y: p.Y + d.Y}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
