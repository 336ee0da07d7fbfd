// Package fov computes field of view with symmetric shadowcasting.
//
// The plane around the origin is split into four quadrants. Each quadrant
// is scanned row by row moving away from the origin; a row covers the
// columns between two slopes, and walls narrow the slopes handed to the
// rows behind them. Slopes are exact rationals, so cells on a sector
// boundary are classified the same way from both ends: a floor cell A sees
// a floor cell B exactly when B sees A.
package fov

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/delve/internal/geom"
)

// BlockFunc reports whether the cell at p blocks sight. It must return
// true for cells off the map.
type BlockFunc func(p geom.Point) bool

// MarkFunc receives every cell found visible. A cell may be reported more
// than once.
type MarkFunc func(p geom.Point)

type quadrant int

const (
	north quadrant = iota
	east
	south
	west
)

// transform maps quadrant-local (depth, col) to grid coordinates.
func (q quadrant) transform(origin geom.Point, depth, col int) geom.Point {
	switch q {
	case north:
		return geom.Pt(origin.X+col, origin.Y-depth)
	case south:
		return geom.Pt(origin.X+col, origin.Y+depth)
	case east:
		return geom.Pt(origin.X+depth, origin.Y+col)
	default:
		return geom.Pt(origin.X-depth, origin.Y+col)
	}
}

type row struct {
	depth      int
	start, end slope
}

func (r row) next() row {
	return row{depth: r.depth + 1, start: r.start, end: r.end}
}

// columns returns the inclusive range of columns whose diamond overlaps the
// sector. A diamond that only touches a bounding slope is left out.
func (r row) columns() (lo, hi int) {
	lo = roundTiesUp(r.depth*r.start.num, r.start.den)
	hi = roundTiesDown(r.depth*r.end.num, r.end.den)
	return lo, hi
}

// isSymmetric reports whether the center of column col lies inside the
// sector, bounds included.
func (r row) isSymmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

type cellKind int

const (
	cellNone cellKind = iota
	cellWall
	cellFloor
)

// frame is a row being scanned: the next column to visit and what the
// previous column was.
type frame struct {
	row    row
	col    int
	maxCol int
	prev   cellKind
}

func newFrame(r row) frame {
	lo, hi := r.columns()
	return frame{row: r, col: lo, maxCol: hi, prev: cellNone}
}

// Compute reports every cell visible from origin within radius to
// markVisible, origin first. Cells farther than radius (Euclidean) are
// never reported; radius <= 0 reveals only the origin.
func Compute(origin geom.Point, radius int, isBlocking BlockFunc, markVisible MarkFunc) {
	markVisible(origin)
	if radius <= 0 {
		return
	}
	for q := north; q <= west; q++ {
		scanQuadrant(q, origin, radius, isBlocking, markVisible)
	}
}

// scanQuadrant walks one quadrant depth first. A row that hits a wall
// pushes the row behind it and that row is finished before the rest of
// the current row is scanned.
func scanQuadrant(q quadrant, origin geom.Point, radius int, isBlocking BlockFunc, markVisible MarkFunc) {
	radiusSq := radius * radius
	stack := []frame{newFrame(row{depth: 1, start: newSlope(-1, 1), end: newSlope(1, 1)})}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.col > top.maxCol {
			done := *top
			stack = stack[:len(stack)-1]
			if done.prev == cellFloor && done.row.depth < radius {
				stack = append(stack, newFrame(done.row.next()))
			}
			continue
		}

		depth, col := top.row.depth, top.col
		p := q.transform(origin, depth, col)
		blocked := isBlocking(p)

		if (blocked || top.row.isSymmetric(col)) && depth*depth+col*col <= radiusSq {
			markVisible(p)
		}

		var child *row
		if top.prev == cellWall && !blocked {
			top.row.start = tileSlope(depth, col)
		}
		if top.prev == cellFloor && blocked {
			next := top.row.next()
			next.end = tileSlope(depth, col)
			child = &next
		}

		if blocked {
			top.prev = cellWall
		} else {
			top.prev = cellFloor
		}
		top.col++

		if child != nil && child.depth <= radius {
			stack = append(stack, newFrame(*child))
		}
	}
}

// Visible collects the cells visible from origin into a set.
func Visible(origin geom.Point, radius int, isBlocking BlockFunc) mapset.Set[geom.Point] {
	seen := mapset.New[geom.Point]()
	Compute(origin, radius, isBlocking, func(p geom.Point) {
		seen.Put(p)
	})
	return seen
}
