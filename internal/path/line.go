// Package path traces straight lines and searches the grid for routes.
// Both work only through the caller's blocking predicate and never modify
// the floor.
package path

import (
	"slices"

	"github.com/samdwyer/delve/internal/geom"
)

// BlockedFunc reports whether a cell cannot be entered or seen through.
// It must return true for cells off the map.
type BlockedFunc func(p geom.Point) bool

// TraceLine returns the cells approximating the segment from start to end,
// both included. The result has max(|dx|,|dy|)+1 cells and traces the
// same cells in either direction.
func TraceLine(start, end geom.Point) []geom.Point {
	x1, y1 := start.X, start.Y
	x2, y2 := end.X, end.Y

	steep := abs(y2-y1) > abs(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}

	swapped := false
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
		swapped = true
	}

	dx := x2 - x1
	dy := y2 - y1
	errAcc := dx / 2
	ystep := -1
	if y1 < y2 {
		ystep = 1
	}

	points := make([]geom.Point, 0, dx+1)
	y := y1
	for x := x1; x <= x2; x++ {
		if steep {
			points = append(points, geom.Pt(y, x))
		} else {
			points = append(points, geom.Pt(x, y))
		}
		errAcc -= abs(dy)
		if errAcc < 0 {
			y += ystep
			errAcc += dx
		}
	}

	if swapped {
		slices.Reverse(points)
	}
	return points
}

// LineOfSight reports whether no cell strictly between start and end is
// blocked.
func LineOfSight(start, end geom.Point, blocked BlockedFunc) bool {
	line := TraceLine(start, end)
	if len(line) <= 2 {
		return true
	}
	for _, p := range line[1 : len(line)-1] {
		if blocked(p) {
			return false
		}
	}
	return true
}

// StepToward returns the first cell after start on the straight line to
// end. It is the naive chase used when no route is known; ok is false when
// start and end coincide.
func StepToward(start, end geom.Point) (geom.Point, bool) {
	line := TraceLine(start, end)
	if len(line) < 2 {
		return start, false
	}
	return line[1], true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
