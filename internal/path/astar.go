package path

import (
	"slices"

	"github.com/zyedidia/generic/heap"

	"github.com/samdwyer/delve/internal/geom"
)

// node is a frontier entry. Entries are never updated in place; a better
// route pushes a fresh entry and the stale one is skipped when popped.
type node struct {
	p    geom.Point
	g, h int
}

func (n node) f() int {
	return n.g + n.h
}

// frontierLess fixes the expansion order: lowest f, then lowest h, then
// row-major position. Equal inputs therefore always give the same path.
func frontierLess(a, b node) bool {
	if a.f() != b.f() {
		return a.f() < b.f()
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.p.Less(b.p)
}

// FindPath searches for a cheapest route from start to goal with
// eight-way movement where every step costs 1. The heuristic is the
// Chebyshev distance, which never overestimates under that cost model.
//
// The route includes both endpoints. ok is false when goal is blocked or
// cannot be reached. start itself is never tested against blocked, since
// it is usually occupied by the mover.
//
// The search is bounded only by blocked: it ends on an unreachable goal
// because blocked reports every off-map cell, so a predicate that admits
// the whole plane never returns.
func FindPath(start, goal geom.Point, blocked BlockedFunc) (route []geom.Point, ok bool) {
	if start == goal {
		return []geom.Point{start}, true
	}
	if blocked(goal) {
		return nil, false
	}

	open := heap.New[node](frontierLess)
	open.Push(node{p: start, g: 0, h: start.Chebyshev(goal)})

	gScore := map[geom.Point]int{start: 0}
	cameFrom := map[geom.Point]geom.Point{}
	closed := map[geom.Point]bool{}

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if closed[cur.p] {
			continue
		}
		if cur.p == goal {
			return reconstruct(cameFrom, start, goal), true
		}
		closed[cur.p] = true

		for _, next := range cur.p.Neighbors8() {
			if closed[next] || blocked(next) {
				continue
			}
			g := cur.g + 1
			if best, seen := gScore[next]; seen && g >= best {
				continue
			}
			gScore[next] = g
			cameFrom[next] = cur.p
			open.Push(node{p: next, g: g, h: next.Chebyshev(goal)})
		}
	}

	return nil, false
}

func reconstruct(cameFrom map[geom.Point]geom.Point, start, goal geom.Point) []geom.Point {
	route := []geom.Point{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		route = append(route, cur)
	}
	slices.Reverse(route)
	return route
}

// Cost returns the number of steps along a route.
func Cost(route []geom.Point) int {
	if len(route) == 0 {
		return 0
	}
	return len(route) - 1
}
