package main

import (
	"fmt"
	"strings"

	"github.com/samdwyer/delve/internal/game"
	"github.com/samdwyer/delve/internal/geom"
	"github.com/samdwyer/delve/internal/path"
	"github.com/samdwyer/delve/internal/world"
)

const (
	routeGlyph    = '*'
	rememberGlyph = ':'
)

// Render draws the current floor twice. The first map is what the player
// knows: visible cells in full, explored cells as remembered floor, the
// rest blank. The second shows the whole floor with the shortest walking
// route from the player to the down staircase.
func Render(g *game.Game) string {
	f := g.Floor()
	var b strings.Builder

	fmt.Fprintf(&b, "depth %d  rooms %d  entities %d  visible %d  explored %d\n",
		g.Depth(), len(f.Rooms), f.EntityCount(), g.VisibleCount(), f.ExploredCount())
	drawFloor(&b, f, func(p geom.Point) rune {
		switch {
		case g.IsVisible(p):
			return cellGlyph(f, p)
		case f.IsExplored(p) && f.IsWalkable(p):
			return rememberGlyph
		case f.IsExplored(p):
			return f.Tile(p).Glyph
		}
		return ' '
	})

	b.WriteByte('\n')
	route := stairsRoute(f, g.Player().Pos)
	onRoute := make(map[geom.Point]bool, len(route))
	for _, p := range route {
		onRoute[p] = true
	}
	if route == nil {
		b.WriteString("no route to the down stairs\n")
	} else {
		fmt.Fprintf(&b, "route to the down stairs: %d steps\n", path.Cost(route))
	}
	drawFloor(&b, f, func(p geom.Point) rune {
		if onRoute[p] && f.TopEntityAt(p) == nil {
			return routeGlyph
		}
		return cellGlyph(f, p)
	})

	return b.String()
}

// stairsRoute walks from `from` to the down staircase, ignoring entities.
// It returns nil on the bottom floor or when no route exists.
func stairsRoute(f *world.Floor, from geom.Point) []geom.Point {
	if f.DownStairs == nil {
		return nil
	}
	route, ok := path.FindPath(from, *f.DownStairs, f.IsWall)
	if !ok {
		return nil
	}
	return route
}

// cellGlyph is the topmost entity's glyph, or the tile's.
func cellGlyph(f *world.Floor, p geom.Point) rune {
	if e := f.TopEntityAt(p); e != nil {
		return e.Glyph
	}
	return f.Tile(p).Glyph
}

func drawFloor(b *strings.Builder, f *world.Floor, glyph func(geom.Point) rune) {
	for y := 0; y < f.Height; y++ {
		line := make([]rune, 0, f.Width)
		for x := 0; x < f.Width; x++ {
			line = append(line, glyph(geom.Pt(x, y)))
		}
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteByte('\n')
	}
}
