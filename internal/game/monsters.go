package game

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/geom"
	"github.com/samdwyer/delve/internal/path"
	"github.com/samdwyer/delve/internal/rng"
	"github.com/samdwyer/delve/internal/telemetry"
	"github.com/samdwyer/delve/internal/world"
)

// RunMonsterTurns lets every creature the player can see take one step
// toward the player. A creature follows its A* route; with no route it
// tries the straight-line step and then a random open neighbour. Creatures
// stop next to the player. It returns how many creatures moved.
func (g *Game) RunMonsterTurns(ctx context.Context) int {
	_, span := telemetry.Tracer("game").Start(ctx, "game.monster_turns")
	defer span.End()

	f := g.Floor()
	if f == nil {
		return 0
	}

	acted, moved := 0, 0
	for _, e := range f.Entities() {
		if e == g.player || e.Kind != entity.KindCreature || !e.IsCreature() {
			continue
		}
		if !g.IsVisible(e.Pos) {
			continue
		}
		acted++

		next, ok := g.chooseStep(f, e)
		if !ok {
			continue
		}
		f.MoveEntity(e, next)
		moved++
	}

	span.SetAttributes(
		attribute.Int("monsters.acting", acted),
		attribute.Int("monsters.moved", moved),
	)
	g.log.WithFields(logrus.Fields{
		"acting": acted,
		"moved":  moved,
	}).Debug("monster turns")
	return moved
}

func (g *Game) chooseStep(f *world.Floor, e *entity.Entity) (geom.Point, bool) {
	target := g.player.Pos
	if e.Pos.Chebyshev(target) <= 1 {
		return geom.Point{}, false
	}

	// The player's own cell is the goal, so only it is exempt from the
	// blocking check.
	blocked := func(p geom.Point) bool {
		return p != target && f.IsBlocked(p)
	}

	if route, ok := path.FindPath(e.Pos, target, blocked); ok && len(route) > 2 {
		return route[1], true
	}

	if step, ok := path.StepToward(e.Pos, target); ok && !f.IsBlocked(step) {
		return step, true
	}

	var open []geom.Point
	for _, n := range e.Pos.Neighbors8() {
		if !f.IsBlocked(n) {
			open = append(open, n)
		}
	}
	return rng.Choice(g.play, open)
}
