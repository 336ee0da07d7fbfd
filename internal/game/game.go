package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/fov"
	"github.com/samdwyer/delve/internal/geom"
	"github.com/samdwyer/delve/internal/procgen"
	"github.com/samdwyer/delve/internal/rng"
	"github.com/samdwyer/delve/internal/telemetry"
	"github.com/samdwyer/delve/internal/world"
)

var (
	ErrNotOnStairs = errors.New("not standing on the matching staircase")
	ErrTopFloor    = errors.New("already on the top floor")
	ErrBottomFloor = errors.New("already on the bottom floor")
	ErrNotStarted  = errors.New("game not started")
	ErrStarted     = errors.New("game already started")
)

// Streams passed to rng.Derive. Floors use their level number, which is
// never negative.
const (
	playStream = -2
	idStream   = -3
)

// Game holds the entire session state.
type Game struct {
	cfg     Config
	gen     *procgen.Generator
	dungeon *world.Dungeon
	player  *entity.Entity
	visible mapset.Set[geom.Point]
	play    *rng.Source
	ids     entity.IDSource
	state   State
	log     logrus.FieldLogger
}

// New creates a game. Nothing is generated until Start.
func New(cfg Config, content procgen.Content, log logrus.FieldLogger) (*Game, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.MaxDepth < 1 {
		return nil, fmt.Errorf("max depth %d: %w", cfg.MaxDepth, procgen.ErrInvalidConfig)
	}

	gen, err := procgen.New(cfg.Generation, content, log)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:     cfg,
		gen:     gen,
		dungeon: world.NewDungeon(),
		visible: mapset.New[geom.Point](),
		play:    rng.New(rng.Derive(cfg.Seed, playStream)),
		ids:     entity.NewSeededIDs(rng.New(rng.Derive(cfg.Seed, idStream))),
		state:   StateExplore,
		log:     log.WithField("component", "game"),
	}, nil
}

// Start generates the top floor and puts the player in its first room.
func (g *Game) Start(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.start")
	defer span.End()

	if g.dungeon.Len() > 0 {
		return ErrStarted
	}

	f := g.dungeon.Descend(g.builder(ctx))
	g.player = entity.New(entity.Player, arrival(f, f.UpStairs), g.ids)
	g.enter(f, g.player.Pos)

	span.SetAttributes(
		attribute.Int64("game.seed", g.cfg.Seed),
		attribute.Int("dungeon.rooms", len(f.Rooms)),
		attribute.Int("player.x", g.player.Pos.X),
		attribute.Int("player.y", g.player.Pos.Y),
	)
	return nil
}

// builder returns the callback the dungeon uses to create a floor the
// first time it is reached. Each level gets its own stream so floors do not
// depend on the order they were visited. The top floor has no up staircase
// and the bottom floor no down staircase.
func (g *Game) builder(ctx context.Context) func(level int) *world.Floor {
	return func(level int) *world.Floor {
		gen := g.gen.WithStairs(level > 0, level < g.cfg.MaxDepth-1)
		f, _ := gen.Generate(ctx, level, rng.New(rng.Derive(g.cfg.Seed, level)))
		return f
	}
}

// arrival picks where the player lands on f: the given staircase, or the
// first room's center if the floor has none.
func arrival(f *world.Floor, stairs *geom.Point) geom.Point {
	if stairs != nil {
		return *stairs
	}
	if len(f.Rooms) > 0 {
		return f.Rooms[0].Center()
	}
	return geom.Pt(f.Width/2, f.Height/2)
}

// enter registers the player on f at p and refreshes the view.
func (g *Game) enter(f *world.Floor, p geom.Point) {
	g.player.Pos = p
	f.AddEntity(g.player)
	g.RefreshFOV()
	g.updateState()
}

// Floor returns the current floor, or nil before Start.
func (g *Game) Floor() *world.Floor {
	return g.dungeon.Current()
}

// Dungeon returns the floor stack.
func (g *Game) Dungeon() *world.Dungeon {
	return g.dungeon
}

// Player returns the player entity, or nil before Start.
func (g *Game) Player() *entity.Entity {
	return g.player
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Depth returns the current level.
func (g *Game) Depth() int {
	return g.dungeon.Depth()
}

// TryMove moves the player by the given delta if the target cell is open.
// It reports whether the player moved.
func (g *Game) TryMove(ctx context.Context, dx, dy int) bool {
	f := g.Floor()
	if f == nil {
		return false
	}

	target := g.player.Pos.Add(dx, dy)
	if f.IsBlocked(target) {
		g.log.WithField("target", target).Debug("move blocked")
		return false
	}

	f.MoveEntity(g.player, target)
	g.RefreshFOV()
	g.updateState()
	return true
}

func (g *Game) updateState() {
	f := g.Floor()
	switch {
	case f.DownStairs != nil && *f.DownStairs == g.player.Pos:
		g.state = StateDescending
	case f.UpStairs != nil && *f.UpStairs == g.player.Pos:
		g.state = StateAscending
	default:
		g.state = StateExplore
	}
}

// Descend takes the down staircase the player is standing on, generating
// the next floor on first visit.
func (g *Game) Descend(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.descend")
	defer span.End()

	f := g.Floor()
	if f == nil {
		return ErrNotStarted
	}
	if f.DownStairs == nil || *f.DownStairs != g.player.Pos {
		return ErrNotOnStairs
	}
	if g.dungeon.Depth()+1 >= g.cfg.MaxDepth {
		return ErrBottomFloor
	}

	f.RemoveEntity(g.player)
	next := g.dungeon.Descend(g.builder(ctx))
	g.enter(next, arrival(next, next.UpStairs))

	span.SetAttributes(
		attribute.Int("dungeon.depth", g.dungeon.Depth()),
		attribute.Int("dungeon.rooms", len(next.Rooms)),
	)
	g.log.WithField("depth", g.dungeon.Depth()).Info("descended")
	return nil
}

// Ascend takes the up staircase the player is standing on back to the
// floor above, which is kept exactly as it was left.
func (g *Game) Ascend(ctx context.Context) error {
	_, span := telemetry.Tracer("game").Start(ctx, "game.ascend")
	defer span.End()

	f := g.Floor()
	if f == nil {
		return ErrNotStarted
	}
	if f.UpStairs == nil || *f.UpStairs != g.player.Pos {
		return ErrNotOnStairs
	}
	if g.dungeon.Depth() == 0 {
		return ErrTopFloor
	}

	f.RemoveEntity(g.player)
	prev, _ := g.dungeon.Ascend()
	g.enter(prev, arrival(prev, prev.DownStairs))

	span.SetAttributes(attribute.Int("dungeon.depth", g.dungeon.Depth()))
	g.log.WithField("depth", g.dungeon.Depth()).Info("ascended")
	return nil
}

// RefreshFOV recomputes what the player sees and marks it explored.
func (g *Game) RefreshFOV() {
	f := g.Floor()
	if f == nil || g.player == nil {
		return
	}

	g.visible = fov.Visible(g.player.Pos, g.cfg.FOVRadius, f.BlocksSight)
	g.visible.Each(func(p geom.Point) {
		f.MarkExplored(p)
	})

	g.log.WithFields(logrus.Fields{
		"origin":  g.player.Pos,
		"visible": g.visible.Size(),
	}).Debug("fov refreshed")
}

// IsVisible reports whether p was in view at the last refresh.
func (g *Game) IsVisible(p geom.Point) bool {
	return g.visible.Has(p)
}

// VisibleCount returns the number of cells in view.
func (g *Game) VisibleCount() int {
	return g.visible.Size()
}
