// Package procgen builds dungeon floors: it carves rooms and tunnels into
// an all-wall floor, places the staircases and stocks the rooms.
//
// Every stage takes its randomness from the caller's rng.Source, so the
// same seed and config always produce the same floor.
package procgen

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/geom"
	"github.com/samdwyer/delve/internal/rng"
	"github.com/samdwyer/delve/internal/telemetry"
	"github.com/samdwyer/delve/internal/world"
)

// idStream is the rng.Derive stream reserved for entity IDs.
const idStream = -1

// Stats describes what a generation run produced.
type Stats struct {
	Rooms            int
	Rejected         int  // Room candidates rejected for overlap
	RetriesExhausted bool // Placement stopped before reaching MaxRooms
	TunnelCells      int  // Cells newly opened by tunnels
	Creatures        int
	Items            int
}

// Generator runs the floor pipeline for one configuration.
type Generator struct {
	cfg     Config
	content Content
	log     logrus.FieldLogger
}

// New creates a generator. A nil logger means the logrus standard logger.
func New(cfg Config, content Content, log logrus.FieldLogger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Generator{
		cfg:     cfg,
		content: content,
		log:     log.WithField("component", "procgen"),
	}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// WithStairs returns a generator that places the up and down staircases
// as given, overriding the config flags. The receiver is not changed.
func (g *Generator) WithStairs(up, down bool) *Generator {
	clone := *g
	clone.cfg.PlaceUpStairs = up
	clone.cfg.PlaceDownStairs = down
	return &clone
}

// Generate builds the floor for level from src.
func (g *Generator) Generate(ctx context.Context, level int, src *rng.Source) (*world.Floor, Stats) {
	tracer := telemetry.Tracer("procgen")
	_, span := tracer.Start(ctx, "procgen.generate")
	defer span.End()

	f := world.NewFloor(g.cfg.Width, g.cfg.Height, level)
	ids := entity.NewSeededIDs(rng.New(rng.Derive(src.Seed(), idStream)))

	g.FillWalls(f)
	stats := g.PlaceRooms(f, src)
	g.PlaceStairs(f, ids)
	stats.Creatures, stats.Items = g.Populate(f, src, ids)
	f.AssertConsistent()

	span.SetAttributes(
		attribute.Int("floor.level", level),
		attribute.Int64("floor.seed", src.Seed()),
		attribute.Int("floor.room_count", stats.Rooms),
		attribute.Int("floor.rejected_rooms", stats.Rejected),
		attribute.Bool("floor.retries_exhausted", stats.RetriesExhausted),
		attribute.Int("floor.entities", f.EntityCount()),
	)

	g.log.WithFields(logrus.Fields{
		"level":     level,
		"seed":      src.Seed(),
		"rooms":     stats.Rooms,
		"rejected":  stats.Rejected,
		"creatures": stats.Creatures,
		"items":     stats.Items,
	}).Info("floor generated")

	return f, stats
}

// Generate is the one-shot form: a fresh stream from seed, the default
// logger and the given config.
func Generate(ctx context.Context, seed int64, level int, cfg Config, content Content) (*world.Floor, Stats, error) {
	g, err := New(cfg, content, nil)
	if err != nil {
		return nil, Stats{}, err
	}
	f, stats := g.Generate(ctx, level, rng.New(seed))
	return f, stats, nil
}

// FillWalls turns every cell of f into wall and clears rooms, stairs and
// entities.
func (g *Generator) FillWalls(f *world.Floor) {
	f.Reset()
	f.AssertConsistent()
}

// PlaceRooms samples rooms until MaxRooms are placed or MaxRetries
// candidates in a row overlap existing rooms. Running out of retries is
// not an error; the floor keeps the rooms it has. Each accepted room after
// the first is tunnelled to the one before it.
func (g *Generator) PlaceRooms(f *world.Floor, src *rng.Source) Stats {
	var stats Stats
	retries := 0

	for len(f.Rooms) < g.cfg.MaxRooms {
		candidate := world.Room{
			X: src.IntRange(0, f.Width-g.cfg.RoomMaxSize-1),
			Y: src.IntRange(0, f.Height-g.cfg.RoomMaxSize-1),
		}
		candidate.Width = src.IntRange(g.cfg.RoomMinSize, g.cfg.RoomMaxSize)
		candidate.Height = src.IntRange(g.cfg.RoomMinSize, g.cfg.RoomMaxSize)

		if overlapsAny(candidate, f.Rooms) {
			stats.Rejected++
			retries++
			if retries >= g.cfg.MaxRetries {
				stats.RetriesExhausted = true
				g.log.WithFields(logrus.Fields{
					"level":   f.Level,
					"placed":  len(f.Rooms),
					"wanted":  g.cfg.MaxRooms,
					"retries": retries,
				}).Warn("room placement retries exhausted, keeping placed rooms")
				break
			}
			continue
		}

		for _, p := range candidate.Interior() {
			f.Carve(p)
		}
		if len(f.Rooms) > 0 {
			prev := f.Rooms[len(f.Rooms)-1]
			from := candidate.RandomInterior(src)
			to := prev.RandomInterior(src)
			stats.TunnelCells += g.CarveTunnel(f, from, to)
		}
		f.AddRoom(candidate)
		retries = 0
	}

	stats.Rooms = len(f.Rooms)
	f.AssertConsistent()
	return stats
}

func overlapsAny(candidate world.Room, rooms []world.Room) bool {
	for _, other := range rooms {
		if candidate.Intersects(other) {
			return true
		}
	}
	return false
}

// CarveTunnel opens an L-shaped passage: along x at from's row, then along
// y at to's column. Cells that are already open are left alone. It returns
// the number of cells it opened.
func (g *Generator) CarveTunnel(f *world.Floor, from, to geom.Point) int {
	carved := 0

	x1, x2 := from.X, to.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if f.Carve(geom.Pt(x, from.Y)) {
			carved++
		}
	}

	y1, y2 := from.Y, to.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if f.Carve(geom.Pt(to.X, y)) {
			carved++
		}
	}

	return carved
}

// PlaceStairs puts the down staircase at the center of the last room and
// the up staircase at the center of the first, as the config allows.
func (g *Generator) PlaceStairs(f *world.Floor, ids entity.IDSource) {
	if len(f.Rooms) == 0 {
		return
	}

	if g.cfg.PlaceDownStairs {
		c := f.Rooms[len(f.Rooms)-1].Center()
		f.DownStairs = &c
		f.AddEntity(entity.New(entity.DownStairs, c, ids))
	}
	if g.cfg.PlaceUpStairs {
		c := f.Rooms[0].Center()
		f.UpStairs = &c
		f.AddEntity(entity.New(entity.UpStairs, c, ids))
	}
}

// Populate stocks every room except the entry room with creatures and
// items drawn from the content tables. A draw that lands on an occupied
// cell is skipped rather than retried.
func (g *Generator) Populate(f *world.Floor, src *rng.Source, ids entity.IDSource) (creatures, items int) {
	maxMonsters := g.cfg.MaxMonstersPerRoom.At(f.Level)
	maxItems := g.cfg.MaxItemsPerRoom.At(f.Level)

	for i, room := range f.Rooms {
		if i == 0 {
			continue
		}

		monsters := src.IntRange(0, maxMonsters)
		loot := src.IntRange(0, maxItems)

		for j := 0; j < monsters && g.content.Creatures != nil; j++ {
			p := room.RandomInterior(src)
			if f.IsBlocked(p) {
				continue
			}
			t, ok := g.content.Creatures.Pick(src, f.Level)
			if !ok {
				continue
			}
			f.AddEntity(entity.New(t, p, ids))
			creatures++
		}

		for j := 0; j < loot && g.content.Items != nil; j++ {
			p := room.RandomInterior(src)
			if f.IsWall(p) || len(f.EntitiesAt(p)) > 0 {
				continue
			}
			t, ok := g.content.Items.Pick(src, f.Level)
			if !ok {
				continue
			}
			f.AddEntity(entity.New(t, p, ids))
			items++
		}
	}

	return creatures, items
}
