package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/geom"
	"github.com/samdwyer/delve/internal/logging"
	"github.com/samdwyer/delve/internal/procgen"
	"github.com/samdwyer/delve/internal/rng"
)

func newStartedGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	g, err := New(cfg, procgen.Content{}, logging.Discard())
	require.NoError(t, err)
	require.NoError(t, g.Start(context.Background()))
	return g
}

// stepTo puts the player on p directly.
func stepTo(g *Game, p geom.Point) {
	g.Floor().MoveEntity(g.player, p)
	g.RefreshFOV()
	g.updateState()
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateExplore, "explore"},
		{StateDescending, "descending"},
		{StateAscending, "ascending"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestStartPlacesPlayerInFirstRoom(t *testing.T) {
	g := newStartedGame(t, DefaultConfig(5509))
	f := g.Floor()

	require.NotNil(t, f)
	assert.Equal(t, 0, g.Depth())
	assert.Nil(t, f.UpStairs, "the top floor has no way up")
	assert.NotNil(t, f.DownStairs)
	assert.Equal(t, f.Rooms[0].Center(), g.Player().Pos)
	assert.Equal(t, StateExplore, g.State())
	assert.Same(t, g.Player(), f.BlockingEntityAt(g.Player().Pos))

	assert.True(t, g.IsVisible(g.Player().Pos))
	assert.Greater(t, g.VisibleCount(), 1)
	assert.True(t, f.IsExplored(g.Player().Pos))
	assert.Positive(t, f.ExploredCount())

	assert.ErrorIs(t, g.Start(context.Background()), ErrStarted)
}

func TestTryMoveStopsAtWalls(t *testing.T) {
	g := newStartedGame(t, DefaultConfig(5509))
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		if !g.TryMove(ctx, -1, 0) {
			break
		}
	}
	assert.True(t, g.Floor().IsBlocked(g.Player().Pos.Add(-1, 0)))
	assert.True(t, g.Floor().IsWalkable(g.Player().Pos))
	assert.NoError(t, g.Floor().Validate())
}

func TestDescendAndAscend(t *testing.T) {
	g := newStartedGame(t, DefaultConfig(5509))
	ctx := context.Background()
	top := g.Floor()

	assert.ErrorIs(t, g.Ascend(ctx), ErrNotOnStairs)
	assert.ErrorIs(t, g.Descend(ctx), ErrNotOnStairs)

	stepTo(g, *top.DownStairs)
	assert.Equal(t, StateDescending, g.State())
	require.NoError(t, g.Descend(ctx))

	second := g.Floor()
	assert.Equal(t, 1, g.Depth())
	assert.Equal(t, 1, second.Level)
	assert.Equal(t, *second.UpStairs, g.Player().Pos)
	assert.Nil(t, top.BlockingEntityAt(*top.DownStairs), "player left the floor above")

	require.NoError(t, g.Ascend(ctx))
	assert.Same(t, top, g.Floor())
	assert.Equal(t, *top.DownStairs, g.Player().Pos)
	assert.Equal(t, 2, g.Dungeon().Len())

	require.NoError(t, g.Descend(ctx))
	assert.Same(t, second, g.Floor(), "revisited floors are kept")
}

func TestStairsOnlyWhereTheyLead(t *testing.T) {
	cfg := DefaultConfig(5509)
	cfg.MaxDepth = 2
	g := newStartedGame(t, cfg)
	ctx := context.Background()

	top := g.Floor()
	assert.Nil(t, top.UpStairs)
	require.NotNil(t, top.DownStairs)

	stepTo(g, *top.DownStairs)
	require.NoError(t, g.Descend(ctx))

	bottom := g.Floor()
	assert.Equal(t, 1, bottom.Level)
	require.NotNil(t, bottom.UpStairs)
	assert.Nil(t, bottom.DownStairs, "the bottom floor has no way down")
	for _, e := range bottom.Entities() {
		assert.NotEqual(t, entity.DownStairs.ID, e.TemplateID)
	}
	assert.ErrorIs(t, g.Descend(ctx), ErrNotOnStairs)
}

func TestSingleFloorDungeon(t *testing.T) {
	cfg := DefaultConfig(7)
	cfg.MaxDepth = 1
	g := newStartedGame(t, cfg)

	f := g.Floor()
	assert.Nil(t, f.UpStairs)
	assert.Nil(t, f.DownStairs)
	for _, e := range f.Entities() {
		assert.NotEqual(t, entity.KindStairs, e.Kind)
	}
}

// The end-of-dungeon guards still hold on floors whose stairs were placed
// by hand.
func TestEndOfDungeonGuards(t *testing.T) {
	cfg := DefaultConfig(7)
	cfg.MaxDepth = 1
	g := newStartedGame(t, cfg)
	ctx := context.Background()

	here := g.Player().Pos
	g.Floor().UpStairs = &here
	g.Floor().DownStairs = &here

	assert.ErrorIs(t, g.Ascend(ctx), ErrTopFloor)
	assert.ErrorIs(t, g.Descend(ctx), ErrBottomFloor)
	assert.Equal(t, 0, g.Depth())
	assert.Same(t, g.Player(), g.Floor().BlockingEntityAt(here))
}

func TestFloorsDoNotDependOnVisitOrder(t *testing.T) {
	cfg := DefaultConfig(5509)
	g := newStartedGame(t, cfg)
	for i := 0; i < 3; i++ {
		g.TryMove(context.Background(), 1, 0)
	}
	stepTo(g, *g.Floor().DownStairs)
	require.NoError(t, g.Descend(context.Background()))

	gen, err := procgen.New(cfg.Generation, procgen.Content{}, logging.Discard())
	require.NoError(t, err)
	direct, _ := gen.Generate(context.Background(), 1, rng.New(rng.Derive(cfg.Seed, 1)))

	assert.Equal(t, direct.Rooms, g.Floor().Rooms)
	assert.Equal(t, direct.DownStairs, g.Floor().DownStairs)
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig(1)
	cfg.MaxDepth = 0
	_, err := New(cfg, procgen.Content{}, nil)
	assert.ErrorIs(t, err, procgen.ErrInvalidConfig)

	cfg = DefaultConfig(1)
	cfg.Generation.RoomMinSize = 1
	_, err = New(cfg, procgen.Content{}, nil)
	assert.ErrorIs(t, err, procgen.ErrInvalidConfig)
}

func TestNotStarted(t *testing.T) {
	g, err := New(DefaultConfig(1), procgen.Content{}, logging.Discard())
	require.NoError(t, err)

	assert.Nil(t, g.Floor())
	assert.False(t, g.TryMove(context.Background(), 1, 0))
	assert.ErrorIs(t, g.Descend(context.Background()), ErrNotStarted)
	assert.Zero(t, g.RunMonsterTurns(context.Background()))
}
