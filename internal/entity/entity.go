// Package entity provides the creatures, items and markers that live in a
// floor's entity registry.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/delve/internal/geom"
)

// Kind groups templates by the content table they come from.
type Kind string

const (
	KindCreature Kind = "creature"
	KindItem     Kind = "item"
	KindStairs   Kind = "stairs"
	KindPlayer   Kind = "player"
)

// Template describes an archetype that entities are stamped from.
type Template struct {
	ID     string
	Name   string
	Kind   Kind
	Glyph  rune
	Color  tcell.Color
	Blocks bool // Blocks movement into its cell
	Order  RenderOrder
}

// Entity is a single creature, item or marker placed on a floor.
type Entity struct {
	ID         uuid.UUID
	TemplateID string
	Name       string
	Kind       Kind
	Glyph      rune
	Color      tcell.Color
	Pos        geom.Point
	Blocks     bool
	Order      RenderOrder
}

// New stamps an entity from t at pos, taking its ID from ids.
func New(t Template, pos geom.Point, ids IDSource) *Entity {
	return &Entity{
		ID:         ids.NewID(),
		TemplateID: t.ID,
		Name:       t.Name,
		Kind:       t.Kind,
		Glyph:      t.Glyph,
		Color:      t.Color,
		Pos:        pos,
		Blocks:     t.Blocks,
		Order:      t.Order,
	}
}

// IsCreature reports whether the entity is a living creature or the player.
func (e *Entity) IsCreature() bool {
	return (e.Kind == KindCreature || e.Kind == KindPlayer) && e.Order == RenderCreature
}

// Kill turns a creature into a corpse that no longer blocks movement.
// It does not touch Order: an entity held by a floor must go through
// world.Floor.KillEntity so the registry is re-sorted.
func (e *Entity) Kill() {
	e.Name = "remains of " + e.Name
	e.Glyph = '%'
	e.Color = tcell.ColorDarkRed
	e.Blocks = false
}

// Built-in templates that are not part of the content tables.
var (
	DownStairs = Template{
		ID:    "stairs_down",
		Name:  "Stairs down",
		Kind:  KindStairs,
		Glyph: '>',
		Color: tcell.ColorWhite,
		Order: RenderStairs,
	}
	UpStairs = Template{
		ID:    "stairs_up",
		Name:  "Stairs up",
		Kind:  KindStairs,
		Glyph: '<',
		Color: tcell.ColorWhite,
		Order: RenderStairs,
	}
	Player = Template{
		ID:     "player",
		Name:   "Player",
		Kind:   KindPlayer,
		Glyph:  '@',
		Color:  tcell.ColorYellow,
		Blocks: true,
		Order:  RenderCreature,
	}
)
