package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delve/internal/entity"
)

// Template is one row of a content table as it appears in JSON.
type Template struct {
	ID          string      `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string      `json:"name"`        // Display name
	Glyph       string      `json:"glyph"`       // Single character for rendering
	Color       string      `json:"color"`       // Hex color code (e.g., "#00FF00")
	Kind        entity.Kind `json:"kind"`        // "creature" or "item"
	SpawnWeight int         `json:"spawnWeight"` // Relative spawn frequency
	MinLevel    int         `json:"minLevel"`    // Shallowest level it appears on (0 is the top)
	Blocks      bool        `json:"blocks"`      // Blocks movement into its cell
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *Template) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(t.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// TCellColor returns the parsed colour, or white if it does not parse.
func (t *Template) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// Entity converts the row into the template entities are stamped from.
func (t *Template) Entity() entity.Template {
	order := entity.RenderItem
	if t.Kind == entity.KindCreature {
		order = entity.RenderCreature
	}
	return entity.Template{
		ID:     t.ID,
		Name:   t.Name,
		Kind:   t.Kind,
		Glyph:  t.GlyphRune(),
		Color:  t.TCellColor(),
		Blocks: t.Blocks,
		Order:  order,
	}
}

// TableFile is the layout of creatures.json and items.json.
type TableFile struct {
	Templates []Template `json:"templates"`
}
