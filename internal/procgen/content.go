package procgen

import (
	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/rng"
)

// ContentTable draws a template for a given dungeon level.
type ContentTable interface {
	Pick(src *rng.Source, level int) (entity.Template, bool)
}

// Content is the set of tables the population stage draws from. A nil
// table leaves that kind of entity out.
type Content struct {
	Creatures ContentTable
	Items     ContentTable
}
