package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/procgen"
	"github.com/samdwyer/delve/internal/rng"
)

const (
	CreaturesFile = "creatures.json"
	ItemsFile     = "items.json"
)

// ErrEmptyTable is returned when a table file has no templates.
var ErrEmptyTable = errors.New("content table is empty")

// Registry holds one content table and draws weighted templates from it.
type Registry struct {
	templates []Template
	byID      map[string]int
}

var _ procgen.ContentTable = (*Registry)(nil)

// NewRegistry creates a registry from loaded templates.
func NewRegistry(templates []Template) *Registry {
	r := &Registry{
		templates: templates,
		byID:      make(map[string]int, len(templates)),
	}
	for i := range templates {
		r.byID[templates[i].ID] = i
	}
	return r
}

// LoadRegistry loads a registry from one of the embedded table files.
func LoadRegistry(filename string) (*Registry, error) {
	file, err := Load[TableFile](filename)
	if err != nil {
		return nil, err
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyTable)
	}
	return NewRegistry(file.Templates), nil
}

// LoadContent loads the creature and item tables into a procgen.Content.
func LoadContent() (procgen.Content, error) {
	creatures, err := LoadRegistry(CreaturesFile)
	if err != nil {
		return procgen.Content{}, err
	}
	items, err := LoadRegistry(ItemsFile)
	if err != nil {
		return procgen.Content{}, err
	}
	return procgen.Content{Creatures: creatures, Items: items}, nil
}

// MustLoadContent loads both tables, panicking on error.
func MustLoadContent() procgen.Content {
	content, err := LoadContent()
	if err != nil {
		panic(err)
	}
	return content
}

// Eligible returns the templates that may appear on level.
func (r *Registry) Eligible(level int) []Template {
	var out []Template
	for _, t := range r.templates {
		if t.MinLevel <= level && t.SpawnWeight > 0 {
			out = append(out, t)
		}
	}
	return out
}

// Pick draws a template for level, weighted by SpawnWeight. It reports
// false when nothing in the table is allowed that deep.
func (r *Registry) Pick(src *rng.Source, level int) (entity.Template, bool) {
	t, ok := rng.WeightedChoice(src, r.Eligible(level), func(t Template) int {
		return t.SpawnWeight
	})
	if !ok {
		return entity.Template{}, false
	}
	return t.Entity(), true
}

// GetByID returns the template with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *Template {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	return &r.templates[i]
}

// All returns every template in the table.
func (r *Registry) All() []Template {
	return r.templates
}

// Count returns the number of templates in the table.
func (r *Registry) Count() int {
	return len(r.templates)
}
