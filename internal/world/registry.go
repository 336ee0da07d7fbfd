package world

import (
	"slices"
	"sort"

	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/geom"
)

// The entity registry is kept sorted by render order. Entities with equal
// order stay in insertion order.

// AddEntity registers e on the floor.
func (f *Floor) AddEntity(e *entity.Entity) {
	i := sort.Search(len(f.entities), func(i int) bool {
		return f.entities[i].Order > e.Order
	})
	f.entities = slices.Insert(f.entities, i, e)
}

// RemoveEntity drops e from the floor. It returns false if e was not
// registered.
func (f *Floor) RemoveEntity(e *entity.Entity) bool {
	i := slices.Index(f.entities, e)
	if i < 0 {
		return false
	}
	f.entities = slices.Delete(f.entities, i, i+1)
	return true
}

// MoveEntity places e at to. Moving never changes registry order.
func (f *Floor) MoveEntity(e *entity.Entity, to geom.Point) {
	e.Pos = to
}

// SetRenderOrder changes e's render order and re-files it. The entity goes
// after any entities already holding the new order.
func (f *Floor) SetRenderOrder(e *entity.Entity, order entity.RenderOrder) {
	if !f.RemoveEntity(e) {
		e.Order = order
		return
	}
	e.Order = order
	f.AddEntity(e)
}

// KillEntity turns e into a corpse and moves it to the corpse layer.
func (f *Floor) KillEntity(e *entity.Entity) {
	e.Kill()
	f.SetRenderOrder(e, entity.RenderCorpse)
}

// Entities returns the registry in render order.
func (f *Floor) Entities() []*entity.Entity {
	return slices.Clone(f.entities)
}

// EntityCount returns the number of registered entities.
func (f *Floor) EntityCount() int {
	return len(f.entities)
}

// EntitiesAt returns the entities at p in render order.
func (f *Floor) EntitiesAt(p geom.Point) []*entity.Entity {
	var out []*entity.Entity
	for _, e := range f.entities {
		if e.Pos == p {
			out = append(out, e)
		}
	}
	return out
}

// TopEntityAt returns the entity drawn on top at p, or nil.
func (f *Floor) TopEntityAt(p geom.Point) *entity.Entity {
	for i := len(f.entities) - 1; i >= 0; i-- {
		if f.entities[i].Pos == p {
			return f.entities[i]
		}
	}
	return nil
}

// BlockingEntityAt returns the first blocking entity at p, or nil.
func (f *Floor) BlockingEntityAt(p geom.Point) *entity.Entity {
	for _, e := range f.entities {
		if e.Blocks && e.Pos == p {
			return e
		}
	}
	return nil
}
