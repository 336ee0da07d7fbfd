package entity

import (
	"io"

	"github.com/google/uuid"
)

// IDSource hands out entity IDs.
type IDSource interface {
	NewID() uuid.UUID
}

// RandomIDs draws IDs from crypto/rand through uuid.New.
type RandomIDs struct{}

// NewID implements IDSource.
func (RandomIDs) NewID() uuid.UUID {
	return uuid.New()
}

// SeededIDs derives version 4 UUIDs from a reader, so a seeded stream
// yields the same IDs on every run.
type SeededIDs struct {
	r io.Reader
}

// NewSeededIDs creates an IDSource backed by r.
func NewSeededIDs(r io.Reader) *SeededIDs {
	return &SeededIDs{r: r}
}

// NewID implements IDSource. A failing reader falls back to a random ID.
func (s *SeededIDs) NewID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(s.r)
	if err != nil {
		return uuid.New()
	}
	return id
}
