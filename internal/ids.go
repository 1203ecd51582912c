package internal

import (
	"strconv"

	"github.com/google/uuid"
)

// Generates random version 4 UUIDs
type UUIDGenerator struct{}

func (UUIDGenerator) NextId() string {
	return uuid.NewString()
}

// A SequenceGenerator hands out ascending ids with a fixed
// prefix (e.g. "m0", "m1", ...).
//
// It is not safe for concurrent use.
type SequenceGenerator struct {
	Prefix string
	next   int
}

func (g *SequenceGenerator) NextId() string {
	id := g.Prefix + strconv.Itoa(g.next)
	g.next += 1
	return id
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{Prefix: prefix}
}
