// Package idgen provides ID generation for templates and occurrences
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// UUIDGenerator generates UUIDs with an optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a UUID generator; an empty prefix yields bare UUIDs
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns prefix_uuid, or the bare uuid without a prefix
func (g *UUIDGenerator) Generate() string {
	id := uuid.NewString()
	if g.prefix == "" {
		return id
	}
	return g.prefix + "_" + id
}

// SequentialGenerator hands out predictable IDs for tests
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next ID in sequence, starting at 1
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix == "" {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s_%d", g.prefix, n)
}
