// Package gearcatalog stores equipment reference data
package gearcatalog

//go:generate mockgen -destination=mock/mock_repository.go -package=gearcatalogmock github.com/KirkDiggler/raid-planner/internal/repositories/gearcatalog Repository

import (
	"context"

	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
)

// Repository defines catalog persistence
type Repository interface {
	// Get returns errors.NotFound for unknown pieces
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByIDs resolves many pieces at once. Unknown IDs are left out of
	// the result rather than failing the call.
	ListByIDs(ctx context.Context, input ListByIDsInput) (*ListByIDsOutput, error)

	// List returns pieces ordered by slot then item level, optionally
	// filtered to one slot
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Upsert inserts or replaces pieces by ID
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)
}

// GetInput identifies a piece
type GetInput struct {
	ID string
}

// GetOutput holds the piece
type GetOutput struct {
	Piece *gear.Piece
}

// ListByIDsInput holds the IDs to resolve
type ListByIDsInput struct {
	IDs []string
}

// ListByIDsOutput holds the resolved pieces keyed by ID
type ListByIDsOutput struct {
	Pieces map[string]*gear.Piece
}

// ListInput filters the catalog
type ListInput struct {
	Slot gear.Slot
}

// ListOutput holds the matching pieces
type ListOutput struct {
	Pieces []*gear.Piece
}

// UpsertInput holds the pieces to write
type UpsertInput struct {
	Pieces []*gear.Piece
}

// UpsertOutput reports how many pieces were written
type UpsertOutput struct {
	Count int
}
