// Package gearset provides persistence for members' gear sets
package gearset

//go:generate mockgen -destination=mock/mock_repository.go -package=gearsetmock github.com/KirkDiggler/raid-planner/internal/repositories/gearset Repository

import (
	"context"

	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
)

// Repository defines gear set persistence
type Repository interface {
	// Get returns one set of a member.
	// Returns errors.NotFound if the member never saved that kind of set
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the stored set of the same kind
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// GetInput identifies a set
type GetInput struct {
	MemberID string
	GroupID  string
	Kind     gear.SetKind
}

// GetOutput holds the stored set
type GetOutput struct {
	Set *gear.Set
}

// SaveInput holds the set to persist
type SaveInput struct {
	Set *gear.Set
}

// SaveOutput holds the persisted set
type SaveOutput struct {
	Set *gear.Set
}
