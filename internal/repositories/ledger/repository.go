// Package ledger provides persistence for members' resource ledgers
package ledger

//go:generate mockgen -destination=mock/mock_repository.go -package=ledgermock github.com/KirkDiggler/raid-planner/internal/repositories/ledger Repository

import (
	"context"

	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
)

// Repository defines ledger persistence
type Repository interface {
	// Get returns one member's ledger.
	// Returns errors.NotFound if it was never calculated
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save writes the ledger wholesale and indexes it under its group
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// ListByGroup reads every ledger of a group in one round trip so a
	// priority pass sees a single snapshot. Results are sorted by member ID.
	ListByGroup(ctx context.Context, input ListByGroupInput) (*ListByGroupOutput, error)

	// Delete removes a ledger and its index entry
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput identifies a ledger
type GetInput struct {
	MemberID string
	GroupID  string
}

// GetOutput holds the stored ledger
type GetOutput struct {
	Ledger *loot.Ledger
}

// SaveInput holds the ledger to persist
type SaveInput struct {
	Ledger *loot.Ledger
}

// SaveOutput holds the persisted ledger
type SaveOutput struct {
	Ledger *loot.Ledger
}

// ListByGroupInput selects a group's ledgers. When MemberIDs is set only
// those members are read; members without a ledger are left out.
type ListByGroupInput struct {
	GroupID   string
	MemberIDs []string
}

// ListByGroupOutput holds the ledgers found
type ListByGroupOutput struct {
	Ledgers []*loot.Ledger
}

// DeleteInput identifies a ledger
type DeleteInput struct {
	MemberID string
	GroupID  string
}

// DeleteOutput is empty
type DeleteOutput struct{}
