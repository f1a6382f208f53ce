// Package ranking stores the latest loot priority pass per raid group
package ranking

//go:generate mockgen -destination=mock/mock_repository.go -package=rankingmock github.com/KirkDiggler/raid-planner/internal/repositories/ranking Repository

import (
	"context"

	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
)

// Repository defines ranking persistence. A save replaces the previous
// ranking of the group; rankings are never merged.
type Repository interface {
	// Get returns errors.NotFound if no pass ran for the group
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// GetInput identifies a group
type GetInput struct {
	GroupID string
}

// GetOutput holds the stored ranking
type GetOutput struct {
	Ranking *loot.Ranking
}

// SaveInput holds the ranking to persist
type SaveInput struct {
	Ranking *loot.Ranking
}

// SaveOutput holds the persisted ranking
type SaveOutput struct {
	Ranking *loot.Ranking
}
