// Package engine holds the planner's pure computations: gear-gap resource
// calculation, ledger folding, loot priority ranking and schedule expansion.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/raid-planner/internal/engine Engine

import (
	"context"
)

// Engine performs deterministic calculations over in-memory values. None of
// its methods perform I/O.
type Engine interface {
	CalculateGearGap(ctx context.Context, input *CalculateGearGapInput) (*CalculateGearGapOutput, error)
	ApplyObtained(ctx context.Context, input *ApplyObtainedInput) (*ApplyObtainedOutput, error)
	RankPriorities(ctx context.Context, input *RankPrioritiesInput) (*RankPrioritiesOutput, error)
	ExpandRecurrence(ctx context.Context, input *ExpandRecurrenceInput) (*ExpandRecurrenceOutput, error)
}
