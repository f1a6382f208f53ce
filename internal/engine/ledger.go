package engine

import (
	"context"

	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
	"github.com/KirkDiggler/raid-planner/internal/errors"
)

// ApplyObtained replaces the ledger's obtained state wholesale and recomputes
// remaining and completion. The input ledger is not modified.
func (e *engine) ApplyObtained(_ context.Context, input *ApplyObtainedInput) (*ApplyObtainedOutput, error) {
	if input == nil || input.Ledger == nil {
		return nil, errors.InvalidArgument("ledger is required")
	}

	src := input.Ledger
	out := &loot.Ledger{
		MemberID:     src.MemberID,
		GroupID:      src.GroupID,
		Required:     nonNegative(src.Required),
		Obtained:     nonNegative(input.Obtained),
		CalculatedAt: src.CalculatedAt,
		UpdatedAt:    src.UpdatedAt,
	}
	out.Remaining = remainingOf(out.Required, out.Obtained)
	out.CompletionPercentage = completionOf(out.Required.Total(), out.Obtained.Total())

	return &ApplyObtainedOutput{Ledger: out}, nil
}

func nonNegative(r loot.Resources) loot.Resources {
	out := make(loot.Resources, len(r))
	for k, v := range r {
		if v < 0 {
			v = 0
		}
		out[k] = v
	}
	return out
}

// remainingOf covers exactly the required keys
func remainingOf(required, obtained loot.Resources) loot.Resources {
	out := make(loot.Resources, len(required))
	for k, req := range required {
		left := req - obtained[k]
		if left < 0 {
			left = 0
		}
		out[k] = left
	}
	return out
}

// completionOf rounds half up and clamps to [0, 100]
func completionOf(totalRequired, totalObtained int) int {
	if totalRequired <= 0 {
		return 100
	}
	pct := (200*totalObtained + totalRequired) / (2 * totalRequired)
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}
