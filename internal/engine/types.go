package engine

import (
	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
)

// CalculateGearGapInput holds the two sets to diff
type CalculateGearGapInput struct {
	Current *gear.Set
	Target  *gear.Set
	Catalog gear.Catalog
}

// CalculateGearGapOutput holds the diff result
type CalculateGearGapOutput struct {
	Gap *loot.Gap
}

// ApplyObtainedInput holds a ledger and the member's full obtained state
type ApplyObtainedInput struct {
	Ledger   *loot.Ledger
	Obtained loot.Resources
}

// ApplyObtainedOutput holds the recomputed ledger
type ApplyObtainedOutput struct {
	Ledger *loot.Ledger
}

// RankPrioritiesInput holds one ledger per participating member
type RankPrioritiesInput struct {
	Ledgers []*loot.Ledger
}

// RankPrioritiesOutput holds the ranking for every item with outstanding need
type RankPrioritiesOutput struct {
	Ranking loot.PriorityRanking
}

// ExpandRecurrenceInput holds the template to expand
type ExpandRecurrenceInput struct {
	Template *schedule.Template
}

// ExpandRecurrenceOutput holds the generated occurrences, oldest first.
// The template itself is never included.
type ExpandRecurrenceOutput struct {
	Occurrences []*schedule.Occurrence
}
