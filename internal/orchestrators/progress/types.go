package progress

import (
	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
)

// SaveGearSetInput holds the set to store
type SaveGearSetInput struct {
	Set *gear.Set
}

// SaveGearSetOutput holds the stored set and its average item level
type SaveGearSetOutput struct {
	Set              *gear.Set
	AverageItemLevel int
}

// CalculateResourcesInput identifies the member to recalculate. By default
// the starting set is diffed against the BIS set; FromCurrent diffs the
// current set instead.
type CalculateResourcesInput struct {
	MemberID    string
	GroupID     string
	FromCurrent bool
}

// CalculateResourcesOutput holds the recomputed ledger and the diff behind it
type CalculateResourcesOutput struct {
	Ledger           *loot.Ledger
	Gap              *loot.Gap
	CurrentItemLevel int
	TargetItemLevel  int
}

// GetLedgerInput identifies a ledger
type GetLedgerInput struct {
	MemberID string
	GroupID  string
}

// GetLedgerOutput holds the ledger, all zero if never calculated
type GetLedgerOutput struct {
	Ledger *loot.Ledger
}

// UpdateObtainedResourcesInput holds the member's full obtained state
type UpdateObtainedResourcesInput struct {
	MemberID string
	GroupID  string
	Obtained loot.Resources
}

// UpdateObtainedResourcesOutput holds the recomputed ledger
type UpdateObtainedResourcesOutput struct {
	Ledger *loot.Ledger
}

// CalculatePriorityInput selects the group and optionally the roster to rank
type CalculatePriorityInput struct {
	GroupID string
	// MemberIDs is the roster. Members never calculated rank with an all-zero ledger.
	MemberIDs []string
}

// CalculatePriorityOutput holds the stored ranking
type CalculatePriorityOutput struct {
	Ranking *loot.Ranking
}

// GetPriorityInput identifies a group
type GetPriorityInput struct {
	GroupID string
}

// GetPriorityOutput holds the latest ranking
type GetPriorityOutput struct {
	Ranking *loot.Ranking
}
