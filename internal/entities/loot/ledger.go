package loot

import (
	"sort"
	"time"
)

// Resources maps a resource key to a quantity
type Resources map[string]int

// Total sums every quantity
func (r Resources) Total() int {
	total := 0
	for _, v := range r {
		total += v
	}
	return total
}

// Clone returns an independent copy; nil stays nil
func (r Resources) Clone() Resources {
	if r == nil {
		return nil
	}
	out := make(Resources, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Keys returns the keys in sorted order
func (r Resources) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Ledger is one member's resource progress within a raid group
type Ledger struct {
	MemberID             string    `json:"member_id"`
	GroupID              string    `json:"group_id"`
	Required             Resources `json:"required"`
	Obtained             Resources `json:"obtained"`
	Remaining            Resources `json:"remaining"`
	CompletionPercentage int       `json:"completion_percentage"`
	CalculatedAt         time.Time `json:"calculated_at,omitempty"`
	UpdatedAt            time.Time `json:"updated_at,omitempty"`
}

// NewLedger returns the all-zero ledger used before a first calculation
func NewLedger(memberID, groupID string) *Ledger {
	return &Ledger{
		MemberID:  memberID,
		GroupID:   groupID,
		Required:  Resources{},
		Obtained:  Resources{},
		Remaining: Resources{},
	}
}

// PriorityRanking maps a tracked item key to member IDs, highest priority first
type PriorityRanking map[string][]string

// Ranking is a stored priority pass for a raid group
type Ranking struct {
	GroupID      string          `json:"group_id"`
	Priorities   PriorityRanking `json:"priorities"`
	MemberCount  int             `json:"member_count"`
	CalculatedAt time.Time       `json:"calculated_at"`
}
