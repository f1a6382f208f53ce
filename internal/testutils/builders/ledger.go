package builders

import (
	"time"

	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
)

// LedgerBuilder builds ledgers whose remaining and completion stay consistent
// with required and obtained
type LedgerBuilder struct {
	ledger *loot.Ledger
}

// NewLedgerBuilder creates an all-zero ledger for a default member and group
func NewLedgerBuilder() *LedgerBuilder {
	return &LedgerBuilder{ledger: loot.NewLedger("member-test-1", "group-test-1")}
}

// ForMember sets the member and group IDs
func (b *LedgerBuilder) ForMember(memberID, groupID string) *LedgerBuilder {
	b.ledger.MemberID = memberID
	b.ledger.GroupID = groupID
	return b
}

// Requires sets one required quantity
func (b *LedgerBuilder) Requires(key string, n int) *LedgerBuilder {
	b.ledger.Required[key] = n
	return b
}

// Obtained sets one obtained quantity
func (b *LedgerBuilder) Obtained(key string, n int) *LedgerBuilder {
	b.ledger.Obtained[key] = n
	return b
}

// CalculatedAt stamps both calculation and update times
func (b *LedgerBuilder) CalculatedAt(t time.Time) *LedgerBuilder {
	b.ledger.CalculatedAt = t
	b.ledger.UpdatedAt = t
	return b
}

// Build derives remaining and completion and returns a copy
func (b *LedgerBuilder) Build() *loot.Ledger {
	out := *b.ledger
	out.Required = b.ledger.Required.Clone()
	out.Obtained = b.ledger.Obtained.Clone()
	out.Remaining = loot.Resources{}

	for key, need := range out.Required {
		left := need - out.Obtained[key]
		if left < 0 {
			left = 0
		}
		out.Remaining[key] = left
	}

	required := out.Required.Total()
	obtained := out.Obtained.Total()
	switch {
	case required == 0:
		out.CompletionPercentage = 100
	case obtained >= required:
		out.CompletionPercentage = 100
	default:
		out.CompletionPercentage = (200*obtained + required) / (2 * required)
	}
	return &out
}
