package engine

import (
	"context"
	"sort"

	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
	"github.com/KirkDiggler/raid-planner/internal/errors"
)

// needWeight makes need for the ranked item dominate overall scarcity
const needWeight = 1000

type candidate struct {
	memberID string
	score    int
}

// RankPriorities orders members per tracked item by outstanding need.
// Ties on score go to the lower member ID.
func (e *engine) RankPriorities(_ context.Context, input *RankPrioritiesInput) (*RankPrioritiesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	seen := make(map[string]struct{}, len(input.Ledgers))
	totals := make([]int, len(input.Ledgers))
	for i, l := range input.Ledgers {
		if l == nil || l.MemberID == "" {
			return nil, errors.InvalidArgumentf("ledger %d has no member id", i)
		}
		if _, dup := seen[l.MemberID]; dup {
			return nil, errors.InvalidArgumentf("member %s appears more than once", l.MemberID).
				WithMeta("member_id", l.MemberID)
		}
		seen[l.MemberID] = struct{}{}
		totals[i] = remainingOf(l.Required, l.Obtained).Total()
	}

	ranking := loot.PriorityRanking{}
	for _, item := range loot.TrackedItems() {
		var candidates []candidate
		for i, l := range input.Ledgers {
			required := l.Required[item.Key]
			if required == 0 {
				continue
			}
			left := required - l.Obtained[item.Key]
			if left <= 0 {
				continue
			}
			candidates = append(candidates, candidate{
				memberID: l.MemberID,
				score:    left*needWeight + totals[i],
			})
		}
		if len(candidates) == 0 {
			continue
		}

		sort.Slice(candidates, func(a, b int) bool {
			if candidates[a].score != candidates[b].score {
				return candidates[a].score > candidates[b].score
			}
			return candidates[a].memberID < candidates[b].memberID
		})

		ids := make([]string, len(candidates))
		for i, c := range candidates {
			ids[i] = c.memberID
		}
		ranking[item.Key] = ids
	}

	return &RankPrioritiesOutput{Ranking: ranking}, nil
}
