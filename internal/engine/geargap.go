package engine

import (
	"context"

	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
	"github.com/KirkDiggler/raid-planner/internal/errors"
)

// gapAccumulator threads resource totals through a single diff
type gapAccumulator struct {
	changes   []loot.Change
	required  loot.Resources
	materials loot.Resources
	tomeTotal int
}

func newGapAccumulator() *gapAccumulator {
	return &gapAccumulator{
		changes:   []loot.Change{},
		required:  loot.Resources{},
		materials: loot.Resources{},
	}
}

func (a *gapAccumulator) addToken(rule loot.SlotRule) {
	a.required[rule.Token] += rule.TokenCount
}

func (a *gapAccumulator) addUpgrade(rule loot.SlotRule, tomeCost int) {
	a.required[loot.KeyTomeCurrency] += tomeCost
	a.tomeTotal += tomeCost
	a.required[rule.Material]++
	a.materials[rule.Material]++
}

func (a *gapAccumulator) gap() *loot.Gap {
	return &loot.Gap{
		Changes:          a.changes,
		Required:         a.required,
		UpgradeMaterials: a.materials,
		TomeTotal:        a.tomeTotal,
	}
}

func (e *engine) CalculateGearGap(
	_ context.Context,
	input *CalculateGearGapInput,
) (*CalculateGearGapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Current == nil {
		vb.RequiredField("current")
	}
	if input.Target == nil {
		vb.RequiredField("target")
	}
	if input.Catalog == nil {
		vb.RequiredField("catalog")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	acc := newGapAccumulator()
	for _, slot := range gear.AllSlots() {
		targetID, ok := input.Target.ItemAt(slot)
		if !ok {
			continue
		}
		if currentID, held := input.Current.ItemAt(slot); held && currentID == targetID {
			continue
		}

		need, ok := input.Catalog.Resolve(targetID)
		if !ok {
			continue
		}
		rule, ok := loot.RuleFor(slot)
		if !ok {
			continue
		}

		acc.changes = append(acc.changes, loot.Change{
			Slot: slot,
			From: heldLabel(input.Current, slot, input.Catalog),
			To:   pieceLabel(need),
			Tier: need.Tier,
		})

		switch need.Tier {
		case gear.TierRaidHero:
			acc.addToken(rule)
		case gear.TierTomeAugmented:
			acc.addUpgrade(rule, need.UpgradeCost)
		}
	}

	return &CalculateGearGapOutput{Gap: acc.gap()}, nil
}

func heldLabel(set *gear.Set, slot gear.Slot, catalog gear.Catalog) string {
	id, ok := set.ItemAt(slot)
	if !ok {
		return loot.NoneLabel
	}
	if piece, found := catalog.Resolve(id); found {
		return pieceLabel(piece)
	}
	return id
}

func pieceLabel(p *gear.Piece) string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}
