package gear

// Item level aggregation counts the weapon twice across eleven effective slots.
const (
	WeaponSlotWeight   = 2
	EffectiveSlotCount = 11
)

// AverageItemLevel returns the weighted average item level of a set.
// Empty or unresolvable slots contribute zero; the divisor is always
// EffectiveSlotCount so a partial set averages low.
func AverageItemLevel(set *Set, catalog Catalog) int {
	if set == nil || catalog == nil {
		return 0
	}

	total := 0
	for _, slot := range allSlots {
		id, ok := set.ItemAt(slot)
		if !ok {
			continue
		}
		piece, ok := catalog.Resolve(id)
		if !ok {
			continue
		}
		weight := 1
		if slot == SlotWeapon {
			weight = WeaponSlotWeight
		}
		total += piece.ItemLevel * weight
	}
	return total / EffectiveSlotCount
}
